package controllers

import (
	"errors"

	"pds-backend/models"
	"pds-backend/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubGodownController struct {
	DB   *gorm.DB
	repo *repositories.CrudRepository[models.SubGodown]
}

func NewSubGodownController(db *gorm.DB) *SubGodownController {
	return &SubGodownController{
		DB: db,
		repo: repositories.NewCrudRepository[models.SubGodown](db, repositories.EntityConfig{
			Table:    "sub_godown",
			IDColumn: "uuid",
			Ordered:  true,
		}),
	}
}

func (c *SubGodownController) GetAll(ctx *fiber.Ctx) error {
	godowns, err := c.repo.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(godowns)
}

func (c *SubGodownController) GetByUUID(ctx *fiber.Ctx) error {
	godown, err := c.repo.GetByID(ctx.Params("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Godown not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(godown)
}

func (c *SubGodownController) Create(ctx *fiber.Ctx) error {
	var input struct {
		ParentGodown string `json:"parentGodown"`
		SubGodown    string `json:"subGodown"`
		Status       string `json:"status"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.Status == "" {
		input.Status = "Active"
	}

	godown := models.SubGodown{
		UUID:         uuid.NewString(),
		ParentGodown: input.ParentGodown,
		SubGodown:    input.SubGodown,
		Status:       input.Status,
	}

	if err := c.repo.Create(&godown); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Sub-Godown added successfully",
		"uuid":    godown.UUID,
	})
}

func (c *SubGodownController) Update(ctx *fiber.Ctx) error {
	var input struct {
		ParentGodown *string `json:"parentGodown"`
		SubGodown    *string `json:"subGodown"`
		Status       *string `json:"status"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	affected, err := c.repo.Update(ctx.Params("uuid"), map[string]interface{}{
		"parentGodown": input.ParentGodown,
		"subGodown":    input.SubGodown,
		"status":       input.Status,
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Godown not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Godown updated successfully"})
}

func (c *SubGodownController) Delete(ctx *fiber.Ctx) error {
	affected, err := c.repo.Delete(ctx.Params("uuid"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Godown not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Godown deleted and order numbers reset successfully!"})
}
