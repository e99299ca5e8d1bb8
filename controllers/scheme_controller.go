package controllers

import (
	"errors"

	"pds-backend/models"
	"pds-backend/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SchemeController struct {
	DB   *gorm.DB
	repo *repositories.CrudRepository[models.Scheme]
}

func NewSchemeController(db *gorm.DB) *SchemeController {
	return &SchemeController{
		DB: db,
		repo: repositories.NewCrudRepository[models.Scheme](db, repositories.EntityConfig{
			Table:    "scheme",
			IDColumn: "scheme_id",
		}),
	}
}

func (c *SchemeController) GetAll(ctx *fiber.Ctx) error {
	rows, err := c.repo.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(rows)
}

func (c *SchemeController) GetByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("scheme_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	row, err := c.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Scheme not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(row)
}

func (c *SchemeController) Create(ctx *fiber.Ctx) error {
	var row models.Scheme
	if err := ctx.BodyParser(&row); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.repo.Create(&row); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return ctx.JSON(fiber.Map{"message": "Scheme added successfully", "scheme_id": row.SchemeID})
}

func (c *SchemeController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("scheme_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		SchemeName   *string `json:"scheme_name"`
		SchemeStatus *string `json:"scheme_status"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	affected, err := c.repo.Update(id, map[string]interface{}{
		"scheme_name":   input.SchemeName,
		"scheme_status": input.SchemeStatus,
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Scheme not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Scheme updated successfully"})
}

func (c *SchemeController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("scheme_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	affected, err := c.repo.Delete(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Scheme not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Scheme deleted successfully"})
}
