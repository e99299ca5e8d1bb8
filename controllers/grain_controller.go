package controllers

import (
	"errors"

	"pds-backend/models"
	"pds-backend/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GrainController struct {
	DB   *gorm.DB
	repo *repositories.CrudRepository[models.Grain]
}

func NewGrainController(db *gorm.DB) *GrainController {
	return &GrainController{
		DB: db,
		repo: repositories.NewCrudRepository[models.Grain](db, repositories.EntityConfig{
			Table:    "grains",
			IDColumn: "uuid",
			Ordered:  true,
		}),
	}
}

func (c *GrainController) GetAll(ctx *fiber.Ctx) error {
	grains, err := c.repo.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database query failed"})
	}
	return ctx.JSON(grains)
}

func (c *GrainController) GetByUUID(ctx *fiber.Ctx) error {
	grain, err := c.repo.GetByID(ctx.Params("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Grain not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database query failed"})
	}
	return ctx.JSON(grain)
}

func (c *GrainController) Create(ctx *fiber.Ctx) error {
	var input struct {
		GrainName  string `json:"grainName"`
		GodownName string `json:"godownName"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.GrainName == "" || input.GodownName == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Grain name and one Godown selection are required"})
	}

	grain := models.Grain{
		UUID:       uuid.NewString(),
		GrainName:  input.GrainName,
		GodownName: input.GodownName,
	}

	if err := c.repo.Create(&grain); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database insertion failed"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Grain added successfully",
		"uuid":         grain.UUID,
		"order_number": grain.OrderNumber,
	})
}

func (c *GrainController) Update(ctx *fiber.Ctx) error {
	var input struct {
		GrainName  string `json:"grainName"`
		MswcGodown string `json:"mswcGodown"`
		SubGodown  string `json:"subGodown"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.GrainName == "" || (input.MswcGodown == "" && input.SubGodown == "") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Grain name and one Godown selection are required"})
	}

	// Either godown field is accepted; the MSWC one wins when both are set.
	godownName := input.MswcGodown
	if godownName == "" {
		godownName = input.SubGodown
	}

	affected, err := c.repo.Update(ctx.Params("uuid"), map[string]interface{}{
		"grainName":  input.GrainName,
		"godownName": godownName,
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database update error"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Grain not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Grain updated successfully"})
}

func (c *GrainController) Delete(ctx *fiber.Ctx) error {
	affected, err := c.repo.Delete(ctx.Params("uuid"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database deletion failed"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Grain not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Grain deleted and order numbers reset successfully!"})
}
