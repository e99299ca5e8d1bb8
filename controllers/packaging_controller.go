package controllers

import (
	"errors"

	"pds-backend/models"
	"pds-backend/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PackagingController struct {
	DB   *gorm.DB
	repo *repositories.CrudRepository[models.Packaging]
}

func NewPackagingController(db *gorm.DB) *PackagingController {
	return &PackagingController{
		DB: db,
		repo: repositories.NewCrudRepository[models.Packaging](db, repositories.EntityConfig{
			Table:    "packaging",
			IDColumn: "pack_id",
		}),
	}
}

func (c *PackagingController) GetAll(ctx *fiber.Ctx) error {
	rows, err := c.repo.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(rows)
}

func (c *PackagingController) GetByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("pack_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	row, err := c.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Packaging material not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(row)
}

func (c *PackagingController) Create(ctx *fiber.Ctx) error {
	var row models.Packaging
	if err := ctx.BodyParser(&row); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if row.Status == "" {
		row.Status = "Start"
	}

	if err := c.repo.Create(&row); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return ctx.JSON(fiber.Map{"message": "Packaging material added successfully", "pack_id": row.PackID})
}

func (c *PackagingController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("pack_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		MaterialName *string  `json:"material_name"`
		Weight       *float64 `json:"weight"`
		Status       *string  `json:"status"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	affected, err := c.repo.Update(id, map[string]interface{}{
		"material_name": input.MaterialName,
		"weight":        input.Weight,
		"status":        input.Status,
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Packaging material not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Packaging material updated successfully"})
}

func (c *PackagingController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("pack_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	affected, err := c.repo.Delete(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Packaging material not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Packaging material deleted successfully"})
}
