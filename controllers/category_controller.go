package controllers

import (
	"errors"

	"pds-backend/models"
	"pds-backend/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CategoryController struct {
	DB   *gorm.DB
	repo *repositories.CrudRepository[models.Category]
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{
		DB: db,
		repo: repositories.NewCrudRepository[models.Category](db, repositories.EntityConfig{
			Table:    "categories",
			IDColumn: "category_id",
		}),
	}
}

func (c *CategoryController) GetAll(ctx *fiber.Ctx) error {
	rows, err := c.repo.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(rows)
}

func (c *CategoryController) GetByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("category_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	row, err := c.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Category not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(row)
}

func (c *CategoryController) Create(ctx *fiber.Ctx) error {
	var row models.Category
	if err := ctx.BodyParser(&row); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.repo.Create(&row); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return ctx.JSON(fiber.Map{"message": "Category added successfully", "category_id": row.CategoryID})
}

func (c *CategoryController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("category_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		CategoryName *string `json:"category_name"`
		Description  *string `json:"description"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	affected, err := c.repo.Update(id, map[string]interface{}{
		"category_name": input.CategoryName,
		"description":   input.Description,
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Category not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Category updated successfully"})
}

func (c *CategoryController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("category_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	affected, err := c.repo.Delete(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Category not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Category deleted successfully"})
}
