package controllers

import (
	"errors"

	"pds-backend/models"
	"pds-backend/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MswcGodownController struct {
	DB   *gorm.DB
	repo *repositories.CrudRepository[models.MswcGodown]
}

func NewMswcGodownController(db *gorm.DB) *MswcGodownController {
	return &MswcGodownController{
		DB: db,
		repo: repositories.NewCrudRepository[models.MswcGodown](db, repositories.EntityConfig{
			Table:    "mswc_godowns",
			IDColumn: "uuid",
			Ordered:  true,
		}),
	}
}

func (c *MswcGodownController) GetAll(ctx *fiber.Ctx) error {
	godowns, err := c.repo.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(godowns)
}

// GetGodownNames serves the name-only dropdown used by the sub-godown and
// grain forms.
func (c *MswcGodownController) GetGodownNames(ctx *fiber.Ctx) error {
	var names []struct {
		GodownName string `json:"godownName" gorm:"column:godownName"`
	}
	if err := c.DB.Model(&models.MswcGodown{}).Select("godownName").Find(&names).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database query error"})
	}
	return ctx.JSON(names)
}

func (c *MswcGodownController) GetByUUID(ctx *fiber.Ctx) error {
	godown, err := c.repo.GetByID(ctx.Params("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Godown not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(godown)
}

func (c *MswcGodownController) Create(ctx *fiber.Ctx) error {
	var input struct {
		GodownName  string `json:"godownName"`
		GodownUnder string `json:"godownUnder"`
		Status      string `json:"status"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.Status == "" {
		input.Status = "Active"
	}

	godown := models.MswcGodown{
		UUID:        uuid.NewString(),
		GodownName:  input.GodownName,
		GodownUnder: input.GodownUnder,
		Status:      input.Status,
	}

	if err := c.repo.Create(&godown); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return ctx.JSON(fiber.Map{
		"message":      "Godown added successfully",
		"uuid":         godown.UUID,
		"order_number": godown.OrderNumber,
		"status":       godown.Status,
	})
}

func (c *MswcGodownController) Update(ctx *fiber.Ctx) error {
	var input struct {
		GodownName  *string `json:"godownName"`
		GodownUnder *string `json:"godownUnder"`
		Status      *string `json:"status"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Absent fields stay nil and overwrite the column with NULL, the same
	// way the form has always submitted this endpoint.
	affected, err := c.repo.Update(ctx.Params("uuid"), map[string]interface{}{
		"godownName":  input.GodownName,
		"godownUnder": input.GodownUnder,
		"status":      input.Status,
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Godown not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Godown updated successfully"})
}

func (c *MswcGodownController) Delete(ctx *fiber.Ctx) error {
	affected, err := c.repo.Delete(ctx.Params("uuid"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Godown not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Godown deleted and order numbers reset successfully!"})
}
