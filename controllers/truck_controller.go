package controllers

import (
	"errors"

	"pds-backend/models"
	"pds-backend/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TruckController struct {
	DB   *gorm.DB
	repo *repositories.CrudRepository[models.Truck]
}

func NewTruckController(db *gorm.DB) *TruckController {
	return &TruckController{
		DB: db,
		repo: repositories.NewCrudRepository[models.Truck](db, repositories.EntityConfig{
			Table:    "truck",
			IDColumn: "uuid",
		}),
	}
}

func (c *TruckController) GetAll(ctx *fiber.Ctx) error {
	trucks, err := c.repo.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(trucks)
}

func (c *TruckController) GetByUUID(ctx *fiber.Ctx) error {
	truck, err := c.repo.GetByID(ctx.Params("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Truck not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(truck)
}

func (c *TruckController) Create(ctx *fiber.Ctx) error {
	var truck models.Truck
	if err := ctx.BodyParser(&truck); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	truck.UUID = uuid.NewString()
	if truck.TruckStatus == "" {
		truck.TruckStatus = "Active"
	}

	if err := c.repo.Create(&truck); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return ctx.JSON(fiber.Map{"message": "Truck added successfully", "uuid": truck.UUID})
}

func (c *TruckController) Update(ctx *fiber.Ctx) error {
	var input struct {
		TruckName         *string  `json:"truck_name"`
		TruckStatus       *string  `json:"truck_status"`
		EmptyWeight       *float64 `json:"empty_weight"`
		Company           *string  `json:"company"`
		Gvw               *float64 `json:"gvw"`
		RegDate           *string  `json:"reg_date"`
		TruckOwnerName    *string  `json:"truck_owner_name"`
		OwnerID           *string  `json:"owner_id"`
		TaxValidity       *string  `json:"tax_validity"`
		InsuranceValidity *string  `json:"insurance_validity"`
		FitnessValidity   *string  `json:"fitness_validity"`
		PermitValidity    *string  `json:"permit_validity"`
		DirectSale        *string  `json:"direct_sale"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	affected, err := c.repo.Update(ctx.Params("uuid"), map[string]interface{}{
		"truck_name":         input.TruckName,
		"truck_status":       input.TruckStatus,
		"empty_weight":       input.EmptyWeight,
		"company":            input.Company,
		"gvw":                input.Gvw,
		"reg_date":           input.RegDate,
		"truck_owner_name":   input.TruckOwnerName,
		"owner_id":           input.OwnerID,
		"tax_validity":       input.TaxValidity,
		"insurance_validity": input.InsuranceValidity,
		"fitness_validity":   input.FitnessValidity,
		"permit_validity":    input.PermitValidity,
		"direct_sale":        input.DirectSale,
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Truck not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Truck updated successfully"})
}

func (c *TruckController) Delete(ctx *fiber.Ctx) error {
	affected, err := c.repo.Delete(ctx.Params("uuid"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Truck not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Truck deleted successfully"})
}
