package controllers

import (
	"errors"

	"pds-backend/models"
	"pds-backend/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OwnerController struct {
	DB   *gorm.DB
	repo *repositories.CrudRepository[models.Owner]
}

func NewOwnerController(db *gorm.DB) *OwnerController {
	return &OwnerController{
		DB: db,
		repo: repositories.NewCrudRepository[models.Owner](db, repositories.EntityConfig{
			Table:    "owners",
			IDColumn: "uuid",
			Ordered:  true,
		}),
	}
}

func (c *OwnerController) GetAll(ctx *fiber.Ctx) error {
	owners, err := c.repo.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database fetch error"})
	}
	return ctx.JSON(owners)
}

func (c *OwnerController) GetByUUID(ctx *fiber.Ctx) error {
	owner, err := c.repo.GetByID(ctx.Params("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Owner not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database fetch error"})
	}
	return ctx.JSON(owner)
}

func (c *OwnerController) Create(ctx *fiber.Ctx) error {
	var input struct {
		OwnerName string `json:"ownerName" validate:"required"`
		Contact   string `json:"contact" validate:"required"`
		Address   string `json:"address" validate:"required"`
		EmailID   string `json:"emailID" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required"})
	}

	owner := models.Owner{
		UUID:      uuid.NewString(),
		OwnerName: input.OwnerName,
		Contact:   input.Contact,
		Address:   input.Address,
		EmailID:   input.EmailID,
	}

	if err := c.repo.Create(&owner); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database insertion failed"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Owner added successfully",
		"uuid":         owner.UUID,
		"order_number": owner.OrderNumber,
	})
}

func (c *OwnerController) Update(ctx *fiber.Ctx) error {
	var input struct {
		OwnerName string `json:"ownerName" validate:"required"`
		Contact   string `json:"contact" validate:"required"`
		Address   string `json:"address" validate:"required"`
		EmailID   string `json:"emailID" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required"})
	}

	affected, err := c.repo.Update(ctx.Params("uuid"), map[string]interface{}{
		"ownerName": input.OwnerName,
		"contact":   input.Contact,
		"address":   input.Address,
		"emailID":   input.EmailID,
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database update error"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Owner not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Owner updated successfully"})
}

func (c *OwnerController) Delete(ctx *fiber.Ctx) error {
	affected, err := c.repo.Delete(ctx.Params("uuid"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database deletion failed"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Owner not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Owner deleted and order numbers reset successfully!"})
}
