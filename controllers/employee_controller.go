package controllers

import (
	"pds-backend/models"
	"pds-backend/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

func (c *EmployeeController) Create(ctx *fiber.Ctx) error {
	// address has never been part of the required set on this form.
	var input struct {
		Category      string `json:"category" validate:"required"`
		FullName      string `json:"fullName" validate:"required"`
		Username      string `json:"username" validate:"required"`
		Password      string `json:"password" validate:"required"`
		Address       string `json:"address"`
		AadharNo      string `json:"aadharNo" validate:"required"`
		PanNo         string `json:"panNo" validate:"required"`
		BankName      string `json:"bankName" validate:"required"`
		AccountNumber string `json:"accountNumber" validate:"required"`
		IfscCode      string `json:"ifscCode" validate:"required"`
		BranchName    string `json:"branchName" validate:"required"`
		SubGodown     string `json:"subGodown" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required"})
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error: " + err.Error()})
	}

	employee := models.Employee{
		Category:      input.Category,
		FullName:      input.FullName,
		Username:      input.Username,
		Password:      hashed,
		Address:       input.Address,
		AadharNo:      input.AadharNo,
		PanNo:         input.PanNo,
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		IfscCode:      input.IfscCode,
		BranchName:    input.BranchName,
		SubGodown:     input.SubGodown,
	}

	if err := c.DB.Create(&employee).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database insertion failed"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Employee added successfully"})
}

func (c *EmployeeController) GetAll(ctx *fiber.Ctx) error {
	var employees []models.Employee
	if err := c.DB.Find(&employees).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database fetch failed"})
	}
	// Employee.Password is json:"-", so the hash never serializes.
	return ctx.JSON(employees)
}

func (c *EmployeeController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	result := c.DB.Where("id = ?", id).Delete(&models.Employee{})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete employee"})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Employee not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Employee deleted successfully"})
}
