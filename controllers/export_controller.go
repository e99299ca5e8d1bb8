package controllers

import (
	"bytes"
	"fmt"

	"pds-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

// ExportOwners writes the owner register as an xlsx download.
func (c *ExportController) ExportOwners(ctx *fiber.Ctx) error {
	var owners []models.Owner
	if err := c.DB.Order("order_number").Find(&owners).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database fetch error"})
	}

	headers := []string{"Order", "UUID", "Owner Name", "Contact", "Address", "Email ID"}
	rows := make([][]interface{}, 0, len(owners))
	for _, o := range owners {
		rows = append(rows, []interface{}{o.OrderNumber, o.UUID, o.OwnerName, o.Contact, o.Address, o.EmailID})
	}

	return sendWorkbook(ctx, "owners.xlsx", "Owners", headers, rows)
}

// ExportEmployees writes the employee register as an xlsx download. The
// password column is never part of the sheet.
func (c *ExportController) ExportEmployees(ctx *fiber.Ctx) error {
	var employees []models.Employee
	if err := c.DB.Find(&employees).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database fetch error"})
	}

	headers := []string{"ID", "Category", "Full Name", "Username", "Address", "Aadhar No", "PAN No", "Bank Name", "Account Number", "IFSC Code", "Branch Name", "Sub Godown"}
	rows := make([][]interface{}, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []interface{}{e.ID, e.Category, e.FullName, e.Username, e.Address, e.AadharNo, e.PanNo, e.BankName, e.AccountNumber, e.IfscCode, e.BranchName, e.SubGodown})
	}

	return sendWorkbook(ctx, "employees.xlsx", "Employees", headers, rows)
}

func sendWorkbook(ctx *fiber.Ctx, filename, sheet string, headers []string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build workbook"})
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for r, row := range rows {
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write workbook"})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Send(buf.Bytes())
}
