package controllers

import (
	"pds-backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetRowCounts feeds the dashboard summary cards. Any failing count fails
// the whole request; there is no per-table fallback.
func (c *DashboardController) GetRowCounts(ctx *fiber.Ctx) error {
	tables := []struct {
		key   string
		model interface{}
	}{
		{"ownercount", &models.Owner{}},
		{"employeecount", &models.Employee{}},
		{"mswccount", &models.MswcGodown{}},
		{"godowncount", &models.SubGodown{}},
		{"truckcount", &models.Truck{}},
		{"schemecount", &models.Scheme{}},
		{"packagingcount", &models.Packaging{}},
	}

	counts := fiber.Map{}
	for _, t := range tables {
		var n int64
		if err := c.DB.Model(t.model).Count(&n).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
		}
		counts[t.key] = n
	}

	return ctx.JSON(counts)
}
