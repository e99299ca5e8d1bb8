package routes

import (
	"pds-backend/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	dashboardController := controllers.NewDashboardController(db)

	app.Get("/api/getRowCounts", dashboardController.GetRowCounts)
}
