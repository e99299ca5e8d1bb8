package routes

import (
	"pds-backend/controllers"
	"pds-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEmployeeRoutes(app *fiber.App, db *gorm.DB) {
	employeeController := controllers.NewEmployeeController(db)
	exportController := controllers.NewExportController(db)

	app.Get("/employees", employeeController.GetAll)
	app.Post("/employees", employeeController.Create)
	app.Delete("/employees/:id", employeeController.Delete)

	app.Get("/api/employees/export", middleware.AuthMiddleware, exportController.ExportEmployees)
}
