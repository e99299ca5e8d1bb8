package routes

import (
	"pds-backend/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTruckRoutes(app *fiber.App, db *gorm.DB) {
	truckController := controllers.NewTruckController(db)

	api := app.Group("/api/truck")
	api.Get("/", truckController.GetAll)
	api.Get("/:uuid", truckController.GetByUUID)
	api.Post("/", truckController.Create)
	api.Put("/:uuid", truckController.Update)
	api.Delete("/:uuid", truckController.Delete)
}
