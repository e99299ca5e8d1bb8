package routes

import (
	"pds-backend/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupGrainRoutes(app *fiber.App, db *gorm.DB) {
	grainController := controllers.NewGrainController(db)

	api := app.Group("/api/grains")
	api.Get("/", grainController.GetAll)
	api.Get("/:uuid", grainController.GetByUUID)
	api.Post("/", grainController.Create)
	api.Put("/:uuid", grainController.Update)
	api.Delete("/:uuid", grainController.Delete)
}
