package routes

import (
	"pds-backend/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPackagingRoutes(app *fiber.App, db *gorm.DB) {
	packagingController := controllers.NewPackagingController(db)

	api := app.Group("/api/packaging")
	api.Get("/", packagingController.GetAll)
	api.Get("/:pack_id", packagingController.GetByID)
	api.Post("/", packagingController.Create)
	api.Put("/:pack_id", packagingController.Update)
	api.Delete("/:pack_id", packagingController.Delete)
}
