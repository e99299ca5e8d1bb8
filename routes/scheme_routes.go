package routes

import (
	"pds-backend/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSchemeRoutes(app *fiber.App, db *gorm.DB) {
	schemeController := controllers.NewSchemeController(db)

	api := app.Group("/api/scheme")
	api.Get("/", schemeController.GetAll)
	api.Get("/:scheme_id", schemeController.GetByID)
	api.Post("/", schemeController.Create)
	api.Put("/:scheme_id", schemeController.Update)
	api.Delete("/:scheme_id", schemeController.Delete)
}
