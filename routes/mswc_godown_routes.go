package routes

import (
	"pds-backend/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMswcGodownRoutes(app *fiber.App, db *gorm.DB) {
	godownController := controllers.NewMswcGodownController(db)

	// Name-only dropdown feed for the sub-godown and grain forms.
	app.Get("/api/godowns", godownController.GetGodownNames)

	api := app.Group("/api/mswcgodown")
	api.Get("/", godownController.GetAll)
	api.Get("/:uuid", godownController.GetByUUID)
	api.Post("/", godownController.Create)
	api.Put("/:uuid", godownController.Update)
	api.Delete("/:uuid", godownController.Delete)
}
