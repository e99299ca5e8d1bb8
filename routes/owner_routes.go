package routes

import (
	"pds-backend/controllers"
	"pds-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupOwnerRoutes(app *fiber.App, db *gorm.DB) {
	ownerController := controllers.NewOwnerController(db)
	exportController := controllers.NewExportController(db)

	api := app.Group("/api/owners")
	api.Get("/", ownerController.GetAll)
	// /export must be registered before /:uuid so the literal segment wins.
	api.Get("/export", middleware.AuthMiddleware, exportController.ExportOwners)
	api.Get("/:uuid", ownerController.GetByUUID)
	api.Post("/", ownerController.Create)
	api.Put("/:uuid", ownerController.Update)
	api.Delete("/:uuid", ownerController.Delete)
}
