package routes

import (
	"pds-backend/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCategoryRoutes(app *fiber.App, db *gorm.DB) {
	categoryController := controllers.NewCategoryController(db)

	api := app.Group("/api/categories")
	api.Get("/", categoryController.GetAll)
	api.Get("/:category_id", categoryController.GetByID)
	api.Post("/", categoryController.Create)
	api.Put("/:category_id", categoryController.Update)
	api.Delete("/:category_id", categoryController.Delete)
}
