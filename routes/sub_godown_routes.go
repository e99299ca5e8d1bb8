package routes

import (
	"pds-backend/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSubGodownRoutes(app *fiber.App, db *gorm.DB) {
	subGodownController := controllers.NewSubGodownController(db)

	api := app.Group("/api/subgodown")
	api.Get("/", subGodownController.GetAll)
	api.Get("/:uuid", subGodownController.GetByUUID)
	api.Post("/", subGodownController.Create)
	api.Put("/:uuid", subGodownController.Update)
	api.Delete("/:uuid", subGodownController.Delete)
}
