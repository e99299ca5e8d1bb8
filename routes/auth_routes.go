package routes

import (
	"pds-backend/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)

	app.Post("/signup", authController.Signup)
	app.Post("/signin", authController.Signin)
}
