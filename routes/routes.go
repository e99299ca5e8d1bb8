package routes

import (
	"github.com/gofiber/fiber/v2"
)

func SetupRootRoutes(app *fiber.App) {
	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("API is running")
	})
}
