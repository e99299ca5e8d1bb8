package main

import (
	"fmt"
	"log"

	"pds-backend/config"
	"pds-backend/database"
	"pds-backend/logger"
	"pds-backend/middleware"
	"pds-backend/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatal(err)
	}
	logger.Init()
	defer logger.Log.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	if err := middleware.InitRequestID(); err != nil {
		log.Fatal("Failed to init request id generator: ", err)
	}

	app := fiber.New()
	config.SetupCORS(app)
	app.Use(middleware.RequestID)

	routes.SetupRootRoutes(app)
	routes.SetupAuthRoutes(app, db)
	routes.SetupEmployeeRoutes(app, db)
	routes.SetupMswcGodownRoutes(app, db)
	routes.SetupSubGodownRoutes(app, db)
	routes.SetupOwnerRoutes(app, db)
	routes.SetupGrainRoutes(app, db)
	routes.SetupTruckRoutes(app, db)
	routes.SetupPackagingRoutes(app, db)
	routes.SetupCategoryRoutes(app, db)
	routes.SetupSchemeRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)

	fmt.Println("🚀 Server running on port " + config.AppPort)
	log.Fatal(app.Listen(":" + config.AppPort))
}
