package main

import (
	"project/backend/config"
	"project/backend/middleware"
	"project/backend/routes"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}

	// Initialize logger
	utils.InitLogger(cfg.IsProduction())

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing database")
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false,
	}))
	app.Use(middleware.RequestLogging())

	// Setup routes
	routes.SetupRoutes(app, db, cfg)

	// Start server
	log.Fatal().Err(app.Listen(":" + cfg.ServerPort)).Msg("server stopped")
}
