package main

import (
	"coursedesk/config"
	"coursedesk/database"
	"coursedesk/platform"
	authRoutes "coursedesk/routers/authRoutes"
	contentRoutes "coursedesk/routers/contentRoutes"
	currencyRoutes "coursedesk/routers/currencyRoutes"
	infoRoutes "coursedesk/routers/infoRoutes"
	userRoutes "coursedesk/routers/userRoutes"
	"coursedesk/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	cfg := config.AppConfig
	platform.Init(platform.Config{
		BaseURL:          cfg.PlatformApiURL,
		RateURL:          cfg.RateApiURL,
		CountryURL:       cfg.CountryApiURL,
		ExchangeURL:      cfg.ExchangeApiURL,
		ExchangeBase:     cfg.ExchangeBaseCurrency,
		Timeout:          cfg.HTTPTimeout,
		AudioConcurrency: cfg.AudioUploadConcurrency,
		PageLimit:        cfg.DefaultPageLimit,
	})

	if scheduler := utils.InitializeRateSyncScheduler(platform.API, cfg.RateSyncSchedule, cfg.RateSyncMobile, cfg.RateSyncPassword, cfg.HTTPTimeout*3); scheduler != nil {
		defer scheduler.Stop()
	}

	// audio and video uploads pass through the console
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.MaxUploadMB * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve the console UI from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	contentRoutes.SetupContentRoutes(app)
	userRoutes.SetupUserRoutes(app)
	currencyRoutes.SetupCurrencyRoutes(app)
	infoRoutes.SetupInfoRoutes(app)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
