package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"eduport/config"
	"eduport/gateway"
	"eduport/middleware"
	"eduport/routes"
	"eduport/services"
	"eduport/session"
	"eduport/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Gateway client and durable token store
	gw := gateway.New(cfg.GatewayURL, logger)
	store := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.TokenTTL)

	// Session state and synchronizers
	sessions := session.NewManager(gw, store, logger)
	catalog := services.NewCatalogService(gw, logger)
	progress := services.NewProgressService(gw, logger)

	sessions.Subscribe(func(s *session.Session, ev session.Event) {
		logger.Printf("session %s: %s", s.ID(), ev)
	})

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.Logging(logger))
	app.Use(middleware.Session(sessions, cfg.CookieName))

	// Setup routes
	routes.SetupRoutes(app, sessions, gw, catalog, progress)

	// Start server
	logger.Printf("Web client listening on :%s, gateway at %s", cfg.ServerPort, cfg.GatewayURL)
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
