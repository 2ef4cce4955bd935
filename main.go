package main

import (
	"os"
	"strconv"

	"salesdash-backend/controllers"
	"salesdash-backend/database"
	"salesdash-backend/logging"
	"salesdash-backend/middlewares"
	"salesdash-backend/routes"
	"salesdash-backend/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// envInt reads an int env var with a default fallback.
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func main() {
	log := logging.New(os.Getenv("ENV"))
	defer log.Sync()

	// ---- Database
	database.Connect()
	database.AutoMigrate()
	if err := database.Migrate(); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	// ---- Limits (configurable via env)
	// Fiber default BodyLimit is 4 * 1024 * 1024 bytes if unset (per docs).
	// We allow overriding with BODY_LIMIT_BYTES or BODY_LIMIT_MB.
	bodyLimitBytes := envInt("BODY_LIMIT_BYTES", 0)
	if bodyLimitBytes <= 0 {
		bodyLimitBytes = envInt("BODY_LIMIT_MB", 4) * 1024 * 1024
	}

	// ---- Fiber app with global error handler + body limit
	app := fiber.New(fiber.Config{
		ErrorHandler: middlewares.ErrorHandler(log),
		BodyLimit:    bodyLimitBytes,
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// ---- CORS (the dashboard runs on its own origin)
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// ---- Routes
	h := controllers.New(store.New(database.DB), log)
	routes.Register(app, h)

	// ---- Start
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info("starting API server", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
