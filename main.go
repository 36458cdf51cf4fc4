package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/wisemoney/wisemoney-backend/handlers"
	"github.com/wisemoney/wisemoney-backend/logger"
	"github.com/wisemoney/wisemoney-backend/repository"
	"github.com/wisemoney/wisemoney-backend/routes"
	"github.com/wisemoney/wisemoney-backend/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.GetLogger().Warn(".env file not found, using environment variables")
	}

	log := logger.GetLogger()
	defer logger.Close()

	// Initialize New Relic
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("Wise Money API"),
		newrelic.ConfigLicense(os.Getenv("NEW_RELIC_LICENSE_KEY")),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Warnw("Failed to initialize New Relic", "error", err)
	}

	// Initialize database
	if err := repository.InitDB(); err != nil {
		log.Fatalw("Failed to initialize database", "error", err)
	}
	defer repository.CloseDB()

	// Initialize services
	handlers.InitHandlers()

	// Start the payment reminder job when email sending is configured
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		reminder := services.NewReminderService(
			handlers.Services().DebtsService,
			apiKey,
			getEnvOrDefault("REMINDER_FROM", "Wise Money <onboarding@resend.dev>"),
			reminderInterval(),
		)
		go reminder.Run(ctx)
	} else {
		log.Info("RESEND_API_KEY not set, payment reminders disabled")
	}

	// Set up Gin router
	router := gin.Default()

	// Add New Relic middleware
	if app != nil {
		router.Use(nrgin.Middleware(app))
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Change to your frontend URL in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Set up routes
	routes.SetupRoutes(router)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Infow("Server starting", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalw("Failed to start server", "error", err)
	}
}

func reminderInterval() time.Duration {
	if raw := os.Getenv("REMINDER_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			return d
		}
		logger.GetLogger().Warnw("Invalid REMINDER_INTERVAL, using default", "value", raw)
	}
	return 24 * time.Hour
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
