package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/OpenRICA/permit-intake/internal/application/router"
	"github.com/OpenRICA/permit-intake/internal/application/service"
	"github.com/OpenRICA/permit-intake/internal/config"
	"github.com/OpenRICA/permit-intake/internal/database"
	"github.com/OpenRICA/permit-intake/internal/middleware"
	"github.com/OpenRICA/permit-intake/internal/notify"
)

func main() {
	// Load environment variables from an optional .env file
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using process environment")
	}

	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	slog.Info("configuration loaded successfully",
		"db_driver", cfg.Database.Driver,
		"db_name", cfg.Database.Name,
		"mail_enabled", cfg.MailEnabled(),
	)

	slog.Info("server configuration",
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Perform health check
	if err := database.HealthCheck(db); err != nil {
		log.Fatalf("database health check failed: %v", err)
	}

	// Create the applications table if it does not exist yet
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Notifications are best effort; without mail configuration the service
	// runs with them disabled rather than refusing to start.
	var notifier notify.Notifier
	if cfg.MailEnabled() {
		notifier = notify.NewSMTPMailer(&cfg.Mail)
	} else {
		slog.Warn("mail is not configured, submission notifications are disabled")
	}

	intakeService := service.NewIntakeService(db, notifier, cfg.Mail.Subject)
	intakeRouter := router.NewIntakeRouter(intakeService, db)

	// Set up HTTP routes
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", intakeRouter.HandleIndex)
	mux.HandleFunc("GET /healthz", intakeRouter.HandleHealth)
	mux.HandleFunc("POST /submit", intakeRouter.HandleSubmit)

	// Set up graceful shutdown
	serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)

	// Wrap handler with CORS and request ID middleware
	handler := middleware.CORS(&cfg.CORS)(middleware.RequestID(mux))

	server := &http.Server{
		Addr:    serverAddr,
		Handler: handler,
	}

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		slog.Info("starting server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	// Wait for interrupt signal
	<-quit
	slog.Info("shutting down server...")

	// Create a context with timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Attempt graceful shutdown of HTTP server
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	} else {
		slog.Info("server gracefully stopped")
	}

	slog.Info("server stopped")
}
