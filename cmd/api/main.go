package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-veloce-backend/config"
	_ "go-veloce-backend/docs" // Important for Swagger
	v1 "go-veloce-backend/internal/delivery/http/v1"
	"go-veloce-backend/internal/usecase"
	"go-veloce-backend/pkg/email"
	"go-veloce-backend/pkg/logger"
	"go-veloce-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Veloce Website Backend API
// @version         1.0
// @description     Contact and meeting-scheduling backend for the Veloce Technology website.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting veloce website backend", "port", cfg.Port)

	// 3. Setup Redis (optional rate limiter backend)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 4. Setup Mail Sender
	smtpSender := email.NewSMTPSender(cfg)
	if !smtpSender.IsConfigured() {
		logger.Log.Warn("SMTP not fully configured - form submissions will fail to send")
	}

	// 5. Setup UseCases
	validate := validator.New()
	contactUC := usecase.NewContactUsecase(smtpSender, validate, cfg.ContactEmail)
	meetingUC := usecase.NewMeetingUsecase(smtpSender, validate, cfg.ContactEmail, smtpSender.From())

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		MeetingUC: meetingUC,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
