package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flexvoice/backend/config"
	"github.com/flexvoice/backend/internal/api"
	"github.com/flexvoice/backend/internal/database"
	"github.com/flexvoice/backend/internal/middleware"
	"github.com/flexvoice/backend/internal/router"
	"github.com/flexvoice/backend/internal/server"
	"github.com/flexvoice/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize S3: %v", err)
	}
	if s3Config == nil {
		log.Printf("Recording archive disabled: no S3 bucket configured")
	}

	geminiService, err := service.NewGeminiService(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}

	authService := service.NewAuthService(cfg.JWTSecret)
	planService := service.NewPlanService(db)
	generatorService := service.NewGeneratorService(geminiService, planService)
	intakeService := service.NewIntakeService(redisClient)
	recordingService := service.NewRecordingService(s3Config)

	planHandler := api.NewPlanHandler(planService)
	generateHandler := api.NewGenerateHandler(generatorService)
	webhookHandler := api.NewVoiceWebhookHandler(cfg.VoiceWebhookSecret, intakeService, generatorService, recordingService)

	generationLimiter := middleware.NewPlanGenerationRateLimiter(redisClient)

	engine := router.SetupRouter(planHandler, generateHandler, webhookHandler, authService, generationLimiter, cfg.AllowedOrigins)
	srv := server.New(engine, net.JoinHostPort(cfg.ServerHost, cfg.ServerPort))

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s:%s", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
