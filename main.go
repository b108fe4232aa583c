package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/antonkarev/healthhub/internal/apiclient"
	"github.com/antonkarev/healthhub/internal/cli"
	"github.com/antonkarev/healthhub/internal/config"
	"github.com/antonkarev/healthhub/internal/logger"
	"github.com/antonkarev/healthhub/internal/router"
	"github.com/antonkarev/healthhub/internal/services"
	"github.com/antonkarev/healthhub/internal/session"
	"github.com/antonkarev/healthhub/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	kv, err := storage.Open(cfg.Storage)
	if err != nil {
		// A broken durable backend must not keep the user out; the session
		// simply will not survive a restart.
		logger.Warn("Falling back to in-memory storage", "error", err)
		kv = storage.NewMemoryStore()
	}
	defer kv.Close()

	api := apiclient.New(cfg.APIBaseURL, cfg.RequestTimeout)
	authService := services.NewAuthService(api)
	sess := session.New(authService, kv, api)

	// Hydrate the session from storage so a restart needs no network call.
	sess.InitializeAuth(context.Background())

	healthService := services.NewHealthService(api, sess)
	depressionService := services.NewDepressionService(api, sess)
	pneumoniaService := services.NewPneumoniaService(api, sess)
	chatService := services.NewChatService(api, sess)
	logger.Info("Services initialized", "api_base_url", cfg.APIBaseURL, "storage", cfg.Storage.Backend)

	rt := router.New(sess)
	app := cli.New(os.Stdin, os.Stdout, rt, sess,
		healthService, depressionService, pneumoniaService, chatService)

	if err := app.Run(context.Background()); err != nil && err != context.Canceled {
		logger.Fatal("Application stopped with error", "error", err)
	}
}
