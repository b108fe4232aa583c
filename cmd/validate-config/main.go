package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/antonkarev/healthhub/internal/config"
)

func main() {
	fmt.Println("Checking configuration...")

	if err := godotenv.Load(); err != nil {
		fmt.Printf("Note: .env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Configuration invalid:\n%v\n", err)
		os.Exit(1)
	}

	fmt.Println("Configuration OK")
	fmt.Printf("  - API base URL: %s\n", cfg.APIBaseURL)
	fmt.Printf("  - Request timeout: %s\n", cfg.RequestTimeout)
	fmt.Printf("  - Storage backend: %s\n", cfg.Storage.Backend)
	if cfg.Storage.Backend == "sqlite" {
		fmt.Printf("  - Storage path: %s\n", cfg.Storage.Path)
	}
	if cfg.Storage.Backend == "redis" {
		fmt.Printf("  - Redis: %s:%s\n", cfg.Storage.RedisHost, cfg.Storage.RedisPort)
	}
	fmt.Printf("  - Log level: %v\n", cfg.Logger.Level)
	fmt.Printf("  - Log output: %s\n", cfg.Logger.OutputPath)
	fmt.Printf("  - Log format: %s\n", cfg.Logger.Format)
}
