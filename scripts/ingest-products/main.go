package main

import (
	"context"
	"fmt"
	"os"

	"outlet-assistant/config"
	productQdrant "outlet-assistant/internal/product/repository/qdrant"
	productUsecase "outlet-assistant/internal/product/usecase"
	"outlet-assistant/pkg/log"
	pkgQdrant "outlet-assistant/pkg/qdrant"
	"outlet-assistant/pkg/voyage"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/ingest-products/main.go <path/to/config.yaml>")
		fmt.Println("Example: go run scripts/ingest-products/main.go config/config.yaml")
		os.Exit(1)
	}
	configPath := os.Args[1]

	// Load config
	os.Setenv("CONFIG_PATH", configPath)
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize Logger
	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	// Initialize clients
	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)
	embeddingClient, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", err)
	}
	vectorRepo := productQdrant.New(qdrantClient, embeddingClient, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, logger)

	// The LLM is only used for answering queries, not for ingestion.
	productUC := productUsecase.New(logger, vectorRepo, nil)

	logger.Info(ctx, "Starting product catalog ingestion...")

	if err := productUC.Ingest(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to ingest product catalog: %v", err)
	}

	logger.Infof(ctx, "Ingestion complete! Collection %q is ready for drinkware search.", cfg.Qdrant.CollectionName)
}
