package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"outlet-assistant/config"
	_ "outlet-assistant/docs" // Swagger docs
	tgDelivery "outlet-assistant/internal/chat/delivery/telegram"
	"outlet-assistant/internal/chat/orchestrator"
	"outlet-assistant/internal/chat/tools"
	chatUsecase "outlet-assistant/internal/chat/usecase"
	"outlet-assistant/internal/httpserver"
	"outlet-assistant/internal/outlet"
	outletRepo "outlet-assistant/internal/outlet/repository"
	outletSqlite "outlet-assistant/internal/outlet/repository/sqlite"
	outletUsecase "outlet-assistant/internal/outlet/usecase"
	productRepo "outlet-assistant/internal/product/repository"
	productQdrant "outlet-assistant/internal/product/repository/qdrant"
	productUsecase "outlet-assistant/internal/product/usecase"
	"outlet-assistant/internal/session"
	"outlet-assistant/pkg/log"
	"outlet-assistant/pkg/openai"
	"outlet-assistant/pkg/qdrant"
	"outlet-assistant/pkg/telegram"
	"outlet-assistant/pkg/voyage"
	"outlet-assistant/pkg/weatherapi"
)

// @title       Conversational Outlet Assistant API
// @description Agentic chatbot for outlet information, weather, calculations, product search, and natural-language outlet queries.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Conversational Outlet Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM client, used for SQL generation and product answers (optional)
	var llm openai.IOpenAI
	if cfg.OpenAI.APIKey != "" {
		llmClient, llmErr := openai.New(openai.Config{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
		})
		if llmErr != nil {
			logger.Warnf(ctx, "LLM client not available (optional): %v", llmErr)
		} else {
			llm = llmClient
			logger.Info(ctx, "✅ LLM client initialized")
		}
	} else {
		logger.Warn(ctx, "OPENAI_API_KEY missing: NL outlet search and product answers will degrade")
	}

	// 4. Outlet domain: static catalog plus SQLite database for NL search
	catalog := outlet.NewCatalog()

	var outletDB outletRepo.Database
	if db, dbErr := outletSqlite.New(logger, cfg.Outlets.DBPath); dbErr != nil {
		logger.Warnf(ctx, "Outlets database not available (optional): %v", dbErr)
	} else {
		defer db.Close()
		if popErr := db.Populate(ctx); popErr != nil {
			logger.Warnf(ctx, "Failed to populate outlets database: %v", popErr)
		}
		outletDB = db
		logger.Infof(ctx, "✅ Outlets database ready at %s", cfg.Outlets.DBPath)
	}

	outletUC := outletUsecase.New(logger, catalog, outletDB, llm)

	// 5. Product domain: Qdrant vector store with Voyage embeddings (optional)
	var vectorRepo productRepo.VectorRepository
	if cfg.Qdrant.URL != "" && cfg.Voyage.APIKey != "" {
		embedder, vErr := voyage.New(cfg.Voyage.APIKey)
		if vErr != nil {
			logger.Warnf(ctx, "Voyage client not available (optional): %v", vErr)
		} else {
			qdrantClient := qdrant.NewClient(cfg.Qdrant.URL)
			vectorRepo = productQdrant.New(qdrantClient, embedder, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, logger)
			logger.Info(ctx, "✅ Product vector store initialized")
		}
	} else {
		logger.Warn(ctx, "QDRANT_URL or VOYAGE_API_KEY missing: product search will degrade")
	}

	productUC := productUsecase.New(logger, vectorRepo, llm)
	if vectorRepo != nil {
		if ingestErr := productUC.Ingest(ctx); ingestErr != nil {
			logger.Warnf(ctx, "Product catalog ingestion failed: %v", ingestErr)
		} else {
			logger.Info(ctx, "✅ Product catalog embedded")
		}
	}

	// 6. Weather provider (optional)
	var weatherClient weatherapi.IWeather
	if cfg.Weather.APIKey != "" {
		wc, wErr := weatherapi.NewClient(weatherapi.Config{
			APIKey:  cfg.Weather.APIKey,
			BaseURL: cfg.Weather.BaseURL,
			Timeout: cfg.Weather.Timeout,
		})
		if wErr != nil {
			logger.Warnf(ctx, "Weather client not available (optional): %v", wErr)
		} else {
			weatherClient = wc
			logger.Info(ctx, "✅ Weather client initialized")
		}
	} else {
		logger.Warn(ctx, "WEATHER_API_KEY missing: weather tools will reply service-unavailable")
	}

	// 7. Chat domain: session store, tool registry, orchestrator, use case
	store := session.NewMemoryStore(logger, session.Config{
		WindowSize:  cfg.Session.WindowSize,
		MaxSessions: cfg.Session.MaxSessions,
		TTL:         cfg.Session.TTL,
	})

	registry := tools.NewRegistry(logger, tools.Deps{
		Weather:  weatherClient,
		Catalog:  catalog,
		Outlets:  outletUC,
		Products: productUC,
	})

	orch := orchestrator.New(logger, registry)
	chatUC := chatUsecase.New(logger, store, orch)

	// 8. Telegram channel (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, chatUC, bot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram channel skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimit:       cfg.RateLimit,
		ChatUC:          chatUC,
		OutletUC:        outletUC,
		ProductUC:       productUC,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
