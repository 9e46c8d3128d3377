// Hydration Tracker API
//
// REST API for tracking drink intake and its impact on sleep.
//
//	@title			Hydration Tracker API
//	@version		1.0
//	@description	Track drink intake, daily hydration aggregates and sleep-aware nocturia risk.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			catalog
//	@tag.description	Drink catalog endpoints
//
//	@tag.name			drinks
//	@tag.description	Drink logging endpoints
//
//	@tag.name			sleep-summaries
//	@tag.description	Device sleep summary endpoints
//
//	@tag.name			analysis
//	@tag.description	Cached hydration analysis endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/hydrolog/hydration-tracker/internal/api"
	"github.com/hydrolog/hydration-tracker/internal/api/handler"
	"github.com/hydrolog/hydration-tracker/internal/config"
	"github.com/hydrolog/hydration-tracker/internal/domain"
	"github.com/hydrolog/hydration-tracker/internal/langfuse"
	"github.com/hydrolog/hydration-tracker/internal/llm"
	"github.com/hydrolog/hydration-tracker/internal/repository"
	"github.com/hydrolog/hydration-tracker/internal/seed"
	"github.com/hydrolog/hydration-tracker/internal/service"
	"github.com/hydrolog/hydration-tracker/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize OpenTelemetry tracing (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "hydration-tracker-api")
	if err != nil {
		log.Printf("Warning: tracing disabled: %v", err)
	} else {
		defer func() {
			if err := shutdownTracer(context.Background()); err != nil {
				log.Printf("Failed to shut down tracer: %v", err)
			}
		}()
	}

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.DrinkEvent{}, &domain.SleepSummary{}, &domain.AnalysisSnapshot{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	drinkRepo := repository.NewDrinkEventRepository(db)
	sleepRepo := repository.NewSleepSummaryRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAICommentModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, analysis comments will be empty")
	} else if cfg.LangfusePromptName != "" {
		// Prefer the Langfuse-managed system prompt when one is configured
		prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
			BaseURL:     cfg.LangfuseBaseURL,
			PublicKey:   cfg.LangfusePublicKey,
			SecretKey:   cfg.LangfuseSecretKey,
			PromptName:  cfg.LangfusePromptName,
			PromptLabel: cfg.LangfusePromptLabel,
			SavePath:    "prompts/hydration-comment.txt",
		})
		if err != nil {
			log.Printf("Warning: using built-in comment prompt: %v", err)
		} else {
			openaiClient.OverrideSystemPrompt(prompt)
		}
	}

	// Langfuse trace recording for generated comments
	lfClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize services
	userService := service.NewUserService(userRepo)
	drinkLogService := service.NewDrinkLogService(drinkRepo, userRepo)
	sleepSummaryService := service.NewSleepSummaryService(sleepRepo, userRepo)

	var commentLLM llm.CommentLLM
	if openaiClient != nil {
		commentLLM = openaiClient
	}
	analysisService := service.NewAnalysisService(drinkRepo, sleepRepo, snapshotRepo, userRepo, commentLLM, lfClient)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	catalogHandler := handler.NewCatalogHandler()
	drinkLogHandler := handler.NewDrinkLogHandler(drinkLogService)
	sleepSummaryHandler := handler.NewSleepSummaryHandler(sleepSummaryService)
	analysisHandler := handler.NewAnalysisHandler(analysisService, lfClient)

	// Setup router
	router := api.NewRouter(userHandler, catalogHandler, drinkLogHandler, sleepSummaryHandler, analysisHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
