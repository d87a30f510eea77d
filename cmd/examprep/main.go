package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"examprep/internal/api"
	"examprep/internal/config"
	"examprep/internal/llm"
	"examprep/internal/rag"
	"examprep/internal/repository"
	"examprep/internal/service"
	"examprep/internal/tts"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "", "Path to config file")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize file-backed stores; each creates its subdirectory on
	// first write.
	sessionStore := repository.NewSessionStore(cfg.Storage.DataDir, logger)
	paperStore := repository.NewPaperStore(cfg.Storage.DataDir, logger)
	mindMapStore := repository.NewMindMapStore(cfg.Storage.DataDir, logger)
	moduleStore := repository.NewModuleStore(cfg.Storage.DataDir, logger)
	podcastStore := repository.NewPodcastStore(cfg.Storage.DataDir, logger)

	// Initialize the chunk store (similarity index). A failure here is
	// degraded mode, not fatal: retrieval returns no context.
	chunkStore, err := rag.NewChunkStore(cfg, logger)
	if err != nil {
		logger.Warn("Failed to initialize chunk store, running without retrieval", zap.Error(err))
	}

	selector := rag.NewSelector(chunkStore)
	llmClient := llm.New(cfg.LLM)
	ttsClient := tts.New(cfg.TTS)

	// Initialize services
	chatService := service.NewChatService(sessionStore, selector, llmClient, logger)
	ingestService := service.NewIngestService(paperStore, chunkStore, logger)
	summaryService := service.NewSummaryService(llmClient)
	generateService := service.NewGenerateService(
		selector,
		llmClient,
		ttsClient,
		mindMapStore,
		moduleStore,
		podcastStore,
		logger,
	)
	statsService := service.NewStatsService(sessionStore, paperStore, mindMapStore, moduleStore, podcastStore)

	// Setup router
	router := api.SetupRouter(chatService, ingestService, summaryService, generateService, statsService, api.RouterConfig{
		AdminAPIKey:  cfg.Admin.APIKey,
		AllowOrigins: []string{"*"},
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting exam-prep server", zap.String("address", cfg.Address()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := chunkStore.Close(); err != nil {
		logger.Warn("Failed to close chunk store", zap.Error(err))
	}

	logger.Info("Server exited")
}
