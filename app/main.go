package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/medaffairs/newsroom/app/api"
	"github.com/medaffairs/newsroom/app/archive"
	"github.com/medaffairs/newsroom/app/article"
	"github.com/medaffairs/newsroom/app/cfg"
	"github.com/medaffairs/newsroom/app/normalizer"
	"github.com/medaffairs/newsroom/app/site"
	"github.com/medaffairs/newsroom/app/source"
	"github.com/medaffairs/newsroom/app/store"
	"github.com/medaffairs/newsroom/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was requested
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	slog.Info("Starting Newsroom server", "version", appCfg.Version)

	configCache := source.NewConfigCache(appCfg.SourcesDir)
	if err := configCache.Run(); err != nil {
		slog.Error("Failed to load source configurations", "error", err)
		os.Exit(1)
	}
	slog.Info("Source configurations loaded", "count", configCache.GetConfigCount())

	collectionRepo := store.NewFileCollectionRepository(appCfg.DataFile, appCfg.MaxHeroes, appCfg.MaxColumns)
	archiveRepo := store.NewFileArchiveRepository(appCfg.ArchiveFile)

	categorizer := site.NewCategorizer()
	if appCfg.CategoriesFile != "" {
		loaded, err := site.LoadCategorizer(appCfg.CategoriesFile)
		if err != nil {
			slog.Warn("Failed to load category rules, using defaults", "file", appCfg.CategoriesFile, "error", err)
		} else {
			categorizer = loaded
		}
	}

	pipeline := tasks.NewPipeline(
		configCache,
		&http.Client{},
		source.NewFilterer(),
		article.NewBuilder(normalizer.NewNormalizer(), appCfg.SummaryLength),
		article.NewReconciler(),
		article.NewLimiter(),
		site.NewFormatter(categorizer, appCfg.HeroesCount, appCfg.ColumnSize),
		collectionRepo,
		archiveRepo,
		archive.NewWriter(appCfg.ArticlesDir),
		archive.NewScanner(appCfg.ArticlesDir),
	)

	scheduler := tasks.NewScheduler(configCache, pipeline)
	scheduler.Start()
	defer scheduler.Stop()
	slog.Info("Background scheduler started", "workers", appCfg.WorkerCount, "interval", appCfg.SchedulerInterval)

	appender := article.NewAppender(archiveRepo)
	handler := api.NewHandler(configCache, appender, collectionRepo, archiveRepo, scheduler, pipeline)
	server := api.NewServer(handler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
