package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ersonp/vgame-horizon/internal/application/handlers"
	"github.com/ersonp/vgame-horizon/internal/domain/entities"
	"github.com/ersonp/vgame-horizon/internal/domain/ports"
	"github.com/ersonp/vgame-horizon/internal/domain/services"
	"github.com/ersonp/vgame-horizon/internal/infrastructure/catalog/igdb"
	"github.com/ersonp/vgame-horizon/internal/infrastructure/catalog/snapshot"
	"github.com/ersonp/vgame-horizon/internal/infrastructure/config"
	"github.com/ersonp/vgame-horizon/internal/infrastructure/history/sqlite"
	"github.com/ersonp/vgame-horizon/internal/infrastructure/httpapi"
	llm "github.com/ersonp/vgame-horizon/internal/infrastructure/llm/openai"
	"github.com/ersonp/vgame-horizon/internal/infrastructure/logging"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and adapters are internal.
type Deps struct {
	Config   *config.Config
	Logger   *zap.Logger
	Releases *handlers.ReleasesHandler
	Details  *handlers.DetailsHandler
	History  *handlers.HistoryHandler
	Services httpapi.Services
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically. Missing credentials leave the matching
// handler reporting its service as unavailable rather than failing here.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	return withDepsAtLevel(ctx, zapcore.WarnLevel, fn)
}

// withDepsAtLevel is withDeps with a different default log level, used by
// long-running commands whose logs are the output.
func withDepsAtLevel(ctx context.Context, defaultLevel zapcore.Level, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := newLogger(cfg, defaultLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	lang, err := entities.ParseTargetLanguage(cfg.Translation.Language)
	if err != nil {
		return fmt.Errorf("parsing translation language: %w", err)
	}

	var llmClient ports.LLMClient
	if cfg.LLM.Configured() {
		client, err := llm.NewClient(cfg.LLM)
		if err != nil {
			return fmt.Errorf("creating llm client: %w", err)
		}
		llmClient = client
	} else {
		logger.Info("no LLM provider configured; translation and details are disabled")
	}

	catalog, err := newCatalog(cfg, cwd)
	if err != nil {
		return err
	}

	var history ports.LookupLog
	if repo := openHistory(ctx, cfg, cwd, logger); repo != nil {
		defer repo.Close()
		history = repo
	}

	var translator *services.TranslationService
	if llmClient != nil {
		translator = services.NewTranslationService(llmClient, services.TranslationOptions{
			Language:  lang,
			BatchSize: cfg.Translation.BatchSize,
			Timeout:   cfg.LLM.TranslateTimeout(),
			MaxTokens: cfg.LLM.MaxTokens,
		}, logger.Named("translate"))
	}

	var releaseService *services.ReleaseService
	if catalog != nil {
		classifier := services.NewNotabilityClassifier(cfg.Notability.NotableDevelopers(), cfg.Notability.HypeThreshold)
		releaseService = services.NewReleaseService(catalog, translator, classifier, logger.Named("releases"))
	} else {
		logger.Info("no catalog configured; set TWITCH_CLIENT_ID and TWITCH_CLIENT_SECRET or a snapshot")
	}

	detailService := services.NewDetailService(llmClient, services.DetailOptions{
		Language:  lang,
		Timeout:   cfg.LLM.DetailTimeout(),
		MaxTokens: cfg.LLM.MaxTokens,
	}, logger.Named("details"))

	deps := &Deps{
		Config:   cfg,
		Logger:   logger,
		Releases: handlers.NewReleasesHandler(releaseService, cfg.Catalog.PlatformID()),
		Details:  handlers.NewDetailsHandler(detailService, history, logger.Named("details")),
		History:  handlers.NewHistoryHandler(history),
		Services: httpapi.Services{
			Catalog: catalog != nil,
			LLM:     llmClient != nil,
			History: history != nil,
		},
	}

	return fn(deps)
}

func newLogger(cfg *config.Config, defaultLevel zapcore.Level) (*zap.Logger, error) {
	level := logging.ParseLevel(cfg.Logging.Level, defaultLevel)
	if globalVerbose {
		level = zapcore.DebugLevel
	}
	logger, err := logging.New(level, cfg.Logging.File)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, nil
}

// newCatalog returns nil without error when the catalog has no credentials.
func newCatalog(cfg *config.Config, basePath string) (ports.Catalog, error) {
	if !cfg.Catalog.Configured() {
		return nil, nil
	}

	switch cfg.Catalog.Provider {
	case config.CatalogSnapshot:
		c, err := snapshot.Load(cfg.SnapshotPath(basePath))
		if err != nil {
			return nil, fmt.Errorf("loading catalog snapshot: %w", err)
		}
		return c, nil
	case config.CatalogIGDB:
		c, err := igdb.New(cfg.Catalog.ClientID, cfg.Catalog.ClientSecret, cfg.Catalog.BaseURL, cfg.Catalog.TokenURL)
		if err != nil {
			return nil, fmt.Errorf("creating igdb client: %w", err)
		}
		return c, nil
	default:
		return nil, errors.New("unknown catalog provider " + cfg.Catalog.Provider)
	}
}

// openHistory opens the lookup log. It returns nil when history is disabled,
// the project is not initialized, or the database cannot be opened; lookups
// still work without it.
func openHistory(ctx context.Context, cfg *config.Config, basePath string, logger *zap.Logger) *sqlite.Repository {
	if !cfg.History.Enabled || !config.Exists(basePath) {
		return nil
	}

	repo, err := sqlite.NewRepository(cfg.HistoryPath(basePath))
	if err != nil {
		logger.Warn("lookup history unavailable", zap.Error(err))
		return nil
	}
	if err := repo.EnsureSchema(ctx); err != nil {
		repo.Close()
		logger.Warn("lookup history unavailable", zap.Error(err))
		return nil
	}
	return repo
}

// openLookupLog adapts sqlite.NewRepository to handlers.HistoryOpener.
func openLookupLog(path string) (ports.LookupLog, error) {
	repo, err := sqlite.NewRepository(path)
	if err != nil {
		return nil, err
	}
	return repo, nil
}
