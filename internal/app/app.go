package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/forn8njoell-cmd/promptstudio/internal/config"
	"github.com/forn8njoell-cmd/promptstudio/internal/httpserver"
	"github.com/forn8njoell-cmd/promptstudio/internal/httpserver/deps"
	"github.com/forn8njoell-cmd/promptstudio/internal/logger"
	"github.com/forn8njoell-cmd/promptstudio/internal/mongo"
	"github.com/forn8njoell-cmd/promptstudio/internal/provider/gemini"
	"github.com/forn8njoell-cmd/promptstudio/internal/provider/openai"
	mongostore "github.com/forn8njoell-cmd/promptstudio/internal/store/mongo"
	"github.com/forn8njoell-cmd/promptstudio/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	mongoClient *mongodrv.Client
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize MongoDB early - fail fast if unavailable
	loggerClient.Infof("Connecting to MongoDB (db=%s)", cfg.DBName)
	mongoClient, err := mongo.Connect(ctx, mongo.ConnectOptions{
		URL:         cfg.MongoURL,
		PingTimeout: cfg.MongoPingTimeout,
	}, loggerClient)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	store := mongostore.NewStore(mongoClient.Database(cfg.DBName))

	// Provider clients are long-lived; a missing credential is reported per
	// request, not at boot, matching the deployed behavior.
	if cfg.OpenAIAPIKey == "" {
		loggerClient.Warn("OPENAI_API_KEY not set, prompt enhancement will fail")
	}
	enhancer := openai.NewClient(cfg.OpenAIAPIKey)

	if cfg.GeminiAPIKey == "" {
		loggerClient.Warn("GEMINI_API_KEY not set, image generation will fail")
	}
	images, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:    loggerClient,
		StartTime: time.Now(),
		Version:   version.Version,
		Commit:    version.Commit,
		BuildDate: version.BuildDate,
		GoVersion: version.GoVersion,
		TimeNow:   time.Now,
		NewID:     uuid.NewString,
		Store:     store,
		Enhancer:  enhancer,
		Images:    images,
		StorePing: func(ctx context.Context) error {
			return mongoClient.Ping(ctx, readpref.Primary())
		},
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		mongoClient: mongoClient,
	}, nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting promptstudio %s on %s", version.Version, a.cfg.ListenAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.mongoClient != nil {
		if err := a.mongoClient.Disconnect(shutdownCtx); err != nil {
			a.logger.Warnf("failed to close mongodb: %v", err)
		} else {
			a.logger.Info("✅ MongoDB closed cleanly")
		}
	}

	a.logger.Info("✅ promptstudio stopped cleanly")
	return nil
}
