package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/remindly/remindly/engine/infra/monitoring"
	"github.com/remindly/remindly/engine/infra/postgres"
	"github.com/remindly/remindly/engine/infra/server"
	"github.com/remindly/remindly/engine/integration/calendar"
	"github.com/remindly/remindly/engine/integration/push"
	"github.com/remindly/remindly/engine/llm"
	"github.com/remindly/remindly/engine/ocr"
	"github.com/remindly/remindly/engine/task/infra/memory"
	taskpg "github.com/remindly/remindly/engine/task/infra/postgres"
	"github.com/remindly/remindly/engine/task/uc"
	"github.com/remindly/remindly/pkg/config"
	"github.com/remindly/remindly/pkg/logger"
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "remindly",
		Short:         "AI reminder extraction service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(serveCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		// The mandatory Groq key is validated here; a missing or
		// placeholder key aborts startup.
		return fmt.Errorf("configuration error: %w", err)
	}
	log := logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(cfg.Log.Level),
		JSON:       cfg.Log.JSON,
		TimeFormat: "15:04:05",
	})
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.ContextWithLogger(ctx, log)

	repo, storeHealth, closeStore, err := buildRepository(ctx, cfg)
	if err != nil {
		return err
	}
	if closeStore != nil {
		defer closeStore()
	}

	groqClient, err := llm.NewGroqClient(&llm.GroqConfig{
		APIKey: cfg.Groq.APIKey,
		APIURL: cfg.Groq.APIURL,
		Model:  cfg.Groq.Model,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize Groq client: %w", err)
	}
	log.Info("Groq AI client initialized - extraction feature ready", "model", cfg.Groq.Model)

	var ocrClient ocr.Client
	if cfg.OCREnabled() {
		spaceClient, err := ocr.NewSpaceClient(&ocr.Config{APIKey: cfg.OCR.APIKey, APIURL: cfg.OCR.APIURL})
		if err != nil {
			return fmt.Errorf("failed to initialize OCR client: %w", err)
		}
		ocrClient = spaceClient
		log.Info("OCR integration configured")
	} else {
		log.Info("OCR not configured - screenshot extraction disabled")
	}

	var pushSender *push.Sender
	if cfg.PushEnabled() {
		pushSender, err = push.NewSender(&push.Config{
			VAPIDPublicKey:  cfg.Push.VAPIDPublicKey,
			VAPIDPrivateKey: cfg.Push.VAPIDPrivateKey,
			Subject:         cfg.Push.Subject,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize Web Push: %w", err)
		}
		log.Info("Web Push notifications configured")
	} else {
		log.Info("Web Push notifications not configured - VAPID keys missing")
	}

	var calendarClient *calendar.Client
	if cfg.CalendarEnabled() {
		calendarClient, err = calendar.NewClient(&calendar.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURI:  cfg.Google.RedirectURI,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize Google Calendar: %w", err)
		}
		log.Info("Google Calendar integration configured")
	} else {
		log.Info("Google Calendar integration not configured - missing credentials")
	}

	monitor, err := monitoring.NewService(ctx, cfg.Metrics.Enabled)
	if err != nil {
		return fmt.Errorf("failed to initialize monitoring: %w", err)
	}
	if cfg.Metrics.Enabled {
		log.Info("Metrics endpoint enabled", "path", "/metrics")
	}

	srv := server.New(&server.Dependencies{
		Config:      cfg,
		Log:         log,
		Tasks:       uc.NewFactory(repo),
		LLM:         groqClient,
		OCR:         ocrClient,
		Push:        pushSender,
		Calendar:    calendarClient,
		Monitoring:  monitor,
		StoreHealth: storeHealth,
	})
	return srv.Run(ctx)
}

// buildRepository selects the Postgres store when a connection string is
// configured and falls back to the in-memory store otherwise.
func buildRepository(ctx context.Context, cfg *config.Config) (uc.Repository, func(context.Context) error, func(), error) {
	log := logger.FromContext(ctx)
	if cfg.Database.ConnString == "" {
		log.Warn("DB_CONN_STRING not set - using in-memory task store")
		return memory.NewRepository(), nil, nil, nil
	}
	if cfg.Database.AutoMigrate {
		if err := postgres.ApplyMigrations(ctx, cfg.Database.ConnString); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}
	store, err := postgres.NewStore(ctx, cfg.Database.ConnString)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}
	closeStore := func() { store.Close(context.Background()) }
	return taskpg.NewRepository(store.Pool()), store.HealthCheck, closeStore, nil
}
