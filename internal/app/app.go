package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"financehub/internal/agents/ads"
	"financehub/internal/agents/seo"
	"financehub/internal/agents/social"
	"financehub/internal/agents/viral"
	"financehub/internal/blog"
	"financehub/internal/config"
	"financehub/internal/infrastructure/scheduler"
	"financehub/internal/infrastructure/store"
	"financehub/internal/logging"
	"financehub/internal/server"
	"financehub/internal/usecase"
)

// Application wires configs to agents, the orchestrator, and the HTTP layer.
type Application struct {
	cfg        config.Config
	server     *server.Server
	continuous *usecase.Continuous
	logger     *slog.Logger
}

// New builds a runnable application instance. The service-role client backs
// the agents; the anon client backs the public read side.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	serviceStore, err := store.New(cfg.Store.URL, cfg.Store.ServiceRoleKey)
	if err != nil {
		return nil, fmt.Errorf("service store: %w", err)
	}
	anonStore, err := store.New(cfg.Store.URL, cfg.Store.AnonKey)
	if err != nil {
		return nil, fmt.Errorf("anon store: %w", err)
	}

	seoAgent := seo.NewBooster(serviceStore, cfg.Site.BaseURL, nil, baseLogger.With("component", "agent.seo"))
	viralAgent := viral.NewCreator(serviceStore, nil, baseLogger.With("component", "agent.viral"))
	socialAgent := social.NewManager(serviceStore, cfg.Site.BaseURL, nil, baseLogger.With("component", "agent.social"))
	adsAgent := ads.NewOptimizer(serviceStore, nil, baseLogger.With("component", "agent.ads"))

	automation := usecase.New(usecase.Deps{
		SEO:    seoAgent,
		Viral:  viralAgent,
		Social: socialAgent,
		Ads:    adsAgent,
		Logger: baseLogger.With("component", "automation"),
	})

	srv := server.New(server.Deps{
		SEO:        seoAgent,
		Viral:      viralAgent,
		Social:     socialAgent,
		Ads:        adsAgent,
		Automation: automation,
		Blog:       blog.NewService(anonStore),
		CronToken:  cfg.Automation.CronToken,
		Logger:     baseLogger.With("component", "http"),
	})

	var continuous *usecase.Continuous
	if cfg.Automation.Continuous {
		continuous = usecase.NewContinuous(
			scheduler.NewInterval(cfg.Automation.FullInterval),
			scheduler.NewInterval(cfg.Automation.HourlyInterval),
			automation,
			baseLogger.With("component", "continuous"),
		)
	}

	return &Application{cfg: cfg, server: srv, continuous: continuous, logger: baseLogger}, nil
}

// Run starts the optional continuous loop and then serves HTTP until the
// context is cancelled or the listener fails.
func (a *Application) Run(ctx context.Context) error {
	if a.continuous != nil {
		if err := a.continuous.Start(ctx); err != nil {
			return fmt.Errorf("start continuous automation: %w", err)
		}
		defer a.continuous.Stop(context.Background())
	}

	httpServer := &http.Server{
		Addr:    ":" + a.cfg.Server.Port,
		Handler: a.server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "addr", httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return httpServer.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}
