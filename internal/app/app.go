package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/contentforge/content-service/config"
	"github.com/contentforge/content-service/internal/cache"
	"github.com/contentforge/content-service/internal/cms"
	"github.com/contentforge/content-service/internal/db"
	"github.com/contentforge/content-service/internal/discovery"
	"github.com/contentforge/content-service/internal/rest"
	"github.com/contentforge/content-service/internal/rpc"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config

	cache *cache.Cache
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	repo := db.New(dbConnect)
	manager := cms.NewManager(repo, logger)

	discoveryCache := cache.New(cfg.CacheTTL())
	discoveryManager := discovery.NewManager(manager, discoveryCache, nil)

	contentHandler := rest.NewContentHandler(manager, logger)
	discoveryHandler := rest.NewDiscoveryHandler(discoveryManager, logger)
	rpcServer := rpc.New(logger, manager)

	return &App{
		DB:     repo,
		Logger: logger,
		Echo:   rest.RegisterRoutes(contentHandler, discoveryHandler, rpcServer),
		Config: cfg,
		cache:  discoveryCache,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	a.cache.Close()

	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
