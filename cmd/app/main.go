package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/jackc/pgx"
	"github.com/jackc/pgx/stdlib"
	"github.com/namsral/flag"
	"github.com/pressly/goose/v3"

	"github.com/contentforge/content-service/config"
	_ "github.com/contentforge/content-service/docs"
	"github.com/contentforge/content-service/internal/app"
)

var (
	flConfig  = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug   = flag.Bool("debug", false, "enable debug mode")
	flMigrate = flag.Bool("migrate", false, "apply pending migrations and exit")
	flDBURL   = flag.String("db-url", "", "database URL for migrations (defaults to config values)")
	cfg       config.Config
	lg        *slog.Logger
)

// @title Content Service API
// @version 1.0
// @description Content management and discovery API
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}

	if *flMigrate {
		exitOnError(runMigrations(context.Background()))
		lg.Info("migrations applied")
		return
	}

	db := pg.Connect(&cfg.Database)
	if err := db.Ping(context.Background()); err != nil {
		db.Close()
		exitOnError(err)
	}

	service := app.New(&cfg, db, lg)
	ctx := context.Background()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx, cfg.App.Port)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func runMigrations(ctx context.Context) error {
	url := *flDBURL
	if url == "" {
		url = databaseURL(&cfg.Database)
	}

	connConfig, err := pgx.ParseConnectionString(url)
	if err != nil {
		return err
	}

	sqldb := stdlib.OpenDB(connConfig)
	defer sqldb.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, sqldb, "migrations")
}

func databaseURL(opts *pg.Options) string {
	return "postgres://" + opts.User + ":" + opts.Password + "@" + opts.Addr + "/" + opts.Database + "?sslmode=disable"
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
