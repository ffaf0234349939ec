package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Blazehue/TaskMasterV1/internal/config"
	"github.com/Blazehue/TaskMasterV1/internal/server"
	"github.com/Blazehue/TaskMasterV1/internal/storage"
	"github.com/Blazehue/TaskMasterV1/internal/storage/memory"
	"github.com/Blazehue/TaskMasterV1/internal/storage/sqlite"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file (optional)")
	seedFlag := flag.Bool("seed", false, "Insert sample projects on startup")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		slog.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	var store storage.Store
	switch cfg.Driver {
	case "memory":
		store = memory.New(logger)
	default:
		s, err := sqlite.Open(cfg.DBPath, logger)
		if err != nil {
			logger.Error("unable to open database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		store = s
	}
	defer store.Close()

	if *seedFlag {
		n, err := storage.Seed(context.Background(), store)
		if err != nil {
			logger.Error("seeding failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("seeded sample projects", slog.Int("count", n))
	}

	srv := server.New(store, logger, cfg.StaticDir, cfg.CORSOrigins)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		logger.Info("starting server",
			slog.String("addr", httpServer.Addr),
			slog.String("driver", cfg.Driver),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown server", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}
