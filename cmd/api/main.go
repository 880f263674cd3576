package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoSim-25-26J-441/pw-scaffold-backend/config"
	httpapi "github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/bootstrap"
	cronjob "github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/cron"
	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/generator"
	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/repository"
	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/service"
	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/logging"
)

const serviceName = "pw-scaffold-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Logger.Fatal("invalid configuration", "err", err)
	}

	logging.Setup(cfg.App.LogLevel, os.Stderr)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		history service.HistoryStore
		pinger  httpapi.Pinger
	)
	if cfg.HistoryEnabled() {
		client, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{URL: cfg.Redis.URL})
		if err != nil {
			logging.Logger.Fatal("redis unavailable", "err", err)
		}
		defer client.Close()

		repo := repository.NewHistoryRepository(client, cfg.Redis.HistoryTTL)
		history, pinger = repo, repo
	} else {
		logging.Logger.Info("REDIS_URL not set, generation history disabled")
	}

	genService := service.NewGenerationService(generator.New(), history, cfg.Generator.OutputDir)

	sweeper := cronjob.NewSweeper(cfg.Generator.OutputDir, cfg.Generator.StagingMaxAge)
	if err := sweeper.Start(cfg.Generator.SweepSchedule); err != nil {
		logging.Logger.Warn("staging sweeper disabled", "schedule", cfg.Generator.SweepSchedule, "err", err)
	}
	defer sweeper.Stop()

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
		Generation:     genService,
		Redis:          pinger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Logger.Info("API running", "addr", "http://localhost:"+cfg.Server.Port, "output_dir", cfg.Generator.OutputDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger.Fatal("server failed", "err", err)
		}
	}()

	<-ctx.Done()
	logging.Logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Logger.Error("graceful shutdown failed", "err", err)
	}
}
