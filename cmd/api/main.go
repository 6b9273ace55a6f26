package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sharktalent/backend/internal/api"
	"github.com/sharktalent/backend/internal/auth"
	"github.com/sharktalent/backend/internal/config"
	"github.com/sharktalent/backend/internal/db"
	"github.com/sharktalent/backend/internal/logger"
	"github.com/sharktalent/backend/internal/metrics"
	"github.com/sharktalent/backend/internal/repository/postgres"
	"github.com/sharktalent/backend/internal/services"
	"github.com/sharktalent/backend/internal/worker"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Migrate {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	metrics.Init()

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	audit := services.NewAuditor(repos.AuditLogs, wp)
	userSvc := services.NewUserService(repos.Users, audit)
	projectSvc := services.NewProjectService(repos.Projects, audit)
	proposalSvc := services.NewProposalService(repos.Proposals, repos.Projects, audit)

	tm := auth.NewTokenManager(cfg.AccessSecret, cfg.RefreshSecret, cfg.AccessTTL, cfg.RefreshTTL)

	r := api.NewRouter(api.RouterDeps{
		Cfg:         cfg,
		TM:          tm,
		UserSvc:     userSvc,
		ProjectSvc:  projectSvc,
		ProposalSvc: proposalSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
