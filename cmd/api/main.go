package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dietplanner/internal/catalog"
	"dietplanner/internal/config"
	"dietplanner/internal/core"
	"dietplanner/internal/logger"
	"dietplanner/internal/plan"
	"dietplanner/internal/router"
	"dietplanner/internal/selector"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		// logger is not up yet
		panic(err)
	}

	logger.InitializeLogger(cfg.Env)
	defer logger.Close()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ───────────────────────── CATALOG ─────────────────────────
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	foods, closeCatalog, err := core.LoadCatalog(ctx, cfg)
	cancel()
	if err != nil {
		logger.Fatal("catalog load failed",
			zap.String("source", cfg.CatalogSource),
			zap.Error(err),
		)
	}
	// the catalog is fully in memory; nothing reads the source again
	closeCatalog()

	logger.Info("catalog ready", zap.String("source", cfg.CatalogSource))

	// ───────────────────────── SERVICES ─────────────────────────
	var flipper selector.Flipper
	if cfg.PlanSeed != nil {
		flipper = selector.NewRandomFlipper(*cfg.PlanSeed)
		logger.Info("plan coin seeded", zap.Int64("seed", *cfg.PlanSeed))
	} else {
		flipper = selector.NewTimeSeededFlipper()
	}

	planService := plan.NewService(foods, cfg.GoalPolicy, flipper)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Deps{
		Plans:       plan.NewHandler(planService),
		Catalog:     catalog.NewHandler(foods),
		JWTSecret:   cfg.JWTSecret,
		CORSOrigins: cfg.CORSOrigins,
	})

	if cfg.JWTSecret == nil {
		logger.Warn("JWT_SECRET not set, plan routes are open")
	}

	// ───────────────────────── START ─────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("API running",
			zap.String("addr", srv.Addr),
			zap.String("goal_policy", cfg.GoalPolicy.Name()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
