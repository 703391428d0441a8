package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-attendance/internal/app"
	"go-attendance/internal/bootstrap"
	"go-attendance/internal/config"
	"go-attendance/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	apperror.Init()
	r := gin.Default()

	// build dependency + routes
	cleanup, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	auditLogger := bootstrap.NewStdoutAuditLogger()
	err = bootstrap.RunHTTPServer(ctx, r, bootstrap.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, auditLogger)
	if err != nil {
		logger.Error("http server stopped", zap.Error(err))
		cleanup()
		_ = logger.Sync()
		os.Exit(1)
	}
}
