package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/priyanshu-101/cb-app-user/internal/app"
	"github.com/priyanshu-101/cb-app-user/internal/bootstrap"
	"github.com/priyanshu-101/cb-app-user/internal/shared/apperror"

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

	apperror.Init()
	cfg := app.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := app.NewRouter(logger)
	cleanup, err := app.BuildApp(ctx, r, cfg)
	defer cleanup()
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	if err := bootstrap.StartHTTPServer(ctx, r, bootstrap.DefaultServerConfig(cfg.Port), bootstrap.NewStdoutAuditLogger(logger)); err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
}
