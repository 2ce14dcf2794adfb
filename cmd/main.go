package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	restctx "github.com/dtroode/tasklist-server/internal/api/rest/context"
	"github.com/dtroode/tasklist-server/internal/api/rest/router"
	restServer "github.com/dtroode/tasklist-server/internal/api/rest/server"
	"github.com/dtroode/tasklist-server/internal/config"
	"github.com/dtroode/tasklist-server/internal/logger"
	"github.com/dtroode/tasklist-server/internal/model"
	"github.com/dtroode/tasklist-server/internal/password"
	"github.com/dtroode/tasklist-server/internal/repository"
	"github.com/dtroode/tasklist-server/internal/server"
	"github.com/dtroode/tasklist-server/internal/service"
	"github.com/dtroode/tasklist-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger.Logger)

	stores, err := repository.Open(ctx, cfg.Database.Driver, cfg.Database.DSN, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", "driver", cfg.Database.Driver, "error", err)
	}
	defer stores.Close()

	tokenManager, err := newTokenManager(cfg.Auth)
	if err != nil {
		logger.Fatal("failed to initialize token manager", "error", err)
	}

	authService := service.NewAuth(
		stores.Users,
		tokenManager,
		password.NewBcrypt(cfg.Auth.BcryptCost),
		cfg.Auth.MinPasswordLength,
		logger,
	)
	taskService := service.NewTask(stores.Tasks, logger)
	ctxMgr := restctx.NewManager()

	r := router.New(authService, taskService, ctxMgr, cfg.HTTP.AllowedOrigins, logger)
	httpServer := restServer.NewHTTPServer(
		r.Register(),
		fmt.Sprintf(":%s", cfg.HTTP.Port),
		cfg.HTTP.ReadTimeout,
		cfg.HTTP.WriteTimeout,
	)

	sl := server.NewSecurityLayer(cfg.HTTP)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func newTokenManager(cfg config.Auth) (model.TokenManager, error) {
	switch cfg.TokenFormat {
	case config.TokenFormatPASETO:
		return token.NewPASETO(cfg.Secret, cfg.TokenTTL)
	default:
		return token.NewJWT(cfg.Secret, cfg.TokenTTL), nil
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
