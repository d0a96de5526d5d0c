// stubd runs the in-memory stub backend so the console can be exercised
// without the real warehouse service. It seeds one super-admin account from
// env so there is always a way in.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/shahidulislam-dev/warehouse-console/internal/config"
	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
	"github.com/shahidulislam-dev/warehouse-console/internal/observability"
	"github.com/shahidulislam-dev/warehouse-console/internal/stubapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger.Level)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	server := stubapi.New(stubapi.Config{
		JWTSecret:  cfg.Stub.JWTSecret,
		TokenTTL:   cfg.Stub.TokenTTL(),
		BcryptCost: cfg.Stub.BcryptCost,
	}, logger)

	seedEmail := envOr("STUB_SEED_EMAIL", "root@warehouse.local")
	seedPassword := envOr("STUB_SEED_PASSWORD", "changeme")
	if _, err := server.SeedUser("Root", seedEmail, "", seedPassword, domain.RoleSuperAdmin, domain.UserStatusActive); err != nil {
		logger.Fatal("failed to seed super admin", zap.Error(err))
	}
	logger.Info("seeded super admin", zap.String("email", seedEmail))

	go func() {
		if err := server.Listen(cfg.Stub.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = server.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
