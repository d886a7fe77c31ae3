package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yahna8/store-and-inventory-microservice/internal/auth"
	"github.com/yahna8/store-and-inventory-microservice/internal/bootstrap"
	"github.com/yahna8/store-and-inventory-microservice/internal/catalog"
	"github.com/yahna8/store-and-inventory-microservice/internal/config"
	"github.com/yahna8/store-and-inventory-microservice/internal/database"
	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
	"github.com/yahna8/store-and-inventory-microservice/internal/equip"
	"github.com/yahna8/store-and-inventory-microservice/internal/handler"
	"github.com/yahna8/store-and-inventory-microservice/internal/inventory"
	"github.com/yahna8/store-and-inventory-microservice/internal/points"
	"github.com/yahna8/store-and-inventory-microservice/internal/purchase"
	"github.com/yahna8/store-and-inventory-microservice/internal/server"
	"github.com/yahna8/store-and-inventory-microservice/internal/worker"
)

const shutdownTimeout = 30 * time.Second

// @title Store and Inventory API
// @version 1.0
// @description Virtual goods catalog, purchases, inventory and equipment.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Service exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connString := cfg.GetDBConnString()
	if err := database.Migrate(ctx, connString); err != nil {
		return err
	}

	dbPool, err := database.NewPool(ctx, connString, cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	catalogSvc := catalog.NewService(repos.Catalog, cfg.CatalogOwnershipMode)
	inventorySvc := inventory.NewService(repos.Inventory)
	equipSvc := equip.NewService(repos.Equipment)

	if cfg.SeedOnStart {
		result, err := catalog.SeedFromFile(ctx, cfg.CatalogSeedPath, catalogSvc)
		if err != nil {
			dbPool.Close()
			return err
		}
		slog.Info("Catalog seeded", "inserted", len(result.Inserted), "skipped", len(result.Skipped))
	}

	var granter inventory.Granter = inventorySvc
	if cfg.InventoryMode == domain.InventoryModeRemote {
		granter = inventory.NewRemoteGranter(cfg.InventoryServiceURL, cfg.APIKey, cfg.PointsTimeout)
		slog.Info("Fulfillment delegated to remote inventory service", "url", cfg.InventoryServiceURL)
	}

	coordinator := purchase.NewCoordinator(
		catalogSvc,
		inventorySvc,
		granter,
		repos.Claims,
		points.NewHTTPClient(cfg.PointsServiceURL, cfg.APIKey, cfg.PointsTimeout),
		purchase.Config{
			MaxAttempts: cfg.PointsMaxAttempts,
			RetryBase:   cfg.PointsRetryBase,
			Timeout:     cfg.PurchaseTimeout,
		},
	)

	sweeper := worker.NewClaimSweeper(repos.Claims, cfg.ClaimSweepInterval, cfg.ClaimStaleAfter)
	sweeper.Start()

	srv := server.NewServer(server.Options{
		Port:               cfg.Port,
		APIKey:             cfg.APIKey,
		TrustedProxies:     cfg.TrustedProxies,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		ServiceName:        cfg.ServiceName,
		Version:            cfg.Version,
	}, server.Services{
		DB:        dbPool,
		Verifier:  auth.NewVerifier(cfg.JWTSecret, cfg.TokenCacheSize, cfg.TokenCacheTTL),
		Catalog:   catalogSvc,
		Inventory: inventorySvc,
		Equip:     equipSvc,
		Purchase:  coordinator,
	})

	components := bootstrap.NewShutdownComponents(srv, dbPool)
	components.AddWorker(worker.ClaimSweeperName, sweeper)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Build info", "git_commit", handler.GitCommit, "build_time", handler.BuildTime)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, components)

	return err
}
