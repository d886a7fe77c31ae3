package bootstrap

import (
	"context"
	"log/slog"

	"github.com/yahna8/store-and-inventory-microservice/internal/database"
	"github.com/yahna8/store-and-inventory-microservice/internal/server"
)

// Worker is a background component with a graceful stop
type Worker interface {
	Shutdown(context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  *server.Server
	Workers map[string]Worker
	DB      database.Pool
}

// NewShutdownComponents collects the components stopped by GracefulShutdown
func NewShutdownComponents(srv *server.Server, db database.Pool) *ShutdownComponents {
	return &ShutdownComponents{
		Server:  srv,
		Workers: make(map[string]Worker),
		DB:      db,
	}
}

// AddWorker registers a background worker to stop after the server
func (c *ShutdownComponents) AddWorker(name string, w Worker) {
	c.Workers[name] = w
}

// GracefulShutdown stops the HTTP server first so in-flight purchases finish,
// then the workers, then closes the database pool.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components *ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	for name, w := range components.Workers {
		if err := w.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerShutdownFailed, "worker", name, "error", err)
		}
	}

	if components.DB != nil {
		components.DB.Close()
		slog.Info(LogMsgDatabaseClosed)
	}

	slog.Info(LogMsgServerStopped)
}
