package shutdownsetup

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chaibisket/pkg/logger"
)

// ShutdownTimeout bounds how long in-flight requests may run after a
// termination signal before the server is forced down.
const ShutdownTimeout = 10 * time.Second

// SetupGracefulShutdown blocks until SIGINT or SIGTERM arrives, then
// drains the HTTP server and runs the cleanup functions in order.
func SetupGracefulShutdown(server *http.Server, log *logger.Logger, cleanups ...func() error) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	sig := <-stop
	log.Info("Shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown failed", "error", err)
	} else {
		log.Info("HTTP server stopped")
	}

	for _, cleanup := range cleanups {
		if err := cleanup(); err != nil {
			log.Error("Cleanup failed", "error", err)
		}
	}

	log.Info("Shutdown complete")
}
