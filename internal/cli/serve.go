package cli

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	statushttp "github.com/aretw0/micromouse/pkg/adapters/http"
	"github.com/aretw0/micromouse/pkg/runner"
)

// DefaultStatusAddr is where serve listens when no address is configured.
const DefaultStatusAddr = ":8080"

const shutdownTimeout = 5 * time.Second

// Serve exposes the configured run store over HTTP until interrupted.
func Serve(opts Options) error {
	opts.withDefaults()
	cfg := opts.Config
	logger, err := createLogger(opts.Stderr, cfg.LogLevel, opts.Debug, opts.Quiet)
	if err != nil {
		return err
	}

	sm := runner.NewSignalManager(opts.Context)
	defer sm.Stop()

	store, closeStore, err := OpenStore(sm.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	addr := cfg.StatusAddr
	if addr == "" {
		addr = DefaultStatusAddr
	}
	stop, err := startServer(addr, statushttp.NewHandler(store, statushttp.WithLogger(logger)), logger)
	if err != nil {
		return err
	}

	<-sm.Context().Done()
	if !opts.Quiet {
		printSystemMessage(opts.Stderr, "Shutting down status server...")
	}
	stop()
	return nil
}

// startServer listens on addr immediately so bind errors surface to the caller,
// then serves in the background. The returned func shuts the server down gracefully.
func startServer(addr string, handler http.Handler, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("status server failed", "error", err)
		}
	}()
	logger.Info("status server listening", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("graceful shutdown did not complete", "error", err)
			_ = srv.Close()
		}
		<-done
	}, nil
}
