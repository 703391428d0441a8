package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultShutdownTimeout = 10 * time.Second

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

func NewHTTPServer(handler http.Handler, cfg ServerConfig) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// RunHTTPServer serves handler until ctx is done, then drains in-flight
// requests for cfg.ShutdownTimeout. A bind or serve failure is returned
// instead of exiting so the caller's cleanup still runs.
func RunHTTPServer(ctx context.Context, handler http.Handler, cfg ServerConfig, auditLogger AuditLogger) error {
	log := zap.L().Named("bootstrap.server")
	server := NewHTTPServer(handler, cfg)

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", server.Addr, err)
	}
	log.Info("attendance api listening", zap.String("addr", ln.Addr().String()))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	reason := "shutdown"
	if cause := context.Cause(ctx); cause != nil {
		reason = cause.Error()
	}
	log.Info("stopping attendance api", zap.String("reason", reason))

	auditLogger.Log(context.WithoutCancel(ctx), AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "attendance api is draining requests",
		Meta:    map[string]any{"reason": reason, "addr": ln.Addr().String()},
	})

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("drain: %w", err)
	}
	log.Info("attendance api stopped")
	return nil
}
