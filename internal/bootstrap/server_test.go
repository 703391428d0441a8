package bootstrap_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"go-attendance/internal/bootstrap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAudit struct {
	mu      sync.Mutex
	entries []bootstrap.AuditLog
}

func (r *recordingAudit) Log(_ context.Context, entry bootstrap.AuditLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func TestNewHTTPServer(t *testing.T) {
	srv := bootstrap.NewHTTPServer(http.NotFoundHandler(), bootstrap.ServerConfig{
		Port:        "5000",
		ReadTimeout: 5 * time.Second,
		IdleTimeout: time.Minute,
	})

	assert.Equal(t, ":5000", srv.Addr)
	assert.Equal(t, 5*time.Second, srv.ReadTimeout)
	assert.Equal(t, time.Minute, srv.IdleTimeout)
}

func TestRunHTTPServer(t *testing.T) {
	t.Run("cancel drains and audits", func(t *testing.T) {
		audit := &recordingAudit{}
		ctx, cancel := context.WithCancelCause(context.Background())

		done := make(chan error, 1)
		go func() {
			done <- bootstrap.RunHTTPServer(ctx, http.NotFoundHandler(), bootstrap.ServerConfig{Port: "0"}, audit)
		}()
		cancel(errors.New("terminated"))

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop")
		}

		audit.mu.Lock()
		defer audit.mu.Unlock()
		require.Len(t, audit.entries, 1)
		assert.Equal(t, "SERVER_SHUTDOWN", audit.entries[0].Action)
		assert.Equal(t, "terminated", audit.entries[0].Meta["reason"])
	})

	t.Run("port in use is returned", func(t *testing.T) {
		ln, err := net.Listen("tcp", ":0")
		require.NoError(t, err)
		defer ln.Close()
		port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)

		audit := &recordingAudit{}
		err = bootstrap.RunHTTPServer(context.Background(), http.NotFoundHandler(), bootstrap.ServerConfig{Port: port}, audit)
		assert.Error(t, err)
		assert.Empty(t, audit.entries)
	})
}
