package bootstrap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/faq-service/internal/infra/config"
)

func TestApp_RunStopsOnCancel(t *testing.T) {
	addr := freeAddr(t)
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: addr}}
	server := &http.Server{Addr: addr, Handler: http.NotFoundHandler()}

	flushed := make(chan struct{}, 1)
	app := NewApp(cfg, newTestLogger(), server, func(context.Context) error {
		flushed <- struct{}{}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
	require.Len(t, flushed, 1)
}

func TestApp_RunReportsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	addr := ln.Addr().String()
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: addr}}
	server := &http.Server{Addr: addr, Handler: http.NotFoundHandler()}
	flushErr := errors.New("collector unreachable")
	app := NewApp(cfg, newTestLogger(), server, func(context.Context) error { return flushErr })

	err = app.Run(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, flushErr)
}

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
