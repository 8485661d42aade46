package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	cfg := testConfig().Server
	srv := NewServer(cfg, http.NotFoundHandler())

	assert.Equal(t, cfg.Addr, srv.Addr)
	assert.Equal(t, cfg.ReadTimeout, srv.ReadTimeout)
	assert.Equal(t, cfg.WriteTimeout, srv.WriteTimeout)
	assert.Equal(t, cfg.IdleTimeout, srv.IdleTimeout)
}

func TestServeGracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	started := make(chan struct{})
	srv := NewServer(testConfig().Server, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		// Simulate work.
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte("done"))
	}))

	ctx, cancel := context.WithCancel(context.Background())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- Serve(ctx, srv, ln, testConfig().Server, slog.New(slog.DiscardHandler))
	}()

	type response struct {
		body string
		err  error
	}
	respCh := make(chan response, 1)
	go func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/", ln.Addr()))
		if err != nil {
			respCh <- response{err: err}
			return
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		respCh <- response{body: string(b), err: err}
	}()

	<-started
	cancel()

	select {
	case err := <-serveErr:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}

	resp := <-respCh
	require.NoError(t, resp.err)
	assert.Equal(t, "done", resp.body)
}

func TestServeListenerClosed(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ln.Close()

	srv := NewServer(testConfig().Server, http.NotFoundHandler())
	err = Serve(context.Background(), srv, ln, testConfig().Server, slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}
