package controllers_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"AnnotationDashboard/internal/controllers"
)

func startServer(ctx context.Context) (*controllers.HTTPServer, chan error) {
	server := controllers.NewHTTPServer(slog.Default(), new(mockDashboardService), "127.0.0.1", 0)

	done := make(chan error, 1)
	go func() {
		done <- server.Start(ctx)
	}()

	// Give ListenAndServe a moment to bind before the test proceeds.
	time.Sleep(100 * time.Millisecond)
	return server, done
}

func TestServerLifecycle(t *testing.T) {
	t.Run("start returns after context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		_, done := startServer(ctx)

		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("Start did not return after context cancellation")
		}
	})

	t.Run("second start is rejected while running", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		server, done := startServer(ctx)

		err := server.Start(ctx)

		assert.ErrorContains(t, err, "already running")

		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("Start did not return after context cancellation")
		}
	})

	t.Run("stop before start is a no-op", func(t *testing.T) {
		server := controllers.NewHTTPServer(slog.Default(), new(mockDashboardService), "127.0.0.1", 0)

		assert.NoError(t, server.Stop(context.Background(), time.Second))
	})
}
