package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/employee-admin/internal/api/http/handlers"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name     string
		postgres handlers.Pinger
		redis    handlers.Pinger
		status   int
	}{
		{"all up", up, up, http.StatusOK},
		{"postgres down", down, up, http.StatusServiceUnavailable},
		{"redis down", up, down, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := newApp()
			h := handlers.NewHealthHandler("employee-admin", "test", tt.postgres, tt.redis)
			app.Get("/live", h.Live)
			app.Get("/ready", h.Ready)

			resp, _ := do(t, app, http.MethodGet, "/live", "")
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			resp, _ = do(t, app, http.MethodGet, "/ready", "")
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
