package api

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conductor-hq/conductor/pkg/config"
)

func TestAgentStreamRoute(t *testing.T) {
	s := NewServer(config.ServerConfig{}, Deps{Logger: slog.Default()})

	// Without a gateway (API-only replica) the upgrade path answers 503
	// rather than 404: the route itself must exist.
	req := httptest.NewRequest(http.MethodGet, "/ws/agent?token=x&agentUuid=a1", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/ws", nil)
	rec = httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
