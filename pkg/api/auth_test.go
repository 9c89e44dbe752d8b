package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductor-hq/conductor/pkg/auth"
)

func newAuthTestServer(t *testing.T) (*Server, *echo.Echo) {
	t.Helper()
	s := &Server{verifier: auth.NewVerifier("test-secret")}
	e := echo.New()
	e.GET("/protected", func(c *echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"user": actor(c).Subject})
	}, s.requireUser())
	return s, e
}

func TestRequireUser_ValidToken(t *testing.T) {
	_, e := newAuthTestServer(t)

	token := auth.SignToken("test-secret", auth.Claims{
		Subject: "user-1",
		Exp:     time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-1")
}

func TestRequireUser_MissingToken(t *testing.T) {
	_, e := newAuthTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireUser_WrongSecret(t *testing.T) {
	_, e := newAuthTestServer(t)

	token := auth.SignToken("other-secret", auth.Claims{
		Subject: "user-1",
		Exp:     time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := bearerToken(req)
	assert.False(t, ok)

	req.Header.Set("Authorization", "Bearer abc")
	token, ok := bearerToken(req)
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	req.Header.Set("Authorization", "Basic abc")
	_, ok = bearerToken(req)
	assert.False(t, ok)
}
