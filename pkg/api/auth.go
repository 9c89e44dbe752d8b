package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/conductor-hq/conductor/pkg/auth"
)

const actorContextKey = "actor"

// requireUser returns middleware that verifies the bearer token and
// stores the claims for handlers.
func (s *Server) requireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			token, ok := bearerToken(c.Request())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			claims, err := s.verifier.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			c.Set(actorContextKey, claims)
			return next(c)
		}
	}
}

// actor returns the verified claims stored by requireUser.
func actor(c *echo.Context) auth.Claims {
	claims, _ := c.Get(actorContextKey).(auth.Claims)
	return claims
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
