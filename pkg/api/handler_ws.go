package api

import (
	"net/http"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// wsHandler upgrades GET /ws/agent to a WebSocket and delegates to the
// gateway.
// Authentication happens after the upgrade so the gateway can reject with
// its own close codes instead of opaque HTTP errors.
func (s *Server) wsHandler(c *echo.Context) error {
	if s.gateway == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "WebSocket not available")
	}

	token := c.QueryParam("token")
	agentID := c.QueryParam("agentUuid")

	ws, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}

	// Serve blocks until the stream closes.
	s.gateway.Serve(c.Request().Context(), ws, token, agentID)
	return nil
}
