// Package gateway maintains persistent WebSocket streams to agents. Each
// agent holds at most one stream, keyed by its uuid; a new connection for
// the same agent replaces the old one. The gateway bridges the in-process
// event bus onto subscribed streams and owns agent liveness bookkeeping.
package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"

	"github.com/conductor-hq/conductor/ent"
	"github.com/conductor-hq/conductor/ent/agent"
	"github.com/conductor-hq/conductor/pkg/auth"
	"github.com/conductor-hq/conductor/pkg/bus"
	"github.com/conductor-hq/conductor/pkg/cache"
	"github.com/conductor-hq/conductor/pkg/config"
	"github.com/conductor-hq/conductor/pkg/metrics"
)

// Close codes for the agent stream protocol.
const (
	CloseAuthInvalid      websocket.StatusCode = 4001
	CloseAgentNotFound    websocket.StatusCode = 4002
	CloseReplaced         websocket.StatusCode = 4003
	CloseHeartbeatTimeout websocket.StatusCode = 4004
	CloseInitFailed       websocket.StatusCode = 4005
)

// Frame is one message on the agent stream. Outbound frames carry "type";
// agents send "action" and may address several channels at once.
type Frame struct {
	Type      string                 `json:"type,omitempty"`
	Action    string                 `json:"action,omitempty"`
	Channel   string                 `json:"channel,omitempty"`
	Channels  []string               `json:"channels,omitempty"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Timestamp string                 `json:"timestamp,omitempty"`
}

// kind returns the frame verb, accepting either key.
func (f Frame) kind() string {
	if f.Action != "" {
		return f.Action
	}
	return f.Type
}

// channelList merges the singular and plural channel forms.
func (f Frame) channelList() []string {
	if f.Channel == "" {
		return f.Channels
	}
	return append([]string{f.Channel}, f.Channels...)
}

// conn is one live agent stream.
type conn struct {
	agentID string
	ws      *websocket.Conn
	ctx     context.Context
	cancel  context.CancelFunc

	// lastFrame is the unix-nano timestamp of the last inbound frame.
	lastFrame atomic.Int64
}

// Gateway manages agent streams and forwards bus events to subscribers.
type Gateway struct {
	client   *ent.Client
	bus      *bus.Bus
	cache    *cache.Cache
	verifier *auth.Verifier
	cfg      config.GatewayConfig
	logger   *slog.Logger

	mu    sync.RWMutex
	conns map[string]*conn // agent uuid → live stream

	// Channel subscriptions: channel → set of agent uuids. Guarded
	// separately from conns so broadcasts never block registration.
	chMu     sync.RWMutex
	channels map[string]map[string]bool
	subs     map[string]map[string]bool // agent uuid → its channels

	busSub bus.Subscription
}

// New creates a Gateway and wires it onto the event bus.
func New(client *ent.Client, b *bus.Bus, c *cache.Cache, verifier *auth.Verifier, cfg config.GatewayConfig, logger *slog.Logger) *Gateway {
	g := &Gateway{
		client:   client,
		bus:      b,
		cache:    c,
		verifier: verifier,
		cfg:      cfg,
		logger:   logger,
		conns:    make(map[string]*conn),
		channels: make(map[string]map[string]bool),
		subs:     make(map[string]map[string]bool),
	}
	g.busSub = b.Subscribe(g.forward)
	return g
}

// ActiveConnections returns the number of live agent streams.
func (g *Gateway) ActiveConnections() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.conns)
}

// Serve runs one agent stream to completion. Called by the HTTP handler
// after the WebSocket upgrade; blocks until the stream closes.
func (g *Gateway) Serve(parentCtx context.Context, ws *websocket.Conn, token, agentID string) {
	claims, err := g.verifier.Verify(token)
	if err != nil {
		_ = ws.Close(CloseAuthInvalid, "auth required or invalid")
		return
	}
	if agentID == "" {
		_ = ws.Close(CloseAgentNotFound, "agent not found")
		return
	}

	a, err := g.client.Agent.Query().
		Where(agent.IDEQ(agentID), agent.DeletedAtIsNil()).
		Only(parentCtx)
	if err != nil {
		_ = ws.Close(CloseAgentNotFound, "agent not found")
		return
	}

	ctx, cancel := context.WithCancel(parentCtx)
	c := &conn{agentID: a.ID, ws: ws, ctx: ctx, cancel: cancel}
	c.lastFrame.Store(time.Now().UnixNano())

	g.register(c)

	if err := g.markOnline(ctx, a); err != nil {
		g.logger.Error("Agent connect initialization failed", "agent_id", a.ID, "error", err)
		g.unregister(c)
		_ = ws.Close(CloseInitFailed, "initialization failed")
		return
	}

	channels := []string{bus.AgentChannel(a.ID)}
	if a.TeamID != nil {
		channels = append(channels, bus.TeamChannel(*a.TeamID))
	}
	for _, ch := range channels {
		g.subscribe(c, ch)
	}

	teamUUID := ""
	if a.TeamID != nil {
		teamUUID = *a.TeamID
	}
	g.send(c, Frame{
		Type: "agent:connected",
		Payload: map[string]interface{}{
			"agentUuid":           a.ID,
			"teamUuid":            teamUUID,
			"channels":            channels,
			"heartbeatIntervalMs": g.cfg.HeartbeatInterval.Milliseconds(),
		},
	})
	if a.TeamID != nil {
		g.bus.Publish(bus.TeamChannel(*a.TeamID), "agent:online", map[string]interface{}{
			"agent_uuid":  a.ID,
			"external_id": a.ExternalID,
		})
	}

	g.logger.Info("Agent stream opened",
		"agent_id", a.ID, "external_id", a.ExternalID, "user_id", claims.Subject)

	go g.heartbeatLoop(c)
	go g.livenessWatch(c)

	g.readLoop(c)
	g.teardown(c, a)
}

// register installs the stream, replacing any prior stream for the agent.
func (g *Gateway) register(c *conn) {
	g.mu.Lock()
	prev := g.conns[c.agentID]
	g.conns[c.agentID] = c
	g.mu.Unlock()

	if prev == nil {
		metrics.GatewayConnections.Inc()
	}
	if prev != nil {
		g.logger.Info("Replacing existing agent stream", "agent_id", c.agentID)
		g.dropSubscriptions(prev)
		prev.cancel()
		_ = prev.ws.Close(CloseReplaced, "replaced")
	}
}

// unregister removes the stream if it is still the current one for the
// agent. Returns false when a replacement already took over.
func (g *Gateway) unregister(c *conn) bool {
	g.mu.Lock()
	current := g.conns[c.agentID] == c
	if current {
		delete(g.conns, c.agentID)
	}
	g.mu.Unlock()

	if current {
		metrics.GatewayConnections.Dec()
	}

	g.dropSubscriptions(c)
	c.cancel()
	return current
}

func (g *Gateway) markOnline(ctx context.Context, a *ent.Agent) error {
	err := g.client.Agent.UpdateOneID(a.ID).
		SetStatus(agent.StatusOnline).
		SetWsConnected(true).
		SetLastHeartbeat(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		return err
	}
	g.cache.InvalidateCapabilities(ctx, a.Capabilities)
	return nil
}

// readLoop processes inbound frames until the stream closes. Any frame,
// valid or not, counts as liveness proof.
func (g *Gateway) readLoop(c *conn) {
	for {
		_, data, err := c.ws.Read(c.ctx)
		if err != nil {
			return
		}
		c.lastFrame.Store(time.Now().UnixNano())
		g.touchHeartbeat(c)

		var f Frame
		if err := json.Unmarshal(data, &f); err != nil {
			g.logger.Warn("Invalid agent frame", "agent_id", c.agentID, "error", err)
			continue
		}
		g.handleFrame(c, f)
	}
}

func (g *Gateway) handleFrame(c *conn, f Frame) {
	switch f.kind() {
	case "heartbeat", "pong":
		// Liveness already recorded by the read loop.
	case "ping":
		g.send(c, Frame{Type: "pong"})
	case "subscribe":
		for _, ch := range f.channelList() {
			if !subscribableChannel(ch) {
				g.send(c, Frame{Type: "error", Payload: map[string]interface{}{
					"message": "only team:* and user:* channels can be subscribed",
					"channel": ch,
				}})
				continue
			}
			g.subscribe(c, ch)
			g.send(c, Frame{Type: "subscribed", Channel: ch})
		}
	case "unsubscribe":
		for _, ch := range f.channelList() {
			g.unsubscribeChannel(c, ch)
		}
	default:
		g.logger.Debug("Unhandled agent frame", "agent_id", c.agentID, "kind", f.kind())
	}
}

// subscribableChannel limits client-requested subscriptions. Agent
// channels are assigned at connect time and never joinable by request.
func subscribableChannel(channel string) bool {
	return len(channel) > 5 && (channel[:5] == "team:" || channel[:5] == "user:")
}

func (g *Gateway) subscribe(c *conn, channel string) {
	g.chMu.Lock()
	defer g.chMu.Unlock()
	if g.channels[channel] == nil {
		g.channels[channel] = make(map[string]bool)
	}
	g.channels[channel][c.agentID] = true
	if g.subs[c.agentID] == nil {
		g.subs[c.agentID] = make(map[string]bool)
	}
	g.subs[c.agentID][channel] = true
}

func (g *Gateway) unsubscribeChannel(c *conn, channel string) {
	g.chMu.Lock()
	defer g.chMu.Unlock()
	if set, ok := g.channels[channel]; ok {
		delete(set, c.agentID)
		if len(set) == 0 {
			delete(g.channels, channel)
		}
	}
	if set, ok := g.subs[c.agentID]; ok {
		delete(set, channel)
	}
}

func (g *Gateway) dropSubscriptions(c *conn) {
	g.chMu.Lock()
	defer g.chMu.Unlock()
	for ch := range g.subs[c.agentID] {
		if set, ok := g.channels[ch]; ok {
			delete(set, c.agentID)
			if len(set) == 0 {
				delete(g.channels, ch)
			}
		}
	}
	delete(g.subs, c.agentID)
}

// heartbeatLoop pings the agent on the configured interval.
func (g *Gateway) heartbeatLoop(c *conn) {
	ticker := time.NewTicker(g.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			g.send(c, Frame{Type: "heartbeat:ping", Payload: map[string]interface{}{
				"ts": time.Now().UTC().Format(time.RFC3339),
			}})
		}
	}
}

// livenessWatch closes the stream once no inbound frame has arrived within
// the liveness window. The timer re-arms to the remaining window after each
// frame, so the deadline tracks the last frame rather than the ping tick.
func (g *Gateway) livenessWatch(c *conn) {
	timer := time.NewTimer(g.cfg.LivenessTimeout)
	defer timer.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-timer.C:
			idle := time.Since(time.Unix(0, c.lastFrame.Load()))
			if idle >= g.cfg.LivenessTimeout {
				g.logger.Warn("Agent heartbeat timeout",
					"agent_id", c.agentID, "idle", idle)
				_ = c.ws.Close(CloseHeartbeatTimeout, "heartbeat timeout")
				c.cancel()
				return
			}
			timer.Reset(g.cfg.LivenessTimeout - idle)
		}
	}
}

// touchHeartbeat persists liveness. Failures are logged only; the stream
// itself remains the source of truth until it closes.
func (g *Gateway) touchHeartbeat(c *conn) {
	err := g.client.Agent.UpdateOneID(c.agentID).
		SetLastHeartbeat(time.Now().UTC()).
		Exec(c.ctx)
	if err != nil && c.ctx.Err() == nil {
		g.logger.Warn("Failed to persist agent heartbeat", "agent_id", c.agentID, "error", err)
	}
}

// teardown runs after the read loop exits for any reason.
func (g *Gateway) teardown(c *conn, a *ent.Agent) {
	wasCurrent := g.unregister(c)
	_ = c.ws.Close(websocket.StatusNormalClosure, "")

	// A replacement stream owns the agent's liveness state now.
	if !wasCurrent {
		return
	}

	// The stream context is gone; bookkeeping still has to happen.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := g.client.Agent.UpdateOneID(c.agentID).
		SetStatus(agent.StatusOffline).
		SetWsConnected(false).
		Exec(ctx)
	if err != nil {
		g.logger.Error("Failed to mark agent offline", "agent_id", c.agentID, "error", err)
	}
	g.cache.InvalidateCapabilities(ctx, a.Capabilities)

	if a.TeamID != nil {
		g.bus.Publish(bus.TeamChannel(*a.TeamID), "agent:offline", map[string]interface{}{
			"agent_uuid":  a.ID,
			"external_id": a.ExternalID,
		})
	}
	g.logger.Info("Agent stream closed", "agent_id", c.agentID)
}

// forward bridges bus events onto subscribed streams.
func (g *Gateway) forward(evt bus.Event) {
	g.chMu.RLock()
	ids := make([]string, 0, len(g.channels[evt.Channel]))
	for id := range g.channels[evt.Channel] {
		ids = append(ids, id)
	}
	g.chMu.RUnlock()
	if len(ids) == 0 {
		return
	}

	g.mu.RLock()
	conns := make([]*conn, 0, len(ids))
	for _, id := range ids {
		if c, ok := g.conns[id]; ok {
			conns = append(conns, c)
		}
	}
	g.mu.RUnlock()

	frame := Frame{
		Type:      evt.Type,
		Channel:   evt.Channel,
		Payload:   evt.Payload,
		Timestamp: evt.Timestamp.Format(time.RFC3339),
	}
	for _, c := range conns {
		g.send(c, frame)
	}
}

func (g *Gateway) send(c *conn, f Frame) {
	data, err := json.Marshal(f)
	if err != nil {
		g.logger.Warn("Failed to marshal frame", "agent_id", c.agentID, "type", f.Type, "error", err)
		return
	}
	writeCtx, cancel := context.WithTimeout(c.ctx, g.cfg.WriteTimeout)
	defer cancel()
	if err := c.ws.Write(writeCtx, websocket.MessageText, data); err != nil {
		g.logger.Warn("Failed to write frame",
			"agent_id", c.agentID, "type", f.Type, "error", err)
	}
}

// Shutdown closes every stream with a going-away code and detaches from
// the bus. Part of the drain sequence.
func (g *Gateway) Shutdown() {
	g.bus.Unsubscribe(g.busSub)

	g.mu.Lock()
	conns := make([]*conn, 0, len(g.conns))
	for _, c := range g.conns {
		conns = append(conns, c)
	}
	g.mu.Unlock()

	for _, c := range conns {
		_ = c.ws.Close(websocket.StatusGoingAway, "server shutting down")
		c.cancel()
	}
	g.logger.Info("Gateway shut down", "closed_streams", len(conns))
}
