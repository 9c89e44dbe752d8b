package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductor-hq/conductor/pkg/auth"
	"github.com/conductor-hq/conductor/pkg/bus"
	"github.com/conductor-hq/conductor/pkg/config"
)

func newTestGateway() *Gateway {
	return New(nil, bus.New(), nil, auth.NewVerifier("s"), config.GatewayConfig{}, slog.Default())
}

func TestSubscribableChannel(t *testing.T) {
	assert.True(t, subscribableChannel("team:t1"))
	assert.True(t, subscribableChannel("user:u1"))
	assert.False(t, subscribableChannel("agent:a1"))
	assert.False(t, subscribableChannel("team:"))
	assert.False(t, subscribableChannel(""))
	assert.False(t, subscribableChannel("broadcast"))
}

func TestSubscriptionBookkeeping(t *testing.T) {
	g := newTestGateway()
	c1 := &conn{agentID: "a1"}
	c2 := &conn{agentID: "a2"}

	g.subscribe(c1, "team:t1")
	g.subscribe(c2, "team:t1")
	g.subscribe(c1, "agent:a1")

	assert.Len(t, g.channels["team:t1"], 2)
	assert.Len(t, g.subs["a1"], 2)

	g.unsubscribeChannel(c1, "team:t1")
	assert.Len(t, g.channels["team:t1"], 1)
	assert.Len(t, g.subs["a1"], 1)

	// Dropping the last subscriber removes the channel entry.
	g.dropSubscriptions(c2)
	_, exists := g.channels["team:t1"]
	assert.False(t, exists)
	assert.Empty(t, g.subs["a2"])

	assert.Len(t, g.channels["agent:a1"], 1)
}

func TestUnregister_ReplacedStreamIsNotCurrent(t *testing.T) {
	g := newTestGateway()
	old := &conn{agentID: "a1"}
	g.mu.Lock()
	g.conns["a1"] = old
	g.mu.Unlock()

	replacement := &conn{agentID: "a1"}
	g.mu.Lock()
	g.conns["a1"] = replacement
	g.mu.Unlock()

	assert.False(t, func() bool {
		g.mu.Lock()
		current := g.conns["a1"] == old
		g.mu.Unlock()
		return current
	}())
	assert.Equal(t, 1, g.ActiveConnections())
}

// wsPair opens a real WebSocket and returns both ends.
func wsPair(t *testing.T) (server, client *websocket.Conn) {
	t.Helper()
	accepted := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		accepted <- ws
	}))
	t.Cleanup(srv.Close)

	url := "ws" + srv.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	client, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close(websocket.StatusNormalClosure, "") })
	return <-accepted, client
}

func readFrame(t *testing.T, ws *websocket.Conn) Frame {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, data, err := ws.Read(ctx)
	require.NoError(t, err)
	var f Frame
	require.NoError(t, json.Unmarshal(data, &f))
	return f
}

func decodeFrame(t *testing.T, raw string) Frame {
	t.Helper()
	var f Frame
	require.NoError(t, json.Unmarshal([]byte(raw), &f))
	return f
}

func TestFrame_AgentWireFormat(t *testing.T) {
	f := decodeFrame(t, `{"action":"subscribe","channels":["team:t1","user:u1"]}`)
	assert.Equal(t, "subscribe", f.kind())
	assert.Equal(t, []string{"team:t1", "user:u1"}, f.channelList())

	assert.Equal(t, "heartbeat", decodeFrame(t, `{"action":"heartbeat"}`).kind())
	assert.Equal(t, "ping", decodeFrame(t, `{"action":"ping"}`).kind())

	// Outbound-style frames remain readable for symmetric clients.
	f = decodeFrame(t, `{"type":"unsubscribe","channel":"team:t1"}`)
	assert.Equal(t, "unsubscribe", f.kind())
	assert.Equal(t, []string{"team:t1"}, f.channelList())
}

func TestHandleFrame_SubscribeUnsubscribeOverAgentWire(t *testing.T) {
	g := New(nil, bus.New(), nil, auth.NewVerifier("s"), config.GatewayConfig{
		WriteTimeout: 2 * time.Second,
	}, slog.Default())
	server, client := wsPair(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := &conn{agentID: "a1", ws: server, ctx: ctx, cancel: cancel}

	g.handleFrame(c, decodeFrame(t, `{"action":"subscribe","channels":["team:t1","user:u1"]}`))

	g.chMu.RLock()
	assert.True(t, g.channels["team:t1"]["a1"])
	assert.True(t, g.channels["user:u1"]["a1"])
	g.chMu.RUnlock()

	ack := readFrame(t, client)
	assert.Equal(t, "subscribed", ack.Type)
	assert.Equal(t, "team:t1", ack.Channel)
	ack = readFrame(t, client)
	assert.Equal(t, "subscribed", ack.Type)
	assert.Equal(t, "user:u1", ack.Channel)

	g.handleFrame(c, decodeFrame(t, `{"action":"unsubscribe","channels":["team:t1"]}`))
	g.chMu.RLock()
	_, subscribed := g.channels["team:t1"]
	g.chMu.RUnlock()
	assert.False(t, subscribed)
}

func TestHandleFrame_PingEchoAndRestrictedChannel(t *testing.T) {
	g := New(nil, bus.New(), nil, auth.NewVerifier("s"), config.GatewayConfig{
		WriteTimeout: 2 * time.Second,
	}, slog.Default())
	server, client := wsPair(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := &conn{agentID: "a1", ws: server, ctx: ctx, cancel: cancel}

	g.handleFrame(c, decodeFrame(t, `{"action":"ping"}`))
	assert.Equal(t, "pong", readFrame(t, client).Type)

	// Agent channels are assigned at connect time, never joinable by request.
	g.handleFrame(c, decodeFrame(t, `{"action":"subscribe","channels":["agent:a2"]}`))
	reply := readFrame(t, client)
	assert.Equal(t, "error", reply.Type)
	g.chMu.RLock()
	assert.Empty(t, g.channels["agent:a2"])
	g.chMu.RUnlock()
}

func TestLivenessWatch_ClosesSilentStream(t *testing.T) {
	g := New(nil, bus.New(), nil, auth.NewVerifier("s"), config.GatewayConfig{
		LivenessTimeout: 100 * time.Millisecond,
		WriteTimeout:    2 * time.Second,
	}, slog.Default())
	server, client := wsPair(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := &conn{agentID: "a1", ws: server, ctx: ctx, cancel: cancel}
	c.lastFrame.Store(time.Now().UnixNano())

	go g.livenessWatch(c)

	readCtx, readCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer readCancel()
	_, _, err := client.Read(readCtx)
	require.Error(t, err)
	assert.Equal(t, CloseHeartbeatTimeout, websocket.CloseStatus(err))
}

func TestLivenessWatch_InboundFrameExtendsDeadline(t *testing.T) {
	g := New(nil, bus.New(), nil, auth.NewVerifier("s"), config.GatewayConfig{
		LivenessTimeout: 400 * time.Millisecond,
		WriteTimeout:    2 * time.Second,
	}, slog.Default())
	server, _ := wsPair(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := &conn{agentID: "a1", ws: server, ctx: ctx, cancel: cancel}
	c.lastFrame.Store(time.Now().UnixNano())

	go g.livenessWatch(c)

	// Refresh liveness midway; the re-armed deadline must outlive the
	// original one.
	time.Sleep(200 * time.Millisecond)
	c.lastFrame.Store(time.Now().UnixNano())
	time.Sleep(300 * time.Millisecond)
	assert.NoError(t, ctx.Err(), "stream closed despite fresh liveness proof")

	// With no further frames the re-armed deadline fires.
	assert.Eventually(t, func() bool { return ctx.Err() != nil },
		2*time.Second, 10*time.Millisecond)
}
