// Package bus provides the in-process event bus. Events published to a
// channel are delivered synchronously to every subscriber in registration
// order; fan-out to external systems is the job of the agent gateway and
// the webhook dispatcher, both of which subscribe here.
package bus

import (
	"log/slog"
	"sync"
	"time"
)

// Event is one published message.
type Event struct {
	Channel   string                 `json:"channel"`
	Type      string                 `json:"type"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// Handler consumes published events. Handlers run on the publisher's
// goroutine; long-running work should be handed off internally.
type Handler func(Event)

// Subscription identifies a registered handler for later removal.
type Subscription struct {
	id int
}

// Bus is the in-process topic dispatcher. The zero value is not usable;
// construct with New.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	// Ordered registration list. Delivery iterates in subscription order.
	subs []subscriber
}

type subscriber struct {
	id      int
	handler Handler
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for all published events. Handlers filter
// by channel themselves; the set of interesting channels is usually dynamic
// (one per connected agent or team).
func (b *Bus) Subscribe(h Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.subs = append(b.subs, subscriber{id: b.nextID, handler: h})
	return Subscription{id: b.nextID}
}

// Unsubscribe removes a previously registered handler.
func (b *Bus) Unsubscribe(s Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, sub := range b.subs {
		if sub.id == s.id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers an event to all subscribers in registration order.
// A panicking handler is isolated so the remaining handlers still run.
// Delivery is synchronous, so events published sequentially by one
// goroutine arrive in publish order.
func (b *Bus) Publish(channel, eventType string, payload map[string]interface{}) {
	evt := Event{
		Channel:   channel,
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}

	b.mu.RLock()
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	for _, sub := range subs {
		deliver(sub, evt)
	}
}

func deliver(sub subscriber, evt Event) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Event handler panicked",
				"channel", evt.Channel, "type", evt.Type, "panic", r)
		}
	}()
	sub.handler(evt)
}

// Channel name helpers. The platform publishes to team, agent, and user
// scoped channels.

// TeamChannel returns the channel name for a team's events.
func TeamChannel(teamID string) string {
	return "team:" + teamID
}

// AgentChannel returns the channel name for an agent's directed events.
func AgentChannel(agentID string) string {
	return "agent:" + agentID
}

// UserChannel returns the channel name for a user's events.
func UserChannel(userID string) string {
	return "user:" + userID
}
