package bus_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conductor-hq/conductor/pkg/bus"
)

func TestPublish_OrderedDelivery(t *testing.T) {
	b := bus.New()

	// Interleaving proves both laws at once: events arrive in publish
	// order, and each event visits subscribers in registration order.
	var got []string
	b.Subscribe(func(evt bus.Event) { got = append(got, "first:"+evt.Type) })
	b.Subscribe(func(evt bus.Event) { got = append(got, "second:"+evt.Type) })

	for i := 0; i < 3; i++ {
		b.Publish("team:t1", fmt.Sprintf("task:%d", i), nil)
	}

	assert.Equal(t, []string{
		"first:task:0", "second:task:0",
		"first:task:1", "second:task:1",
		"first:task:2", "second:task:2",
	}, got)
}

func TestPublish_PanickingHandlerIsIsolated(t *testing.T) {
	b := bus.New()
	b.Subscribe(func(bus.Event) { panic("handler bug") })
	var delivered []bus.Event
	b.Subscribe(func(evt bus.Event) { delivered = append(delivered, evt) })

	assert.NotPanics(t, func() {
		b.Publish("team:t1", "task:created", map[string]interface{}{"task_uuid": "x"})
		b.Publish("team:t1", "task:claimed", nil)
	})

	assert.Len(t, delivered, 2)
	assert.Equal(t, "task:created", delivered[0].Type)
	assert.Equal(t, "team:t1", delivered[0].Channel)
	assert.False(t, delivered[0].Timestamp.IsZero())
}

func TestUnsubscribe_StopsDelivery(t *testing.T) {
	b := bus.New()
	var n int
	sub := b.Subscribe(func(bus.Event) { n++ })

	b.Publish("team:t1", "task:created", nil)
	b.Unsubscribe(sub)
	b.Publish("team:t1", "task:updated", nil)

	assert.Equal(t, 1, n)
}

func TestChannelNames(t *testing.T) {
	assert.Equal(t, "team:t1", bus.TeamChannel("t1"))
	assert.Equal(t, "agent:a1", bus.AgentChannel("a1"))
	assert.Equal(t, "user:u1", bus.UserChannel("u1"))
}
