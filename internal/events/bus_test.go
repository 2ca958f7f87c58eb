package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishFansOutToAllSubscribers(t *testing.T) {
	bus := NewBus()

	var first, second []interface{}
	bus.Subscribe(TopicMessageReceived, func(event interface{}) {
		first = append(first, event)
	})
	bus.Subscribe(TopicMessageReceived, func(event interface{}) {
		second = append(second, event)
	})

	bus.Publish(TopicMessageReceived, MessageReceived{ChatID: "c1", Text: "hi"})

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	got, ok := first[0].(MessageReceived)
	require.True(t, ok)
	assert.Equal(t, "c1", got.ChatID)
}

func TestPublishSkipsOtherTopics(t *testing.T) {
	bus := NewBus()

	calls := 0
	bus.Subscribe(TopicRideRequested, func(event interface{}) {
		calls++
	})

	bus.Publish(TopicMessageReceived, MessageReceived{ChatID: "c1"})
	assert.Zero(t, calls)

	bus.Publish(TopicRideRequested, RideRequested{RideID: "r1"})
	assert.Equal(t, 1, calls)
}

func TestPublishWithoutSubscribersIsSafe(t *testing.T) {
	bus := NewBus()
	assert.NotPanics(t, func() {
		bus.Publish(TopicMessageReceived, MessageReceived{})
	})
}
