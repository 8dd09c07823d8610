package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

func TestHubBroadcastsToRegisteredClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(zap.NewNop())
	go hub.Run(ctx)

	client := &Client{Hub: hub, Send: make(chan []byte, 4)}
	require.True(t, hub.Register(client))
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.PublishQuestionEvent(ctx, domain.QuestionEvent{Type: domain.EventQuestionDeleted, Deleted: 7})

	select {
	case raw := <-client.Send:
		var msg Message
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, domain.EventQuestionDeleted, msg.Type)
		assert.JSONEq(t, `{"type":"question_deleted","deleted":7}`, string(msg.Payload))
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
	}
}

func TestHubStopClosesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	hub := NewHub(zap.NewNop())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	client := &Client{Hub: hub, Send: make(chan []byte, 1)}
	require.True(t, hub.Register(client))
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	<-stopped

	_, ok := <-client.Send
	assert.False(t, ok)
	assert.Zero(t, hub.ClientCount())
	assert.False(t, hub.Register(&Client{Hub: hub, Send: make(chan []byte)}))
}

func TestHubDropsSlowClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(zap.NewNop())
	go hub.Run(ctx)

	slow := &Client{Hub: hub, Send: make(chan []byte)}
	require.True(t, hub.Register(slow))
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.PublishQuestionEvent(ctx, domain.QuestionEvent{Type: domain.EventQuestionDeleted, Deleted: 1})
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
}

func TestPublishNeverBlocks(t *testing.T) {
	hub := NewHub(zap.NewNop())

	done := make(chan struct{})
	go func() {
		for i := range broadcastBuffer * 2 {
			hub.PublishQuestionEvent(context.Background(), domain.QuestionEvent{Type: domain.EventQuestionDeleted, Deleted: i + 1})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked without a running hub")
	}
	assert.Len(t, hub.broadcast, broadcastBuffer)
}
