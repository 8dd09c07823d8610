package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/repository/memory"
	"github.com/zizouhuweidi/trivia/internal/service"
	ws "github.com/zizouhuweidi/trivia/internal/websocket"
)

func TestWebSocketBroadcastsQuestionEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := ws.NewHub(zap.NewNop())
	go hub.Run(ctx)

	store := memory.NewStore(memory.DefaultCategories()...)
	svc := service.NewTriviaService(store, nil, service.Options{Events: hub})

	e := New(nil)
	NewTriviaHandler(svc).Register(e)
	NewWebSocketHandler(hub, []string{"*"}).Register(e)

	srv := httptest.NewServer(e)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	res, err := http.Post(srv.URL+"/questions", "application/json",
		strings.NewReader(`{"question":"Who painted the Mona Lisa?","answer":"Leonardo","category":2,"difficulty":3}`))
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/questions/1", nil)
	require.NoError(t, err)
	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var created ws.Message
	require.NoError(t, conn.ReadJSON(&created))
	assert.Equal(t, domain.EventQuestionCreated, created.Type)
	var createdEvent domain.QuestionEvent
	require.NoError(t, json.Unmarshal(created.Payload, &createdEvent))
	require.NotNil(t, createdEvent.Question)
	assert.Equal(t, "Leonardo", createdEvent.Question.Answer)

	var deleted ws.Message
	require.NoError(t, conn.ReadJSON(&deleted))
	assert.Equal(t, domain.EventQuestionDeleted, deleted.Type)
	var deletedEvent domain.QuestionEvent
	require.NoError(t, json.Unmarshal(deleted.Payload, &deletedEvent))
	assert.Equal(t, 1, deletedEvent.Deleted)
}

func TestWebSocketRejectsUnknownOrigin(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := ws.NewHub(zap.NewNop())
	go hub.Run(ctx)

	e := New(nil)
	NewWebSocketHandler(hub, []string{"https://trivia.example"}).Register(e)
	srv := httptest.NewServer(e)
	defer srv.Close()

	header := http.Header{}
	header.Set("Origin", "https://evil.example")
	_, res, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", header)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Zero(t, hub.ClientCount())
}
