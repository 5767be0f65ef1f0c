package telegram

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &Client{
		httpClient: srv.Client(),
		baseURL:    srv.URL,
		token:      "test-token",
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestGetMe_ValidToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getMe", r.URL.Path)
		w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"username":"filler_bot"}}`))
	})

	require.NoError(t, client.GetMe(context.Background()))
}

func TestGetMe_InvalidToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"ok":false,"error_code":401,"description":"Unauthorized"}`))
	})

	require.Error(t, client.GetMe(context.Background()))
}

func TestSendMessage_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sendMessage", r.URL.Path)
		w.Write([]byte(`{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked by the user"}`))
	})

	err := client.SendMessage(context.Background(), 100, "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestSendMessage_OK(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"result":{"message_id":5,"chat":{"id":100},"text":"hello","date":1}}`))
	})

	require.NoError(t, client.SendMessage(context.Background(), 100, "hello"))
}
