package handlers

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Tanmay1202/macnmanage/internal/events"
	"github.com/Tanmay1202/macnmanage/internal/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dialEvents(t *testing.T, srv *httptest.Server, token string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv)+"?token="+token, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	// Give the hub a moment to register the listener
	time.Sleep(50 * time.Millisecond)
	return conn
}

func TestEventStreamRejectsMissingOrBadToken(t *testing.T) {
	r := newTestRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	_, resp, err = websocket.DefaultDialer.Dial(wsURL(srv)+"?token=not-a-real-token", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestEventStreamScopedToOwner(t *testing.T) {
	r := newTestRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	_, tokenA := registerUser(t, r, "Alice", "alice@example.com")
	_, tokenB := registerUser(t, r, "Bob", "bob@example.com")

	connA := dialEvents(t, srv, tokenA)
	connB := dialEvents(t, srv, tokenB)

	rec := doRequest(t, r, http.MethodPost, "/api/resources", tokenA, map[string]interface{}{
		"name":     "Secret Alloy",
		"location": "Vault 7",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// The owner's listener receives the event
	require.NoError(t, connA.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := connA.ReadMessage()
	require.NoError(t, err)

	var ev struct {
		Type    string          `json:"type"`
		Payload models.Resource `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(raw, &ev))
	require.Equal(t, events.ResourceCreated, ev.Type)
	require.Equal(t, "Secret Alloy", ev.Payload.Name)

	// The other user's listener receives nothing at all
	require.NoError(t, connB.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	_, leaked, err := connB.ReadMessage()
	require.Error(t, err, "listener of another user received: %s", leaked)
	netErr, ok := err.(net.Error)
	require.True(t, ok, "expected a read timeout, got: %v", err)
	require.True(t, netErr.Timeout(), "expected a read timeout, got: %v", err)
}

func TestEventStreamAcceptsAuthorizationHeader(t *testing.T) {
	r := newTestRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	_, token := registerUser(t, r, "Alice", "alice@example.com")

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), header)
	require.NoError(t, err)
	conn.Close()
}
