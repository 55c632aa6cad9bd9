package site

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met within 5s")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestLiveReloadBroadcast(t *testing.T) {
	hub := NewHub(nil)
	rd, _ := setupRenderer(t)
	r := chi.NewRouter()
	RegisterRoutes(r, rd, hub)
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/_live"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close()

	waitFor(t, func() bool { return hub.Len() == 1 })
	hub.Broadcast()

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(msg) != ReloadMessage {
		t.Errorf("message = %q, want %q", msg, ReloadMessage)
	}

	conn.Close()
	waitFor(t, func() bool { return hub.Len() == 0 })
}

func TestLiveReloadClose(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close()
	waitFor(t, func() bool { return hub.Len() == 1 })

	hub.Close()
	if hub.Len() != 0 {
		t.Errorf("Len after Close = %d, want 0", hub.Len())
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("expected the connection to be closed")
	}
	// Broadcasting to a closed hub is a no-op.
	hub.Broadcast()
}
