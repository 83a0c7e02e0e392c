package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialHub(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubRelaysToOtherClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	sender := dialHub(t, wsURL)
	receiver := dialHub(t, wsURL)

	// Give the second registration a moment to land.
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() < 2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if hub.ClientCount() != 2 {
		t.Fatalf("expected 2 clients, got %d", hub.ClientCount())
	}

	payload := Message{Event: "task-updated", Data: json.RawMessage(`{"id":7}`)}
	if err := sender.WriteJSON(payload); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	receiver.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got Message
	if err := receiver.ReadJSON(&got); err != nil {
		t.Fatalf("receiver got no message: %v", err)
	}
	if got.Event != "task-updated" {
		t.Errorf("expected task-updated, got %s", got.Event)
	}
	if string(got.Data) != `{"id":7}` {
		t.Errorf("payload altered in transit: %s", got.Data)
	}

	// The sender must not receive its own event back.
	sender.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	var echo Message
	if err := sender.ReadJSON(&echo); err == nil {
		t.Fatalf("sender received its own event: %+v", echo)
	}
}

func TestHubDropsUnknownEvents(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	sender := dialHub(t, wsURL)
	receiver := dialHub(t, wsURL)

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() < 2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if err := sender.WriteJSON(Message{Event: "shutdown-everything"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := sender.WriteJSON(Message{Event: "client-updated", Data: json.RawMessage(`{}`)}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	receiver.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got Message
	if err := receiver.ReadJSON(&got); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	// The unknown event was filtered; the first relayed message is the
	// client update.
	if got.Event != "client-updated" {
		t.Errorf("expected client-updated, got %s", got.Event)
	}
}

func TestHubRemovesDisconnectedClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	conn := dialHub(t, wsURL)

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() < 1 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	conn.Close()
	deadline = time.Now().Add(2 * time.Second)
	for hub.ClientCount() > 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if hub.ClientCount() != 0 {
		t.Fatalf("expected client to be removed, count %d", hub.ClientCount())
	}
}
