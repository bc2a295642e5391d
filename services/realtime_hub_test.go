package services_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"backend/services"

	"github.com/gorilla/websocket"
)

// Broadcast and the keepalive ping write to the same connection from
// different goroutines; WSClient.Write must serialize them.
func TestRealtimeHub_ConcurrentWrites(t *testing.T) {
	hub := services.NewRealtimeHub()
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	topic := services.TopicFor("recipe", 1)

	registered := make(chan *services.WSClient, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		cl := &services.WSClient{Topic: topic, Conn: conn}
		hub.Register(cl)
		registered <- cl
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	cl := <-registered

	const n = 20
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			hub.Broadcast(topic, map[string]any{"kind": "comment.created"})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			_ = cl.Write(websocket.PingMessage, nil)
		}
	}()

	// ReadMessage skips control frames, so only the broadcasts count.
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for got := 0; got < n; got++ {
		if _, _, err := conn.ReadMessage(); err != nil {
			t.Fatalf("read after %d messages: %v", got, err)
		}
	}

	wg.Wait()
	hub.Unregister(cl)
}
