package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
)

// TopicFor names the broadcast channel for one catalog item,
// e.g. "recipe:42".
func TopicFor(targetType string, targetID uint) string {
	return fmt.Sprintf("%s:%d", targetType, targetID)
}

type WSClient struct {
	Topic string
	Conn  *websocket.Conn

	mu sync.Mutex // serializes writes; gorilla allows one writer at a time
}

// Write sends one message, safe for use from the hub and the ping loop
// concurrently.
func (c *WSClient) Write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// RealtimeHub fans comment events out to websocket subscribers of a
// catalog item's topic.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.Topic] == nil {
		h.clients[c.Topic] = make(map[*WSClient]struct{})
	}
	h.clients[c.Topic][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.Topic]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.Topic)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) Broadcast(topic string, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[topic] {
		_ = c.Write(websocket.TextMessage, msg)
	}
}
