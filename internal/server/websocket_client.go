package server

import (
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

// WebSocketClient wraps a WebSocket connection for browser-based clients.
type WebSocketClient struct {
	conn    *websocket.Conn
	readBuf []string   // Buffer for lines when a message contains multiple lines
	readMu  sync.Mutex // Protects readBuf
	writeMu sync.Mutex // gorilla/websocket allows only one concurrent writer
}

// NewWebSocketClient creates a new WebSocketClient from a WebSocket connection.
func NewWebSocketClient(conn *websocket.Conn) *WebSocketClient {
	return &WebSocketClient{
		conn:    conn,
		readBuf: make([]string, 0),
	}
}

// ReadLine reads a line from the WebSocket connection (blocking).
// If a message contains multiple lines, they are buffered and returned
// one at a time.
func (c *WebSocketClient) ReadLine() (string, error) {
	c.readMu.Lock()
	if len(c.readBuf) > 0 {
		line := c.readBuf[0]
		c.readBuf = c.readBuf[1:]
		c.readMu.Unlock()
		return line, nil
	}
	c.readMu.Unlock()

	_, message, err := c.conn.ReadMessage()
	if err != nil {
		return "", err
	}

	lines := strings.Split(string(message), "\n")

	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			filtered = append(filtered, trimmed)
		}
	}

	if len(filtered) == 0 {
		// Empty message, try again
		return c.ReadLine()
	}

	c.readMu.Lock()
	if len(filtered) > 1 {
		c.readBuf = append(c.readBuf, filtered[1:]...)
	}
	c.readMu.Unlock()

	return filtered[0], nil
}

// WriteLine writes one line to the WebSocket client as a self-contained
// text message.
func (c *WebSocketClient) WriteLine(message string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, []byte(message))
}

// Close closes the WebSocket connection.
func (c *WebSocketClient) Close() error {
	return c.conn.Close()
}

// RemoteAddr returns the remote address as a string.
func (c *WebSocketClient) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}
