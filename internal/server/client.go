package server

// Client abstracts the connection layer for both telnet and WebSocket
// connections, so the session code handles both transparently.
type Client interface {
	// ReadLine blocks until a complete line is received (without newline).
	// Returns the line and any error encountered.
	ReadLine() (string, error)

	// WriteLine sends one logical line to the client. For telnet this
	// appends CRLF; for WebSocket the line is sent as a text message.
	WriteLine(message string) error

	// Close closes the connection.
	Close() error

	// RemoteAddr returns the client's address for logging.
	RemoteAddr() string
}
