package server

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/config"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/logger"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/world"
)

// Server accepts connections and hands each one to a Session. There is
// one Server and one World per process; the World is passed in at
// construction rather than reached for as ambient state.
type Server struct {
	address     string
	listener    net.Listener
	world       *world.World
	cfg         *config.ServerConfig
	wander      *WanderManager
	connLimiter *ConnLimiter
	shutdown    chan struct{}
}

// NewServer creates a server bound to the configured address.
func NewServer(cfg *config.ServerConfig, w *world.World) *Server {
	return &Server{
		address:     fmt.Sprintf("%s:%d", cfg.Listen.Host, cfg.Listen.Port),
		world:       w,
		cfg:         cfg,
		wander:      NewWanderManager(w, time.Duration(cfg.NPC.WanderIntervalSeconds)*time.Second),
		connLimiter: NewConnLimiter(cfg.Connections),
		shutdown:    make(chan struct{}),
	}
}

// Start listens for telnet connections and blocks until Stop is called.
// The NPC wander ticker starts alongside the listener.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	s.listener = listener

	logger.Info("Server listening", "address", s.address)

	s.wander.Start()

	for {
		select {
		case <-s.shutdown:
			return nil
		default:
			conn, err := s.listener.Accept()
			if err != nil {
				// Check if we're shutting down
				select {
				case <-s.shutdown:
					return nil
				default:
					logger.Error("Error accepting connection", "error", err)
					continue
				}
			}

			go s.handleConnection(conn)
		}
	}
}

// Stop shuts the listeners and the wander ticker down.
func (s *Server) Stop() {
	close(s.shutdown)
	s.wander.Stop()
	if s.listener != nil {
		s.listener.Close()
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	remoteAddr := conn.RemoteAddr().String()
	ip := extractIP(remoteAddr)

	if !s.connLimiter.TryAcquire(ip) {
		logger.Warning("Connection rejected - limit exceeded",
			"remote_addr", remoteAddr,
			"ip", ip)
		conn.Write([]byte("Too many connections. Please try again later.\r\n"))
		conn.Close()
		return
	}

	defer func() {
		s.connLimiter.Release(ip)
		conn.Close()
	}()

	s.handleClient(NewTelnetClient(conn))
}

// handleClient is the shared client handling logic for both telnet and
// WebSocket. A panic anywhere in the session must not take down the
// process or any other connection.
func (s *Server) handleClient(client Client) {
	session := NewSession(client, s.world)
	logger.Info("Client connected", "remote_addr", client.RemoteAddr(), "session", session.ID())

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Session panicked", "session", session.ID(), "panic", r)
			client.Close()
		}
		logger.Info("Client disconnected", "session", session.ID())
	}()

	session.Run()
}

// StartWebSocket starts the WebSocket listener on the given address.
func (s *Server) StartWebSocket(address string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocketUpgrade)

	logger.Info("WebSocket server listening", "address", address)
	return http.ListenAndServe(address, mux)
}

// handleWebSocketUpgrade upgrades an HTTP connection to WebSocket.
func (s *Server) handleWebSocketUpgrade(w http.ResponseWriter, r *http.Request) {
	clientIP := extractIP(r.RemoteAddr)

	if !s.connLimiter.TryAcquire(clientIP) {
		logger.Warning("WebSocket connection rejected - limit exceeded",
			"remote_addr", r.RemoteAddr)
		http.Error(w, "Too many connections. Please try again later.", http.StatusTooManyRequests)
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			allowed := s.cfg.WebSocket.IsOriginAllowed(origin, r.Host)
			if !allowed {
				logger.Warning("WebSocket connection rejected - origin not allowed",
					"origin", origin,
					"host", r.Host,
					"remote_addr", r.RemoteAddr)
			}
			return allowed
		},
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", "error", err)
		s.connLimiter.Release(clientIP)
		return
	}

	go func() {
		defer func() {
			s.connLimiter.Release(clientIP)
			wsConn.Close()
		}()
		s.handleClient(NewWebSocketClient(wsConn))
	}()
}
