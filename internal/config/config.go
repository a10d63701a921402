package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds server-wide configuration settings.
type ServerConfig struct {
	Listen      ListenConfig      `yaml:"listen"`
	WebSocket   WebSocketConfig   `yaml:"websocket"`
	Connections ConnectionsConfig `yaml:"connections"`
	NPC         NPCConfig         `yaml:"npc"`
}

// ListenConfig holds the telnet listener settings.
type ListenConfig struct {
	// Host is the interface to bind. Empty binds all interfaces.
	Host string `yaml:"host"`

	// Port is the telnet listener port.
	Port int `yaml:"port"`
}

// WebSocketConfig holds WebSocket-specific settings.
type WebSocketConfig struct {
	// Enabled controls whether the WebSocket listener starts at all.
	Enabled bool `yaml:"enabled"`

	// Port is the WebSocket listener port.
	Port int `yaml:"port"`

	// AllowedOrigins is a list of origins allowed to connect via WebSocket.
	// Empty list enforces same-origin policy.
	// Use "*" to allow all origins (not recommended for production).
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// ConnectionsConfig holds connection limit settings.
type ConnectionsConfig struct {
	// MaxPerIP is the maximum concurrent connections allowed from a single IP address.
	// 0 means unlimited.
	MaxPerIP int `yaml:"max_per_ip"`

	// MaxTotal is the maximum total concurrent connections to the server.
	// 0 means unlimited.
	MaxTotal int `yaml:"max_total"`
}

// NPCConfig holds NPC behavior settings.
type NPCConfig struct {
	// WanderIntervalSeconds is how often roaming NPCs take a step.
	WanderIntervalSeconds int `yaml:"wander_interval_seconds"`
}

// DefaultConfig returns a ServerConfig with sensible defaults.
func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		Listen: ListenConfig{
			Host: "", // All interfaces
			Port: 4000,
		},
		WebSocket: WebSocketConfig{
			Enabled:        false,
			Port:           4443,
			AllowedOrigins: []string{},
		},
		Connections: ConnectionsConfig{
			MaxPerIP: 3,
			MaxTotal: 100,
		},
		NPC: NPCConfig{
			WanderIntervalSeconds: 10,
		},
	}
}

// LoadConfig loads server configuration from a YAML file.
// If the file doesn't exist or can't be parsed, returns default config.
func LoadConfig(path string) (*ServerConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil // Use defaults if file doesn't exist
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	if config.Listen.Port == 0 {
		config.Listen.Port = 4000
	}
	if config.NPC.WanderIntervalSeconds <= 0 {
		config.NPC.WanderIntervalSeconds = 10
	}

	return config, nil
}

// IsOriginAllowed checks if the given origin is allowed based on the config.
// Returns true if:
// - AllowedOrigins contains "*" (allow all)
// - AllowedOrigins contains the exact origin
// - AllowedOrigins is empty and origin matches the request host (same-origin)
func (c *WebSocketConfig) IsOriginAllowed(origin, requestHost string) bool {
	if len(c.AllowedOrigins) == 0 {
		return isSameOrigin(origin, requestHost)
	}

	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" {
			return true
		}
		if allowed == origin {
			return true
		}
	}

	return false
}

// isSameOrigin checks if the origin matches the request host (same-origin policy).
func isSameOrigin(origin, requestHost string) bool {
	if origin == "" {
		return true // No origin header means same-origin (e.g., non-browser client)
	}

	originHost := origin
	if idx := strings.Index(origin, "://"); idx != -1 {
		originHost = origin[idx+3:]
	}
	originHost = strings.TrimSuffix(originHost, "/")

	return originHost == requestHost
}
