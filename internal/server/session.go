package server

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/google/uuid"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/command"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/logger"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/player"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/text"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/world"
)

const (
	// DefaultRoomID is where sessions live before naming completes and
	// where new players start.
	DefaultRoomID = "lobby"

	// MaxNameLength bounds player names, in runes.
	MaxNameLength = 16

	// FallbackName is the placeholder identity for clients that hang up
	// mid-naming.
	FallbackName = "Wanderer"
)

// SessionState tracks where a session is in its lifecycle.
type SessionState int

const (
	StateConnecting SessionState = iota
	StateNaming
	StateActive
	StateClosing
	StateClosed
)

var welcomeBanner = strings.TrimLeft(`
========================================
   Shattered Realms MUD  (v0.1.0)
========================================`, "\n")

// Session is the live, per-connection actor. It owns the transport and,
// after naming, a Player, and presents both to the rest of the system.
type Session struct {
	id     string
	client Client
	world  *world.World

	mu           sync.RWMutex
	state        SessionState
	player       *player.Player
	colorEnabled bool

	teardownOnce sync.Once
}

// NewSession creates a session for a freshly accepted connection.
func NewSession(client Client, w *world.World) *Session {
	return &Session{
		id:           uuid.NewString(),
		client:       client,
		world:        w,
		state:        StateConnecting,
		colorEnabled: true,
	}
}

// ID returns the session's unique id, used for log correlation.
func (s *Session) ID() string {
	return s.id
}

// World returns the shared world registry.
func (s *Session) World() *world.World {
	return s.world
}

// Player returns the session's player, or nil before naming completes.
func (s *Session) Player() *player.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player
}

// RoomID returns the player's current room, or the lobby before naming.
// The indirection lets command code address "the session's room"
// uniformly before and after naming.
func (s *Session) RoomID() string {
	s.mu.RLock()
	p := s.player
	s.mu.RUnlock()

	if p == nil {
		return DefaultRoomID
	}
	return p.GetRoomID()
}

// ColorEnabled returns the session's color preference.
func (s *Session) ColorEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.colorEnabled
}

// SetColorEnabled changes the session's color preference.
func (s *Session) SetColorEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colorEnabled = enabled
}

// State returns the session's lifecycle state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) setState(state SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// SendLine delivers one logical line to the client, normalized and
// hard-wrapped. Write errors are not surfaced to callers: a dead
// transport is detected by the session's own read loop.
func (s *Session) SendLine(line string) {
	for _, out := range text.Wrap(text.Normalize(line), text.WrapWidth) {
		if err := s.client.WriteLine(out); err != nil {
			logger.Debug("Write to client failed", "session", s.id, "error", err)
			return
		}
	}
}

// Run drives the session from greeting to teardown. Teardown executes
// exactly once on every exit path, including panics in handlers.
func (s *Session) Run() {
	defer s.teardown()

	s.SendLine(text.Colorize(welcomeBanner, text.StyleBanner, s.ColorEnabled()))
	s.SendLine(text.Colorize("You feel a cold wind as the void takes shape around you.", text.StyleSystem, s.ColorEnabled()))
	s.SendLine("")

	s.setState(StateNaming)
	p, ok := s.register()
	if !ok {
		return
	}

	s.mu.Lock()
	s.player = p
	s.state = StateActive
	s.mu.Unlock()

	name := p.GetName()
	logger.Info("Player joined", "player", name, "session", s.id)

	// Announce to everyone already in the starting room
	for _, other := range s.world.SessionsInRoom(s.RoomID()) {
		if other == world.Occupant(s) {
			continue
		}
		coloredName := text.Colorize(name, text.StylePlayerName, other.ColorEnabled())
		other.SendLine(fmt.Sprintf("%s enters the room.", coloredName))
	}

	s.SendLine(fmt.Sprintf("Welcome, %s.", name))
	s.SendLine("Type 'look' for full description, 'ql' for brief, 'quit' to leave.")
	s.SendLine("")

	// Initial quick look at the starting room
	command.Dispatch(s, "ql")

	for {
		line, err := s.client.ReadLine()
		if err != nil {
			break
		}
		if !command.Dispatch(s, line) {
			break
		}
	}
}

// register runs the naming protocol until a unique name is claimed in
// the registry. The prompt repeats on empty or taken names; end-of-stream
// falls back to the placeholder identity. Registration itself is the
// uniqueness arbiter, so two sessions racing for the same name can both
// pass the pre-check but only one wins the claim.
func (s *Session) register() (*player.Player, bool) {
	for {
		name, alive := s.askName()

		p := player.NewPlayer(name, DefaultRoomID)
		err := s.world.RegisterPlayer(p, s)
		if err == nil {
			return p, true
		}

		if !alive {
			// Lost the fallback name to another session while the
			// client is already gone; nothing left to do.
			logger.Debug("Fallback name unavailable", "session", s.id, "name", name)
			return nil, false
		}
		s.SendLine("That name is already in use. Choose another.")
	}
}

// askName prompts until the client supplies a plausible name. The second
// return is false when the stream ended and the fallback name is in play.
func (s *Session) askName() (string, bool) {
	for {
		s.SendLine("By what name are you known in the Shattered Realms?")
		s.SendLine("> ")

		line, err := s.client.ReadLine()
		if err != nil {
			return FallbackName, false
		}

		name := SanitizeName(line)
		if name == "" {
			s.SendLine("That name rings hollow. Try something else.")
			continue
		}

		if s.world.HasPlayer(name) {
			s.SendLine("That name is already in use. Choose another.")
			continue
		}

		return name, true
	}
}

// teardown announces the departure, removes the player and session from
// the registry together, and releases the transport. Runs exactly once
// no matter which exit path triggered it.
func (s *Session) teardown() {
	s.teardownOnce.Do(func() {
		s.setState(StateClosing)

		if p := s.Player(); p != nil {
			name := p.GetName()

			for _, other := range s.world.SessionsInRoom(s.RoomID()) {
				if other == world.Occupant(s) {
					continue
				}
				coloredName := text.Colorize(name, text.StylePlayerName, other.ColorEnabled())
				other.SendLine(fmt.Sprintf("%s leaves the room.", coloredName))
			}

			logger.Info("Player left", "player", name, "session", s.id)
			s.world.UnregisterPlayer(name)
		}

		s.client.Close()
		s.setState(StateClosed)
	})
}

// SanitizeName strips a raw name down to its alphanumeric characters and
// truncates to the maximum length. Returns "" if nothing usable remains.
func SanitizeName(raw string) string {
	var b strings.Builder
	count := 0
	for _, r := range strings.TrimSpace(raw) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		b.WriteRune(r)
		count++
		if count == MaxNameLength {
			break
		}
	}
	return b.String()
}
