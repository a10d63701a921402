package world

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/lawnchairsociety/shatteredrealms/server/internal/npc"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/player"
)

var (
	// ErrRoomNotFound is returned when a room id resolves to no room.
	ErrRoomNotFound = errors.New("room not found")

	// ErrPlayerNotFound is returned when a player name resolves to no player.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrNameTaken is returned when registering a player whose name is
	// already in use (case-insensitive).
	ErrNameTaken = errors.New("name already in use")
)

// Occupant is the narrow view of a live session the rest of the system
// depends on. The NPC wander ticker and future non-human actors use the
// same notification path as player movement through this interface.
type Occupant interface {
	RoomID() string
	SendLine(text string)
	ColorEnabled() bool
}

// World owns all shared mutable state: rooms, players, NPCs, and live
// session handles. There is exactly one World per running server, created
// in main and passed by reference into every component.
//
// A single coarse lock guards the maps. Every membership query returns a
// materialized snapshot, never the live map, so callers that notify other
// sessions while iterating can tolerate concurrent joins, moves, and
// disconnects.
type World struct {
	rooms    map[string]*Room          // Write-once at load, read-only after
	players  map[string]*player.Player // Key is the lowercased name
	sessions map[string]Occupant       // Kept in lockstep with players
	npcs     map[string]*npc.NPC       // Write-once membership, mutable location
	mu       sync.RWMutex
}

// NewWorld creates an empty world registry.
func NewWorld() *World {
	return &World{
		rooms:    make(map[string]*Room),
		players:  make(map[string]*player.Player),
		sessions: make(map[string]Occupant),
		npcs:     make(map[string]*npc.NPC),
	}
}

// ---- Rooms ----

// AddRoom adds a room to the world.
func (w *World) AddRoom(room *Room) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rooms[room.ID] = room
}

// GetRoom returns the room with the given id.
func (w *World) GetRoom(id string) (*Room, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	room, ok := w.rooms[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, id)
	}
	return room, nil
}

// HasRoom reports whether a room id exists.
func (w *World) HasRoom(id string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.rooms[id]
	return ok
}

// RoomCount returns the number of loaded rooms.
func (w *World) RoomCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.rooms)
}

// ---- Players ----

// RegisterPlayer adds a player and its session to the registry as one
// atomic operation, enforcing case-insensitive name uniqueness. Of any
// number of concurrent registrations for the same name, exactly one wins.
func (w *World) RegisterPlayer(p *player.Player, s Occupant) error {
	key := strings.ToLower(p.GetName())

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, taken := w.players[key]; taken {
		return fmt.Errorf("%w: %s", ErrNameTaken, p.GetName())
	}

	w.players[key] = p
	w.sessions[key] = s
	return nil
}

// UnregisterPlayer removes a player and its session together. Removing a
// name that is not registered is a no-op.
func (w *World) UnregisterPlayer(name string) {
	key := strings.ToLower(name)

	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.players, key)
	delete(w.sessions, key)
}

// GetPlayer returns the player with the given name, case-insensitive.
func (w *World) GetPlayer(name string) (*player.Player, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	p, ok := w.players[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, name)
	}
	return p, nil
}

// HasPlayer reports whether a player name is registered, case-insensitive.
func (w *World) HasPlayer(name string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.players[strings.ToLower(name)]
	return ok
}

// AllPlayers returns a snapshot of all registered players.
func (w *World) AllPlayers() []*player.Player {
	w.mu.RLock()
	defer w.mu.RUnlock()

	players := make([]*player.Player, 0, len(w.players))
	for _, p := range w.players {
		players = append(players, p)
	}
	return players
}

// PlayersInRoom returns a snapshot of players currently in the given room.
func (w *World) PlayersInRoom(roomID string) []*player.Player {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var players []*player.Player
	for _, p := range w.players {
		if p.GetRoomID() == roomID {
			players = append(players, p)
		}
	}
	return players
}

// ---- Sessions ----

// SessionsInRoom returns a snapshot of live sessions whose current room
// matches the given id.
func (w *World) SessionsInRoom(roomID string) []Occupant {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var sessions []Occupant
	for _, s := range w.sessions {
		if s.RoomID() == roomID {
			sessions = append(sessions, s)
		}
	}
	return sessions
}

// SessionCount returns the number of live sessions.
func (w *World) SessionCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.sessions)
}

// ---- NPCs ----

// AddNPC adds an NPC to the world.
func (w *World) AddNPC(n *npc.NPC) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.npcs[n.ID] = n
}

// RemoveNPC deletes an NPC by id. Returns false if no such NPC exists.
func (w *World) RemoveNPC(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.npcs[id]; !ok {
		return false
	}
	delete(w.npcs, id)
	return true
}

// GetNPC returns the NPC with the given id, or nil.
func (w *World) GetNPC(id string) *npc.NPC {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.npcs[id]
}

// AllNPCs returns a snapshot of all NPCs, sorted by id so iteration order
// is deterministic (prefix matching and the wander ticker rely on this).
func (w *World) AllNPCs() []*npc.NPC {
	w.mu.RLock()
	defer w.mu.RUnlock()

	npcs := make([]*npc.NPC, 0, len(w.npcs))
	for _, n := range w.npcs {
		npcs = append(npcs, n)
	}
	sort.Slice(npcs, func(i, j int) bool { return npcs[i].ID < npcs[j].ID })
	return npcs
}

// NPCsInRoom returns a snapshot of NPCs currently in the given room,
// sorted by id.
func (w *World) NPCsInRoom(roomID string) []*npc.NPC {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var npcs []*npc.NPC
	for _, n := range w.npcs {
		if n.GetRoomID() == roomID {
			npcs = append(npcs, n)
		}
	}
	sort.Slice(npcs, func(i, j int) bool { return npcs[i].ID < npcs[j].ID })
	return npcs
}
