package npc

import "sync"

// WanderMode is the autonomous-movement policy of an NPC.
type WanderMode string

const (
	WanderNone   WanderMode = "none"   // Never moves on its own
	WanderPath   WanderMode = "path"   // Walks a fixed ordered list of rooms
	WanderGlobal WanderMode = "global" // Random walk through room exits
)

// ParseWanderMode converts a string to a WanderMode, defaulting to none.
func ParseWanderMode(s string) WanderMode {
	switch s {
	case "path":
		return WanderPath
	case "global":
		return WanderGlobal
	default:
		return WanderNone
	}
}

// NPC represents a non-player character. Definitions are loaded once at
// startup; only the room location and wander cursor mutate afterwards.
type NPC struct {
	ID          string
	Name        string
	Description string
	RoomID      string   // Current location
	HomeID      string   // Room where the NPC belongs
	Tethered    bool     // Never moves if set
	Wander      WanderMode
	WanderPath  []string // Ordered room ids for path wandering
	wanderIndex int
	Aggro       int // 0-10, reserved for future combat logic
	mu          sync.RWMutex
}

// GetName returns the NPC's name
func (n *NPC) GetName() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.Name
}

// GetDescription returns the NPC's description
func (n *NPC) GetDescription() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.Description
}

// GetRoomID returns the NPC's current room id
func (n *NPC) GetRoomID() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.RoomID
}

// SetRoomID moves the NPC to a new room id
func (n *NPC) SetRoomID(roomID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.RoomID = roomID
}

// IsTethered returns true if the NPC never moves on its own
func (n *NPC) IsTethered() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.Tethered
}

// GetWanderMode returns the NPC's wander mode
func (n *NPC) GetWanderMode() WanderMode {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.Wander
}

// GetAggro returns the NPC's aggro level
func (n *NPC) GetAggro() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.Aggro
}

// NextPathStep returns the next destination on the NPC's wander path and
// advances the cursor, wrapping to the start when it runs past the end.
// Returns false if the path is empty.
func (n *NPC) NextPathStep() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.WanderPath) == 0 {
		return "", false
	}

	if n.wanderIndex >= len(n.WanderPath) {
		n.wanderIndex = 0
	}

	dest := n.WanderPath[n.wanderIndex]
	n.wanderIndex = (n.wanderIndex + 1) % len(n.WanderPath)
	return dest, true
}
