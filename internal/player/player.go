package player

import (
	"sync"

	"github.com/lawnchairsociety/shatteredrealms/server/internal/leveling"
)

// Starting stats for a freshly created character
const (
	StartingMaxHealth  = 20
	StartingMaxStamina = 10
)

// Player represents one human participant, created at connection time
// and destroyed at disconnect.
type Player struct {
	Name       string
	RoomID     string
	Role       Role
	Level      int
	XP         int
	Health     int
	MaxHealth  int
	Stamina    int
	MaxStamina int
	mu         sync.RWMutex
}

// NewPlayer creates a level 1 player in the given room.
func NewPlayer(name, roomID string) *Player {
	return &Player{
		Name:       name,
		RoomID:     roomID,
		Role:       RolePlayer,
		Level:      1,
		XP:         0,
		Health:     StartingMaxHealth,
		MaxHealth:  StartingMaxHealth,
		Stamina:    StartingMaxStamina,
		MaxStamina: StartingMaxStamina,
	}
}

// GetName returns the player's name
func (p *Player) GetName() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Name
}

// GetRoomID returns the player's current room id
func (p *Player) GetRoomID() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.RoomID
}

// SetRoomID moves the player to a new room id
func (p *Player) SetRoomID(roomID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.RoomID = roomID
}

// GetRole returns the player's role
func (p *Player) GetRole() Role {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Role
}

// SetRole changes the player's role
func (p *Player) SetRole(role Role) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Role = role
}

// IsAdmin returns true if the player holds the admin role
func (p *Player) IsAdmin() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Role == RoleAdmin
}

// GetLevel returns the player's level
func (p *Player) GetLevel() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Level
}

// GetExperience returns the player's experience points
func (p *Player) GetExperience() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.XP
}

// GetHealth returns current and maximum health
func (p *Player) GetHealth() (int, int) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Health, p.MaxHealth
}

// GetStamina returns current and maximum stamina
func (p *Player) GetStamina() (int, int) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Stamina, p.MaxStamina
}

// GainExperience adds XP (which may be negative) and applies any level-ups
// the new total qualifies for, up to the level cap. Each level gained raises
// the health and stamina caps and restores both to full.
func (p *Player) GainExperience(xp int) []leveling.LevelUpInfo {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.XP += xp

	var levelUps []leveling.LevelUpInfo
	for leveling.CanLevelUp(p.XP, p.Level) {
		p.Level++

		p.MaxHealth += leveling.HPPerLevel
		p.Health = p.MaxHealth

		p.MaxStamina += leveling.StaminaPerLevel
		p.Stamina = p.MaxStamina

		levelUps = append(levelUps, leveling.LevelUpInfo{
			NewLevel:    p.Level,
			HPGain:      leveling.HPPerLevel,
			StaminaGain: leveling.StaminaPerLevel,
		})
	}

	return levelUps
}
