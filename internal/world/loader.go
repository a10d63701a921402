package world

import (
	"fmt"
	"os"

	"github.com/lawnchairsociety/shatteredrealms/server/internal/logger"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/npc"
	"gopkg.in/yaml.v3"
)

// RoomDefinition represents a room definition from the YAML file
type RoomDefinition struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Brief       string            `yaml:"brief"`
	Exits       map[string]string `yaml:"exits"`
	Sanctuary   bool              `yaml:"sanctuary"`
}

// RoomsConfig represents the structure of the rooms.yaml file
type RoomsConfig struct {
	Rooms map[string]RoomDefinition `yaml:"rooms"`
}

// LoadRoomsFromYAML loads room definitions from a YAML file.
func LoadRoomsFromYAML(filename string) (*RoomsConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read rooms file: %w", err)
	}

	var config RoomsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse rooms YAML: %w", err)
	}

	return &config, nil
}

// Initialize populates the world from YAML files: rooms first, then NPCs,
// so NPC room references resolve against an already-populated room set.
// NPCs whose rooms turn out invalid are kept anyway; movement code
// tolerates them at use time.
func (w *World) Initialize(roomsPath, npcsPath string) error {
	roomsConfig, err := LoadRoomsFromYAML(roomsPath)
	if err != nil {
		return fmt.Errorf("failed to load rooms: %w", err)
	}

	for id, def := range roomsConfig.Rooms {
		name := def.Name
		if name == "" {
			name = id
		}
		brief := def.Brief
		if brief == "" {
			brief = name
		}

		room := NewRoom(id, name, def.Description, brief)
		room.Sanctuary = def.Sanctuary
		for direction, dest := range def.Exits {
			room.Exits[direction] = dest
		}
		w.AddRoom(room)
	}

	logger.Info("Rooms loaded", "path", roomsPath, "rooms", w.RoomCount())

	// Dangling exits are tolerated but worth a warning at load time.
	for _, id := range w.roomIDs() {
		room, _ := w.GetRoom(id)
		for direction, dest := range room.Exits {
			if !w.HasRoom(dest) {
				logger.Warning("Room exit points to unknown room",
					"room", id, "direction", direction, "dest", dest)
			}
		}
	}

	npcsConfig, err := npc.LoadNPCsFromYAML(npcsPath)
	if err != nil {
		return fmt.Errorf("failed to load NPCs: %w", err)
	}

	loaded := 0
	for id, def := range npcsConfig.NPCs {
		if def.Room == "" {
			logger.Warning("NPC definition has no starting room, skipping", "npc", id)
			continue
		}
		if !w.HasRoom(def.Room) {
			logger.Warning("NPC starting room does not exist",
				"npc", id, "room", def.Room)
		}
		w.AddNPC(npc.CreateNPCFromDefinition(id, def))
		loaded++
	}

	logger.Info("NPCs loaded", "path", npcsPath, "npcs", loaded)
	return nil
}

func (w *World) roomIDs() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	ids := make([]string, 0, len(w.rooms))
	for id := range w.rooms {
		ids = append(ids, id)
	}
	return ids
}
