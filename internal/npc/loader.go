package npc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NPCDefinition represents an NPC definition from the YAML file
type NPCDefinition struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Room        string   `yaml:"room"`        // Starting room id (required)
	Home        string   `yaml:"home"`        // Home room id (defaults to starting room)
	Tethered    bool     `yaml:"tethered"`    // Never moves if set
	WanderMode  string   `yaml:"wander_mode"` // none, path, or global
	WanderPath  []string `yaml:"wander_path"` // Room ids for path wandering
	Aggro       int      `yaml:"aggro"`       // 0-10, informational for now
}

// NPCsConfig represents the structure of the npcs.yaml file
type NPCsConfig struct {
	NPCs map[string]NPCDefinition `yaml:"npcs"`
}

// LoadNPCsFromYAML loads NPC definitions from a YAML file.
// A missing file is not an error: it simply means no NPCs are defined.
func LoadNPCsFromYAML(filename string) (*NPCsConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return &NPCsConfig{NPCs: make(map[string]NPCDefinition)}, nil
		}
		return nil, fmt.Errorf("failed to read NPCs file: %w", err)
	}

	var config NPCsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse NPCs YAML: %w", err)
	}
	if config.NPCs == nil {
		config.NPCs = make(map[string]NPCDefinition)
	}

	return &config, nil
}

// CreateNPCFromDefinition creates an NPC from an NPCDefinition.
// The aggro level is clamped to the 0-10 range.
func CreateNPCFromDefinition(id string, def NPCDefinition) *NPC {
	home := def.Home
	if home == "" {
		home = def.Room
	}

	aggro := def.Aggro
	if aggro < 0 {
		aggro = 0
	}
	if aggro > 10 {
		aggro = 10
	}

	name := def.Name
	if name == "" {
		name = id
	}

	return &NPC{
		ID:          id,
		Name:        name,
		Description: def.Description,
		RoomID:      def.Room,
		HomeID:      home,
		Tethered:    def.Tethered,
		Wander:      ParseWanderMode(def.WanderMode),
		WanderPath:  def.WanderPath,
		Aggro:       aggro,
	}
}
