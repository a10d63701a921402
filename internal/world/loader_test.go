package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lawnchairsociety/shatteredrealms/server/internal/npc"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInitialize(t *testing.T) {
	dir := t.TempDir()

	roomsPath := writeFile(t, dir, "rooms.yaml", `
rooms:
  lobby:
    name: "The Void Lobby"
    description: "An endless grey expanse."
    brief: "Grey expanse."
    sanctuary: true
    exits:
      north: hall
  hall:
    description: "Columns lean at odd angles."
    exits:
      south: lobby
      east: gallery
`)
	npcsPath := writeFile(t, dir, "npcs.yaml", `
npcs:
  gatekeeper:
    name: "The Gatekeeper"
    room: lobby
    tethered: true
  wisp:
    name: "Echo Wisp"
    room: hall
    wander_mode: path
    wander_path: [hall, lobby]
  homeless:
    name: "Lost Soul"
`)

	w := NewWorld()
	if err := w.Initialize(roomsPath, npcsPath); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if w.RoomCount() != 2 {
		t.Errorf("expected 2 rooms, got %d", w.RoomCount())
	}

	lobby, err := w.GetRoom("lobby")
	if err != nil {
		t.Fatalf("lobby missing: %v", err)
	}
	if !lobby.Sanctuary {
		t.Error("expected lobby to be a sanctuary")
	}
	if dest, ok := lobby.Exit("north"); !ok || dest != "hall" {
		t.Errorf("expected north exit to hall, got %q", dest)
	}

	// Unnamed room falls back to its id for name and brief
	hall, _ := w.GetRoom("hall")
	if hall.Name != "hall" || hall.Brief != "hall" {
		t.Errorf("expected fallback name/brief, got %q / %q", hall.Name, hall.Brief)
	}

	// NPC with no starting room is skipped; the rest load
	if len(w.AllNPCs()) != 2 {
		t.Errorf("expected 2 NPCs, got %d", len(w.AllNPCs()))
	}
	if w.GetNPC("homeless") != nil {
		t.Error("NPC without a room should be skipped")
	}
	if wisp := w.GetNPC("wisp"); wisp == nil || wisp.Wander != npc.WanderPath {
		t.Error("expected wisp with path wander mode")
	}
}

func TestInitializeMissingRoomsFile(t *testing.T) {
	w := NewWorld()
	err := w.Initialize(filepath.Join(t.TempDir(), "nope.yaml"), "")
	if err == nil {
		t.Fatal("expected an error for a missing rooms file")
	}
}

func TestInitializeMissingNPCsFileIsFine(t *testing.T) {
	dir := t.TempDir()
	roomsPath := writeFile(t, dir, "rooms.yaml", "rooms:\n  lobby:\n    name: Lobby\n")

	w := NewWorld()
	if err := w.Initialize(roomsPath, filepath.Join(dir, "nope.yaml")); err != nil {
		t.Fatalf("missing NPCs file should not be an error: %v", err)
	}
	if w.RoomCount() != 1 {
		t.Errorf("expected 1 room, got %d", w.RoomCount())
	}
}
