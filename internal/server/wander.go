package server

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/lawnchairsociety/shatteredrealms/server/internal/logger"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/npc"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/text"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/world"
)

// WanderManager advances roaming NPC positions on a fixed interval,
// concurrently with all player traffic.
type WanderManager struct {
	world    *world.World
	interval time.Duration
	stopChan chan struct{}
	rng      *rand.Rand
}

// NewWanderManager creates a wander manager for the given world.
func NewWanderManager(w *world.World, interval time.Duration) *WanderManager {
	return &WanderManager{
		world:    w,
		interval: interval,
		stopChan: make(chan struct{}),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start begins the wander loop.
func (m *WanderManager) Start() {
	go m.loop()
}

// Stop stops the wander loop.
func (m *WanderManager) Stop() {
	close(m.stopChan)
}

func (m *WanderManager) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.RunPass()
		case <-m.stopChan:
			return
		}
	}
}

// RunPass advances every roaming NPC one step. A failure in one pass is
// logged and never stops the schedule.
func (m *WanderManager) RunPass() {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("NPC wander pass failed", "panic", r)
		}
	}()

	// Snapshot: the NPC set can shrink (killnpc) while we notify rooms
	for _, n := range m.world.AllNPCs() {
		if n.IsTethered() {
			continue
		}

		switch n.GetWanderMode() {
		case npc.WanderNone:
			continue
		case npc.WanderPath:
			if dest, ok := n.NextPathStep(); ok {
				m.moveNPC(n, dest)
			}
		case npc.WanderGlobal:
			m.wanderGlobal(n)
		}
	}
}

// wanderGlobal picks one exit destination uniformly at random from the
// NPC's current room. Rooms with no exits, or NPCs standing in a room
// that no longer resolves, stay put.
func (m *WanderManager) wanderGlobal(n *npc.NPC) {
	room, err := m.world.GetRoom(n.GetRoomID())
	if err != nil {
		return
	}
	if len(room.Exits) == 0 {
		return
	}

	directions := make([]string, 0, len(room.Exits))
	for direction := range room.Exits {
		directions = append(directions, direction)
	}
	sort.Strings(directions)

	dest := room.Exits[directions[m.rng.Intn(len(directions))]]
	m.moveNPC(n, dest)
}

// moveNPC relocates an NPC with the same snapshot-then-notify discipline
// as player movement. Moves to the current room or to rooms that don't
// exist are silently discarded; NPC movement failures are never
// user-facing.
func (m *WanderManager) moveNPC(n *npc.NPC, destID string) {
	oldRoomID := n.GetRoomID()
	if destID == oldRoomID {
		return
	}
	if !m.world.HasRoom(destID) {
		return
	}

	name := n.GetName()

	for _, session := range m.world.SessionsInRoom(oldRoomID) {
		coloredName := text.Colorize(name, text.StyleNPCName, session.ColorEnabled())
		session.SendLine(fmt.Sprintf("%s leaves the room.", coloredName))
	}

	n.SetRoomID(destID)

	for _, session := range m.world.SessionsInRoom(destID) {
		coloredName := text.Colorize(name, text.StyleNPCName, session.ColorEnabled())
		session.SendLine(fmt.Sprintf("%s enters the room.", coloredName))
	}
}
