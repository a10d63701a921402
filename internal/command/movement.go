package command

import (
	"fmt"

	"github.com/lawnchairsociety/shatteredrealms/server/internal/text"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/world"
)

// executeMove moves the player in a direction, if possible.
//
// The notification order is load-bearing: occupants of the old room hear
// the departure before the room id mutates, occupants of the new room
// hear the arrival after, and the mover hears neither about themself.
func executeMove(s Session, direction string) {
	room, err := currentRoom(s)
	if err != nil {
		sendNowhere(s)
		return
	}

	destID, ok := room.Exit(direction)
	if !ok {
		s.SendLine(text.Colorize("You can't go that way.", text.StyleError, s.ColorEnabled()))
		return
	}

	// A dangling exit is a world-consistency error, not a user error.
	if !s.World().HasRoom(destID) {
		s.SendLine(text.Colorize(
			"You feel resistance, as if reality hasn't fully formed that way.",
			text.StyleError, s.ColorEnabled()))
		return
	}

	p := s.Player()
	if p == nil {
		sendNowhere(s)
		return
	}
	name := p.GetName()

	// Notify the old room (snapshot; the mover hears nothing)
	for _, other := range s.World().SessionsInRoom(room.ID) {
		if other == world.Occupant(s) {
			continue
		}
		coloredName := text.Colorize(name, text.StylePlayerName, other.ColorEnabled())
		other.SendLine(fmt.Sprintf("%s leaves the room.", coloredName))
	}

	// The only state transition
	p.SetRoomID(destID)

	// Notify the new room (fresh snapshot; membership just changed)
	for _, other := range s.World().SessionsInRoom(destID) {
		if other == world.Occupant(s) {
			continue
		}
		coloredName := text.Colorize(name, text.StylePlayerName, other.ColorEnabled())
		other.SendLine(fmt.Sprintf("%s enters the room.", coloredName))
	}

	s.SendLine(text.Colorize(fmt.Sprintf("You go %s.", direction), text.StyleSystem, s.ColorEnabled()))
	executeQuickLook(s)
}
