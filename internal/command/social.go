package command

import (
	"fmt"
	"strings"

	"github.com/lawnchairsociety/shatteredrealms/server/internal/logger"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/text"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/world"
)

// executeSay speaks to everyone in the same room.
func executeSay(s Session, args []string) {
	if len(args) == 0 {
		s.SendLine(text.Colorize("Say what?", text.StyleError, s.ColorEnabled()))
		return
	}

	msgText := strings.Join(args, " ")
	name := displayName(s)

	// Chat audit trail, logged regardless of level
	logger.Always("Chat message", "player", name, "room", s.RoomID(), "message", msgText)

	for _, other := range s.World().SessionsInRoom(s.RoomID()) {
		if other == world.Occupant(s) {
			youLine := text.Colorize("You say:", text.StyleSystem, s.ColorEnabled())
			other.SendLine(fmt.Sprintf("%s %s", youLine, msgText))
		} else {
			coloredName := text.Colorize(name, text.StylePlayerName, other.ColorEnabled())
			other.SendLine(fmt.Sprintf("%s says: %s", coloredName, msgText))
		}
	}
}

// executeQuit leaves the game. Returns false to signal disconnect.
func executeQuit(s Session) bool {
	s.SendLine(text.Colorize("The world fades to black as you step away...", text.StyleSystem, s.ColorEnabled()))
	return false
}
