package command

import (
	"strings"

	"github.com/lawnchairsociety/shatteredrealms/server/internal/player"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/text"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/world"
)

// Session is the capability surface command handlers need from the
// connection layer. *server.Session satisfies it; tests use fakes.
type Session interface {
	World() *world.World

	// Player returns the session's player, or nil before naming completes.
	Player() *player.Player

	// RoomID returns the player's room, or the lobby before naming.
	RoomID() string

	// SendLine delivers one logical line of text to the client.
	SendLine(text string)

	ColorEnabled() bool
	SetColorEnabled(enabled bool)
}

// Kind identifies a command over the fixed, closed set of verbs. Using an
// enumerated type keeps the dispatch switch exhaustive.
type Kind int

const (
	KindUnknown Kind = iota
	KindLook
	KindQuickLook
	KindQuit
	KindSay
	KindWho
	KindColor
	KindStats
	KindRole
	KindMove
	KindSetRole
	KindAddXP
	KindKillNPC
)

// Command is one parsed input line.
type Command struct {
	Kind      Kind
	Direction string // Set for KindMove only
	Args      []string
}

// directionAliases maps single-letter shortcuts to full direction names.
var directionAliases = map[string]string{
	"n": "north",
	"s": "south",
	"e": "east",
	"w": "west",
	"u": "up",
	"d": "down",
}

// Parse turns one raw input line into a Command. An empty line parses as
// a quick look. Verbs match case-insensitively and exactly; there is no
// prefix matching for verbs.
func Parse(input string) *Command {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Kind: KindQuickLook}
	}

	verb := strings.ToLower(parts[0])
	args := parts[1:]

	if full, ok := directionAliases[verb]; ok {
		verb = full
	}
	if world.ValidDirections[verb] {
		return &Command{Kind: KindMove, Direction: verb, Args: args}
	}

	kind := KindUnknown
	switch verb {
	case "look":
		kind = KindLook
	case "ql":
		kind = KindQuickLook
	case "quit", "exit":
		kind = KindQuit
	case "say":
		kind = KindSay
	case "who":
		kind = KindWho
	case "color":
		kind = KindColor
	case "stats":
		kind = KindStats
	case "role":
		kind = KindRole
	case "setrole":
		kind = KindSetRole
	case "addxp":
		kind = KindAddXP
	case "killnpc":
		kind = KindKillNPC
	}

	return &Command{Kind: kind, Args: args}
}

// Dispatch parses and executes one command line for a session.
// Returns false if the caller should close the connection; every other
// outcome, including errors and unknown verbs, keeps it open.
//
// Role gating happens inside each privileged handler, not here, so a
// failed authorization still consumes the line and produces a rebuke.
func Dispatch(s Session, line string) bool {
	cmd := Parse(line)

	switch cmd.Kind {
	case KindLook:
		executeLook(s, cmd.Args)
	case KindQuickLook:
		executeQuickLook(s)
	case KindQuit:
		return executeQuit(s)
	case KindSay:
		executeSay(s, cmd.Args)
	case KindWho:
		executeWho(s)
	case KindColor:
		executeColor(s, cmd.Args)
	case KindStats:
		executeStats(s)
	case KindRole:
		executeRole(s)
	case KindMove:
		executeMove(s, cmd.Direction)
	case KindSetRole:
		executeSetRole(s, cmd.Args)
	case KindAddXP:
		executeAddXP(s, cmd.Args)
	case KindKillNPC:
		executeKillNPC(s, cmd.Args)
	case KindUnknown:
		s.SendLine(text.Colorize("You mutter something unintelligible.", text.StyleError, s.ColorEnabled()))
	}

	return true
}

// displayName returns the session's player name, with a placeholder for
// sessions that have not finished naming.
func displayName(s Session) string {
	if p := s.Player(); p != nil {
		return p.GetName()
	}
	return "Someone"
}
