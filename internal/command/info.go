package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lawnchairsociety/shatteredrealms/server/internal/leveling"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/text"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/world"
)

// executeLook shows the full room description, or examines a target.
func executeLook(s Session, args []string) {
	if len(args) > 0 {
		lookTarget(s, strings.Join(args, " "))
		return
	}

	room, err := currentRoom(s)
	if err != nil {
		sendNowhere(s)
		return
	}

	s.SendLine(text.Colorize(room.Name, text.StyleRoomName, s.ColorEnabled()))
	s.SendLine(strings.TrimRight(room.Description, "\n "))

	showRoomOccupants(s, room)

	for _, line := range formatExits(s, room) {
		s.SendLine(line)
	}
}

// executeQuickLook shows the brief room description (`ql`, empty line).
func executeQuickLook(s Session) {
	room, err := currentRoom(s)
	if err != nil {
		sendNowhere(s)
		return
	}

	s.SendLine(text.Colorize(room.Name, text.StyleRoomName, s.ColorEnabled()))
	s.SendLine(strings.TrimRight(room.Brief, "\n "))

	showRoomOccupants(s, room)

	for _, line := range formatExits(s, room) {
		s.SendLine(line)
	}
}

// executeWho shows who is online.
func executeWho(s Session) {
	players := s.World().AllPlayers()
	if len(players) == 0 {
		s.SendLine(text.Colorize("You seem to be alone in these realms.", text.StyleSystem, s.ColorEnabled()))
		return
	}

	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.GetName())
	}
	sort.Strings(names)

	s.SendLine(text.Colorize("Players currently wandering the Shattered Realms:", text.StyleSystem, s.ColorEnabled()))
	for _, name := range names {
		s.SendLine("  " + text.Colorize(name, text.StylePlayerName, s.ColorEnabled()))
	}
}

// executeStats shows the player's HP, stamina, level, and XP.
func executeStats(s Session) {
	p := s.Player()
	if p == nil {
		return
	}

	level := p.GetLevel()
	next := "MAX"
	if level < leveling.MaxPlayerLevel {
		next = fmt.Sprintf("%d", leveling.XPForLevel(level+1))
	}
	hp, maxHP := p.GetHealth()
	stamina, maxStamina := p.GetStamina()

	lines := []string{
		fmt.Sprintf("Name: %s", p.GetName()),
		fmt.Sprintf("Level: %d", level),
		fmt.Sprintf("XP: %d / %s", p.GetExperience(), next),
		fmt.Sprintf("Health: %d / %d", hp, maxHP),
		fmt.Sprintf("Stamina: %d / %d", stamina, maxStamina),
	}
	for _, line := range lines {
		s.SendLine(text.Colorize(line, text.StyleSystem, s.ColorEnabled()))
	}
}

// executeRole shows the player's current role.
func executeRole(s Session) {
	role := "unknown"
	if p := s.Player(); p != nil {
		role = p.GetRole().String()
	}
	s.SendLine(text.Colorize(fmt.Sprintf("Your role is: %s", role), text.StyleSystem, s.ColorEnabled()))
}

// executeColor shows or changes the session's color preference.
func executeColor(s Session, args []string) {
	if len(args) == 0 {
		status := "off"
		if s.ColorEnabled() {
			status = "on"
		}
		s.SendLine(text.Colorize(fmt.Sprintf("Color is currently %s.", status), text.StyleSystem, s.ColorEnabled()))
		return
	}

	switch strings.ToLower(args[0]) {
	case "on", "yes", "true":
		s.SetColorEnabled(true)
		s.SendLine(text.Colorize("Color has been turned on.", text.StyleSystem, s.ColorEnabled()))
	case "off", "no", "false":
		s.SetColorEnabled(false)
		// Plain confirmation, since color is now off
		s.SendLine("Color has been turned off.")
	default:
		s.SendLine(text.Colorize("Usage: color [on|off]", text.StyleError, s.ColorEnabled()))
	}
}

// lookTarget handles 'look <target>' for NPCs and players in the current
// room. Targets prefix-match case-insensitively, NPCs before players.
func lookTarget(s Session, target string) {
	targetLower := strings.ToLower(strings.TrimSpace(target))
	if targetLower == "" {
		executeLook(s, nil)
		return
	}

	roomID := s.RoomID()

	for _, n := range s.World().NPCsInRoom(roomID) {
		if !strings.HasPrefix(strings.ToLower(n.GetName()), targetLower) {
			continue
		}
		s.SendLine(text.Colorize(n.GetName(), text.StyleNPCName, s.ColorEnabled()))
		if desc := n.GetDescription(); desc != "" {
			s.SendLine(desc)
		}
		if aggro := n.GetAggro(); aggro > 0 {
			s.SendLine(text.Colorize(fmt.Sprintf("  Aggression: %d/10", aggro), text.StyleSystem, s.ColorEnabled()))
		}
		return
	}

	self := s.Player()
	for _, p := range s.World().PlayersInRoom(roomID) {
		if p == self {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(p.GetName()), targetLower) {
			continue
		}
		s.SendLine(text.Colorize(p.GetName(), text.StylePlayerName, s.ColorEnabled()))
		s.SendLine(text.Colorize(fmt.Sprintf("Level %d %s", p.GetLevel(), p.GetRole()), text.StyleSystem, s.ColorEnabled()))
		return
	}

	s.SendLine(text.Colorize("You don't see that here.", text.StyleError, s.ColorEnabled()))
}

// showRoomOccupants lists the other players and the NPCs sharing the
// session's room.
func showRoomOccupants(s Session, room *world.Room) {
	self := s.Player()

	var others []string
	for _, p := range s.World().PlayersInRoom(room.ID) {
		if p == self {
			continue
		}
		others = append(others, text.Colorize(p.GetName(), text.StylePlayerName, s.ColorEnabled()))
	}
	if len(others) > 0 {
		sort.Strings(others)
		s.SendLine("Also here: " + strings.Join(others, ", "))
	}

	npcs := s.World().NPCsInRoom(room.ID)
	if len(npcs) > 0 {
		s.SendLine(text.Colorize("You notice:", text.StyleSystem, s.ColorEnabled()))
		for _, n := range npcs {
			name := text.Colorize(n.GetName(), text.StyleNPCName, s.ColorEnabled())
			if desc := n.GetDescription(); desc != "" {
				s.SendLine(fmt.Sprintf("  %s, %s", name, desc))
			} else {
				s.SendLine("  " + name)
			}
		}
	}
}

// formatExits returns the exit listing for a room, one destination per
// line, sorted by direction. Dangling exits show as "(unknown)".
func formatExits(s Session, room *world.Room) []string {
	if len(room.Exits) == 0 {
		return []string{text.Colorize("Exits: none", text.StyleSystem, s.ColorEnabled())}
	}

	directions := make([]string, 0, len(room.Exits))
	for direction := range room.Exits {
		directions = append(directions, direction)
	}
	sort.Strings(directions)

	lines := []string{text.Colorize("Exits:", text.StyleSystem, s.ColorEnabled())}
	for _, direction := range directions {
		destName := "(unknown)"
		if dest, err := s.World().GetRoom(room.Exits[direction]); err == nil {
			destName = dest.Name
		}

		dirC := text.Colorize(capitalize(direction), text.StylePlayerName, s.ColorEnabled())
		nameC := text.Colorize(destName, text.StyleRoomName, s.ColorEnabled())
		lines = append(lines, fmt.Sprintf("  %s -> %s", dirC, nameC))
	}

	return lines
}

// currentRoom resolves the session's room against the registry.
func currentRoom(s Session) (*world.Room, error) {
	return s.World().GetRoom(s.RoomID())
}

func sendNowhere(s Session) {
	s.SendLine(text.Colorize("You drift in the formless void.", text.StyleError, s.ColorEnabled()))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
