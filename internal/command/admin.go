package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lawnchairsociety/shatteredrealms/server/internal/logger"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/npc"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/player"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/text"
)

// isAdmin reports whether the acting session holds the admin role.
func isAdmin(s Session) bool {
	p := s.Player()
	return p != nil && p.IsAdmin()
}

// executeSetRole handles: setrole <name> <role>. Admin only.
func executeSetRole(s Session, args []string) {
	if !isAdmin(s) {
		s.SendLine(text.Colorize("You lack the authority to reshape destiny.", text.StyleError, s.ColorEnabled()))
		return
	}

	if len(args) != 2 {
		s.SendLine("Usage: setrole <name> <role>")
		return
	}

	targetName := args[0]
	newRole, ok := player.ParseRole(strings.ToLower(args[1]))
	if !ok {
		s.SendLine("Invalid role. Choose: player, wizard, gm, admin.")
		return
	}

	target, err := s.World().GetPlayer(targetName)
	if err != nil {
		s.SendLine(fmt.Sprintf("No such player: %s", targetName))
		return
	}

	target.SetRole(newRole)
	logger.Info("Role changed", "admin", displayName(s), "target", target.GetName(), "role", newRole.String())
	s.SendLine(fmt.Sprintf("Role of %s set to %s.", targetName, newRole))
}

// executeAddXP grants experience to the acting player, applying any
// level-ups the new total earns. Admin only. Usage: addxp <amount>
func executeAddXP(s Session, args []string) {
	if !isAdmin(s) {
		s.SendLine(text.Colorize("No.", text.StyleError, s.ColorEnabled()))
		return
	}

	if len(args) == 0 {
		s.SendLine("Usage: addxp <amount>")
		return
	}

	amount, err := strconv.Atoi(args[0])
	if err != nil {
		s.SendLine("XP must be a number.")
		return
	}

	p := s.Player()
	levelUps := p.GainExperience(amount)
	for _, up := range levelUps {
		logger.Info("Player advanced a level", "player", p.GetName(), "level", up.NewLevel)
	}

	msg := fmt.Sprintf("Gave %d XP. You are now level %d.", amount, p.GetLevel())
	s.SendLine(text.Colorize(msg, text.StyleSystem, s.ColorEnabled()))
}

// executeKillNPC removes an NPC from the world. Admin only.
// Usage: killnpc <id-or-name-prefix>
func executeKillNPC(s Session, args []string) {
	if !isAdmin(s) {
		s.SendLine(text.Colorize("Only a true Admin can rewrite legends.", text.StyleError, s.ColorEnabled()))
		return
	}

	if len(args) == 0 {
		s.SendLine("Usage: killnpc <id-or-name-prefix>")
		return
	}

	targetArg := strings.ToLower(strings.Join(args, " "))
	w := s.World()

	// Exact id first; otherwise prefix match on name, ties broken by the
	// lexicographically smallest id.
	target := w.GetNPC(targetArg)
	if target == nil {
		for _, n := range w.AllNPCs() {
			if strings.HasPrefix(strings.ToLower(n.GetName()), targetArg) {
				target = n
				break
			}
		}
	}

	if target == nil {
		s.SendLine(fmt.Sprintf("No NPC found matching '%s'.", targetArg))
		return
	}

	announceNPCRemoval(s, target)
	w.RemoveNPC(target.ID)
	logger.Info("NPC removed", "admin", displayName(s), "npc", target.ID)

	s.SendLine(fmt.Sprintf("%s has been removed from the Shattered Realms.", target.GetName()))
}

func announceNPCRemoval(s Session, target *npc.NPC) {
	for _, other := range s.World().SessionsInRoom(target.GetRoomID()) {
		coloredName := text.Colorize(target.GetName(), text.StyleNPCName, other.ColorEnabled())
		other.SendLine(fmt.Sprintf("%s flickers and vanishes from the realm.", coloredName))
	}
}
