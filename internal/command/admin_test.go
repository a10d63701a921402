package command

import (
	"testing"

	"github.com/lawnchairsociety/shatteredrealms/server/internal/npc"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/player"
)

func TestSetRoleDeniedForNonAdmin(t *testing.T) {
	w := newTestWorld(t)
	ari := join(t, w, "Ari", "lobby")
	bo := join(t, w, "Bo", "lobby")

	Dispatch(ari, "setrole Bo admin")

	if len(ari.lines) != 1 || ari.lines[0] != "You lack the authority to reshape destiny." {
		t.Errorf("unexpected output: %v", ari.lines)
	}
	if bo.p.GetRole() != player.RolePlayer {
		t.Errorf("denied setrole must not mutate the target, got %s", bo.p.GetRole())
	}
}

func TestSetRole(t *testing.T) {
	w := newTestWorld(t)
	ari := join(t, w, "Ari", "lobby")
	bo := join(t, w, "Bo", "lobby")
	ari.p.SetRole(player.RoleAdmin)

	tests := []struct {
		name     string
		line     string
		want     string
		wantRole player.Role
	}{
		{"success", "setrole Bo wizard", "Role of Bo set to wizard.", player.RoleWizard},
		{"case-insensitive role", "setrole Bo GM", "Role of Bo set to gm.", player.RoleGM},
		{"invalid role", "setrole Bo overlord", "Invalid role. Choose: player, wizard, gm, admin.", player.RoleGM},
		{"missing target", "setrole Zed admin", "No such player: Zed", player.RoleGM},
		{"usage", "setrole Bo", "Usage: setrole <name> <role>", player.RoleGM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ari.lines = nil
			Dispatch(ari, tt.line)
			if len(ari.lines) != 1 || ari.lines[0] != tt.want {
				t.Errorf("unexpected output: %v", ari.lines)
			}
			if bo.p.GetRole() != tt.wantRole {
				t.Errorf("expected Bo's role %s, got %s", tt.wantRole, bo.p.GetRole())
			}
		})
	}
}

func TestAddXPDeniedForNonAdmin(t *testing.T) {
	w := newTestWorld(t)
	ari := join(t, w, "Ari", "lobby")

	Dispatch(ari, "addxp 100")

	if len(ari.lines) != 1 || ari.lines[0] != "No." {
		t.Errorf("unexpected output: %v", ari.lines)
	}
	if ari.p.GetExperience() != 0 {
		t.Errorf("denied addxp must not grant XP, got %d", ari.p.GetExperience())
	}
}

func TestAddXP(t *testing.T) {
	w := newTestWorld(t)
	ari := join(t, w, "Ari", "lobby")
	ari.p.SetRole(player.RoleAdmin)

	Dispatch(ari, "addxp abc")
	if ari.lines[len(ari.lines)-1] != "XP must be a number." {
		t.Errorf("unexpected output: %v", ari.lines)
	}

	Dispatch(ari, "addxp")
	if ari.lines[len(ari.lines)-1] != "Usage: addxp <amount>" {
		t.Errorf("unexpected output: %v", ari.lines)
	}

	// 250 XP crosses the level 2 and level 3 thresholds in one grant
	ari.lines = nil
	Dispatch(ari, "addxp 250")
	if ari.p.GetLevel() != 3 {
		t.Errorf("expected level 3, got %d", ari.p.GetLevel())
	}
	if ari.lines[len(ari.lines)-1] != "Gave 250 XP. You are now level 3." {
		t.Errorf("unexpected output: %v", ari.lines)
	}
}

func TestKillNPCDeniedForNonAdmin(t *testing.T) {
	w := newTestWorld(t)
	ari := join(t, w, "Ari", "lobby")
	w.AddNPC(&npc.NPC{ID: "rat", Name: "Cellar Rat", RoomID: "lobby"})

	Dispatch(ari, "killnpc rat")

	if len(ari.lines) != 1 || ari.lines[0] != "Only a true Admin can rewrite legends." {
		t.Errorf("unexpected output: %v", ari.lines)
	}
	if w.GetNPC("rat") == nil {
		t.Error("denied killnpc must not remove the NPC")
	}
}

func TestKillNPCExactID(t *testing.T) {
	w := newTestWorld(t)
	ari := join(t, w, "Ari", "lobby")
	ari.p.SetRole(player.RoleAdmin)
	w.AddNPC(&npc.NPC{ID: "rat", Name: "Cellar Rat", RoomID: "hall"})

	Dispatch(ari, "killnpc rat")

	if w.GetNPC("rat") != nil {
		t.Error("expected rat to be removed")
	}
	if ari.lines[len(ari.lines)-1] != "Cellar Rat has been removed from the Shattered Realms." {
		t.Errorf("unexpected output: %v", ari.lines)
	}
}

func TestKillNPCNamePrefixTieBreak(t *testing.T) {
	w := newTestWorld(t)
	ari := join(t, w, "Ari", "lobby")
	ari.p.SetRole(player.RoleAdmin)

	// Both names share the prefix; the smaller id wins the tie
	w.AddNPC(&npc.NPC{ID: "wisp_b", Name: "Echo Wisp", RoomID: "hall"})
	w.AddNPC(&npc.NPC{ID: "wisp_a", Name: "Echo Wisp", RoomID: "hall"})

	Dispatch(ari, "killnpc echo")

	if w.GetNPC("wisp_a") != nil {
		t.Error("expected wisp_a (smallest id) to be removed")
	}
	if w.GetNPC("wisp_b") == nil {
		t.Error("wisp_b should survive the tie-break")
	}
}

func TestKillNPCNoMatch(t *testing.T) {
	w := newTestWorld(t)
	ari := join(t, w, "Ari", "lobby")
	ari.p.SetRole(player.RoleAdmin)

	Dispatch(ari, "killnpc dragon")

	if ari.lines[len(ari.lines)-1] != "No NPC found matching 'dragon'." {
		t.Errorf("unexpected output: %v", ari.lines)
	}
}

func TestKillNPCAnnouncesToRoom(t *testing.T) {
	w := newTestWorld(t)
	ari := join(t, w, "Ari", "lobby")
	bo := join(t, w, "Bo", "hall")
	ari.p.SetRole(player.RoleAdmin)
	w.AddNPC(&npc.NPC{ID: "rat", Name: "Cellar Rat", RoomID: "hall"})

	Dispatch(ari, "killnpc rat")

	if len(bo.lines) != 1 || bo.lines[0] != "Cellar Rat flickers and vanishes from the realm." {
		t.Errorf("unexpected output for Bo: %v", bo.lines)
	}
}
