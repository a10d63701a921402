package command

import "testing"

func TestSayEmpty(t *testing.T) {
	w := newTestWorld(t)
	ari := join(t, w, "Ari", "lobby")

	Dispatch(ari, "say")

	if len(ari.lines) != 1 || ari.lines[0] != "Say what?" {
		t.Errorf("unexpected output: %v", ari.lines)
	}
}

func TestSayRoomScoped(t *testing.T) {
	w := newTestWorld(t)
	ari := join(t, w, "Ari", "lobby")
	cal := join(t, w, "Cal", "lobby")
	bo := join(t, w, "Bo", "hall")

	Dispatch(ari, "say hello   there")

	if len(ari.lines) != 1 || ari.lines[0] != "You say: hello there" {
		t.Errorf("unexpected output for speaker: %v", ari.lines)
	}
	if len(cal.lines) != 1 || cal.lines[0] != "Ari says: hello there" {
		t.Errorf("unexpected output for listener: %v", cal.lines)
	}
	if len(bo.lines) != 0 {
		t.Errorf("say must not cross rooms, Bo got %v", bo.lines)
	}
}
