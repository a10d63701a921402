package leveling

import "testing"

func TestXPForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, 0},
		{1, 0},
		{2, 100},
		{3, 250},
		{10, 2900},
		{30, 27700},
		{31, 27700}, // Clamped to the cap
	}

	for _, tt := range tests {
		if got := XPForLevel(tt.level); got != tt.want {
			t.Errorf("XPForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestCanLevelUp(t *testing.T) {
	tests := []struct {
		xp    int
		level int
		want  bool
	}{
		{0, 1, false},
		{99, 1, false},
		{100, 1, true},
		{250, 2, true},
		{249, 2, false},
		{999999, MaxPlayerLevel, false}, // No level-ups beyond the cap
	}

	for _, tt := range tests {
		if got := CanLevelUp(tt.xp, tt.level); got != tt.want {
			t.Errorf("CanLevelUp(%d, %d) = %v, want %v", tt.xp, tt.level, got, tt.want)
		}
	}
}
