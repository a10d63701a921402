// Package leveling holds the experience threshold table and stat growth
// constants shared by player progression code.
package leveling

// Leveling constants
const (
	MaxPlayerLevel  = 30
	HPPerLevel      = 5
	StaminaPerLevel = 2
)

// xpForLevel is the total XP required to reach each level.
// Level 1 is the starting point (0 XP).
var xpForLevel = map[int]int{
	1:  0,
	2:  100,
	3:  250,
	4:  450,
	5:  700,
	6:  1000,
	7:  1400,
	8:  1850,
	9:  2350,
	10: 2900,
	11: 3500,
	12: 4150,
	13: 4850,
	14: 5600,
	15: 6400,
	16: 7250,
	17: 8150,
	18: 9100,
	19: 10100,
	20: 11200,
	21: 12400,
	22: 13700,
	23: 15100,
	24: 16600,
	25: 18200,
	26: 19900,
	27: 21700,
	28: 23600,
	29: 25600,
	30: 27700,
}

// XPForLevel returns the total XP required to reach a given level.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	if level > MaxPlayerLevel {
		level = MaxPlayerLevel
	}
	return xpForLevel[level]
}

// CanLevelUp reports whether the given XP total qualifies for a level
// beyond the current one.
func CanLevelUp(xp, currentLevel int) bool {
	if currentLevel >= MaxPlayerLevel {
		return false
	}
	return xp >= XPForLevel(currentLevel+1)
}

// LevelUpInfo contains information about a single level-up event.
type LevelUpInfo struct {
	NewLevel    int
	HPGain      int
	StaminaGain int
}
