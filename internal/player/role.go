package player

// Role is a player's privilege tier. Gating checks test specific roles
// rather than a numeric rank, but the tiers are ordered
// player < wizard < gm < admin.
type Role string

const (
	RolePlayer Role = "player"
	RoleWizard Role = "wizard"
	RoleGM     Role = "gm"
	RoleAdmin  Role = "admin"
)

// ParseRole converts a string to a Role.
// Returns false if the string is not a valid role name.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "player":
		return RolePlayer, true
	case "wizard":
		return RoleWizard, true
	case "gm":
		return RoleGM, true
	case "admin":
		return RoleAdmin, true
	default:
		return RolePlayer, false
	}
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}
