package world

// Directions players and NPCs can move in.
var ValidDirections = map[string]bool{
	"north": true,
	"south": true,
	"east":  true,
	"west":  true,
	"up":    true,
	"down":  true,
}

// Room is a static node in the world graph. Rooms are write-once at load
// time and read-only afterwards, so they carry no lock.
type Room struct {
	ID          string
	Name        string
	Description string
	Brief       string
	// Exits maps direction name to destination room id. A destination id
	// that resolves to no room is tolerated at load time and handled as a
	// runtime error path, so partially built worlds can run.
	Exits     map[string]string
	Sanctuary bool // Reserved for future combat exemption
}

// NewRoom creates a room with an empty exit table.
func NewRoom(id, name, description, brief string) *Room {
	return &Room{
		ID:          id,
		Name:        name,
		Description: description,
		Brief:       brief,
		Exits:       make(map[string]string),
	}
}

// Exit returns the destination room id for a direction, or false if the
// room has no such exit.
func (r *Room) Exit(direction string) (string, bool) {
	dest, ok := r.Exits[direction]
	return dest, ok
}
