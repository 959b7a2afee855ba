package scenario

// Directions lists the exit directions rooms may use, in menu order.
var Directions = []string{"north", "south", "east", "west", "up", "down"}

// Exit is a directional edge to a neighboring room.
type Exit struct {
	Direction string `yaml:"direction"`
	To        string `yaml:"to"` // room ID
}

// Object is something the player can examine inside a room.
type Object struct {
	Name                string     `yaml:"name"`
	Description         string     `yaml:"description"`
	ExaminedDescription string     `yaml:"examined_description,omitempty"` // shown once items are taken
	Health              int        `yaml:"health,omitempty"`               // applied on every examine; 0 means none
	Items               []string   `yaml:"items,omitempty"`                // granted on the first examine only
	Action              ActionKind `yaml:"action,omitempty"`               // special routine run instead of examining
	Note                string     `yaml:"note,omitempty"`                 // note ID; the description is the note text
}

// IsNote reports whether examining the object reads a note.
func (o *Object) IsNote() bool {
	return o.Note != ""
}

// RoomAction is a room-specific entry on the main menu.
type RoomAction struct {
	Kind  ActionKind `yaml:"kind"`
	Label string     `yaml:"label"`
}

// Room is a place in the estate with exits and examinable objects.
type Room struct {
	ID          string      `yaml:"id"`   // snake_case key
	Name        string      `yaml:"name"` // display name
	Description string      `yaml:"description"`
	Exits       []Exit      `yaml:"exits,omitempty"`
	Objects     []Object    `yaml:"objects,omitempty"`
	Action      *RoomAction `yaml:"action,omitempty"`
}

// Exit returns the room ID reached by going in direction.
func (r *Room) Exit(direction string) (string, bool) {
	for _, e := range r.Exits {
		if e.Direction == direction {
			return e.To, true
		}
	}
	return "", false
}

// Object returns the object with the given name.
func (r *Room) Object(name string) (*Object, bool) {
	for i := range r.Objects {
		if r.Objects[i].Name == name {
			return &r.Objects[i], true
		}
	}
	return nil, false
}
