package scenario

import "strings"

// KeyItems names the inventory items the game rules look for.
type KeyItems struct {
	Weapon      string `yaml:"weapon"`       // strikes in the final encounter
	Protection  string `yaml:"protection"`   // grants the one-shot protective flag
	Ritual      string `yaml:"ritual"`       // binds the figure in the final encounter
	BasementKey string `yaml:"basement_key"` // gates entry to the final encounter
	BoxTool     string `yaml:"box_tool"`     // pries open the locked box
	Tape        string `yaml:"tape"`         // played on the cassette player
	GardenKey   string `yaml:"garden_key"`   // unlocks the garden door
	BoxReward   string `yaml:"box_reward"`   // found inside the locked box
}

// Note is a piece of lore read through the note-reading routine.
type Note struct {
	ID   string `yaml:"id"`
	Text string `yaml:"text"`
}

// Lines splits the note text into lines, trimming the trailing newline a
// YAML block scalar leaves behind.
func (n Note) Lines() []string {
	return strings.Split(strings.TrimRight(n.Text, "\n"), "\n")
}

// Scenario is the immutable content of one haunted house: its rooms, their
// objects, the randomized outcome tables and the items the rules refer to.
// A Scenario is never mutated after Parse, so sessions may share it.
type Scenario struct {
	Name         string               `yaml:"name"`
	Start        string               `yaml:"start"`         // room ID where sessions begin
	StartHealth  int                  `yaml:"start_health"`  // health at session start
	MaxHealth    int                  `yaml:"max_health"`    // initial health ceiling
	Items        KeyItems             `yaml:"items"`         // items referenced by rules
	CassetteRoom string               `yaml:"cassette_room"` // room ID holding the player
	BoxNote      Note                 `yaml:"box_note"`      // journal inside the locked box
	Rooms        []Room               `yaml:"rooms"`
	Tables       map[string][]Outcome `yaml:"tables"` // keyed by ActionKind name

	index map[string]*Room
}

// Room returns the room with the given ID.
func (s *Scenario) Room(id string) (*Room, bool) {
	if s.index != nil {
		r, ok := s.index[id]
		return r, ok
	}
	for i := range s.Rooms {
		if s.Rooms[i].ID == id {
			return &s.Rooms[i], true
		}
	}
	return nil, false
}

// StartRoom returns the room sessions begin in.
func (s *Scenario) StartRoom() *Room {
	r, _ := s.Room(s.Start)
	return r
}

// Table returns the outcome table for a randomized action.
func (s *Scenario) Table(kind ActionKind) []Outcome {
	return s.Tables[kind.String()]
}

// RoomIDs returns every room ID in declaration order.
func (s *Scenario) RoomIDs() []string {
	ids := make([]string, len(s.Rooms))
	for i := range s.Rooms {
		ids[i] = s.Rooms[i].ID
	}
	return ids
}

func (s *Scenario) reindex() {
	s.index = make(map[string]*Room, len(s.Rooms))
	for i := range s.Rooms {
		s.index[s.Rooms[i].ID] = &s.Rooms[i]
	}
}
