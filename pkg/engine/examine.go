package engine

import (
	"strings"
	"time"

	"github.com/jwebster45206/crampton-estate/pkg/state"
)

// Move follows an exit of the current room. Directions the room does not
// have are refused without any state change.
func Move(s *state.Session, direction string) bool {
	to, ok := s.Room.Exit(direction)
	if !ok {
		s.Out.Sayf("You can't go %s from here.", direction)
		return false
	}
	if !s.MoveTo(to) {
		return false
	}
	s.Out.Say("")
	s.Out.Sayf("You move %s...", direction)
	s.Out.Say("The floorboards creak under your weight.")
	s.Out.Say("Somewhere in the house, something stirs.")
	s.Out.Pause(500 * time.Millisecond)
	return true
}

// Examine inspects an object in the current room. Tagged objects run their
// routine instead, and notes go through the note reader. Returns the
// submenu a routine opens, if any.
func Examine(s *state.Session, name string) *Menu {
	room := s.Room
	obj, ok := room.Object(name)
	if !ok {
		s.Out.Sayf("There's no %s here to examine.", name)
		return nil
	}
	if obj.Action.IsSet() {
		return RunSpecial(s, obj.Action)
	}
	if obj.IsNote() {
		s.ReadNote(obj.Note, strings.Split(strings.TrimRight(obj.Description, "\n"), "\n"))
		return nil
	}

	s.Out.Say(s.ObjectDescription(room.ID, obj))
	if obj.Health != 0 && s.ApplyHealthDelta(obj.Health) {
		return nil
	}
	for _, item := range s.TakeObjectItems(room.ID, obj) {
		s.AddItem(item)
	}
	return nil
}
