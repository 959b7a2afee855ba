package scenario

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
)

var validIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

// IsValidID reports whether id is lowercase snake_case.
func IsValidID(id string) bool {
	return validIDRegex.MatchString(id)
}

// Validate checks the scenario for broken references and impossible values.
// Every problem found is reported, not just the first.
func (s *Scenario) Validate() error {
	v := &validator{}

	if s.Name == "" {
		v.addError("name is required")
	}
	if s.MaxHealth <= 0 {
		v.addError("max_health must be positive, got %d", s.MaxHealth)
	}
	if s.StartHealth <= 0 || s.StartHealth > s.MaxHealth {
		v.addError("start_health must be in 1..max_health, got %d", s.StartHealth)
	}

	rooms := make(map[string]bool, len(s.Rooms))
	for _, r := range s.Rooms {
		if rooms[r.ID] {
			v.addError("duplicate room ID %q", r.ID)
		}
		rooms[r.ID] = true
	}
	if len(s.Rooms) == 0 {
		v.addError("at least one room is required")
	}
	if !rooms[s.Start] {
		v.addError("start room %q does not exist", s.Start)
	}
	if s.CassetteRoom != "" && !rooms[s.CassetteRoom] {
		v.addError("cassette_room %q does not exist", s.CassetteRoom)
	}

	v.validateItems(s.Items)
	if s.BoxNote.ID == "" || s.BoxNote.Text == "" {
		v.addError("box_note needs an id and text")
	}

	used := map[ActionKind]bool{}
	for i := range s.Rooms {
		v.validateRoom(&s.Rooms[i], rooms, used)
	}

	for name, table := range s.Tables {
		kind, err := ParseActionKind(name)
		if err != nil || !kind.IsRandomized() {
			v.addError("table %q does not belong to a randomized action", name)
			continue
		}
		if len(table) == 0 {
			v.addError("table %q is empty", name)
		}
		for i, o := range table {
			v.validateEffect(fmt.Sprintf("table %s outcome %d", name, i), o.Effect)
		}
	}
	for kind := range used {
		if kind.IsRandomized() && len(s.Table(kind)) == 0 {
			v.addError("action %s is used but has no outcome table", kind)
		}
	}
	if used[ActionPlayCassette] && s.CassetteRoom == "" {
		v.addError("action %s is used but cassette_room is not set", ActionPlayCassette)
	}

	return v.err()
}

func (v *validator) validateItems(items KeyItems) {
	required := map[string]string{
		"weapon":       items.Weapon,
		"protection":   items.Protection,
		"ritual":       items.Ritual,
		"basement_key": items.BasementKey,
		"box_tool":     items.BoxTool,
		"tape":         items.Tape,
		"garden_key":   items.GardenKey,
		"box_reward":   items.BoxReward,
	}
	keys := make([]string, 0, len(required))
	for k := range required {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if required[k] == "" {
			v.addError("items.%s is required", k)
		}
	}
}

func (v *validator) validateRoom(r *Room, rooms map[string]bool, used map[ActionKind]bool) {
	if !IsValidID(r.ID) {
		v.addError("room ID %q should be lowercase snake_case", r.ID)
	}
	if r.Name == "" {
		v.addError("room %s has no name", r.ID)
	}

	seenDirs := map[string]bool{}
	for _, e := range r.Exits {
		if !slices.Contains(Directions, e.Direction) {
			v.addError("room %s has unknown exit direction %q", r.ID, e.Direction)
		}
		if seenDirs[e.Direction] {
			v.addError("room %s has duplicate exit %q", r.ID, e.Direction)
		}
		seenDirs[e.Direction] = true
		if !rooms[e.To] {
			v.addError("room %s exit %s leads to unknown room %q", r.ID, e.Direction, e.To)
		}
	}

	seenObjects := map[string]bool{}
	for _, o := range r.Objects {
		if o.Name == "" {
			v.addError("room %s has an object without a name", r.ID)
		}
		if seenObjects[o.Name] {
			v.addError("room %s has duplicate object %q", r.ID, o.Name)
		}
		seenObjects[o.Name] = true
		if o.Description == "" {
			v.addError("object %q in room %s has no description", o.Name, r.ID)
		}
		if o.Note != "" && !IsValidID(o.Note) {
			v.addError("object %q in room %s has note ID %q that is not snake_case", o.Name, r.ID, o.Note)
		}
		if o.Action != ActionNone {
			used[o.Action] = true
		}
	}

	if r.Action != nil {
		if r.Action.Kind == ActionNone {
			v.addError("room %s action has no kind", r.ID)
		}
		if r.Action.Label == "" {
			v.addError("room %s action has no label", r.ID)
		}
		used[r.Action.Kind] = true
	}
}

func (v *validator) validateEffect(where string, e Effect) {
	if !e.Kind.Valid() {
		v.addError("%s has unknown effect kind %q", where, e.Kind)
		return
	}
	if e.Kind == EffectAddItem {
		if e.Item == "" {
			v.addError("%s adds an item without naming it", where)
		}
		return
	}
	if e.Amount <= 0 {
		v.addError("%s needs a positive amount, got %d", where, e.Amount)
	}
}

type validator struct {
	errs []error
}

func (v *validator) addError(format string, a ...any) {
	v.errs = append(v.errs, fmt.Errorf(format, a...))
}

func (v *validator) err() error {
	return errors.Join(v.errs...)
}
