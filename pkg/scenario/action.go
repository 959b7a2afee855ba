package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ActionKind identifies a special interaction routine. The set is closed:
// content can only name kinds the engine knows how to run.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionSearchCupboard
	ActionSearchWardrobe
	ActionMeditate
	ActionPlayCassette
	ActionOpenLockedBox
	ActionGardenDoor
	ActionUnlockBasement
)

var actionNames = map[ActionKind]string{
	ActionNone:           "",
	ActionSearchCupboard: "search_cupboard",
	ActionSearchWardrobe: "search_wardrobe",
	ActionMeditate:       "meditate",
	ActionPlayCassette:   "play_cassette",
	ActionOpenLockedBox:  "open_locked_box",
	ActionGardenDoor:     "garden_door",
	ActionUnlockBasement: "unlock_basement",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// IsSet reports whether k names a routine.
func (k ActionKind) IsSet() bool {
	return k != ActionNone
}

// IsRandomized reports whether the action draws from an outcome table.
func (k ActionKind) IsRandomized() bool {
	switch k {
	case ActionSearchCupboard, ActionSearchWardrobe, ActionMeditate:
		return true
	default:
		return false
	}
}

// ParseActionKind converts a content tag to an ActionKind.
func ParseActionKind(name string) (ActionKind, error) {
	for kind, n := range actionNames {
		if n == name {
			return kind, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

func (k *ActionKind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	kind, err := ParseActionKind(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = kind
	return nil
}

func (k ActionKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// EffectKind is the single state change an outcome applies.
type EffectKind string

const (
	EffectLoseLife   EffectKind = "lose_life"
	EffectLoseSanity EffectKind = "lose_sanity"
	EffectGainLife   EffectKind = "gain_life"
	EffectGainSanity EffectKind = "gain_sanity"
	EffectAddItem    EffectKind = "add_item"
)

// Valid reports whether the kind is one the engine can apply.
func (k EffectKind) Valid() bool {
	switch k {
	case EffectLoseLife, EffectLoseSanity, EffectGainLife, EffectGainSanity, EffectAddItem:
		return true
	default:
		return false
	}
}

// Effect describes one state change. Amount is used by the vitals kinds,
// Item by add_item. Message is optional narration passed to the loss routines.
type Effect struct {
	Kind    EffectKind `yaml:"kind"`
	Amount  int        `yaml:"amount,omitempty"`
	Item    string     `yaml:"item,omitempty"`
	Message string     `yaml:"message,omitempty"`
}

// Outcome pairs narrative text with the effect it triggers.
type Outcome struct {
	Text   string `yaml:"text"`
	Effect Effect `yaml:"effect"`
}
