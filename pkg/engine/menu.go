package engine

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jwebster45206/crampton-estate/pkg/scenario"
	"github.com/jwebster45206/crampton-estate/pkg/state"
)

// Op is the closed set of things a menu choice can do.
type Op int

const (
	OpNone Op = iota
	OpMap
	OpInventory
	OpStats
	OpMovement // opens the movement submenu
	OpExamine  // opens the examine submenu
	OpSpecial  // runs a room action routine
	OpRest
	OpMove       // go in Action.Direction
	OpInspect    // examine Action.Object
	OpBack       // leave a submenu
	OpDescend    // face the encounter
	OpStayBehind // decline the encounter
	OpContinue   // acknowledge a pause
)

// Action is what a menu choice resolves to. Only the field its Op needs is set.
type Action struct {
	Op        Op
	Direction string
	Object    string
	Special   scenario.ActionKind
}

// Choice is one lettered menu line.
type Choice struct {
	Label  string
	Action Action
}

// Menu is the set of choices awaiting player input.
type Menu struct {
	Prompt  string
	Choices []Choice
	Main    bool    // accepts "?" and penalizes invalid input
	Default *Action // taken on unrecognized input instead of re-prompting
}

// Letter returns the shortcut for the i-th choice.
func Letter(i int) string {
	return string(rune('a' + i))
}

// Select maps an input token to a choice.
func (m *Menu) Select(token string) (Action, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	for i, c := range m.Choices {
		if token == Letter(i) {
			return c.Action, true
		}
	}
	if m.Default != nil {
		return *m.Default, true
	}
	return Action{}, false
}

// Lines renders the menu as it is shown to the player.
func (m *Menu) Lines() []string {
	lines := make([]string, 0, len(m.Choices)+3)
	if m.Prompt != "" {
		lines = append(lines, "", m.Prompt)
	}
	for i, c := range m.Choices {
		lines = append(lines, fmt.Sprintf("  %s) %s", Letter(i), c.Label))
	}
	if m.Main {
		lines = append(lines, "  ?) Help")
	}
	return lines
}

// MainMenu builds the top-level menu for the session's current room.
// Entries depend on the room, so the set is recomputed every turn.
func MainMenu(s *state.Session) *Menu {
	room := s.Room
	m := &Menu{Prompt: "What will you do?", Main: true}
	m.Choices = append(m.Choices,
		Choice{"View map", Action{Op: OpMap}},
		Choice{"Check inventory", Action{Op: OpInventory}},
		Choice{"Show stats", Action{Op: OpStats}},
	)
	if len(room.Exits) > 0 {
		m.Choices = append(m.Choices, Choice{"Movement options", Action{Op: OpMovement}})
	}
	if len(room.Objects) > 0 {
		m.Choices = append(m.Choices, Choice{"Examine objects", Action{Op: OpExamine}})
	}
	if room.Action != nil {
		m.Choices = append(m.Choices, Choice{room.Action.Label, Action{Op: OpSpecial, Special: room.Action.Kind}})
	}
	if !s.RestUsed.Has(room.ID) {
		m.Choices = append(m.Choices, Choice{"Rest and recover", Action{Op: OpRest}})
	}
	return m
}

// MoveMenu offers only the exits the current room actually has.
func MoveMenu(s *state.Session) *Menu {
	m := &Menu{Prompt: "Where do you want to go?"}
	for _, e := range s.Room.Exits {
		target := e.To
		if r, ok := s.Scenario.Room(e.To); ok {
			target = r.Name
		}
		m.Choices = append(m.Choices, Choice{
			Label:  fmt.Sprintf("Go %s to %s", DirectionLabel(e.Direction), target),
			Action: Action{Op: OpMove, Direction: e.Direction},
		})
	}
	m.Choices = append(m.Choices, Choice{"Back to main menu", Action{Op: OpBack}})
	return m
}

// ExamineMenu lists the current room's objects.
func ExamineMenu(s *state.Session) *Menu {
	m := &Menu{Prompt: "What do you want to examine?"}
	for _, o := range s.Room.Objects {
		m.Choices = append(m.Choices, Choice{
			Label:  "Examine " + o.Name,
			Action: Action{Op: OpInspect, Object: o.Name},
		})
	}
	m.Choices = append(m.Choices, Choice{"Back to main menu", Action{Op: OpBack}})
	return m
}

// DescendMenu asks whether to face the encounter. Anything but yes declines.
func DescendMenu() *Menu {
	stay := Action{Op: OpStayBehind}
	return &Menu{
		Prompt: "Do you descend to face what waits in the darkness?",
		Choices: []Choice{
			{"Yes, it's time to end this", Action{Op: OpDescend}},
			{"No, not yet - I need to prepare", stay},
		},
		Default: &stay,
	}
}

// ContinueMenu accepts any input.
func ContinueMenu(prompt string) *Menu {
	cont := Action{Op: OpContinue}
	return &Menu{Prompt: prompt, Default: &cont}
}

// DirectionLabel names a direction for menus.
func DirectionLabel(dir string) string {
	switch dir {
	case "up":
		return "Upstairs/Up"
	case "down":
		return "Downstairs/Down"
	default:
		return cases.Title(language.English).String(dir)
	}
}
