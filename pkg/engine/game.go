package engine

import (
	"strings"

	"github.com/jwebster45206/crampton-estate/pkg/state"
)

// HesitationPenalty is the sanity cost of an unrecognized main-menu token.
const HesitationPenalty = 2

// Status is where a game stands.
type Status int

const (
	StatusPlaying Status = iota
	StatusVictory
	StatusDefeat
)

func (s Status) String() string {
	switch s {
	case StatusVictory:
		return "victory"
	case StatusDefeat:
		return "defeat"
	default:
		return "playing"
	}
}

// Game drives a session one input line at a time. Presenters call Input with
// what the player typed, then drain Session.Out and show it. The game owns
// the turn structure: visit, passive drain, description, menu, action.
type Game struct {
	Session *state.Session

	menu *Menu
	done bool
}

// NewGame wraps a session. Call Start before the first Input.
func NewGame(s *state.Session) *Game {
	return &Game{Session: s}
}

// Start narrates the arrival and waits for the player to continue.
func (g *Game) Start() {
	Intro(g.Session)
	g.prompt(ContinueMenu("Press Enter to begin your nightmare..."))
}

// Menu returns the menu awaiting input, or nil once the game is over.
func (g *Game) Menu() *Menu {
	return g.menu
}

// Done reports whether the game has ended and its summary was written.
func (g *Game) Done() bool {
	return g.done
}

// Status reports the outcome so far.
func (g *Game) Status() Status {
	switch {
	case g.Session.Won():
		return StatusVictory
	case g.Session.GameOver:
		return StatusDefeat
	default:
		return StatusPlaying
	}
}

// Input handles one line of player input against the current menu.
func (g *Game) Input(line string) {
	if g.done || g.menu == nil {
		return
	}
	s := g.Session
	token := strings.ToLower(strings.TrimSpace(line))

	if g.menu.Main && token == "?" {
		ShowHelp(s)
		g.prompt(ContinueMenu("Press Enter to continue..."))
		return
	}

	a, ok := g.menu.Select(token)
	if !ok {
		s.Out.System("Invalid choice. Please try again.")
		if g.menu.Main {
			s.LoseSanity(HesitationPenalty, "Hesitation. Every second counts. The house is watching.")
			g.nextTurn()
		}
		return
	}
	g.perform(a)
}

func (g *Game) perform(a Action) {
	s := g.Session
	s.Logger().Debug("action", "op", int(a.Op), "room", s.Room.ID,
		"health", s.Player.Health, "sanity", s.Player.Sanity)

	switch a.Op {
	case OpContinue, OpBack:
		g.nextTurn()
		return
	case OpMovement:
		g.prompt(MoveMenu(s))
		return
	case OpExamine:
		g.prompt(ExamineMenu(s))
		return
	case OpMap:
		ShowMap(s)
	case OpInventory:
		ShowInventory(s)
	case OpStats:
		s.ShowStats()
	case OpRest:
		Rest(s)
	case OpMove:
		Move(s, a.Direction)
	case OpSpecial:
		if sub := RunSpecial(s, a.Special); sub != nil {
			g.prompt(sub)
			return
		}
	case OpInspect:
		if sub := Examine(s, a.Object); sub != nil {
			g.prompt(sub)
			return
		}
	case OpDescend:
		Encounter(s)
	case OpStayBehind:
		StayBehind(s)
	}
	g.afterAction()
}

func (g *Game) afterAction() {
	s := g.Session
	s.CheckVitals()
	if s.Ended() {
		g.finish()
		return
	}
	g.nextTurn()
}

// nextTurn starts a loop iteration: record the visit, drain, describe, ask.
func (g *Game) nextTurn() {
	s := g.Session
	if s.Ended() {
		g.finish()
		return
	}
	s.VisitRoom()
	if s.PassiveDrain() {
		g.finish()
		return
	}
	Describe(s)
	g.prompt(MainMenu(s))
}

func (g *Game) prompt(m *Menu) {
	g.menu = m
	for _, line := range m.Lines() {
		g.Session.Out.System(line)
	}
}

func (g *Game) finish() {
	if g.done {
		return
	}
	g.done = true
	g.menu = nil
	s := g.Session
	if s.Won() {
		ShowVictory(s)
	} else {
		ShowGameOver(s)
	}
	s.Logger().Info("game finished",
		"status", g.Status().String(),
		"turns", s.Turn,
		"rooms", s.RoomsExplored(),
		"items", len(s.Inventory),
		"notes", s.NotesReadCount())
}
