package engine

import (
	"time"

	"github.com/jwebster45206/crampton-estate/pkg/scenario"
	"github.com/jwebster45206/crampton-estate/pkg/state"
)

const (
	WrongRoomPenalty       = 3
	MissingTapePenalty     = 2
	TapeSanityBonus        = 20
	MissingBoxToolPenalty  = 5
	MissingGardenKeyCost   = 2
	GardenSanityCost       = 20
	GardenLifeCost         = 1
	MissingBasementKeyCost = 3
)

// RunSpecial dispatches a special action. It returns the submenu the
// routine opens, or nil when the routine is complete.
func RunSpecial(s *state.Session, kind scenario.ActionKind) *Menu {
	s.Logger().Debug("special action", "action", kind.String(), "room", s.Room.ID)
	switch kind {
	case scenario.ActionSearchCupboard, scenario.ActionSearchWardrobe, scenario.ActionMeditate:
		DrawOutcome(s, kind)
	case scenario.ActionPlayCassette:
		PlayCassette(s)
	case scenario.ActionOpenLockedBox:
		OpenLockedBox(s)
	case scenario.ActionGardenDoor:
		TryGardenDoor(s)
	case scenario.ActionUnlockBasement:
		return UnlockBasement(s)
	default:
		s.Logger().Warn("unhandled action", "action", kind.String())
	}
	return nil
}

// DrawOutcome picks one entry uniformly from the action's outcome table,
// narrates it and applies its effect. Draws are independent.
func DrawOutcome(s *state.Session, kind scenario.ActionKind) (scenario.Outcome, bool) {
	table := s.Scenario.Table(kind)
	if len(table) == 0 {
		return scenario.Outcome{}, false
	}
	o := table[s.Intn(len(table))]
	s.Out.Say(o.Text)
	ApplyEffect(s, o.Effect)
	return o, true
}

// ApplyEffect performs a single outcome effect through the session manager.
func ApplyEffect(s *state.Session, e scenario.Effect) {
	switch e.Kind {
	case scenario.EffectLoseLife:
		s.LoseLife(e.Amount, e.Message)
	case scenario.EffectLoseSanity:
		s.LoseSanity(e.Amount, e.Message)
	case scenario.EffectGainLife:
		s.GainLife(e.Amount)
	case scenario.EffectGainSanity:
		s.GainSanity(e.Amount)
	case scenario.EffectAddItem:
		s.AddItem(e.Item)
	}
}

// PlayCassette plays the tape once, in the right room, if the player holds it.
func PlayCassette(s *state.Session) {
	out := s.Out
	if s.Room.ID != s.Scenario.CassetteRoom {
		out.Say("There's nothing to play it on here.")
		s.LoseSanity(WrongRoomPenalty, "")
		return
	}
	if !s.HasItem(s.Scenario.Items.Tape) {
		out.Say("The cassette player is dusty but functional.")
		out.Say("There's no tape inside. You'll need to find one.")
		s.LoseSanity(MissingTapePenalty, "")
		return
	}
	if s.NotesRead.Has(state.TapePlayedMarker) {
		out.Say("You've already played the tape. Once was enough.")
		return
	}

	s.NotesRead.Put(state.TapePlayedMarker)
	out.Say("You insert the cassette tape...")
	out.Say("Static crackles. Then a distorted voice:")
	for _, line := range []string{
		`"Graeme... if you find this..."`,
		`"Three things you need. The holy symbol protects..."`,
		`"The blade strikes true... The book binds evil..."`,
		`"Together... only together can you end this..."`,
		`"The basement... that's where it sleeps..."`,
	} {
		out.Pause(time.Second)
		out.Note(line)
	}
	out.Pause(time.Second)
	out.Note(`"But the attic... secrets in the locked box... the crowbar..."`)
	out.Say("")
	out.Say("The tape ends with a scream.")
	s.GainSanity(TapeSanityBonus)
}

// OpenLockedBox pries the box open once and hands over its journal and reward.
func OpenLockedBox(s *state.Session) {
	out := s.Out
	if s.LockedBoxOpened {
		out.Say("The box is already open. Nothing remains inside.")
		return
	}
	if !s.HasItem(s.Scenario.Items.BoxTool) {
		out.Say("The box is sealed tight. You need something to pry it open.")
		s.LoseSanity(MissingBoxToolPenalty, "The frustration gnaws at you.")
		return
	}

	out.Sayf("You wedge the %s under the lid.", s.Scenario.Items.BoxTool)
	out.Say("Wood splinters. Metal groans. The lock breaks.")
	out.Pause(time.Second)
	out.Say("Inside, you find a faded journal and a photograph.")
	out.Pause(time.Second)
	s.LockedBoxOpened = true

	note := s.Scenario.BoxNote
	s.ReadNote(note.ID, note.Lines())

	s.AddItem(s.Scenario.Items.BoxReward)
	out.Say("")
	out.Say("The photograph shows a family: a man, woman, and two children.")
	out.Say("On the back is written: 'The Cramptons - Summer 1952'")
	out.Say("'Before everything went wrong.'")
}

// TryGardenDoor opens the garden door if the player holds its key.
func TryGardenDoor(s *state.Session) {
	out := s.Out
	if !s.HasItem(s.Scenario.Items.GardenKey) {
		out.Say("The garden door is locked with a brass lock.")
		out.Say("You need the SMALL KEY to open it.")
		s.LoseSanity(MissingGardenKeyCost, "")
		return
	}

	out.Say("You unlock the garden door with the SMALL KEY.")
	out.Say("The lock clicks. Cold wind rushes in.")
	out.Say("You push the door open and step outside...")
	out.Say("")
	out.Pause(time.Second)
	out.Say("Bodies. Dozens of them. Pale and lifeless.")
	out.Say("They're scattered across the overgrown grass.")
	out.Say("Some are old - just bones. Others are fresh. Recent.")
	out.Say("Their eyes stare blankly at the storm-dark sky.")
	out.Say("")
	out.Pause(time.Second)
	out.Say("A shadow moves between the trees. Fast. Inhuman.")
	out.Say("It sees you. It's coming for you!")
	out.Say("You slam the door and lock it, gasping for breath.")
	out.Say("Something SLAMS against the door from outside.")
	out.Say("Again. And again. And again.")
	out.Say("Then... silence.")
	if s.LoseSanity(GardenSanityCost, "") {
		return
	}
	s.LoseLife(GardenLifeCost, "The terror costs you dearly. Your hands won't stop shaking.")
}

// UnlockBasement opens the hidden door with the basement key and asks
// whether to descend. Without the key the door stays shut.
func UnlockBasement(s *state.Session) *Menu {
	out := s.Out
	if !s.HasItem(s.Scenario.Items.BasementKey) {
		out.Say("You need a key to unlock the hidden door.")
		out.Say("The door remains sealed. Mocking you.")
		s.LoseSanity(MissingBasementKeyCost, "")
		return nil
	}

	out.Say("The RUSTY KEY slides into a hidden lock in the wall.")
	out.Say("Metal scrapes against metal. The lock clicks loudly.")
	out.Say("A door swings open, revealing stairs descending into darkness.")
	out.Say("")
	out.Pause(time.Second)
	out.Say("Cold air rushes up from below. You hear something breathing.")
	out.Say("This is it. Whatever haunts this place waits below.")
	out.Say("The thing that killed Graeme. That killed them all.")
	out.Say("")
	out.Pause(time.Second)
	return DescendMenu()
}

// StayBehind declines the encounter. Nothing changes.
func StayBehind(s *state.Session) {
	s.Out.Say("You step back from the darkness. Your courage falters.")
	s.Out.Say("Not yet. You're not ready yet.")
}

// Rest claims the room's one-time recovery.
func Rest(s *state.Session) {
	s.GainLife(1)
	s.Out.Say("You take a moment to compose yourself.")
	s.Out.Say("Your racing heart begins to slow.")
}
