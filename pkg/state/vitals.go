package state

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/crampton-estate/pkg/actor"
	"github.com/jwebster45206/crampton-estate/pkg/narrative"
)

const (
	LifeLossSanityPenalty = 15 // sanity lost alongside every health loss
	ProtectionSanityBonus = 15 // granted when the ward absorbs a health loss
	LifeGainSanityBonus   = 10
	ItemSanityBonus       = 5
	NoteSanityBonus       = 5

	DrainInterval = 5 // turns between passive sanity drains
	DrainAmount   = 2

	SevereSanity    = 20 // escalating warning threshold
	UneasySanity    = 40 // mild warning threshold
	MaxSevereWarn   = 3  // escalating warnings shown per session
	sanityBarLength = 10
)

// HealthBar renders health as hearts, e.g. "Health: [♥ ♥ ♥ ♡ ♡ ] (3/5)".
func (s *Session) HealthBar() string {
	p := s.Player
	empty := p.MaxHealth - p.Health
	if empty < 0 {
		empty = 0
	}
	hearts := strings.Repeat("♥ ", p.Health) + strings.Repeat("♡ ", empty)
	return fmt.Sprintf("Health: [%s] (%d/%d)", hearts, p.Health, p.MaxHealth)
}

// SanityBar renders sanity as a ten-cell bar.
func (s *Session) SanityBar() string {
	filled := s.Player.Sanity / (actor.MaxSanity / sanityBarLength)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", sanityBarLength-filled)
	return fmt.Sprintf("Sanity: [%s] (%d/%d)", bar, s.Player.Sanity, actor.MaxSanity)
}

// ShowStats writes both vitals and the explored room count.
func (s *Session) ShowStats() {
	s.Out.System(s.HealthBar())
	s.Out.System(s.SanityBar())
	s.Out.Systemf("Rooms explored: %d", s.RoomsExplored())
}

// LoseSanity subtracts amount from sanity and narrates cause if given.
// Returns true if the session is over.
func (s *Session) LoseSanity(amount int, cause string) bool {
	s.Player.LoseSanity(amount)
	s.log.Debug("sanity lost", "amount", amount, "sanity", s.Player.Sanity)
	if cause != "" {
		s.Out.Warn(cause)
	}
	if s.GameOver {
		return true
	}

	switch {
	case s.Player.IsInsane():
		s.Out.Say("")
		s.Out.Say("The whispers are too loud now. They're all you can hear.")
		s.Out.Say("Your thoughts aren't your own anymore. The house has you.")
		s.Out.Say("You collapse, and the darkness welcomes you home.")
		s.end(CauseMadness)
		return true
	case s.Player.Sanity <= SevereSanity && s.SanityWarnings < MaxSevereWarn:
		s.Out.Warn("Your hands are shaking. Everything feels wrong.")
		s.Out.System(s.SanityBar())
		s.SanityWarnings++
	case s.Player.Sanity <= UneasySanity:
		s.Out.Warn("The walls seem closer than before...")
		s.Out.System(s.SanityBar())
	}
	return false
}

// GainSanity adds amount, saturating at the maximum.
func (s *Session) GainSanity(amount int) int {
	gained := s.Player.GainSanity(amount)
	if gained > 0 {
		s.Out.Say("You take a breath. The fog in your head clears a little.")
		s.Out.System(s.SanityBar())
	}
	return gained
}

// LoseLife removes health unless the ward is active, in which case the ward
// is consumed instead. Every unwarded loss also costs sanity.
// Returns true if the session is over.
func (s *Session) LoseLife(amount int, cause string) bool {
	s.RoomDeaths[s.Room.ID]++
	pace := narrative.PaceSlow
	if s.RoomDeaths[s.Room.ID] > 1 {
		pace = narrative.PaceFast
	}

	if s.Protected {
		s.Out.Say("The crucifix grows warm in your pocket. Something backs away.")
		s.Out.Say("Whatever was reaching for you... it can't touch you. Not yet.")
		s.Protected = false
		s.log.Debug("ward consumed", "room", s.Room.ID)
		s.GainSanity(ProtectionSanityBonus)
		return s.GameOver
	}

	s.Player.TakeDamage(amount)
	s.log.Debug("health lost", "amount", amount, "health", s.Player.Health)
	s.LoseSanity(LifeLossSanityPenalty, "")

	if cause != "" {
		s.Out.SayAt(pace, cause)
	}
	s.Out.System(s.HealthBar())

	if s.Player.IsDead() && !s.GameOver {
		s.Out.Say("")
		s.Out.Say("Your vision blurs. The floor rushes up to meet you.")
		s.Out.Say("The last thing you hear is laughter. Or maybe crying.")
		s.Out.Say("You can't tell anymore.")
		s.end(CauseDeath)
	}
	return s.GameOver
}

// GainLife claims the current room's one-time recovery.
// Returns false if it was already claimed.
func (s *Session) GainLife(amount int) bool {
	room := s.Room.ID
	if s.RestUsed.Has(room) {
		s.Out.Say("You try again, but there's nothing left here for you.")
		s.Out.Say("The well has run dry.")
		return false
	}
	s.RestUsed.Put(room)
	s.Player.Heal(amount)
	s.GainSanity(LifeGainSanityBonus)
	s.Out.Say("Something shifts. You feel stronger.")
	s.Out.System(s.HealthBar())
	return true
}

// AddItem puts item in the inventory once. Picking up the protection item
// arms the ward. Returns false if the item was already held.
func (s *Session) AddItem(item string) bool {
	if s.HasItem(item) {
		s.Out.Sayf("You already have the %s.", item)
		return false
	}
	s.Inventory = append(s.Inventory, item)
	s.log.Debug("item added", "item", item)
	s.Out.Sayf("You take the %s.", item)
	s.GainSanity(ItemSanityBonus)
	if item == s.Scenario.Items.Protection {
		s.Protected = true
		s.Out.Sayf("The %s feels warm. Protective. Like it's watching over you.", item)
	}
	return true
}

// PassiveDrain advances the turn counter and drains sanity every
// DrainInterval turns. Returns true if the session is over.
func (s *Session) PassiveDrain() bool {
	s.Turn++
	if s.Turn%DrainInterval != 0 {
		return false
	}
	s.Player.LoseSanity(DrainAmount)
	if s.Player.IsInsane() && !s.GameOver {
		s.Out.Say("")
		s.Out.Say("Too long. You've been here too long.")
		s.Out.Say("The house has gotten inside your head.")
		s.end(CauseMadness)
	}
	return s.GameOver
}

// ReadNote shows a note and rewards sanity the first time its ID is read.
// Returns false on a repeat read.
func (s *Session) ReadNote(id string, lines []string) bool {
	if s.NotesRead.Has(id) {
		s.Out.Say("You've already read this. The words are the same.")
		return false
	}
	s.NotesRead.Put(id)
	s.log.Debug("note read", "note", id)
	rule := strings.Repeat("-", 60)
	s.Out.Note("")
	s.Out.Note(rule)
	for _, line := range lines {
		s.Out.Note(line)
	}
	s.Out.Note(rule)
	s.Out.Note("")
	s.GainSanity(NoteSanityBonus)
	return true
}

// ApplyHealthDelta changes health directly. Unlike LoseLife it ignores the
// ward and costs no sanity. Returns true if the session is over.
func (s *Session) ApplyHealthDelta(delta int) bool {
	switch {
	case delta < 0:
		s.Player.TakeDamage(-delta)
		s.Out.Warn("You feel pain shoot through you!")
	case delta > 0:
		s.Player.Heal(delta)
	}
	s.Out.System(s.HealthBar())
	if s.Player.IsDead() {
		s.end(CauseDeath)
	}
	return s.GameOver
}

// Succumb ends the session in death whatever health remains.
func (s *Session) Succumb() {
	s.end(CauseDeath)
}

// KillOutright forces health to zero.
func (s *Session) KillOutright() {
	s.Player.SetHealth(0)
	s.end(CauseDeath)
}
