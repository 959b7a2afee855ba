package engine

import (
	"time"

	"github.com/jwebster45206/crampton-estate/pkg/state"
)

// Outcome is the result of the final encounter.
type Outcome int

const (
	OutcomeFullVictory    Outcome = iota // weapon, protection and ritual
	OutcomeCostlyVictory                 // weapon and protection
	OutcomeRetreat                       // protection without a weapon
	OutcomeRecklessAttack                // weapon without protection, always fatal
	OutcomeOverwhelmed                   // neither
)

const (
	CostlyVictoryDamage = 2
	RetreatDamage       = 3
	RecklessDamage      = 4
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFullVictory:
		return "full_victory"
	case OutcomeCostlyVictory:
		return "costly_victory"
	case OutcomeRetreat:
		return "retreat"
	case OutcomeRecklessAttack:
		return "reckless_attack"
	case OutcomeOverwhelmed:
		return "overwhelmed"
	default:
		return "unknown"
	}
}

// Damage is the health the outcome costs. Overwhelmed is lethal regardless
// of health and reports 0 here.
func (o Outcome) Damage() int {
	switch o {
	case OutcomeCostlyVictory:
		return CostlyVictoryDamage
	case OutcomeRetreat:
		return RetreatDamage
	case OutcomeRecklessAttack:
		return RecklessDamage
	default:
		return 0
	}
}

// ResolveEncounter maps the three key-item predicates to an outcome.
// The ritual only matters when both weapon and protection are held.
func ResolveEncounter(weapon, protection, ritual bool) Outcome {
	switch {
	case weapon && protection && ritual:
		return OutcomeFullVictory
	case weapon && protection:
		return OutcomeCostlyVictory
	case protection:
		return OutcomeRetreat
	case weapon:
		return OutcomeRecklessAttack
	default:
		return OutcomeOverwhelmed
	}
}

// Encounter runs the final confrontation to exactly one outcome.
func Encounter(s *state.Session) Outcome {
	items := s.Scenario.Items
	out := s.Out

	out.Say("")
	out.Say(rule)
	out.Say("You unlock the basement door and descend into absolute darkness.")
	out.Say("The door slams shut behind you. A lock clicks.")
	out.Say("")
	out.Pause(time.Second)
	out.Say("Something moves in the darkness. Multiple somethings.")
	out.Say("Red eyes open. One pair. Then another. Then dozens.")
	out.Say("")
	out.Pause(time.Second)
	out.Say("A DARK FIGURE emerges from the shadows - tall, wrong, impossible.")
	out.Say("Its eyes burn like coals. It reaches for you with too many arms.")
	out.Say("This is the thing that killed the Cramptons.")
	out.Say(rule)
	out.Pause(time.Second)

	outcome := ResolveEncounter(
		s.HasItem(items.Weapon),
		s.HasItem(items.Protection),
		s.HasItem(items.Ritual),
	)
	s.Logger().Info("encounter", "outcome", outcome.String(), "health", s.Player.Health)

	switch outcome {
	case OutcomeFullVictory:
		out.Say("")
		out.Sayf("You hold the %s, %s, and %s.", items.Weapon, items.Protection, items.Ritual)
		out.Say("The book falls open to a page marked in dried blood.")
		out.Say("You begin reading the Latin words aloud...")
		out.Pause(time.Second)
		out.Say("The crucifix blazes with holy light!")
		out.Say("The figure SCREAMS - a sound that shouldn't exist.")
		out.Say("You drive the knife forward with the last word of the ritual.")
		out.Pause(time.Second)
		out.Say("The blade strikes true. The figure explodes into shadow and ash.")
		out.Say("The darkness lifts. The house... breathes out.")
		out.Say("The curse is broken. The Cramptons can finally rest.")
		s.BossDefeated = true
		s.Escaped = true

	case OutcomeCostlyVictory:
		out.Say("")
		out.Sayf("You hold the %s and %s together.", items.Weapon, items.Protection)
		out.Say("The crucifix glows, weakening the figure.")
		out.Say("But without the book, you can't complete the ritual!")
		out.Say("You strike with the knife anyway!")
		out.Pause(time.Second)
		out.Say("The figure staggers but fights back viciously!")
		s.LoseLife(CostlyVictoryDamage, "Its claws rake across you!")
		if s.Player.Health > 0 {
			out.Say("With desperate fury, you drive it back into the shadows!")
			out.Say("It's not destroyed... but it's wounded. Banished. For now.")
			s.BossDefeated = true
			s.Escaped = true
		}

	case OutcomeRetreat:
		out.Say("")
		out.Sayf("You raise the %s desperately.", items.Protection)
		out.Say("It glows and pushes the figure back.")
		out.Say("But you have no weapon to finish it!")
		out.Say("The figure circles you, probing your defenses...")
		s.LoseLife(RetreatDamage, "It finds a weakness and strikes!")
		if s.Player.Health > 0 {
			out.Say("You barely escape back up the stairs!")
			out.Say("You're not ready. You need more.")
		}

	case OutcomeRecklessAttack:
		out.Say("")
		out.Sayf("You grip the %s and charge!", items.Weapon)
		out.Say("You stab the figure, but it barely notices.")
		out.Say("Without the crucifix's protection, you're vulnerable!")
		s.LoseLife(RecklessDamage, "It grabs you with impossible strength!")
		s.Succumb()

	case OutcomeOverwhelmed:
		out.Say("")
		out.Say("You have no weapons. No protection. No ritual.")
		out.Say("The figure is upon you instantly.")
		out.Say("You never stood a chance.")
		s.KillOutright()
		out.Say("You have been consumed by the darkness.")
	}
	return outcome
}
