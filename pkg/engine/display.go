package engine

import (
	"strings"
	"time"

	"github.com/jwebster45206/crampton-estate/pkg/actor"
	"github.com/jwebster45206/crampton-estate/pkg/state"
)

var (
	rule     = strings.Repeat("=", 75)
	thinRule = strings.Repeat("-", 75)
)

// floorPlan is the estate map. Each lowercase letter marks a room and is
// replaced by its visit mark; see planRooms.
const floorPlan = `                          ┏━━━━━━━━━━━━━┓
                          ┃    ATTIC    ┃
                          ┃      a      ┃
                          ┗━━━━━━┬━━━━━━┛
                                 │
    ┏━━━━━━━━━━┓   ┏━━━━━━━━━━━━━┻━━━━━━━━━━┓   ┏━━━━━━━━━━┓
    ┃KIDS BEDRM┃───┃   SECOND FLOOR HALL    ┃───┃MASTER BED┃
    ┃    b     ┃   ┃           c            ┃   ┃    d     ┃
    ┗━━━━━━━━━━┛   ┗━━━━━━━━━┬━━━━━━━━━━━━━━┛   ┗━━━━┬━━━━━┛
                             │                       │
                     ┏━━━━━━━┴━━━━━━┓           ┏━━━━┴━━━━┓
                     ┃   BATHROOM   ┃           ┃ UTILITY ┃
                     ┃      e       ┃           ┃    f    ┃
                     ┗━━━━━━━┬━━━━━━┛           ┗━━━━━━━━━┛
                             │
            ┏━━━━━━━━━━━━━━━━┻━━━━━━━━━━━━━━━━━━┓
            ┃            GRAND HALL             ┃
            ┃                 g                 ┃
            ┗━┬━━━━━━━━━━━━━┬━━━━━━━━━━━━┬━━━━━━┛
              │             │            │
      ┏━━━━━━━┴━━━━━━━┓ ┏━━━┴━━━━┓  ┏━━━━┴━━━━━┓
      ┃    LIBRARY    ┃ ┃ DINING ┃  ┃  LIVING  ┃
      ┃       h       ┃ ┃   i    ┃  ┃    j     ┃
      ┗━━━━━━━┬━━━━━━━┛ ┗━━━┬━━━━┛  ┗━━━━━━━━━━┛
              │             │
      ┏━━━━━━━┴━━━━━━┓ ┏━━━━┴━━━━━┓
      ┃   BASEMENT   ┃ ┃ KITCHEN  ┃
      ┃      k       ┃ ┃    l     ┃
      ┗━━━━━━━━━━━━━━┛ ┗━━━━┬━━━━━┛
                            │
                    ┏━━━━━━━┴━━━━━━━┓
                    ┃ CONSERVATORY  ┃
                    ┃       m       ┃
                    ┗━━━━━━━━━━━━━━━┛`

var planRooms = map[rune]string{
	'a': "attic",
	'b': "kids_bedroom",
	'c': "second_floor_hall",
	'd': "master_bedroom",
	'e': "bathroom",
	'f': "utility_room",
	'g': "grand_hall",
	'h': "library",
	'i': "dining_room",
	'j': "living_room",
	'k': "basement",
	'l': "kitchen",
	'm': "conservatory",
}

// ShowMap draws the floor plan with visited rooms filled in. Rooms the plan
// does not know are listed underneath.
func ShowMap(s *state.Session) {
	out := s.Out
	out.System("")
	out.System(rule)
	out.System("                    " + strings.ToUpper(s.Scenario.Name) + " - FLOOR PLAN")
	out.System(rule)

	onPlan := make(map[string]bool, len(planRooms))
	plan := strings.Map(func(r rune) rune {
		id, ok := planRooms[r]
		if !ok {
			return r
		}
		onPlan[id] = true
		if s.Visited.Has(id) {
			return '■'
		}
		return '□'
	}, floorPlan)
	for _, line := range strings.Split(plan, "\n") {
		out.System(line)
	}
	for i := range s.Scenario.Rooms {
		r := &s.Scenario.Rooms[i]
		if !onPlan[r.ID] {
			out.Systemf("  %s %s", visitMark(s, r.ID), r.Name)
		}
	}
	out.System("")
	out.System("Legend: ■ = visited  □ = unvisited")
	out.System(rule)
}

func visitMark(s *state.Session, id string) string {
	if s.Visited.Has(id) {
		return "■"
	}
	return "□"
}

// ShowInventory lists the items carried, in the order they were found.
func ShowInventory(s *state.Session) {
	if len(s.Inventory) == 0 {
		s.Out.System("Your pockets are empty. You have nothing.")
		return
	}
	s.Out.System("You check your pockets:")
	for _, item := range s.Inventory {
		s.Out.Systemf("  - %s", item)
	}
}

// Describe shows the current room and the player's vitals.
func Describe(s *state.Session) {
	s.Out.System("")
	s.Out.System(rule)
	s.Out.Say("")
	s.Out.Sayf("You are in the %s.", s.Room.Name)
	s.Out.Say(s.Room.Description)
	s.Out.System(thinRule)
	s.ShowStats()
	s.Out.System(rule)
}

// Intro narrates the arrival at the estate.
func Intro(s *state.Session) {
	out := s.Out
	out.Say(rule)
	out.Sayf("        WELCOME TO THE %s", strings.ToUpper(s.Scenario.Name))
	out.Say(rule)
	out.Say("")
	out.Pause(time.Second)
	out.Say("The storm outside rages as you stumble through the front door.")
	out.Say("Lightning flashes. Thunder rolls.")
	out.Say("Behind you, the door slams shut on its own.")
	out.Say("You hear the lock click. Once. Twice. Three times.")
	out.Say("")
	out.Pause(time.Second)
	out.Say("There's no going back the way you came.")
	out.Say("The house has you now.")
	out.Say("")
	out.Pause(time.Second)
	out.Say("Your only hope is to find another way out.")
	out.Say("But the Crampton Estate doesn't let people leave.")
	out.Say("It hasn't for decades.")
	out.Say("")
	out.Pause(time.Second)
	out.Say("Move quickly. The house feeds on hesitation.")
	out.Say("Watch your sanity. Watch your health.")
	out.Say("Read the notes. Learn what happened here.")
	out.Say("And whatever you do...")
	out.Say("Don't let the darkness win.")
	out.Say("")
	out.Pause(time.Second)
	out.System("Type '?' at any main menu for help.")
	out.Say(rule)
}

// ShowHelp explains the goal, the vitals and where key items hide.
func ShowHelp(s *state.Session) {
	items := s.Scenario.Items
	for _, line := range []string{
		"",
		rule,
		"                           GAME HELP",
		rule,
		"",
		"OBJECTIVE:",
		"  Escape the Crampton Estate alive by defeating what lurks below.",
		"",
		"STATS:",
		"  HEALTH (♥): Your life force. Reach 0 and you die.",
		"  SANITY (█): Your mental state. Reach 0 and madness takes you.",
		"",
		"TIPS:",
		"  - Examine EVERYTHING - items and notes reveal the truth",
		"  - Read all notes carefully - they contain vital information",
		"  - You need THREE ITEMS to defeat the basement creature",
		"  - The ATTIC has secrets - find the " + strings.ToUpper(items.BoxTool) + " first",
		"  - Rest when you can to recover health (once per room)",
		"  - Don't linger too long - sanity drains over time",
		"  - The GARDEN is death - avoid it if possible",
		"",
		"KEY ITEMS TO FIND:",
		"  - " + strings.ToUpper(items.BoxTool) + ": In Utility Room - opens attic box",
		"  - " + strings.ToUpper(items.BasementKey) + ": In Kitchen cupboard - opens basement door",
		"  - " + strings.ToUpper(items.Protection) + ": Protects from supernatural harm",
		"  - " + strings.ToUpper(items.Weapon) + ": Weapon against darkness",
		"  - " + strings.ToUpper(items.Ritual) + ": Contains binding ritual",
		"  - " + strings.ToUpper(items.Tape) + ": Play in library for important clues",
		"",
		rule,
	} {
		s.Out.System(line)
	}
}

// ShowVictory narrates the escape and prints the final statistics.
func ShowVictory(s *state.Session) {
	out := s.Out
	out.Say("")
	out.Say(rule)
	out.Say("                         V I C T O R Y")
	out.Say(rule)
	out.Say("")
	out.Pause(time.Second)
	out.Say("You climb the basement stairs, your legs shaking.")
	out.Say("The house is different now. Lighter. Quieter.")
	out.Say("The oppressive darkness has lifted like morning fog.")
	out.Say("")
	out.Pause(time.Second)
	out.Say("You make your way through the silent halls.")
	out.Say("The portraits no longer watch you. They're just paintings now.")
	out.Say("The whispers have stopped. The house breathes easy.")
	out.Say("")
	out.Pause(time.Second)
	out.Say("The front door stands before you.")
	out.Say("It opens easily now, as if the house is letting you go.")
	out.Say("Releasing you from its grip.")
	out.Say("You step out into the cold night air.")
	out.Say("")
	out.Pause(time.Second)
	out.Say("Behind you, the Crampton Estate stands silent.")
	out.Say("The windows are dark. No shadows move within.")
	out.Say("The curse is broken. The Cramptons can finally rest.")
	out.Say("")
	out.Pause(time.Second)
	out.Say("But you know you'll never be the same.")
	out.Say("The memories will haunt you forever.")
	out.Say("You've seen things no one should see.")
	out.Say("You've survived. But at what cost?")
	out.Say("")
	out.Say(rule)
	out.System("")
	out.System("FINAL STATISTICS:")
	out.Systemf("  Lives Remaining: %d/%d", s.Player.Health, s.Player.MaxHealth)
	out.Systemf("  Sanity Remaining: %d/%d", s.Player.Sanity, actor.MaxSanity)
	out.Systemf("  Rooms Explored: %d", s.RoomsExplored())
	out.Systemf("  Items Collected: %d", len(s.Inventory))
	out.Systemf("  Notes Read: %d", s.NotesReadCount())
	out.System("")
	out.Say("You survived the Crampton Estate.")
	out.Say("You defeated the darkness.")
	out.Say("But the house will always remember you...")
	out.Say("And you will always remember it.")
	out.Say(rule)
}

// ShowGameOver narrates the failure, distinguishing madness from death.
func ShowGameOver(s *state.Session) {
	out := s.Out
	out.Say("")
	out.Say(rule)
	out.Say("                      G A M E   O V E R")
	out.Say(rule)
	out.Say("")
	if s.Cause == state.CauseMadness || s.Player.IsInsane() {
		out.Say("The madness consumed you.")
		out.Say("Your mind shattered like glass.")
		out.Say("The whispers are all that remain now.")
		out.Say("You are part of the house. Forever.")
	} else {
		out.Say("Your vision fades to black.")
		out.Say("The cold embrace of death takes you.")
		out.Say("The house claims another victim.")
		out.Say("Another soul to add to its collection.")
	}
	out.Say("")
	out.Say(rule)

	found := "None"
	if len(s.Inventory) > 0 {
		found = strings.Join(s.Inventory, ", ")
	}
	out.System("")
	out.System("YOUR JOURNEY:")
	out.Systemf("  Rooms Explored: %d", s.RoomsExplored())
	out.Systemf("  Final Health: %d/%d", s.Player.Health, s.Player.MaxHealth)
	out.Systemf("  Final Sanity: %d/%d", s.Player.Sanity, actor.MaxSanity)
	out.Systemf("  Items Found: %s", found)
	out.Systemf("  Notes Read: %d", s.NotesReadCount())
	out.System("")
	out.Say("The Crampton Estate claims another soul.")
	out.Say("Another name carved into its walls.")
	out.Say("Another whisper in the darkness...")
	out.Say("Another ghost in the halls.")
	out.Say("")
	out.Say("The house always wins in the end.")
	out.Say(rule)
}
