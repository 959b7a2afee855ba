package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/crampton-estate/pkg/scenario"
	"github.com/jwebster45206/crampton-estate/pkg/state"
)

func TestPlayCassette(t *testing.T) {
	t.Run("wrong room", func(t *testing.T) {
		s := newTestSession(t)
		s.Inventory = []string{"cassette tape"}

		PlayCassette(s)

		assert.Equal(t, 97, s.Player.Sanity)
		assert.False(t, s.NotesRead.Has(state.TapePlayedMarker))
	})

	t.Run("no tape", func(t *testing.T) {
		s := newTestSession(t)
		require.True(t, s.MoveTo("library"))

		PlayCassette(s)

		assert.Equal(t, 98, s.Player.Sanity)
		assert.Contains(t, s.Out.Text(), "There's no tape inside.")
	})

	t.Run("plays once", func(t *testing.T) {
		s := newTestSession(t)
		require.True(t, s.MoveTo("library"))
		s.Inventory = []string{"cassette tape"}
		s.Player.Sanity = 50

		PlayCassette(s)
		assert.Equal(t, 70, s.Player.Sanity)
		assert.True(t, s.NotesRead.Has(state.TapePlayedMarker))
		assert.Contains(t, s.Out.Text(), "The tape ends with a scream.")
		assert.Equal(t, 0, s.NotesReadCount())

		PlayCassette(s)
		assert.Equal(t, 70, s.Player.Sanity)
		assert.Contains(t, s.Out.Text(), "Once was enough.")
	})
}

func TestOpenLockedBox(t *testing.T) {
	t.Run("without the tool", func(t *testing.T) {
		s := newTestSession(t)
		require.True(t, s.MoveTo("attic"))

		OpenLockedBox(s)

		assert.False(t, s.LockedBoxOpened)
		assert.Equal(t, 95, s.Player.Sanity)
		assert.Contains(t, s.Out.Text(), "The frustration gnaws at you.")
	})

	t.Run("opens once", func(t *testing.T) {
		s := newTestSession(t)
		require.True(t, s.MoveTo("attic"))
		s.Inventory = []string{"crowbar"}
		s.Player.Sanity = 50

		OpenLockedBox(s)
		assert.True(t, s.LockedBoxOpened)
		assert.True(t, s.NotesRead.Has("locked_box_journal"))
		assert.Equal(t, []string{"crowbar", "old photograph"}, s.Inventory)
		assert.Equal(t, 60, s.Player.Sanity)
		assert.Contains(t, s.Out.Text(), "- Graeme Crampton")

		OpenLockedBox(s)
		assert.Equal(t, []string{"crowbar", "old photograph"}, s.Inventory)
		assert.Equal(t, 60, s.Player.Sanity)
		assert.Contains(t, s.Out.Text(), "The box is already open.")
	})
}

func TestTryGardenDoor(t *testing.T) {
	t.Run("locked without the key", func(t *testing.T) {
		s := newTestSession(t)
		require.True(t, s.MoveTo("conservatory"))

		TryGardenDoor(s)

		assert.Equal(t, 98, s.Player.Sanity)
		assert.Equal(t, 3, s.Player.Health)
	})

	t.Run("the garden costs sanity and health", func(t *testing.T) {
		s := newTestSession(t)
		require.True(t, s.MoveTo("conservatory"))
		s.Inventory = []string{"small key"}

		TryGardenDoor(s)

		assert.Equal(t, 2, s.Player.Health)
		assert.Equal(t, 100-GardenSanityCost-state.LifeLossSanityPenalty, s.Player.Sanity)
		assert.Contains(t, s.Out.Text(), "Then... silence.")
	})

	t.Run("ward absorbs the health loss", func(t *testing.T) {
		s := newTestSession(t)
		require.True(t, s.MoveTo("conservatory"))
		s.Inventory = []string{"small key", "crucifix"}
		s.Protected = true

		TryGardenDoor(s)

		assert.Equal(t, 3, s.Player.Health)
		assert.False(t, s.Protected)
		assert.Equal(t, 95, s.Player.Sanity)
	})
}

func TestUnlockBasement(t *testing.T) {
	t.Run("without the key", func(t *testing.T) {
		s := newTestSession(t)
		require.True(t, s.MoveTo("basement"))

		assert.Nil(t, UnlockBasement(s))
		assert.Equal(t, 97, s.Player.Sanity)
	})

	t.Run("asks to descend", func(t *testing.T) {
		s := newTestSession(t)
		require.True(t, s.MoveTo("basement"))
		s.Inventory = []string{"rusty key"}

		m := UnlockBasement(s)
		require.NotNil(t, m)
		assert.Len(t, m.Choices, 2)
		assert.Equal(t, 100, s.Player.Sanity)

		a, ok := m.Select("maybe")
		assert.True(t, ok)
		assert.Equal(t, OpStayBehind, a.Op)
	})
}

func TestApplyEffect(t *testing.T) {
	tests := []struct {
		name       string
		effect     scenario.Effect
		wantHealth int
		wantSanity int
		wantItems  []string
	}{
		{"lose life", scenario.Effect{Kind: scenario.EffectLoseLife, Amount: 1}, 2, 35, nil},
		{"lose sanity", scenario.Effect{Kind: scenario.EffectLoseSanity, Amount: 8}, 3, 42, nil},
		{"gain life", scenario.Effect{Kind: scenario.EffectGainLife, Amount: 1}, 4, 60, nil},
		{"gain sanity", scenario.Effect{Kind: scenario.EffectGainSanity, Amount: 15}, 3, 65, nil},
		{"add item", scenario.Effect{Kind: scenario.EffectAddItem, Item: "rusty key"}, 3, 55, []string{"rusty key"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			s.Player.Sanity = 50

			ApplyEffect(s, tt.effect)

			assert.Equal(t, tt.wantHealth, s.Player.Health)
			assert.Equal(t, tt.wantSanity, s.Player.Sanity)
			if tt.wantItems == nil {
				assert.Empty(t, s.Inventory)
			} else {
				assert.Equal(t, tt.wantItems, s.Inventory)
			}
		})
	}
}

func TestDrawOutcome(t *testing.T) {
	s := newTestSession(t)
	require.True(t, s.MoveTo("kitchen"))
	table := s.Scenario.Table(scenario.ActionSearchCupboard)
	require.Len(t, table, 6)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		s.Player.SetHealth(5)
		s.Player.Sanity = 100
		o, ok := DrawOutcome(s, scenario.ActionSearchCupboard)
		require.True(t, ok)
		assert.Contains(t, table, o)
		seen[o.Text] = true
	}
	assert.Len(t, seen, len(table), "every outcome is reachable")

	_, ok := DrawOutcome(s, scenario.ActionGardenDoor)
	assert.False(t, ok)
}

func TestRest(t *testing.T) {
	s := newTestSession(t)
	s.Player.Sanity = 50

	Rest(s)
	assert.Equal(t, 4, s.Player.Health)
	assert.Equal(t, 60, s.Player.Sanity)
	assert.True(t, s.RestUsed.Has("grand_hall"))
	assert.NotContains(t, labels(MainMenu(s)), "Rest and recover")
}
