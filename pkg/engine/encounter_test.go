package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/crampton-estate/pkg/scenario"
	"github.com/jwebster45206/crampton-estate/pkg/state"
)

func newTestSession(t *testing.T) *state.Session {
	t.Helper()
	sc, err := scenario.Default()
	require.NoError(t, err)
	return state.NewSession(sc, rand.New(rand.NewPCG(7, 11)), nil)
}

func TestResolveEncounter(t *testing.T) {
	tests := []struct {
		name                       string
		weapon, protection, ritual bool
		expected                   Outcome
	}{
		{"all three", true, true, true, OutcomeFullVictory},
		{"weapon and protection", true, true, false, OutcomeCostlyVictory},
		{"protection and ritual", false, true, true, OutcomeRetreat},
		{"protection only", false, true, false, OutcomeRetreat},
		{"weapon and ritual", true, false, true, OutcomeRecklessAttack},
		{"weapon only", true, false, false, OutcomeRecklessAttack},
		{"ritual only", false, false, true, OutcomeOverwhelmed},
		{"nothing", false, false, false, OutcomeOverwhelmed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveEncounter(tt.weapon, tt.protection, tt.ritual))
		})
	}
}

func TestEncounter(t *testing.T) {
	tests := []struct {
		name         string
		inventory    []string
		health       int
		protected    bool
		outcome      Outcome
		wantHealth   int
		wantVictory  bool
		wantGameOver bool
	}{
		{
			name:        "full victory costs nothing",
			inventory:   []string{"knife", "crucifix", "ancient book"},
			health:      3,
			outcome:     OutcomeFullVictory,
			wantHealth:  3,
			wantVictory: true,
		},
		{
			name:        "costly victory",
			inventory:   []string{"knife", "crucifix"},
			health:      3,
			outcome:     OutcomeCostlyVictory,
			wantHealth:  1,
			wantVictory: true,
		},
		{
			name:        "costly victory absorbed by the ward",
			inventory:   []string{"crucifix", "knife"},
			health:      3,
			protected:   true,
			outcome:     OutcomeCostlyVictory,
			wantHealth:  3,
			wantVictory: true,
		},
		{
			name:         "costly victory that kills",
			inventory:    []string{"knife", "crucifix"},
			health:       2,
			outcome:      OutcomeCostlyVictory,
			wantHealth:   0,
			wantGameOver: true,
		},
		{
			name:       "retreat survives",
			inventory:  []string{"crucifix"},
			health:     5,
			outcome:    OutcomeRetreat,
			wantHealth: 2,
		},
		{
			name:         "reckless attack",
			inventory:    []string{"knife"},
			health:       5,
			outcome:      OutcomeRecklessAttack,
			wantHealth:   1,
			wantGameOver: true,
		},
		{
			name:         "reckless attack at low health",
			inventory:    []string{"knife"},
			health:       3,
			outcome:      OutcomeRecklessAttack,
			wantHealth:   0,
			wantGameOver: true,
		},
		{
			name:         "overwhelmed",
			inventory:    []string{"rusty key"},
			health:       5,
			outcome:      OutcomeOverwhelmed,
			wantHealth:   0,
			wantGameOver: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			require.True(t, s.MoveTo("basement"))
			s.Inventory = tt.inventory
			s.Player.SetHealth(tt.health)
			s.Protected = tt.protected

			outcome := Encounter(s)

			assert.Equal(t, tt.outcome, outcome)
			assert.Equal(t, tt.wantHealth, s.Player.Health)
			assert.Equal(t, tt.wantVictory, s.Escaped)
			assert.Equal(t, tt.wantVictory, s.BossDefeated)
			assert.Equal(t, tt.wantGameOver, s.GameOver)
		})
	}
}

func TestEncounter_DependsOnlyOnInventory(t *testing.T) {
	first := newTestSession(t)
	first.Inventory = []string{"knife"}
	first.Player.SetHealth(5)

	second := newTestSession(t)
	second.Player.SetHealth(5)
	for _, id := range []string{"kitchen", "library", "attic"} {
		require.True(t, second.MoveTo(id))
		second.VisitRoom()
	}
	second.Inventory = []string{"knife"}

	assert.Equal(t, Encounter(first), Encounter(second))
	assert.Equal(t, first.Player.Health, second.Player.Health)
	assert.Equal(t, 5-RecklessDamage, first.Player.Health)
	assert.False(t, first.Escaped || second.Escaped)
}

func TestOutcome_Damage(t *testing.T) {
	assert.Equal(t, 0, OutcomeFullVictory.Damage())
	assert.Equal(t, 2, OutcomeCostlyVictory.Damage())
	assert.Equal(t, 3, OutcomeRetreat.Damage())
	assert.Equal(t, 4, OutcomeRecklessAttack.Damage())
	assert.Equal(t, "overwhelmed", OutcomeOverwhelmed.String())
}
