package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Crampton Estate", s.Name)
	assert.Equal(t, "grand_hall", s.StartRoom().ID)
	assert.Equal(t, 3, s.StartHealth)
	assert.Equal(t, 5, s.MaxHealth)
	assert.Len(t, s.Rooms, 13)
	assert.Equal(t, "knife", s.Items.Weapon)
	assert.Equal(t, "crucifix", s.Items.Protection)
	assert.Equal(t, "ancient book", s.Items.Ritual)
	assert.Equal(t, "locked_box_journal", s.BoxNote.ID)
	assert.Equal(t, "Graeme's Final Journal Entry:", s.BoxNote.Lines()[0])
	assert.Equal(t, "- Graeme Crampton", s.BoxNote.Lines()[len(s.BoxNote.Lines())-1])
}

func TestDefault_RoomGraph(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	tests := []struct {
		room      string
		direction string
		expected  string
	}{
		{"grand_hall", "north", "library"},
		{"grand_hall", "up", "second_floor_hall"},
		{"library", "down", "basement"},
		{"kitchen", "south", "conservatory"},
		{"bathroom", "up", "attic"},
		{"attic", "down", "bathroom"},
		{"master_bedroom", "up", "attic"},
	}
	for _, tt := range tests {
		t.Run(tt.room+"_"+tt.direction, func(t *testing.T) {
			r, ok := s.Room(tt.room)
			require.True(t, ok)
			to, ok := r.Exit(tt.direction)
			require.True(t, ok)
			assert.Equal(t, tt.expected, to)
		})
	}

	attic, _ := s.Room("attic")
	_, ok := attic.Exit("up")
	assert.False(t, ok, "attic has no way up")
}

func TestDefault_RoomActions(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	expected := map[string]ActionKind{
		"kitchen":        ActionSearchCupboard,
		"library":        ActionPlayCassette,
		"basement":       ActionUnlockBasement,
		"conservatory":   ActionGardenDoor,
		"master_bedroom": ActionSearchWardrobe,
		"attic":          ActionOpenLockedBox,
		"kids_bedroom":   ActionMeditate,
	}
	for _, r := range s.Rooms {
		kind, ok := expected[r.ID]
		if !ok {
			assert.Nil(t, r.Action, "room %s", r.ID)
			continue
		}
		require.NotNil(t, r.Action, "room %s", r.ID)
		assert.Equal(t, kind, r.Action.Kind)
	}
}

func TestDefault_Objects(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	kitchen, _ := s.Room("kitchen")
	cupboard, ok := kitchen.Object("cupboard")
	require.True(t, ok)
	assert.Equal(t, ActionSearchCupboard, cupboard.Action)

	drawer, _ := kitchen.Object("drawer")
	assert.Equal(t, []string{"knife"}, drawer.Items)
	assert.NotEmpty(t, drawer.ExaminedDescription)

	kids, _ := s.Room("kids_bedroom")
	musicBox, _ := kids.Object("music box")
	assert.Equal(t, -2, musicBox.Health)

	attic, _ := s.Room("attic")
	doll, _ := attic.Object("doll")
	assert.Equal(t, -1, doll.Health)

	hall, _ := s.Room("grand_hall")
	note, _ := hall.Object("entrance note")
	assert.True(t, note.IsNote())
	assert.True(t, strings.HasPrefix(note.Description, "A note in shaky handwriting:"))
}

func TestDefault_Tables(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	assert.Len(t, s.Table(ActionSearchCupboard), 6)
	assert.Len(t, s.Table(ActionSearchWardrobe), 4)
	assert.Len(t, s.Table(ActionMeditate), 4)
	assert.Empty(t, s.Table(ActionGardenDoor))

	found := false
	for _, o := range s.Table(ActionSearchCupboard) {
		if o.Effect.Kind == EffectAddItem {
			assert.Equal(t, s.Items.BasementKey, o.Effect.Item)
			found = true
		}
	}
	assert.True(t, found, "the cupboard can yield the basement key")
}

func TestActionKind_YAML(t *testing.T) {
	kind, err := ParseActionKind("open_locked_box")
	require.NoError(t, err)
	assert.Equal(t, ActionOpenLockedBox, kind)
	assert.True(t, kind.IsSet())
	assert.False(t, kind.IsRandomized())
	assert.True(t, ActionMeditate.IsRandomized())

	_, err = ParseActionKind("dance")
	assert.Error(t, err)
}

const minimalScenario = `
name: Test House
start: hall
start_health: 2
max_health: 4
items:
  weapon: knife
  protection: crucifix
  ritual: book
  basement_key: key
  box_tool: crowbar
  tape: tape
  garden_key: small key
  box_reward: photo
box_note:
  id: box_journal
  text: "It is below."
rooms:
  - id: hall
    name: Hall
    description: A hall.
    exits:
      - { direction: north, to: cellar }
    objects:
      - name: chest
        description: A chest.
        items: [knife]
  - id: cellar
    name: Cellar
    description: A cellar.
    exits:
      - { direction: south, to: hall }
    action: { kind: unlock_basement, label: Use key }
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(minimalScenario))
	require.NoError(t, err)
	assert.Equal(t, "Test House", s.Name)
	assert.Equal(t, []string{"hall", "cellar"}, s.RoomIDs())

	r, ok := s.Room("cellar")
	require.True(t, ok)
	assert.Equal(t, ActionUnlockBasement, r.Action.Kind)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "empty",
			yaml:    "",
			wantErr: "scenario is empty",
		},
		{
			name:    "unknown field",
			yaml:    minimalScenario + "ghosts: 3\n",
			wantErr: "field ghosts not found",
		},
		{
			name:    "unknown action",
			yaml:    strings.Replace(minimalScenario, "kind: unlock_basement", "kind: levitate", 1),
			wantErr: `unknown action "levitate"`,
		},
		{
			name:    "broken exit",
			yaml:    strings.Replace(minimalScenario, "to: cellar", "to: attic", 1),
			wantErr: `room hall exit north leads to unknown room "attic"`,
		},
		{
			name:    "bad direction",
			yaml:    strings.Replace(minimalScenario, "direction: north", "direction: sideways", 1),
			wantErr: `room hall has unknown exit direction "sideways"`,
		},
		{
			name:    "missing start room",
			yaml:    strings.Replace(minimalScenario, "start: hall", "start: porch", 1),
			wantErr: `start room "porch" does not exist`,
		},
		{
			name:    "start health above max",
			yaml:    strings.Replace(minimalScenario, "start_health: 2", "start_health: 9", 1),
			wantErr: "start_health must be in 1..max_health, got 9",
		},
		{
			name:    "missing key item",
			yaml:    strings.Replace(minimalScenario, "  ritual: book\n", "", 1),
			wantErr: "items.ritual is required",
		},
		{
			name:    "randomized action without a table",
			yaml:    strings.Replace(minimalScenario, "kind: unlock_basement", "kind: meditate", 1),
			wantErr: "action meditate is used but has no outcome table",
		},
		{
			name:    "cassette without a room",
			yaml:    strings.Replace(minimalScenario, "kind: unlock_basement", "kind: play_cassette", 1),
			wantErr: "action play_cassette is used but cassette_room is not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Tables(t *testing.T) {
	s, err := Parse([]byte(minimalScenario))
	require.NoError(t, err)

	s.Tables = map[string][]Outcome{
		"garden_door": {{Text: "x", Effect: Effect{Kind: EffectLoseSanity, Amount: 1}}},
		"meditate": {
			{Text: "a", Effect: Effect{Kind: "explode", Amount: 1}},
			{Text: "b", Effect: Effect{Kind: EffectAddItem}},
			{Text: "c", Effect: Effect{Kind: EffectLoseLife}},
		},
		"search_wardrobe": {},
	}
	err = s.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, `table "garden_door" does not belong to a randomized action`)
	assert.Contains(t, msg, `table meditate outcome 0 has unknown effect kind "explode"`)
	assert.Contains(t, msg, "table meditate outcome 1 adds an item without naming it")
	assert.Contains(t, msg, "table meditate outcome 2 needs a positive amount, got 0")
	assert.Contains(t, msg, `table "search_wardrobe" is empty`)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "house.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalScenario), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hall", s.StartRoom().ID)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read scenario file")
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID("grand_hall"))
	assert.True(t, IsValidID("a"))
	assert.False(t, IsValidID("Grand Hall"))
	assert.False(t, IsValidID("trailing_"))
	assert.False(t, IsValidID(""))
}
