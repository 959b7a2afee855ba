package state

import (
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"github.com/jwebster45206/crampton-estate/pkg/actor"
	"github.com/jwebster45206/crampton-estate/pkg/narrative"
	"github.com/jwebster45206/crampton-estate/pkg/scenario"
)

// TapePlayedMarker is stored in the read-set once the cassette has played.
// It is not a note and is excluded from note counts.
const TapePlayedMarker = "tape_played"

// Cause records why a session ended in failure.
type Cause int

const (
	CauseNone    Cause = iota
	CauseDeath         // health reached 0
	CauseMadness       // sanity reached 0
)

func (c Cause) String() string {
	switch c {
	case CauseDeath:
		return "death"
	case CauseMadness:
		return "madness"
	default:
		return "none"
	}
}

// Session is the mutable state of one visit to the estate.
// The scenario it points at is shared and never modified.
type Session struct {
	ID       uuid.UUID
	Scenario *scenario.Scenario
	Room     *scenario.Room

	Inventory []string // insertion order is display order
	Player    *actor.Player

	Visited   mapset.Set[string] // room IDs entered
	RestUsed  mapset.Set[string] // room IDs whose one-time recovery was claimed
	NotesRead mapset.Set[string] // note IDs plus TapePlayedMarker

	RoomDeaths     map[string]int
	Turn           int
	SanityWarnings int
	Protected      bool // one-shot ward granted by the protection item

	GameOver        bool
	Escaped         bool
	BossDefeated    bool
	LockedBoxOpened bool
	Cause           Cause

	// Out collects narration until a presenter drains it.
	Out *narrative.Log

	overlay map[objectKey]*ObjectState
	rng     *rand.Rand
	log     *slog.Logger
}

// NewSession starts a session in the scenario's start room. rng drives every
// random outcome; pass a fixed-seed source for reproducible play.
// A nil logger falls back to slog.Default().
func NewSession(sc *scenario.Scenario, rng *rand.Rand, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.New()
	return &Session{
		ID:         id,
		Scenario:   sc,
		Room:       sc.StartRoom(),
		Inventory:  make([]string, 0, 8),
		Player:     actor.NewPlayer(sc.StartHealth, sc.MaxHealth),
		Visited:    mapset.New[string](),
		RestUsed:   mapset.New[string](),
		NotesRead:  mapset.New[string](),
		RoomDeaths: make(map[string]int),
		Out:        narrative.NewLog(),
		overlay:    make(map[objectKey]*ObjectState),
		rng:        rng,
		log:        logger.With("session_id", id.String()),
	}
}

// Logger returns the session-scoped logger.
func (s *Session) Logger() *slog.Logger {
	return s.log
}

// Intn draws a uniform integer in [0, n).
func (s *Session) Intn(n int) int {
	return s.rng.IntN(n)
}

// MoveTo sets the current room. Unknown IDs leave the session where it is.
func (s *Session) MoveTo(roomID string) bool {
	r, ok := s.Scenario.Room(roomID)
	if !ok {
		s.log.Warn("move to unknown room", "room", roomID)
		return false
	}
	s.Room = r
	s.log.Debug("moved", "room", roomID)
	return true
}

// VisitRoom records the current room as explored.
func (s *Session) VisitRoom() {
	s.Visited.Put(s.Room.ID)
}

// RoomsExplored returns how many distinct rooms have been entered.
func (s *Session) RoomsExplored() int {
	return s.Visited.Size()
}

// HasItem reports whether the item is in the inventory.
func (s *Session) HasItem(item string) bool {
	for _, held := range s.Inventory {
		if held == item {
			return true
		}
	}
	return false
}

// NotesReadCount counts read notes, excluding the cassette marker.
func (s *Session) NotesReadCount() int {
	n := s.NotesRead.Size()
	if s.NotesRead.Has(TapePlayedMarker) {
		n--
	}
	return n
}

// Won reports the terminal success condition.
func (s *Session) Won() bool {
	return s.Escaped && s.BossDefeated
}

// Ended reports whether the session has reached either terminal state.
func (s *Session) Ended() bool {
	return s.GameOver || s.Won()
}

// CheckVitals ends the session if either vital has reached zero.
// Madness takes precedence, matching the game-over screen.
func (s *Session) CheckVitals() bool {
	switch {
	case s.Player.IsInsane():
		s.end(CauseMadness)
	case s.Player.IsDead():
		s.end(CauseDeath)
	}
	return s.GameOver
}

// end sets the terminal failure flag once. Later triggers are no-ops.
func (s *Session) end(cause Cause) {
	if s.GameOver {
		return
	}
	s.GameOver = true
	s.Cause = cause
	s.log.Info("session ended",
		"cause", cause.String(),
		"room", s.Room.ID,
		"turn", s.Turn,
		"health", s.Player.Health,
		"sanity", s.Player.Sanity)
}
