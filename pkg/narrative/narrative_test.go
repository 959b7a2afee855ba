package narrative

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_SplitsMultilineText(t *testing.T) {
	l := NewLog()
	l.Say("first\nsecond")
	l.System("menu")

	lines := l.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, Line{Role: RoleNarrator, Text: "first", Pace: PaceSlow}, lines[0])
	assert.Equal(t, Line{Role: RoleNarrator, Text: "second", Pace: PaceSlow}, lines[1])
	assert.Equal(t, Line{Role: RoleSystem, Text: "menu", Pace: PaceQuick}, lines[2])
}

func TestLog_PauseAttachesToPreviousLine(t *testing.T) {
	l := NewLog()
	l.Pause(time.Second)
	l.Say("static crackles")
	l.Pause(time.Second)
	l.Pause(500 * time.Millisecond)

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, time.Second, lines[0].Pause)
	assert.Empty(t, lines[0].Text)
	assert.Equal(t, 1500*time.Millisecond, lines[1].Pause)
}

func TestLog_Drain(t *testing.T) {
	l := NewLog()
	l.Sayf("You take the %s.", "knife")
	l.Warn("The walls seem closer than before...")

	assert.Equal(t, "You take the knife.\nThe walls seem closer than before...", l.Text())

	drained := l.Drain()
	assert.Len(t, drained, 2)
	assert.Equal(t, RoleWarning, drained[1].Role)
	assert.Zero(t, l.Len())
	assert.Empty(t, l.Drain())
}

func TestLog_SayAt(t *testing.T) {
	l := NewLog()
	l.SayAt(PaceFast, "Blood drips onto the floor.")
	l.Note("Day 4 in this hell")

	lines := l.Drain()
	require.Len(t, lines, 2)
	assert.Equal(t, PaceFast, lines[0].Pace)
	assert.Equal(t, RoleNote, lines[1].Role)
}
