// Package narrative carries the text a session produces for the player.
// The game core only appends lines; presenters drain them and decide how
// fast and in which style to print them.
package narrative

import (
	"fmt"
	"strings"
	"time"
)

// Pace is the cosmetic typing speed a presenter should use for a line.
type Pace int

const (
	PaceSlow  Pace = iota // atmospheric narration
	PaceFast              // repeated deaths in the same room
	PaceQuick             // menus, stats and other UI text
)

const (
	RoleNarrator = "narrator" // story text
	RoleSystem   = "system"   // menus, stats, prompts
	RoleWarning  = "warning"  // vitals warnings and damage
	RoleNote     = "note"     // lore notes and recorded messages
)

// Line is a single line of player-facing output.
type Line struct {
	Role  string
	Text  string
	Pace  Pace
	Pause time.Duration // wait after printing
}

// Log is an append-only buffer of lines awaiting presentation.
type Log struct {
	lines []Line
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{lines: make([]Line, 0, 16)}
}

// Add appends a fully specified line.
func (l *Log) Add(line Line) {
	l.lines = append(l.lines, line)
}

// Say appends slow narrator text. Multi-line text is split so presenters can
// pace each line.
func (l *Log) Say(text string) {
	l.add(RoleNarrator, PaceSlow, text)
}

// Sayf is Say with formatting.
func (l *Log) Sayf(format string, a ...any) {
	l.Say(fmt.Sprintf(format, a...))
}

// SayAt appends narration at the given pace.
func (l *Log) SayAt(pace Pace, text string) {
	l.add(RoleNarrator, pace, text)
}

// Warn appends slow warning text.
func (l *Log) Warn(text string) {
	l.add(RoleWarning, PaceSlow, text)
}

// Note appends note text.
func (l *Log) Note(text string) {
	l.add(RoleNote, PaceSlow, text)
}

// System appends quick UI text.
func (l *Log) System(text string) {
	l.add(RoleSystem, PaceQuick, text)
}

// Systemf is System with formatting.
func (l *Log) Systemf(format string, a ...any) {
	l.System(fmt.Sprintf(format, a...))
}

// Pause makes the presenter wait d after the previous line.
func (l *Log) Pause(d time.Duration) {
	if len(l.lines) == 0 {
		l.lines = append(l.lines, Line{Role: RoleSystem, Pace: PaceQuick, Pause: d})
		return
	}
	l.lines[len(l.lines)-1].Pause += d
}

// Lines returns the pending lines without draining them.
func (l *Log) Lines() []Line {
	return l.lines
}

// Len returns the number of pending lines.
func (l *Log) Len() int {
	return len(l.lines)
}

// Drain returns the pending lines and empties the log.
func (l *Log) Drain() []Line {
	out := l.lines
	l.lines = make([]Line, 0, 16)
	return out
}

// Text joins the pending lines, mostly useful for tests and transcripts.
func (l *Log) Text() string {
	return JoinText(l.lines)
}

// JoinText joins line texts with newlines.
func JoinText(lines []Line) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = line.Text
	}
	return strings.Join(parts, "\n")
}

func (l *Log) add(role string, pace Pace, text string) {
	for _, part := range strings.Split(text, "\n") {
		l.lines = append(l.lines, Line{Role: role, Text: part, Pace: pace})
	}
}
