// Package console presents a game on a plain line-oriented terminal:
// narration is typed out on stdout and each answer is read from stdin.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"github.com/jwebster45206/crampton-estate/pkg/engine"
	"github.com/jwebster45206/crampton-estate/pkg/narrative"
)

const (
	DefaultWidth = 80
	PromptText   = "> "
)

// Options controls cosmetic output. None of it affects game state.
type Options struct {
	Pacing    bool          // type narration character by character
	CharDelay time.Duration // per character at the slow pace
	Width     int           // wrap width; 0 detects the terminal
}

// Console is a stdin/stdout presenter for an engine.Game.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	opts   Options
	styles styles
	sleep  func(context.Context, time.Duration) error
	log    *slog.Logger
}

type styles struct {
	narrator lipgloss.Style
	warning  lipgloss.Style
	note     lipgloss.Style
	system   lipgloss.Style
}

// New creates a console reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Width <= 0 {
		opts.Width = detectWidth(out)
	}
	r := lipgloss.NewRenderer(out)
	return &Console{
		in:   bufio.NewReader(in),
		out:  out,
		opts: opts,
		styles: styles{
			narrator: r.NewStyle(),
			warning:  r.NewStyle().Foreground(lipgloss.Color("196")),              // red
			note:     r.NewStyle().Foreground(lipgloss.Color("180")).Italic(true), // parchment
			system:   r.NewStyle().Foreground(lipgloss.Color("245")),              // grey
		},
		sleep: sleep,
		log:   logger,
	}
}

// Run plays the game until it ends, input runs out or ctx is cancelled.
// End of input is a normal way to leave and is not an error.
func (c *Console) Run(ctx context.Context, g *engine.Game) error {
	g.Start()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.print(ctx, g.Session.Out.Drain()); err != nil {
			return err
		}
		if g.Done() {
			return nil
		}

		line, err := c.readLine()
		if errors.Is(err, io.EOF) {
			c.log.Info("input closed", "status", g.Status().String())
			fmt.Fprintln(c.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		g.Input(line)
	}
}

// Print writes lines with their role styling and pacing.
func (c *Console) Print(lines []narrative.Line) error {
	return c.print(context.Background(), lines)
}

// print stops writing as soon as ctx is cancelled, even mid-line.
func (c *Console) print(ctx context.Context, lines []narrative.Line) error {
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.printLine(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) printLine(ctx context.Context, line narrative.Line) error {
	text := line.Text
	if c.opts.Width > 0 && line.Role != narrative.RoleSystem {
		text = wordwrap.String(text, c.opts.Width)
	}
	rendered := c.style(line.Role).Render(text)

	delay := c.charDelay(line.Pace)
	if delay == 0 {
		if _, err := fmt.Fprintln(c.out, rendered); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		if err := c.typeOut(ctx, rendered, delay); err != nil {
			return err
		}
	}
	if c.opts.Pacing && line.Pause > 0 {
		return c.sleep(ctx, line.Pause)
	}
	return nil
}

// typeOut writes s one rune at a time. Escape sequences are written without
// delay so styling does not slow the text down.
func (c *Console) typeOut(ctx context.Context, s string, delay time.Duration) error {
	inEscape := false
	for _, r := range s {
		if _, err := io.WriteString(c.out, string(r)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			if err := c.sleep(ctx, delay); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(c.out, "\n")
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *Console) charDelay(p narrative.Pace) time.Duration {
	if !c.opts.Pacing {
		return 0
	}
	switch p {
	case narrative.PaceFast:
		return c.opts.CharDelay / 2
	case narrative.PaceQuick:
		return c.opts.CharDelay / 6
	default:
		return c.opts.CharDelay
	}
}

func (c *Console) style(role string) lipgloss.Style {
	switch role {
	case narrative.RoleWarning:
		return c.styles.warning
	case narrative.RoleNote:
		return c.styles.note
	case narrative.RoleSystem:
		return c.styles.system
	default:
		return c.styles.narrator
	}
}

func (c *Console) readLine() (string, error) {
	if _, err := io.WriteString(c.out, "\n"+PromptText); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func detectWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}
