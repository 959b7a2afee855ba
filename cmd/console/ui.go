package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/crampton-estate/pkg/engine"
	"github.com/jwebster45206/crampton-estate/pkg/narrative"
)

const (
	PlaceHolderText = "Type a letter and press Enter..."

	rolePlayer = "player" // echoed input, never produced by the game
)

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	game      *engine.Game
	seed      int64
	pacing    bool
	charDelay time.Duration
	log       *slog.Logger

	chatViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int

	transcript []narrative.Line
	pending    []narrative.Line // waiting to be typed out
	typed      int              // runes of pending[0] shown so far
	typing     bool             // a typeTickMsg is scheduled
	status     string

	showQuitModal bool
}

type typeTickMsg struct{}

type uiOptions struct {
	Seed      int64
	Pacing    bool
	CharDelay time.Duration
}

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("124")). // blood red
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // bone

	systemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // grey

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("180")). // parchment
			Italic(true)

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("52")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("124")).
			Bold(true).
			Align(lipgloss.Center)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

// NewConsoleUI starts the game and returns a model presenting it.
func NewConsoleUI(g *engine.Game, opts uiOptions, logger *slog.Logger) ConsoleUI {
	if logger == nil {
		logger = slog.Default()
	}
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	m := ConsoleUI{
		game:         g,
		seed:         opts.Seed,
		pacing:       opts.Pacing && opts.CharDelay > 0,
		charDelay:    opts.CharDelay,
		log:          logger,
		textarea:     ta,
		chatViewport: chatVp,
		metaViewport: metaVp,
	}
	g.Start()
	m.collect()
	return m
}

func (m ConsoleUI) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.startTyping())
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.chatViewport, vpCmd = m.chatViewport.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		chatWidth := int(float64(m.width)*0.75) - 4
		metaWidth := m.width - chatWidth - 6

		m.chatViewport.Width = chatWidth - 2
		m.chatViewport.Height = m.height - 7
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textarea.SetWidth(chatWidth - 4)
		m.ready = true

		m.writeChatContent()
		m.metaViewport.SetContent(m.writeMetadata())

	case typeTickMsg:
		cmd := m.advance()
		m.writeChatContent()
		return m, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			return m.submit()
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

// submit handles Enter. While text is still being typed out the first Enter
// only skips ahead, so a menu is never answered before it has been shown.
func (m ConsoleUI) submit() (tea.Model, tea.Cmd) {
	if len(m.pending) > 0 {
		m.flush()
		m.writeChatContent()
		return m, nil
	}
	if m.game.Done() {
		return m, tea.Quit
	}

	input := strings.TrimSpace(m.textarea.Value())
	m.textarea.Reset()
	if strings.HasPrefix(input, "/") {
		return m.handleCommand(input)
	}

	m.status = ""
	m.transcript = append(m.transcript, narrative.Line{Role: rolePlayer, Text: input})
	m.game.Input(input)
	m.collect()

	m.writeChatContent()
	m.metaViewport.SetContent(m.writeMetadata())
	return m, m.startTyping()
}

func (m ConsoleUI) handleCommand(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/help":
		m.status = "Answer each menu with its letter. ? shows the game help. /copy copies the transcript. /quit leaves."
	case "/copy":
		if err := clipboard.WriteAll(transcriptText(m.transcript)); err != nil {
			m.log.Warn("clipboard unavailable", "error", err)
			m.status = "Could not reach the clipboard: " + err.Error()
		} else {
			m.status = fmt.Sprintf("Copied %d lines to the clipboard.", len(m.transcript))
		}
	case "/quit":
		m.showQuitModal = true
	default:
		m.status = "Unknown command " + input + ". Try /help."
	}
	m.writeChatContent()
	return m, nil
}

// collect moves fresh game output into the transcript, or queues it for
// typing when pacing is on.
func (m *ConsoleUI) collect() {
	lines := m.game.Session.Out.Drain()
	if m.pacing {
		m.pending = append(m.pending, lines...)
		return
	}
	m.transcript = append(m.transcript, lines...)
}

func (m *ConsoleUI) flush() {
	m.transcript = append(m.transcript, m.pending...)
	m.pending = nil
	m.typed = 0
}

func (m *ConsoleUI) startTyping() tea.Cmd {
	if m.typing || len(m.pending) == 0 {
		return nil
	}
	m.typing = true
	return typeTick(m.delay(m.pending[0].Pace))
}

// advance reveals one more rune, or finishes the current line and honors
// its pause.
func (m *ConsoleUI) advance() tea.Cmd {
	if len(m.pending) == 0 {
		m.typing = false
		return nil
	}
	line := m.pending[0]
	if m.typed < utf8.RuneCountInString(line.Text) {
		m.typed++
		return typeTick(m.delay(line.Pace))
	}
	m.transcript = append(m.transcript, line)
	m.pending = m.pending[1:]
	m.typed = 0
	if len(m.pending) == 0 {
		m.typing = false
		return nil
	}
	if line.Pause > 0 {
		return typeTick(line.Pause)
	}
	return typeTick(m.delay(m.pending[0].Pace))
}

func (m *ConsoleUI) delay(p narrative.Pace) time.Duration {
	d := m.charDelay
	switch p {
	case narrative.PaceFast:
		d /= 2
	case narrative.PaceQuick:
		d /= 6
	}
	return max(d, time.Millisecond)
}

func typeTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return typeTickMsg{}
	})
}

// writeChatContent rebuilds the transcript for the current viewport width.
func (m *ConsoleUI) writeChatContent() {
	chatWidth := max(m.chatViewport.Width-6, 20)

	var content strings.Builder
	content.WriteString(titleStyle.Render(strings.ToUpper(m.game.Session.Scenario.Name)) + "\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", chatWidth)) + "\n\n")

	for _, line := range m.transcript {
		content.WriteString(renderLine(line, chatWidth) + "\n")
	}
	if len(m.pending) > 0 && m.typed > 0 {
		partial := m.pending[0]
		partial.Text = string([]rune(partial.Text)[:m.typed])
		content.WriteString(renderLine(partial, chatWidth) + "\n")
	}
	if m.game.Done() && len(m.pending) == 0 {
		content.WriteString("\n" + promptStyle.Render("Press Enter to leave the estate.") + "\n")
	}
	if m.status != "" {
		content.WriteString("\n" + systemStyle.Render(m.status) + "\n")
	}

	m.chatViewport.SetContent(content.String())
	m.chatViewport.GotoBottom()
}

func renderLine(line narrative.Line, width int) string {
	switch line.Role {
	case rolePlayer:
		return userStyle.Render("> " + line.Text)
	case narrative.RoleSystem:
		// menus and the map keep their layout
		return systemStyle.Render(line.Text)
	case narrative.RoleWarning:
		return warningStyle.Render(wordwrap.String(line.Text, width))
	case narrative.RoleNote:
		return noteStyle.Render(wordwrap.String(line.Text, width))
	default:
		return narratorStyle.Render(wordwrap.String(line.Text, width))
	}
}

func (m ConsoleUI) writeMetadata() string {
	s := m.game.Session
	var content strings.Builder
	content.WriteString(titleStyle.Render("SESSION") + "\n\n")

	content.WriteString("Game ID:\n")
	content.WriteString(s.ID.String()[:8] + "...\n\n")

	content.WriteString("Seed:\n")
	content.WriteString(fmt.Sprintf("%d\n\n", m.seed))

	content.WriteString("Room:\n")
	content.WriteString(s.Room.Name + "\n\n")

	content.WriteString(fmt.Sprintf("Turn: %d\n", s.Turn))
	content.WriteString(fmt.Sprintf("Rooms explored: %d\n\n", s.RoomsExplored()))

	content.WriteString(s.HealthBar() + "\n")
	content.WriteString(s.SanityBar() + "\n\n")

	if len(s.Inventory) > 0 {
		content.WriteString("Inventory:\n")
		for _, item := range s.Inventory {
			content.WriteString(fmt.Sprintf("• %s\n", item))
		}
	} else {
		content.WriteString("Inventory:\nEmpty\n")
	}

	content.WriteString("\n")
	content.WriteString("Commands:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Enter: Answer\n")
	content.WriteString("• /help: Help\n")
	content.WriteString("• /copy: Copy transcript\n")

	return content.String()
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Flee the Estate?"))
	content.WriteString("\n\n")
	content.WriteString("The house will still be here. It is always here.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	chatWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - chatWidth - 6

	chatPanel := chatPanelStyle.Width(chatWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(chatWidth-4, 0))),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, metaPanel)
}

// transcriptText renders the transcript as plain text for the clipboard.
func transcriptText(lines []narrative.Line) string {
	var b strings.Builder
	for _, line := range lines {
		if line.Role == rolePlayer {
			b.WriteString("> ")
		}
		b.WriteString(line.Text)
		b.WriteString("\n")
	}
	return b.String()
}
