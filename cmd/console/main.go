package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/crampton-estate/internal/config"
	"github.com/jwebster45206/crampton-estate/internal/logger"
	"github.com/jwebster45206/crampton-estate/internal/random"
	"github.com/jwebster45206/crampton-estate/pkg/engine"
	"github.com/jwebster45206/crampton-estate/pkg/scenario"
	"github.com/jwebster45206/crampton-estate/pkg/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	w, closeLog, err := logger.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = closeLog() // Ignore error in defer
	}()
	if w == os.Stderr {
		// stderr belongs to the alt screen; only log when a file is configured
		w = io.Discard
	}
	log := logger.Setup(cfg, w)

	sc, err := loadScenario(cfg.ScenarioPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load scenario: %v\n", err)
		os.Exit(1)
	}

	rng, seed, err := random.New(cfg.Seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed randomness: %v\n", err)
		os.Exit(1)
	}

	session := state.NewSession(sc, rng, log)
	logger.WithSession(log, session.ID).Info("session started",
		"scenario", sc.Name, "seed", seed, "presenter", "tui")

	ui := NewConsoleUI(engine.NewGame(session), uiOptions{
		Seed:      seed,
		Pacing:    cfg.Pacing,
		CharDelay: cfg.CharDelay,
	}, log)

	p := tea.NewProgram(ui,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.Default()
	}
	return scenario.Load(path)
}
