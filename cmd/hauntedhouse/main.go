package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwebster45206/crampton-estate/internal/config"
	"github.com/jwebster45206/crampton-estate/internal/console"
	"github.com/jwebster45206/crampton-estate/internal/logger"
	"github.com/jwebster45206/crampton-estate/internal/random"
	"github.com/jwebster45206/crampton-estate/pkg/engine"
	"github.com/jwebster45206/crampton-estate/pkg/scenario"
	"github.com/jwebster45206/crampton-estate/pkg/state"
)

// stopGrace bounds how long an interrupt waits for narration to stop.
const stopGrace = 200 * time.Millisecond

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
	log := logger.Setup(cfg, w)

	err = run(cfg, log)
	_ = closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	sc, err := loadScenario(cfg.ScenarioPath)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	rng, seed, err := random.New(cfg.Seed)
	if err != nil {
		return fmt.Errorf("failed to seed randomness: %w", err)
	}

	session := state.NewSession(sc, rng, log)
	sessionLog := logger.WithSession(log, session.ID)
	sessionLog.Info("session started", "scenario", sc.Name, "seed", seed, "presenter", "console")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := console.New(os.Stdin, os.Stdout, console.Options{
		Pacing:    cfg.Pacing,
		CharDelay: cfg.CharDelay,
	}, log)

	// Reading stdin blocks, so the game runs aside and a signal ends the wait.
	errc := make(chan error, 1)
	go func() {
		errc <- c.Run(ctx, engine.NewGame(session))
	}()

	select {
	case err := <-errc:
		if err != nil && ctx.Err() == nil {
			logger.WithError(sessionLog, err).Error("console stopped")
			return err
		}
	case <-ctx.Done():
		// Typing stops on cancel. A goroutine blocked reading stdin never
		// returns, so only wait briefly for one that is still writing.
		select {
		case <-errc:
		case <-time.After(stopGrace):
		}
		fmt.Fprintln(os.Stdout, "\n\nYou tear yourself away from the estate. It will wait.")
		sessionLog.Info("interrupted", "seed", seed)
	}
	return nil
}

func loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.Default()
	}
	return scenario.Load(path)
}
