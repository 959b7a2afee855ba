package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwebster45206/crampton-estate/pkg/scenario"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <estate.yaml> [more.yaml...]\n", os.Args[0])
		os.Exit(1)
	}

	failed := false
	for _, filename := range os.Args[1:] {
		v := &ScenarioValidator{}
		if err := v.validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
			continue
		}
		for _, w := range v.warnings {
			fmt.Println(w)
		}
		fmt.Printf("%s is valid!\n", filename)
	}
	if failed {
		os.Exit(1)
	}
}

type ScenarioValidator struct {
	errors   []string
	warnings []string
}

func (v *ScenarioValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	ext := filepath.Ext(baseName)
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("scenario file must have .yaml extension: %s", baseName)
	}
	if !isValidScenarioFilename(strings.TrimSuffix(baseName, ext)) {
		return fmt.Errorf("scenario filename '%s' must be lowercase snake_case (e.g., my_house.yaml, not my-house.yaml or MyHouse.yaml)", baseName)
	}

	v.errors = nil
	v.warnings = nil

	s, err := scenario.Load(filename)
	if err != nil {
		v.collect(err)
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	v.checkReachable(s)
	return nil
}

// collect flattens joined validation errors into one line each.
func (v *ScenarioValidator) collect(err error) {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			v.collect(e)
		}
		return
	}
	v.addError(err.Error())
}

// checkReachable warns about rooms no chain of exits leads to from the start.
func (v *ScenarioValidator) checkReachable(s *scenario.Scenario) {
	seen := map[string]bool{s.Start: true}
	queue := []string{s.Start}
	for len(queue) > 0 {
		r, ok := s.Room(queue[0])
		queue = queue[1:]
		if !ok {
			continue
		}
		for _, e := range r.Exits {
			if !seen[e.To] {
				seen[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}
	for _, id := range s.RoomIDs() {
		if !seen[id] {
			v.warnings = append(v.warnings, fmt.Sprintf("  ! room '%s' cannot be reached from '%s'", id, s.Start))
		}
	}
}

func (v *ScenarioValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

func isValidScenarioFilename(name string) bool {
	// Allow 'x.' prefix for experimental houses
	name = strings.TrimPrefix(name, "x.")
	return scenario.IsValidID(name)
}
