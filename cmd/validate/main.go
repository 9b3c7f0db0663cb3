package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jwebster45206/hangman/pkg/item"
	"github.com/jwebster45206/hangman/pkg/state"
	"github.com/jwebster45206/hangman/pkg/story"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <save.json>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	validator := &SaveValidator{}

	if err := validator.validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}
	for _, w := range validator.warnings {
		fmt.Printf("warning: %s\n", w)
	}

	fmt.Println("Save file is valid!")
}

// SaveValidator checks a story save more strictly than the game does when
// loading it: unknown fields and inconsistent progression are reported.
type SaveValidator struct {
	errors   []string
	warnings []string
}

func (v *SaveValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	if !strings.HasSuffix(filepath.Base(filename), ".json") {
		return fmt.Errorf("save file must have .json extension: %s", filepath.Base(filename))
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return v.validateData(filename, data)
}

func (v *SaveValidator) validateData(filename string, data []byte) error {
	v.errors = nil
	v.warnings = nil

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var gs state.GameState
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&gs); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	v.validateSave(&gs)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}
	return nil
}

func (v *SaveValidator) validateSave(gs *state.GameState) {
	if err := gs.Validate(story.Count()); err != nil {
		v.errors = append(v.errors, strings.Split(err.Error(), "\n")...)
	}

	if gs.ID == uuid.Nil {
		v.errors = append(v.errors, "id is missing")
	}
	if gs.Completed && gs.Level != story.Count() {
		v.errors = append(v.errors, fmt.Sprintf("completed save must be on level %d, got %d", story.Count(), gs.Level))
	}

	// a bound slot without stock is legal but cannot be used
	for i, kind := range gs.Hotbar {
		if kind != item.None && gs.Count(kind) == 0 {
			v.warnings = append(v.warnings, fmt.Sprintf("hotbar slot %d is bound to %s but none is owned", i+1, kind))
		}
	}
	if gs.IsGameOver() && !gs.Completed {
		v.warnings = append(v.warnings, "no campaign lives left, the game will offer a reset")
	}
}
