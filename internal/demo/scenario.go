// Package demo drives Dialogo headlessly through scripted scenarios and
// captures rendered frames. Timers never run for real: recording ticks and
// timeouts are delivered as steps, so every run is deterministic.
package demo

import (
	"strconv"
	"time"

	"github.com/zhubert/dialogo/internal/chat"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepTick delivers recording ticks for the live recording session.
	StepTick
	// StepTimeout fires the capture window timeout of the live recording.
	StepTimeout
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText
	Text string

	// For StepWait
	Duration time.Duration

	// For StepTick
	Count int

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 120)
	Height      int // Terminal height (default 40)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	// Seed is the in-memory data the workspace starts with
	Seed chat.Seed

	Theme               string
	RecordWindowSeconds int
	DurationPolicy      chat.DurationPolicy

	// Initial focus (sidebar or chat)
	Focus string

	// Now is the frozen wall clock used to timestamp sent messages
	Now time.Time
}

// DefaultSetup returns the built-in data set with default preferences.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		Seed:                chat.DefaultSeed(),
		RecordWindowSeconds: 3,
		DurationPolicy:      chat.DurationAtArm,
		Focus:               "sidebar",
		Now:                 time.Date(2026, 3, 14, 14, 35, 0, 0, time.UTC),
	}
}

// Validate checks that the scenario is valid and fills in defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 120
	}
	if s.Height <= 0 {
		s.Height = 40
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	if s.Setup.Focus != "" && s.Setup.Focus != "sidebar" && s.Setup.Focus != "chat" {
		return &ValidationError{Field: "Setup.Focus", Message: "focus must be sidebar or chat"}
	}
	for i, step := range s.Steps {
		if step.Type == StepTick && step.Count < 0 {
			return &ValidationError{Field: "Steps", Message: "tick count must not be negative at step " + strconv.Itoa(i)}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// Tick advances the live recording by n elapsed seconds.
func Tick(n int) Step {
	return Step{
		Type:  StepTick,
		Count: n,
	}
}

// Timeout ends the live recording as if its capture window ran out.
func Timeout() Step {
	return Step{
		Type: StepTimeout,
	}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
