package demo

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dialogo/internal/app"
	"github.com/zhubert/dialogo/internal/config"
	"github.com/zhubert/dialogo/internal/keys"
	"github.com/zhubert/dialogo/internal/logger"
	"github.com/zhubert/dialogo/internal/ui"
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every step (default: false)
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration

	// TickDelay is the delay attached to each recording tick frame (default: 1s)
	TickDelay time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
		TickDelay:        time.Second,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config ExecutorConfig
	model  *app.Model
	frames []Frame

	currentAnnotation string
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config: cfg,
		frames: []Frame{},
	}
}

// Model returns the model driven by the last Run, or nil before the first.
func (e *Executor) Model() *app.Model {
	return e.model
}

// Cleanup detaches the model from its workspace.
func (e *Executor) Cleanup() {
	if e.model != nil {
		e.model.Close()
	}
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	log := logger.ComponentLogger("Demo")
	log.Info("running scenario", "name", scenario.Name, "steps", len(scenario.Steps))

	e.setup(scenario)
	defer e.Cleanup()

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			log.Warn("scenario step failed", "name", scenario.Name, "step", i, "error", err)
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	return e.frames, nil
}

// setup builds a model from the scenario's seed and preferences. The config
// has no file behind it, so a demo can never overwrite the user's settings.
func (e *Executor) setup(scenario *Scenario) {
	setup := scenario.Setup

	cfg := config.Default()
	cfg.MarkWelcomeShown() // Skip welcome modal in demos
	theme := setup.Theme
	if theme == "" {
		theme = string(ui.DefaultTheme)
	}
	cfg.SetTheme(theme)
	if setup.RecordWindowSeconds > 0 {
		cfg.SetRecordWindowSeconds(setup.RecordWindowSeconds)
	}
	cfg.SetDurationPolicy(setup.DurationPolicy)

	now := setup.Now
	if now.IsZero() {
		now = DefaultSetup().Now
	}

	e.frames = []Frame{}
	e.model = app.New(cfg, "demo",
		app.WithSeed(setup.Seed),
		app.WithClock(func() time.Time { return now }),
	)
	e.update(tea.WindowSizeMsg{
		Width:  scenario.Width,
		Height: scenario.Height,
	})

	if setup.Focus == "chat" && e.model.Focus() != app.FocusChat {
		e.sendKey(keys.Tab)
	}
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.sendKey(step.Key)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			e.sendKey(string(ch))
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepTick:
		token := e.model.Snapshot().Recording.Token
		if token == "" {
			return fmt.Errorf("no active recording to tick")
		}
		for range step.Count {
			e.update(app.RecordingTickMsg{Token: token})
			e.captureFrame(index, e.config.TickDelay)
		}

	case StepTimeout:
		token := e.model.Snapshot().Recording.Token
		if token == "" {
			return fmt.Errorf("no active recording to finish")
		}
		e.update(app.RecordingTimeoutMsg{Token: token})
		e.captureFrame(index, 300*time.Millisecond)

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)

	default:
		return fmt.Errorf("unknown step type %d", step.Type)
	}

	return nil
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	frame := Frame{
		Content:    e.model.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

// update delivers msg to the model. Returned commands are dropped: timers are
// driven by steps, and clipboard or notification side effects stay off.
func (e *Executor) update(msg tea.Msg) {
	result, _ := e.model.Update(msg)
	e.model = result.(*app.Model)
}

// sendKey sends a key press to the model.
func (e *Executor) sendKey(key string) {
	e.update(keyPress(key))
}

// keyPress converts a key string to a tea.KeyPressMsg.
// Duplicated from the app tests, which are not importable.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape, "escape":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case keys.CtrlUp:
		return tea.KeyPressMsg{Code: tea.KeyUp, Mod: tea.ModCtrl}
	case keys.CtrlDown:
		return tea.KeyPressMsg{Code: tea.KeyDown, Mod: tea.ModCtrl}
	case keys.CtrlC, keys.CtrlE, keys.CtrlS, keys.CtrlR, keys.CtrlT, keys.CtrlY:
		return tea.KeyPressMsg{Code: rune(key[len(key)-1]), Mod: tea.ModCtrl}
	case keys.Alt1, keys.Alt2, keys.Alt3:
		return tea.KeyPressMsg{Code: rune(key[len(key)-1]), Mod: tea.ModAlt}
	default:
		r := []rune(key)
		if len(r) == 1 {
			return tea.KeyPressMsg{Code: r[0], Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
