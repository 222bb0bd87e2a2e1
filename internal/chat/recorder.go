package chat

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zhubert/dialogo/internal/logger"
)

// TickInterval is how often an active recording's elapsed counter advances.
const TickInterval = time.Second

// DefaultRecordWindow is the fixed capture window after which a recording
// finalizes into a message.
const DefaultRecordWindow = 3 * time.Second

// RecordingMode is the capture type of a recording session.
type RecordingMode int

const (
	ModeInactive RecordingMode = iota
	ModeVoice
	ModeVideo
)

func (m RecordingMode) String() string {
	switch m {
	case ModeVoice:
		return "voice"
	case ModeVideo:
		return "video"
	default:
		return "inactive"
	}
}

// Kind returns the message kind a finalized recording produces.
func (m RecordingMode) Kind() Kind {
	if m == ModeVideo {
		return KindVideo
	}
	return KindVoice
}

// DurationPolicy selects which elapsed value a finalized recording reports.
type DurationPolicy int

const (
	// DurationAtArm reports the elapsed value captured when the capture
	// window was armed. Since the counter starts at zero, finalized
	// recordings report 0:00 regardless of how many ticks occurred.
	DurationAtArm DurationPolicy = iota
	// DurationLive reports the elapsed value at the moment of finalize.
	DurationLive
)

func (p DurationPolicy) String() string {
	if p == DurationLive {
		return "live"
	}
	return "at-arm"
}

// ParseDurationPolicy parses "at-arm" or "live". Empty means at-arm.
func ParseDurationPolicy(s string) (DurationPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "at-arm", "arm":
		return DurationAtArm, nil
	case "live":
		return DurationLive, nil
	default:
		return DurationAtArm, fmt.Errorf("unknown duration policy %q (want at-arm or live)", s)
	}
}

// Timers is the timer handle set owned by one recording session. The display
// layer schedules a periodic tick and a single timeout, both tagged with
// Token. Once the session ends the token is dead and both timers are inert.
type Timers struct {
	Token  string
	Tick   time.Duration
	Window time.Duration
}

// Recording is a value snapshot of the recorder.
type Recording struct {
	Mode    RecordingMode
	Elapsed int
	Token   string
}

// Active reports whether a recording is in progress.
func (r Recording) Active() bool {
	return r.Mode != ModeInactive
}

// Recorder is the voice/video capture state machine:
//
//	Idle --Start(mode)--> Recording(mode, 0)
//	Recording --Tick--> Recording(mode, elapsed+1)
//	Recording --Cancel--> Idle (no message)
//	Recording --Timeout--> Idle (draft produced)
//
// At most one recording is active across both modes.
type Recorder struct {
	mode         RecordingMode
	elapsed      int
	armedElapsed int
	token        string

	window   time.Duration
	policy   DurationPolicy
	newToken func() string
	log      *slog.Logger
}

// NewRecorder creates an idle recorder. A non-positive window uses
// DefaultRecordWindow.
func NewRecorder(window time.Duration, policy DurationPolicy) *Recorder {
	if window <= 0 {
		window = DefaultRecordWindow
	}
	return &Recorder{
		window:   window,
		policy:   policy,
		newToken: uuid.NewString,
		log:      logger.ComponentLogger("Recorder"),
	}
}

// Configure changes the capture window and duration policy. A running
// session keeps the values it was armed with for its timers; the policy
// applies when it finalizes.
func (r *Recorder) Configure(window time.Duration, policy DurationPolicy) {
	if window <= 0 {
		window = DefaultRecordWindow
	}
	r.window = window
	r.policy = policy
}

// State returns a snapshot of the recorder.
func (r *Recorder) State() Recording {
	return Recording{Mode: r.mode, Elapsed: r.elapsed, Token: r.token}
}

// Active reports whether a recording is in progress.
func (r *Recorder) Active() bool {
	return r.mode != ModeInactive
}

// Window returns the capture window.
func (r *Recorder) Window() time.Duration { return r.window }

// Policy returns the duration policy.
func (r *Recorder) Policy() DurationPolicy { return r.policy }

// Start begins a recording. It is refused while any recording, of either
// mode, is in progress.
func (r *Recorder) Start(mode RecordingMode) (Timers, bool) {
	if mode == ModeInactive {
		return Timers{}, false
	}
	if r.Active() {
		r.log.Debug("start refused", "requested", mode, "active", r.mode)
		return Timers{}, false
	}

	r.mode = mode
	r.elapsed = 0
	r.armedElapsed = r.elapsed
	r.token = r.newToken()
	r.log.Debug("recording started", "mode", mode, "token", r.token)
	return Timers{Token: r.token, Tick: TickInterval, Window: r.window}, true
}

// Tick advances the elapsed counter of the session identified by token.
func (r *Recorder) Tick(token string) bool {
	if !r.owns(token) {
		return false
	}
	r.elapsed++
	return true
}

// Cancel discards the active recording without producing a message.
func (r *Recorder) Cancel() bool {
	if !r.Active() {
		return false
	}
	r.log.Debug("recording canceled", "mode", r.mode, "elapsed", r.elapsed)
	r.reset()
	return true
}

// Timeout finalizes the session identified by token into a draft. A stale or
// unknown token is ignored, so a canceled session never finalizes.
func (r *Recorder) Timeout(token string) (Draft, bool) {
	if !r.owns(token) {
		return Draft{}, false
	}

	seconds := r.armedElapsed
	if r.policy == DurationLive {
		seconds = r.elapsed
	}
	d := Draft{Kind: r.mode.Kind(), Duration: FormatDuration(seconds)}
	r.log.Debug("recording finalized", "mode", r.mode, "elapsed", r.elapsed, "duration", d.Duration)
	r.reset()
	return d, true
}

func (r *Recorder) owns(token string) bool {
	return r.Active() && token != "" && token == r.token
}

func (r *Recorder) reset() {
	r.mode = ModeInactive
	r.elapsed = 0
	r.armedElapsed = 0
	r.token = ""
}
