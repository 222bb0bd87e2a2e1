package chat

import (
	"log/slog"
	"slices"
	"time"

	"github.com/zhubert/dialogo/internal/logger"
)

// Section is the top-level panel shown next to the navigation rail.
type Section int

const (
	SectionChats Section = iota
	SectionContacts
	SectionNotifications
	SectionProfile
	SectionSettings
)

// Sections lists every section in navigation order.
var Sections = []Section{SectionChats, SectionContacts, SectionNotifications, SectionProfile, SectionSettings}

func (s Section) String() string {
	switch s {
	case SectionContacts:
		return "contacts"
	case SectionNotifications:
		return "notifications"
	case SectionProfile:
		return "profile"
	case SectionSettings:
		return "settings"
	default:
		return "chats"
	}
}

// Title is the display label of a section.
func (s Section) Title() string {
	switch s {
	case SectionContacts:
		return "Contacts"
	case SectionNotifications:
		return "Notifications"
	case SectionProfile:
		return "Profile"
	case SectionSettings:
		return "Settings"
	default:
		return "Chats"
	}
}

// ComposerState is a value snapshot of the composer.
type ComposerState struct {
	Text   string
	Picker Picker
}

// Snapshot is an immutable view of the workspace handed to the display layer.
// It shares no memory with the workspace.
type Snapshot struct {
	Version       uint64
	Section       Section
	Conversations []Conversation
	Active        *Conversation // nil when no conversation is selected
	Messages      []Message
	Composer      ComposerState
	Recording     Recording
	Contacts      []Contact
	Notifications []Notification
	Profile       Profile
}

// RecordTriggersEnabled reports whether new recordings may be started.
func (s Snapshot) RecordTriggersEnabled() bool {
	return s.Active != nil && !s.Recording.Active()
}

// Options configures a new workspace.
type Options struct {
	Clock          Clock
	RecordWindow   time.Duration
	DurationPolicy DurationPolicy
	Seed           Seed
}

// Workspace is the application context: the active section and conversation
// plus the registry, store and the transient sessions of the open
// conversation. All mutations go through its event methods, each of which
// publishes a fresh Snapshot to subscribers when state changed.
type Workspace struct {
	section  Section
	selected int

	registry *Registry
	store    *Store
	composer *Composer
	recorder *Recorder

	// conversation the active recording belongs to
	recordingConversation int

	contacts      []Contact
	notifications []Notification
	profile       Profile

	version uint64
	subs    map[int]func(Snapshot)
	nextSub int

	log *slog.Logger
}

// NewWorkspace creates a workspace from opts.Seed.
func NewWorkspace(opts Options) *Workspace {
	seed := opts.Seed
	store := NewStore(opts.Clock)
	for id, msgs := range seed.Messages {
		store.Seed(id, msgs)
	}

	w := &Workspace{
		section:       SectionChats,
		registry:      NewRegistry(seed.Conversations),
		store:         store,
		composer:      NewComposer(),
		recorder:      NewRecorder(opts.RecordWindow, opts.DurationPolicy),
		contacts:      slices.Clone(seed.Contacts),
		notifications: slices.Clone(seed.Notifications),
		profile:       seed.Profile,
		subs:          make(map[int]func(Snapshot)),
		log:           logger.ComponentLogger("Workspace"),
	}
	if _, ok := w.registry.Select(seed.Selected); ok {
		w.selected = seed.Selected
		w.registry.MarkRead(seed.Selected)
	}
	return w
}

// Store returns the message store.
func (w *Workspace) Store() *Store { return w.store }

// Registry returns the conversation registry.
func (w *Workspace) Registry() *Registry { return w.registry }

// Recorder returns the recorder of the open conversation.
func (w *Workspace) Recorder() *Recorder { return w.recorder }

// Selected returns the open conversation id, 0 when none is open.
func (w *Workspace) Selected() int { return w.selected }

// Subscribe registers fn to receive a snapshot after every mutation. The
// returned function removes the subscription.
func (w *Workspace) Subscribe(fn func(Snapshot)) func() {
	id := w.nextSub
	w.nextSub++
	w.subs[id] = fn
	return func() { delete(w.subs, id) }
}

// Snapshot builds the current immutable view.
func (w *Workspace) Snapshot() Snapshot {
	snap := Snapshot{
		Version:       w.version,
		Section:       w.section,
		Conversations: w.registry.List(),
		Composer:      ComposerState{Text: w.composer.Text(), Picker: w.composer.Picker()},
		Recording:     w.recorder.State(),
		Contacts:      slices.Clone(w.contacts),
		Notifications: slices.Clone(w.notifications),
		Profile:       w.profile,
	}
	if c, ok := w.registry.Select(w.selected); ok {
		snap.Active = &c
		snap.Messages = w.store.List(c.ID)
	}
	return snap
}

func (w *Workspace) publish() {
	w.version++
	if len(w.subs) == 0 {
		return
	}
	snap := w.Snapshot()
	ids := make([]int, 0, len(w.subs))
	for id := range w.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := w.subs[id]; ok {
			fn(snap)
		}
	}
}

// SetSection switches the visible panel. Leaving the chats section tears
// down any recording since its view is no longer mounted.
func (w *Workspace) SetSection(s Section) bool {
	if s == w.section {
		return false
	}
	if s != SectionChats {
		w.cancelRecording()
	}
	w.section = s
	w.publish()
	return true
}

// SelectConversation opens a conversation. The composer and any recording of
// the previous conversation are discarded. An unknown id yields the empty
// selection and reports false.
func (w *Workspace) SelectConversation(id int) bool {
	if id != 0 && id == w.selected {
		return true
	}
	w.cancelRecording()
	w.composer.Reset()

	c, ok := w.registry.Select(id)
	if !ok {
		w.selected = 0
		w.log.Debug("no conversation selected", "requested", id)
		w.publish()
		return false
	}
	w.selected = c.ID
	w.registry.MarkRead(c.ID)
	logger.WithConversation(c.ID).Debug("conversation selected")
	w.publish()
	return true
}

// SetText replaces the composer buffer.
func (w *Workspace) SetText(s string) {
	if s == w.composer.Text() {
		return
	}
	w.composer.SetText(s)
	w.publish()
}

// Backspace deletes the last glyph of the composer buffer.
func (w *Workspace) Backspace() bool {
	if !w.composer.Backspace() {
		return false
	}
	w.publish()
	return true
}

// TogglePicker opens or closes a glyph picker.
func (w *Workspace) TogglePicker(kind Picker) {
	if kind == PickerNone {
		w.ClosePicker()
		return
	}
	w.composer.TogglePicker(kind)
	w.publish()
}

// ClosePicker hides any open picker.
func (w *Workspace) ClosePicker() bool {
	if !w.composer.ClosePicker() {
		return false
	}
	w.publish()
	return true
}

// PickGlyph appends a glyph chosen from the emoji or sticker picker and
// closes the picker.
func (w *Workspace) PickGlyph(source Picker, glyph string) bool {
	if glyph == "" {
		return false
	}
	w.log.Debug("glyph picked", "source", source, "glyph", glyph)
	w.composer.AppendGlyph(glyph)
	w.publish()
	return true
}

// SendText submits the composer into the open conversation. An empty or
// whitespace-only buffer, or no open conversation, is a no-op.
func (w *Workspace) SendText() (Message, bool) {
	if w.selected == 0 {
		return Message{}, false
	}
	d, ok := w.composer.Submit()
	if !ok {
		return Message{}, false
	}
	msg, ok := w.store.Append(w.selected, d)
	w.publish()
	return msg, ok
}

// AddReaction attaches glyph to a message of the open conversation.
func (w *Workspace) AddReaction(messageID int, glyph string) (Message, bool) {
	if w.selected == 0 {
		return Message{}, false
	}
	msg, ok := w.store.AddReaction(w.selected, messageID, glyph)
	if ok {
		w.publish()
	}
	return msg, ok
}

// ConfigureRecording updates the capture window and duration policy used by
// later recordings.
func (w *Workspace) ConfigureRecording(window time.Duration, policy DurationPolicy) {
	w.recorder.Configure(window, policy)
	w.log.Debug("recording configured", "window", window, "policy", policy)
}

// StartRecording begins a voice or video recording in the open conversation.
// It is refused while any recording is active.
func (w *Workspace) StartRecording(mode RecordingMode) (Timers, bool) {
	if w.selected == 0 || w.section != SectionChats {
		return Timers{}, false
	}
	timers, ok := w.recorder.Start(mode)
	if !ok {
		return Timers{}, false
	}
	w.recordingConversation = w.selected
	w.publish()
	return timers, true
}

// TickRecording advances the recording identified by token.
func (w *Workspace) TickRecording(token string) bool {
	if !w.recorder.Tick(token) {
		return false
	}
	w.publish()
	return true
}

// CancelRecording stops the active recording of the given mode without
// producing a message. ModeInactive cancels whichever recording is active.
func (w *Workspace) CancelRecording(mode RecordingMode) bool {
	if mode != ModeInactive && w.recorder.State().Mode != mode {
		return false
	}
	if !w.cancelRecording() {
		return false
	}
	w.publish()
	return true
}

func (w *Workspace) cancelRecording() bool {
	if !w.recorder.Cancel() {
		return false
	}
	w.recordingConversation = 0
	return true
}

// FinalizeRecording handles the capture-window timeout of the recording
// identified by token, appending the produced message.
func (w *Workspace) FinalizeRecording(token string) (Message, bool) {
	d, ok := w.recorder.Timeout(token)
	if !ok {
		return Message{}, false
	}
	convID := w.recordingConversation
	w.recordingConversation = 0
	msg, ok := w.store.Append(convID, d)
	w.publish()
	return msg, ok
}
