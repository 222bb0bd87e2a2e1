package app

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dialogo/internal/chat"
	"github.com/zhubert/dialogo/internal/config"
	"github.com/zhubert/dialogo/internal/logger"
	"github.com/zhubert/dialogo/internal/ui"
	"github.com/zhubert/dialogo/internal/ui/modals"
)

// Focus represents which panel is focused
type Focus int

const (
	FocusSidebar Focus = iota
	FocusChat
)

func (f Focus) String() string {
	if f == FocusChat {
		return "chat"
	}
	return "sidebar"
}

// Model is the main Bubble Tea model. It owns no conversation state itself:
// key presses become workspace events and the published snapshot is pushed
// into the display components.
type Model struct {
	config    *config.Config
	version   string
	workspace *chat.Workspace
	snap      chat.Snapshot

	unsubscribe func()

	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	chat    *ui.Chat
	panels  *ui.Panels
	modal   modals.ModalState // nil when hidden

	width  int
	height int
	focus  Focus

	log *slog.Logger
}

// New creates a new app model
func New(cfg *config.Config, version string, opts ...Option) *Model {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:  cfg,
		version: version,
		header:  ui.NewHeader(),
		footer:  ui.NewFooter(),
		sidebar: ui.NewSidebar(),
		chat:    ui.NewChat(),
		panels:  ui.NewPanels(),
		focus:   FocusSidebar,
		log:     logger.ComponentLogger("App"),
	}

	m.workspace = chat.NewWorkspace(chat.Options{
		Clock:          o.clock,
		RecordWindow:   cfg.GetRecordWindow(),
		DurationPolicy: cfg.GetDurationPolicy(),
		Seed:           o.seed,
	})
	m.unsubscribe = m.workspace.Subscribe(m.onSnapshot)
	m.onSnapshot(m.workspace.Snapshot())
	m.panels.SetSettings(m.settingsSummary())

	m.sidebar.SetFocused(true)
	return m
}

// StartupModalMsg is sent on app start to trigger the welcome help
type StartupModalMsg struct{}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		return StartupModalMsg{}
	}
}

// Close detaches the model from the workspace
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Workspace returns the conversation core driven by this model
func (m *Model) Workspace() *chat.Workspace {
	return m.workspace
}

// Snapshot returns the last snapshot applied to the display
func (m *Model) Snapshot() chat.Snapshot {
	return m.snap
}

// Focus returns the focused pane
func (m *Model) Focus() Focus {
	return m.focus
}

// FlashText returns the footer flash message, if any
func (m *Model) FlashText() string {
	return m.footer.FlashText()
}

// ModalOpen reports whether a modal is showing
func (m *Model) ModalOpen() bool {
	return m.modal != nil
}

// onSnapshot is the workspace subscriber. Workspace events are only raised
// from Update, so this always runs on the Bubble Tea loop.
func (m *Model) onSnapshot(snap chat.Snapshot) {
	m.snap = snap

	activeID := 0
	if snap.Active != nil {
		activeID = snap.Active.ID
		status := "offline"
		if snap.Active.Online {
			status = "online"
		}
		if snap.Recording.Active() {
			status = "recording " + snap.Recording.Mode.String()
		}
		m.header.SetConversation(snap.Active.Name)
		m.header.SetStatus(status)
	} else {
		m.header.SetConversation("")
		m.header.SetStatus("")
	}

	m.sidebar.SetSection(snap.Section)
	m.sidebar.SetConversations(snap.Conversations, activeID)
	m.chat.Apply(snap, m.workspace.Recorder().Window())
	m.panels.Apply(snap)

	// Chat focus without an open conversation has nothing to type into
	if m.focus == FocusChat && !m.chatAvailable() {
		m.setFocus(FocusSidebar)
	}
}

// chatAvailable reports whether the right pane is a chat that can take focus
func (m *Model) chatAvailable() bool {
	return m.snap.Section == chat.SectionChats && m.snap.Active != nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case StartupModalMsg:
		return m, m.handleStartup()

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case RecordingTickMsg:
		return m, m.handleRecordingTick(msg)

	case RecordingTimeoutMsg:
		return m, m.handleRecordingTimeout(msg)

	case ClipboardResultMsg:
		if msg.Err != nil {
			m.log.Warn("clipboard copy failed", "error", msg.Err)
			return m, m.ShowFlashWarning("Could not copy to clipboard")
		}
		return m, m.ShowFlashSuccess("Copied to clipboard")

	case NotificationResultMsg:
		if msg.Err != nil {
			m.log.Warn("notification failed", "error", msg.Err)
			return m, m.ShowFlashWarning("Desktop notification failed")
		}
		return m, nil

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() || !m.footer.HasFlash() {
			return m, nil
		}
		return m, ui.FlashTick()
	}

	// Cursor blink and other component messages
	if m.focus == FocusChat {
		return m, m.chat.UpdateInput(msg)
	}
	return m, nil
}

// handleStartup shows the shortcut overview once, on first launch
func (m *Model) handleStartup() tea.Cmd {
	if m.config.HasSeenWelcome() {
		return nil
	}
	m.config.MarkWelcomeShown()
	m.showHelp()
	if err := m.config.Save(); err != nil {
		m.log.Warn("could not persist welcome flag", "error", err)
	}
	return nil
}

// setFocus moves focus between the sidebar and the chat panel
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	m.sidebar.SetFocused(f == FocusSidebar)
	m.panels.SetFocused(f == FocusChat)
	return m.chat.SetFocused(f == FocusChat)
}

// toggleFocus switches panes; chat focus needs an open conversation
func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == FocusChat {
		return m.setFocus(FocusSidebar)
	}
	if !m.chatAvailable() {
		return nil
	}
	return m.setFocus(FocusChat)
}

// settingsSummary is what the settings section shows
func (m *Model) settingsSummary() ui.SettingsSummary {
	return ui.SettingsSummary{
		Theme:          ui.CurrentTheme().Name,
		Notifications:  m.config.GetNotificationsEnabled(),
		RecordWindow:   m.config.GetRecordWindow(),
		DurationPolicy: m.config.GetDurationPolicy().String(),
	}
}
