package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the icon and color of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashTickMsg drives flash message expiry
type FlashTickMsg time.Time

// FlashTick returns a command that checks for flash expiry after a delay
func FlashTick() tea.Cmd {
	return tea.Tick(FlashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// FooterContext is the state that decides which bindings are shown
type FooterContext struct {
	SidebarFocused  bool
	Searching       bool
	HasConversation bool
	PickerOpen      bool
	Recording       bool
	MessageSelected bool
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width    int
	bindings []KeyBinding
	context  FooterContext

	flashText    string
	flashType    FlashType
	flashExpires time.Time
	now          func() time.Time
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "open"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "/", Desc: "search"},
			{Key: ",", Desc: "settings"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
		now: time.Now,
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(c FooterContext) {
	f.context = c
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows text in place of the bindings until FlashDuration passes
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.flashText = text
	f.flashType = flashType
	f.flashExpires = f.now().Add(FlashDuration)
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashText != ""
}

// FlashText returns the current flash message
func (f *Footer) FlashText() string {
	return f.flashText
}

// ClearIfExpired removes an expired flash. Returns true if it cleared one.
func (f *Footer) ClearIfExpired() bool {
	if f.flashText == "" || f.now().Before(f.flashExpires) {
		return false
	}
	f.flashText = ""
	return true
}

// ClearFlash removes any flash immediately
func (f *Footer) ClearFlash() {
	f.flashText = ""
}

// Bindings returns the bindings shown for the current context
func (f *Footer) Bindings() []KeyBinding {
	c := f.context
	switch {
	case c.Searching:
		return []KeyBinding{
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "keep filter"},
			{Key: "esc", Desc: "clear"},
		}
	case c.SidebarFocused:
		var out []KeyBinding
		for _, b := range f.bindings {
			// Can't switch to chat without a conversation
			if b.Key == "tab" && !c.HasConversation {
				continue
			}
			out = append(out, b)
		}
		return out
	case c.Recording:
		return []KeyBinding{
			{Key: "esc", Desc: "cancel recording"},
			{Key: "tab", Desc: "switch pane"},
		}
	case c.PickerOpen:
		return []KeyBinding{
			{Key: "←/→", Desc: "choose"},
			{Key: "enter", Desc: "insert"},
			{Key: "esc", Desc: "close"},
		}
	case !c.HasConversation:
		return []KeyBinding{
			{Key: "tab", Desc: "switch pane"},
		}
	default:
		bindings := []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "ctrl+e", Desc: "emoji"},
			{Key: "ctrl+s", Desc: "sticker"},
			{Key: "ctrl+r", Desc: "voice"},
			{Key: "ctrl+t", Desc: "video"},
			{Key: "ctrl+↑/↓", Desc: "select"},
		}
		if c.MessageSelected {
			bindings = append(bindings,
				KeyBinding{Key: "alt+1-3", Desc: "react"},
				KeyBinding{Key: "ctrl+y", Desc: "copy"},
			)
		}
		return append(bindings, KeyBinding{Key: "tab", Desc: "switch pane"})
	}
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashText != "" {
		return FooterStyle.Width(f.width).Render(f.renderFlash())
	}

	var parts []string
	for _, b := range f.Bindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	return FooterStyle.Width(f.width).Render(content)
}

func (f *Footer) renderFlash() string {
	icon, color := "ℹ", ColorInfo
	switch f.flashType {
	case FlashSuccess:
		icon, color = "✓", ColorSuccess
	case FlashWarning:
		icon, color = "⚠", ColorWarning
	case FlashError:
		icon, color = "✕", ColorError
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon + " " + f.flashText)
}
