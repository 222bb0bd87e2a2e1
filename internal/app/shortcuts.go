package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dialogo/internal/chat"
	"github.com/zhubert/dialogo/internal/clipboard"
	"github.com/zhubert/dialogo/internal/keys"
	"github.com/zhubert/dialogo/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key             string                              // The key binding (e.g., "q", "ctrl+r")
	DisplayKey      string                              // Display name in help; defaults to Key
	Description     string                              // Human-readable description
	Category        string                              // Section for help modal grouping
	RequiresSidebar bool                                // Only when the sidebar is focused
	RequiresChat    bool                                // Only when the chat panel is focused
	Handler         func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition       func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategorySections   = "Sections"
	CategoryComposer   = "Composer"
	CategoryRecording  = "Recording"
	CategoryMessages   = "Messages"
	CategoryGeneral    = "General"
)

var categoryOrder = []string{
	CategoryNavigation,
	CategorySections,
	CategoryComposer,
	CategoryRecording,
	CategoryMessages,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of keyboard shortcuts. Entries
// show up in the help modal and are dispatched by ExecuteShortcut.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{
		Key:         keys.Tab,
		Description: "Switch between sidebar and chat",
		Category:    CategoryNavigation,
		Handler:     shortcutToggleFocus,
	},
	{
		Key:             keys.Enter,
		Description:     "Open conversation",
		Category:        CategoryNavigation,
		RequiresSidebar: true,
		Handler:         shortcutOpenConversation,
	},
	{
		Key:          keys.PgUp,
		Description:  "Scroll timeline up",
		Category:     CategoryNavigation,
		RequiresChat: true,
		Handler:      func(m *Model) (tea.Model, tea.Cmd) { m.chat.Scroll(keys.PgUp); return m, nil },
	},
	{
		Key:          keys.PgDown,
		Description:  "Scroll timeline down",
		Category:     CategoryNavigation,
		RequiresChat: true,
		Handler:      func(m *Model) (tea.Model, tea.Cmd) { m.chat.Scroll(keys.PgDown); return m, nil },
	},

	{
		Key:             "/",
		Description:     "Search chats and contacts",
		Category:        CategoryNavigation,
		RequiresSidebar: true,
		Handler:         shortcutSearch,
	},

	// Sections
	sectionShortcut(chat.SectionChats),
	sectionShortcut(chat.SectionContacts),
	sectionShortcut(chat.SectionNotifications),
	sectionShortcut(chat.SectionProfile),
	sectionShortcut(chat.SectionSettings),

	// Composer
	{
		Key:          keys.Enter,
		Description:  "Send message / insert picked glyph",
		Category:     CategoryComposer,
		RequiresChat: true,
		Handler:      shortcutSend,
	},
	{
		Key:          keys.CtrlE,
		Description:  "Toggle emoji picker",
		Category:     CategoryComposer,
		RequiresChat: true,
		Handler:      func(m *Model) (tea.Model, tea.Cmd) { m.workspace.TogglePicker(chat.PickerEmoji); return m, nil },
	},
	{
		Key:          keys.CtrlS,
		Description:  "Toggle sticker picker",
		Category:     CategoryComposer,
		RequiresChat: true,
		Handler:      func(m *Model) (tea.Model, tea.Cmd) { m.workspace.TogglePicker(chat.PickerSticker); return m, nil },
	},
	{
		Key:          keys.Left,
		DisplayKey:   "←",
		Description:  "Previous glyph in picker",
		Category:     CategoryComposer,
		RequiresChat: true,
		Handler:      func(m *Model) (tea.Model, tea.Cmd) { m.chat.MovePickerCursor(-1); return m, nil },
		Condition:    pickerOpen,
	},
	{
		Key:          keys.Right,
		DisplayKey:   "→",
		Description:  "Next glyph in picker",
		Category:     CategoryComposer,
		RequiresChat: true,
		Handler:      func(m *Model) (tea.Model, tea.Cmd) { m.chat.MovePickerCursor(1); return m, nil },
		Condition:    pickerOpen,
	},
	{
		Key:          keys.Backspace,
		Description:  "Delete last character",
		Category:     CategoryComposer,
		RequiresChat: true,
		Handler:      func(m *Model) (tea.Model, tea.Cmd) { m.workspace.Backspace(); return m, nil },
	},

	// Recording
	{
		Key:          keys.CtrlR,
		Description:  "Record voice message",
		Category:     CategoryRecording,
		RequiresChat: true,
		Handler:      func(m *Model) (tea.Model, tea.Cmd) { return m, m.startRecording(chat.ModeVoice) },
	},
	{
		Key:          keys.CtrlT,
		Description:  "Record video message",
		Category:     CategoryRecording,
		RequiresChat: true,
		Handler:      func(m *Model) (tea.Model, tea.Cmd) { return m, m.startRecording(chat.ModeVideo) },
	},
	{
		Key:          keys.Escape,
		Description:  "Cancel recording / close picker",
		Category:     CategoryRecording,
		RequiresChat: true,
		Handler:      shortcutEscape,
	},

	// Messages
	{
		Key:          keys.CtrlUp,
		Description:  "Select previous message",
		Category:     CategoryMessages,
		RequiresChat: true,
		Handler:      func(m *Model) (tea.Model, tea.Cmd) { m.chat.SelectPrevMessage(); return m, nil },
	},
	{
		Key:          keys.CtrlDown,
		Description:  "Select next message",
		Category:     CategoryMessages,
		RequiresChat: true,
		Handler:      func(m *Model) (tea.Model, tea.Cmd) { m.chat.SelectNextMessage(); return m, nil },
	},
	reactionShortcut(keys.Alt1, 0),
	reactionShortcut(keys.Alt2, 1),
	reactionShortcut(keys.Alt3, 2),
	{
		Key:          keys.CtrlY,
		Description:  "Copy selected message",
		Category:     CategoryMessages,
		RequiresChat: true,
		Handler:      shortcutCopy,
		Condition:    messageSelected,
	},

	// General
	{
		Key:             ",",
		Description:     "Settings",
		Category:        CategoryGeneral,
		RequiresSidebar: true,
		Handler:         shortcutSettings,
	},
	{
		Key:             "q",
		Description:     "Quit application",
		Category:        CategoryGeneral,
		RequiresSidebar: true,
		Handler:         func(m *Model) (tea.Model, tea.Cmd) { return m, tea.Quit },
	},
}

// helpShortcut is defined separately to avoid an initialization cycle:
// its handler builds the help sections from ShortcutRegistry.
var helpShortcut = Shortcut{
	Key:             "?",
	Description:     "Show this help",
	Category:        CategoryGeneral,
	RequiresSidebar: true,
}

// DisplayOnlyShortcuts are shown in help but dispatched elsewhere
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "↑/↓ or j/k", Description: "Navigate conversations", Category: CategoryNavigation},
	{DisplayKey: "ctrl+c", Description: "Quit from anywhere", Category: CategoryGeneral},
}

func sectionShortcut(s chat.Section) Shortcut {
	return Shortcut{
		Key:             fmt.Sprint(int(s) + 1),
		Description:     s.Title(),
		Category:        CategorySections,
		RequiresSidebar: true,
		Handler: func(m *Model) (tea.Model, tea.Cmd) {
			m.workspace.SetSection(s)
			return m, nil
		},
	}
}

func reactionShortcut(key string, i int) Shortcut {
	glyph := chat.QuickReactions[i]
	return Shortcut{
		Key:          key,
		Description:  "React with " + glyph,
		Category:     CategoryMessages,
		RequiresChat: true,
		Condition:    messageSelected,
		Handler: func(m *Model) (tea.Model, tea.Cmd) {
			sel, _ := m.chat.SelectedMessage()
			m.workspace.AddReaction(sel.ID, glyph)
			return m, nil
		},
	}
}

func pickerOpen(m *Model) bool { return m.chat.PickerOpen() }

func messageSelected(m *Model) bool {
	_, ok := m.chat.SelectedMessage()
	return ok
}

// isShortcutApplicable checks the focus guards and condition of a shortcut
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.RequiresSidebar && m.focus != FocusSidebar {
		return false
	}
	if s.RequiresChat && m.focus != FocusChat {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if a shortcut ran, (model, nil, false) if the
// key should fall through to the focused component.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	if key == helpShortcut.Key {
		if !m.isShortcutApplicable(helpShortcut) {
			return m, nil, false
		}
		m.showHelp()
		return m, nil, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key || !m.isShortcutApplicable(s) {
			continue
		}
		m.log.Debug("shortcut", "key", key, "focus", m.focus)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// helpSections groups every shortcut by category for the help modal
func helpSections() []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)
	add := func(s Shortcut) {
		key := s.DisplayKey
		if key == "" {
			key = s.Key
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{Key: key, Desc: s.Description})
	}
	for _, s := range ShortcutRegistry {
		add(s)
	}
	add(helpShortcut)
	for _, s := range DisplayOnlyShortcuts {
		add(s)
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts := categories[cat]; len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{Title: cat, Shortcuts: shortcuts})
		}
	}
	return sections
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	return m, m.toggleFocus()
}

func shortcutSearch(m *Model) (tea.Model, tea.Cmd) {
	cmd := m.sidebar.EnterSearchMode()
	m.panels.SetFilter("")
	return m, cmd
}

func shortcutOpenConversation(m *Model) (tea.Model, tea.Cmd) {
	conv, ok := m.sidebar.SelectedConversation()
	if !ok {
		return m, nil
	}
	m.workspace.SetSection(chat.SectionChats)
	m.workspace.SelectConversation(conv.ID)
	return m, m.setFocus(FocusChat)
}

func shortcutSend(m *Model) (tea.Model, tea.Cmd) {
	if source, glyph, ok := m.chat.PickerGlyph(); ok {
		m.workspace.PickGlyph(source, glyph)
		return m, nil
	}
	m.workspace.SendText()
	return m, nil
}

// shortcutEscape unwinds one layer: recording, picker, message selection,
// then chat focus
func shortcutEscape(m *Model) (tea.Model, tea.Cmd) {
	switch {
	case m.snap.Recording.Active():
		return m, m.cancelRecording()
	case m.workspace.ClosePicker():
		return m, nil
	case m.chat.ClearSelection():
		return m, nil
	default:
		return m, m.setFocus(FocusSidebar)
	}
}

func shortcutCopy(m *Model) (tea.Model, tea.Cmd) {
	sel, ok := m.chat.SelectedMessage()
	if !ok {
		return m, nil
	}
	text := messageCopyText(sel)
	return m, func() tea.Msg {
		return ClipboardResultMsg{Err: clipboard.WriteText(text)}
	}
}

// messageCopyText is the clipboard form of a message
func messageCopyText(msg chat.Message) string {
	switch msg.Kind {
	case chat.KindVoice:
		return "Voice message (" + msg.Duration + ")"
	case chat.KindVideo:
		return "Video message (" + msg.Duration + ")"
	default:
		return msg.Text
	}
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	m.showSettings()
	return m, nil
}
