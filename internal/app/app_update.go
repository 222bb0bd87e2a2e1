package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dialogo/internal/keys"
)

// handleKeyPress routes a key to the modal, a shortcut, or the focused pane
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if m.modal != nil {
		return m.handleModalKey(msg)
	}

	// The search input takes every key, including shortcut letters
	if m.focus == FocusSidebar && m.sidebar.IsSearchMode() {
		return m, m.updateSidebar(msg)
	}

	if result, cmd, ok := m.ExecuteShortcut(key); ok {
		return result, cmd
	}

	if m.focus == FocusSidebar {
		return m, m.updateSidebar(msg)
	}
	return m, m.handleComposerInput(msg)
}

// updateSidebar forwards a key to the sidebar and mirrors its search query
// onto the contacts panel
func (m *Model) updateSidebar(msg tea.KeyPressMsg) tea.Cmd {
	_, cmd := m.sidebar.Update(msg)
	m.panels.SetFilter(m.sidebar.SearchQuery())
	return cmd
}

// handleComposerInput lets the text input edit the draft, then reports the
// new text to the workspace so the composer stays the source of truth
func (m *Model) handleComposerInput(msg tea.KeyPressMsg) tea.Cmd {
	cmd := m.chat.UpdateInput(msg)
	if value := m.chat.InputValue(); value != m.snap.Composer.Text {
		m.workspace.SetText(value)
	}
	return cmd
}
