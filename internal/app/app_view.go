package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/dialogo/internal/chat"
	"github.com/zhubert/dialogo/internal/ui"
	"github.com/zhubert/dialogo/internal/ui/modals"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	m.updateFooterContext()

	if m.modal != nil {
		style := ui.ModalStyle.Width(m.modalWidth(m.modal))
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			style.Render(m.modal.Render()),
		)
	}

	var right string
	if m.snap.Section == chat.SectionChats {
		right = m.chat.View()
	} else {
		right = m.panels.View()
	}

	panels := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), right)
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), panels, m.footer.View())
}

// updateFooterContext updates the footer with current context for conditional bindings
func (m *Model) updateFooterContext() {
	_, selected := m.chat.SelectedMessage()
	m.footer.SetContext(ui.FooterContext{
		SidebarFocused:  m.focus == FocusSidebar,
		Searching:       m.focus == FocusSidebar && m.sidebar.IsSearchMode(),
		HasConversation: m.chatAvailable(),
		PickerOpen:      m.chat.PickerOpen(),
		Recording:       m.snap.Recording.Active(),
		MessageSelected: selected,
	})
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)
	m.chat.SetSize(ctx.ChatWidth, ctx.ContentHeight)
	m.panels.SetSize(ctx.ChatWidth, ctx.ContentHeight)

	if sized, ok := m.modal.(modals.ModalWithSize); ok {
		sized.SetSize(m.modalWidth(m.modal), max(m.height-6, 1))
	}
}
