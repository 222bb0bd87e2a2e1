package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dialogo/internal/chat"
	"github.com/zhubert/dialogo/internal/keys"
	"github.com/zhubert/dialogo/internal/ui"
	"github.com/zhubert/dialogo/internal/ui/modals"
)

// showModal opens a modal and passes it the usable space
func (m *Model) showModal(state modals.ModalState) {
	m.modal = state
	if sized, ok := state.(modals.ModalWithSize); ok {
		sized.SetSize(m.modalWidth(state), max(m.height-6, 1))
	}
}

func (m *Model) modalWidth(state modals.ModalState) int {
	if pw, ok := state.(modals.ModalWithPreferredWidth); ok {
		return pw.PreferredWidth()
	}
	return ui.ModalWidth
}

func (m *Model) closeModal() {
	m.modal = nil
}

func (m *Model) showHelp() {
	m.showModal(modals.NewHelpStateFromSections(helpSections()))
}

func (m *Model) showSettings() {
	names := ui.ThemeNames()
	themes := make([]string, len(names))
	display := make([]string, len(names))
	for i, n := range names {
		themes[i] = string(n)
		display[i] = ui.GetTheme(n).Name
	}

	m.showModal(modals.NewSettingsState(themes, display, modals.Settings{
		Theme:                string(ui.CurrentThemeName()),
		NotificationsEnabled: m.config.GetNotificationsEnabled(),
		RecordWindowSeconds:  int(m.config.GetRecordWindow().Seconds()),
		DurationPolicy:       m.config.GetDurationPolicy().String(),
	}))
}

// handleModalKey handles Enter and Escape for the open modal and forwards
// everything else to it
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch state := m.modal.(type) {
	case *modals.HelpState:
		// While filtering, enter and esc belong to the list
		if state.IsFiltering() {
			break
		}
		if key == keys.Escape || key == keys.Enter || key == "?" || key == "q" {
			m.closeModal()
			return m, nil
		}

	case *modals.SettingsState:
		switch key {
		case keys.Escape:
			m.closeModal()
			return m, nil
		case keys.Enter:
			values := state.Values()
			m.closeModal()
			if !state.Changed() {
				return m, nil
			}
			return m, m.applySettings(values)
		}
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

// applySettings pushes edited settings into the config, theme and recorder,
// then persists them
func (m *Model) applySettings(s modals.Settings) tea.Cmd {
	policy, err := chat.ParseDurationPolicy(s.DurationPolicy)
	if err != nil {
		return m.ShowFlashError(err.Error())
	}

	if ui.IsTheme(s.Theme) {
		m.config.SetTheme(s.Theme)
		ui.SetThemeByName(s.Theme)
	}
	m.config.SetNotificationsEnabled(s.NotificationsEnabled)
	m.config.SetRecordWindowSeconds(s.RecordWindowSeconds)
	m.config.SetDurationPolicy(policy)

	m.workspace.ConfigureRecording(m.config.GetRecordWindow(), m.config.GetDurationPolicy())
	m.panels.SetSettings(m.settingsSummary())
	// Styles changed; re-render everything from the current snapshot
	m.onSnapshot(m.workspace.Snapshot())

	if cmd := m.saveConfigOrFlash(); cmd != nil {
		return cmd
	}
	return m.ShowFlashSuccess("Settings saved")
}
