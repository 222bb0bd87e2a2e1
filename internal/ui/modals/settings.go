package modals

import (
	"fmt"
	"slices"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// RecordWindowChoices are the capture windows offered in the settings modal
var RecordWindowChoices = []int{1, 3, 5, 10, 15, 30, 60}

const optionNotifications = "notifications"

// Settings is the value edited by the settings modal.
type Settings struct {
	Theme                string
	NotificationsEnabled bool
	RecordWindowSeconds  int
	DurationPolicy       string
}

// SettingsState is the huh-backed settings modal. Values are bound by
// pointer, so they reflect the form as the user edits it.
type SettingsState struct {
	original Settings

	selectedTheme  string
	generalOptions []string
	recordWindow   int
	durationPolicy string

	form           *huh.Form
	availableWidth int
}

func (*SettingsState) modalState() {}

func (s *SettingsState) PreferredWidth() int { return ModalWidthWide }

// SetSize updates the available width for rendering content.
func (s *SettingsState) SetSize(width, height int) {
	s.availableWidth = width
	s.form.WithWidth(s.contentWidth())
}

func (s *SettingsState) contentWidth() int {
	if s.availableWidth > 0 {
		return s.availableWidth - 10
	}
	return ModalWidthWide - 10
}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Values returns the settings as currently shown in the form
func (s *SettingsState) Values() Settings {
	return Settings{
		Theme:                s.selectedTheme,
		NotificationsEnabled: slices.Contains(s.generalOptions, optionNotifications),
		RecordWindowSeconds:  s.recordWindow,
		DurationPolicy:       s.durationPolicy,
	}
}

// Changed reports whether any value differs from the one the modal opened with
func (s *SettingsState) Changed() bool {
	return s.Values() != s.original
}

// ThemeChanged returns true if the selected theme differs from the original.
func (s *SettingsState) ThemeChanged() bool {
	return s.selectedTheme != s.original.Theme
}

// NewSettingsState creates the settings modal. themes and themeDisplayNames
// are parallel slices.
func NewSettingsState(themes, themeDisplayNames []string, current Settings) *SettingsState {
	s := &SettingsState{
		original:       current,
		selectedTheme:  current.Theme,
		recordWindow:   current.RecordWindowSeconds,
		durationPolicy: current.DurationPolicy,
		availableWidth: ModalWidthWide,
	}
	if current.NotificationsEnabled {
		s.generalOptions = []string{optionNotifications}
	}

	themeOptions := make([]huh.Option[string], len(themes))
	for i := range themes {
		themeOptions[i] = huh.NewOption(themeDisplayNames[i], themes[i])
	}

	windows := slices.Clone(RecordWindowChoices)
	if !slices.Contains(windows, current.RecordWindowSeconds) {
		windows = append(windows, current.RecordWindowSeconds)
		slices.Sort(windows)
	}
	windowOptions := make([]huh.Option[int], len(windows))
	for i, w := range windows {
		windowOptions[i] = huh.NewOption(fmt.Sprintf("%d seconds", w), w)
	}

	generalGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.selectedTheme),
		huh.NewMultiSelect[string]().
			Title("Options").
			Options(huh.NewOption("Desktop notifications", optionNotifications).
				Selected(current.NotificationsEnabled)).
			Height(1).
			Value(&s.generalOptions),
	)

	recordingGroup := huh.NewGroup(
		huh.NewSelect[int]().
			Title("Record window").
			Description("How long a voice or video capture runs").
			Options(windowOptions...).
			Value(&s.recordWindow),
		huh.NewSelect[string]().
			Title("Recorded duration").
			Description("at-arm stamps the length seen when capture starts, live stamps the real length").
			Options(
				huh.NewOption("At arm", "at-arm"),
				huh.NewOption("Live", "live"),
			).
			Value(&s.durationPolicy),
	).Title("Recording")

	s.form = huh.NewForm(generalGroup, recordingGroup).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(s.contentWidth()).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
