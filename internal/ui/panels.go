package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/dialogo/internal/chat"
)

// SettingsSummary is the read-only view of the preferences shown in the
// settings section. Editing happens in the settings modal.
type SettingsSummary struct {
	Theme          string
	Notifications  bool
	RecordWindow   time.Duration
	DurationPolicy string
}

// Panels renders the right-hand side for every section except chats
type Panels struct {
	width    int
	height   int
	focused  bool
	snap     chat.Snapshot
	settings SettingsSummary
	filter   string // contact name filter from the sidebar search
}

// NewPanels creates the auxiliary panels
func NewPanels() *Panels {
	return &Panels{}
}

// SetSize sets the panel dimensions
func (p *Panels) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused sets the focus state
func (p *Panels) SetFocused(focused bool) {
	p.focused = focused
}

// Apply stores the snapshot the panels render from
func (p *Panels) Apply(snap chat.Snapshot) {
	p.snap = snap
}

// SetSettings updates the settings summary
func (p *Panels) SetSettings(s SettingsSummary) {
	p.settings = s
}

// SetFilter narrows the contacts list to names matching query
func (p *Panels) SetFilter(query string) {
	p.filter = query
}

func (p *Panels) renderContacts(width int) string {
	if len(p.snap.Contacts) == 0 {
		return SidebarMutedStyle.Render("No contacts")
	}
	var rows []string
	if strings.TrimSpace(p.filter) != "" {
		rows = append(rows, SidebarMutedStyle.Render(TruncateToWidth(fmt.Sprintf("matching %q", p.filter), width)))
	}
	shown := 0
	for _, c := range p.snap.Contacts {
		if !MatchesQuery(c.Name, p.filter) {
			continue
		}
		shown++
		dot := " "
		if c.Online {
			dot = OnlineDotStyle.Render("●")
		}
		name := TruncateToWidth(c.Name, max(width-AvatarWidth-4, 1))
		rows = append(rows,
			Avatar("", c.Name)+" "+dot+" "+SidebarItemStyle.Render(name),
			"     "+SidebarMutedStyle.Render(TruncateToWidth(c.Status, max(width-5, 1))),
		)
	}
	if shown == 0 {
		rows = append(rows, SidebarMutedStyle.Render("No matches."))
	}
	return strings.Join(rows, "\n")
}

func (p *Panels) renderNotifications(width int) string {
	if len(p.snap.Notifications) == 0 {
		return SidebarMutedStyle.Render("You're all caught up")
	}
	var rows []string
	for _, n := range p.snap.Notifications {
		rows = append(rows,
			"• "+SidebarItemStyle.Render(TruncateToWidth(n.Text, max(width-2, 1))),
			"  "+ChatTimeStyle.Render(n.When),
		)
	}
	return strings.Join(rows, "\n")
}

func (p *Panels) renderProfile(width int) string {
	prof := p.snap.Profile
	lines := []string{
		Avatar("", prof.Name) + " " + HeaderTitleStyle.Render(prof.Name),
	}
	if prof.Handle != "" {
		lines = append(lines, SidebarMutedStyle.Render(prof.Handle))
	}
	if prof.Bio != "" {
		lines = append(lines, "", wrapText(prof.Bio, width))
	}
	return strings.Join(lines, "\n")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (p *Panels) renderSettings() string {
	rows := [][2]string{
		{"Theme", p.settings.Theme},
		{"Notifications", onOff(p.settings.Notifications)},
		{"Record window", fmt.Sprintf("%ds", int(p.settings.RecordWindow/time.Second))},
		{"Duration", p.settings.DurationPolicy},
	}
	var lines []string
	for _, r := range rows {
		lines = append(lines, FooterKeyStyle.Render(fmt.Sprintf("%-14s", r[0]))+ChatMessageStyle.Render(r[1]))
	}
	lines = append(lines, "", ModalHelpStyle.Render("press , to edit"))
	return strings.Join(lines, "\n")
}

// View renders the panel for the active section
func (p *Panels) View() string {
	panelStyle := PanelStyle
	if p.focused {
		panelStyle = PanelFocusedStyle
	}
	inner := max(GetViewContext().InnerWidth(p.width), 1)

	var body string
	switch p.snap.Section {
	case chat.SectionContacts:
		body = p.renderContacts(inner)
	case chat.SectionNotifications:
		body = p.renderNotifications(inner)
	case chat.SectionProfile:
		body = p.renderProfile(inner)
	case chat.SectionSettings:
		body = p.renderSettings()
	default:
		body = renderNoConversationMessage()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		PanelTitleStyle.Render(p.snap.Section.Title()),
		body,
	)
	return panelStyle.Width(p.width).Height(p.height).MaxHeight(p.height).Render(content)
}
