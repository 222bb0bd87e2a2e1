package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/dialogo/internal/chat"
	"github.com/zhubert/dialogo/internal/keys"
)

// Sidebar represents the left panel: the section rail and the conversation list
type Sidebar struct {
	conversations []chat.Conversation
	filtered      []chat.Conversation // conversations matching the search query
	section       chat.Section
	activeID      int // conversation open in the chat panel
	selectedIdx   int // highlighted row of the visible list
	width         int
	height        int
	focused       bool
	scrollOffset  int

	// Search mode
	searchMode  bool
	searchInput textinput.Model
}

// NewSidebar creates a new sidebar
func NewSidebar() *Sidebar {
	ti := textinput.New()
	ti.Placeholder = "search chats..."
	ti.CharLimit = SidebarSearchCharLimit

	return &Sidebar{searchInput: ti}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Width returns the sidebar width
func (s *Sidebar) Width() int {
	return s.width
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns whether the sidebar is focused
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetSection sets the highlighted section in the rail
func (s *Sidebar) SetSection(section chat.Section) {
	s.section = section
	if section == chat.SectionContacts {
		s.searchInput.Placeholder = "search contacts..."
	} else {
		s.searchInput.Placeholder = "search chats..."
	}
}

// SetConversations replaces the list. The highlight follows the open
// conversation when it changes.
func (s *Sidebar) SetConversations(convs []chat.Conversation, activeID int) {
	s.conversations = convs
	s.applyFilter(s.searchInput.Value())
	visible := s.visibleConversations()
	if activeID != s.activeID {
		s.activeID = activeID
		for i, c := range visible {
			if c.ID == activeID {
				s.selectedIdx = i
			}
		}
	}
	s.selectedIdx = min(s.selectedIdx, max(len(visible)-1, 0))
}

// SelectedConversation returns the highlighted conversation
func (s *Sidebar) SelectedConversation() (chat.Conversation, bool) {
	visible := s.visibleConversations()
	if s.selectedIdx < 0 || s.selectedIdx >= len(visible) {
		return chat.Conversation{}, false
	}
	return visible[s.selectedIdx], true
}

// EnterSearchMode activates search mode with an empty query
func (s *Sidebar) EnterSearchMode() tea.Cmd {
	s.searchMode = true
	s.searchInput.SetValue("")
	s.applyFilter("")
	return s.searchInput.Focus()
}

// ExitSearchMode deactivates search mode and clears the filter
func (s *Sidebar) ExitSearchMode() {
	s.searchMode = false
	s.searchInput.Blur()
	s.searchInput.SetValue("")
	s.applyFilter("")
}

// IsSearchMode returns whether the search input is taking keys
func (s *Sidebar) IsSearchMode() bool {
	return s.searchMode
}

// SearchQuery returns the current filter, which stays applied after enter
// closes the input
func (s *Sidebar) SearchQuery() string {
	return s.searchInput.Value()
}

// MatchesQuery reports whether name contains query, ignoring case. An empty
// query matches everything.
func MatchesQuery(name, query string) bool {
	query = strings.TrimSpace(query)
	return query == "" || strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

// applyFilter filters conversations by name. The highlight stays on the same
// conversation while it remains visible.
func (s *Sidebar) applyFilter(query string) {
	highlighted, hadHighlight := s.SelectedConversation()

	if strings.TrimSpace(query) == "" {
		s.filtered = nil
	} else {
		s.filtered = []chat.Conversation{}
		for _, c := range s.conversations {
			if MatchesQuery(c.Name, query) {
				s.filtered = append(s.filtered, c)
			}
		}
	}

	visible := s.visibleConversations()
	s.selectedIdx = min(s.selectedIdx, max(len(visible)-1, 0))
	if hadHighlight {
		for i, c := range visible {
			if c.ID == highlighted.ID {
				s.selectedIdx = i
			}
		}
	}
	if s.filtered != nil {
		s.scrollOffset = 0
	}
}

// visibleConversations returns the conversations currently shown
func (s *Sidebar) visibleConversations() []chat.Conversation {
	if s.filtered != nil {
		return s.filtered
	}
	return s.conversations
}

// Update handles navigation and search keys while focused
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.focused {
		return s, nil
	}
	visible := s.visibleConversations()

	// Handle search mode input
	if s.searchMode {
		switch keyMsg.String() {
		case keys.Escape:
			s.ExitSearchMode()
			return s, nil
		case keys.Enter:
			// Stop typing but keep the filter applied
			s.searchMode = false
			s.searchInput.Blur()
			return s, nil
		case keys.Up:
			if s.selectedIdx > 0 {
				s.selectedIdx--
			}
			return s, nil
		case keys.Down:
			if s.selectedIdx < len(visible)-1 {
				s.selectedIdx++
			}
			return s, nil
		default:
			var cmd tea.Cmd
			s.searchInput, cmd = s.searchInput.Update(msg)
			s.applyFilter(s.searchInput.Value())
			return s, cmd
		}
	}

	switch keyMsg.String() {
	case keys.Up, "k":
		if s.selectedIdx > 0 {
			s.selectedIdx--
		}
	case keys.Down, "j":
		if s.selectedIdx < len(visible)-1 {
			s.selectedIdx++
		}
	case keys.Escape:
		if s.filtered != nil {
			s.ExitSearchMode()
		}
	}
	return s, nil
}

// View renders the sidebar
func (s *Sidebar) View() string {
	ctx := GetViewContext()

	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}

	innerWidth := ctx.InnerWidth(s.width)
	innerHeight := ctx.InnerHeight(s.height)

	rail := s.renderRail(innerWidth)
	listHeight := innerHeight - NavRailHeight - 1

	// Search line, shown while typing or while a filter is applied
	var searchLine string
	if s.searchMode || s.filtered != nil {
		s.searchInput.SetWidth(max(innerWidth-3, 1)) // Leave room for "/ "
		searchLine = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true).Render("/") + " " + s.searchInput.View()
		listHeight--
	}

	visible := s.visibleConversations()
	var content string
	if len(visible) == 0 {
		emptyMsg := "No conversations."
		if s.filtered != nil {
			emptyMsg = "No matches."
		}
		content = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render(emptyMsg)
	} else {
		// Each conversation takes two lines: name row and preview row
		var allLines []string
		selectedStartLine := 0
		for i, c := range visible {
			if i == s.selectedIdx {
				selectedStartLine = len(allLines)
			}
			allLines = append(allLines, s.renderConversation(c, i == s.selectedIdx, innerWidth)...)
		}

		// Adjust scroll to keep the highlighted conversation visible
		if selectedStartLine < s.scrollOffset {
			s.scrollOffset = selectedStartLine
		} else if selectedStartLine+1 >= s.scrollOffset+listHeight {
			s.scrollOffset = selectedStartLine + 2 - listHeight
		}
		s.scrollOffset = min(max(s.scrollOffset, 0), max(len(allLines)-listHeight, 0))

		allLines = allLines[s.scrollOffset:]
		if len(allLines) > listHeight {
			allLines = allLines[:max(listHeight, 0)]
		}
		content = strings.Join(allLines, "\n")
	}

	separator := lipgloss.NewStyle().Foreground(ColorBorder).Render(strings.Repeat("─", max(innerWidth, 0)))
	parts := []string{rail, separator}
	if searchLine != "" {
		parts = append(parts, lipgloss.NewStyle().MaxWidth(innerWidth).Render(searchLine))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, append(parts, content)...)

	return style.Width(s.width).Height(s.height).Render(body)
}

// renderRail renders the section tabs. The active section shows its title,
// the others only their number key.
func (s *Sidebar) renderRail(width int) string {
	var parts []string
	for i, sec := range chat.Sections {
		if sec == s.section {
			parts = append(parts, NavActiveStyle.Render(fmt.Sprintf("%d %s", i+1, sec.Title())))
		} else {
			parts = append(parts, NavItemStyle.Render(fmt.Sprintf("%d", i+1)))
		}
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, ""))
}

// renderConversation renders the name row and the preview row of one
// conversation, both fitted to width
func (s *Sidebar) renderConversation(c chat.Conversation, highlighted bool, width int) []string {
	itemStyle := SidebarItemStyle
	if highlighted {
		itemStyle = SidebarSelectedStyle
	}
	// Padding(0, 1) on item styles
	inner := width - 2

	marker := "  "
	if c.ID == s.activeID {
		marker = "> "
	}
	presence := " "
	if c.Online {
		presence = OnlineDotStyle.Render("●")
	}

	right := c.LastActivity
	if c.Unread > 0 {
		right = fmt.Sprintf("%s (%d)", right, c.Unread)
	}

	// marker(2) + avatar + space + presence(1) + space
	prefixWidth := 2 + AvatarWidth + 1 + 1 + 1
	nameWidth := max(inner-prefixWidth-runewidth.StringWidth(right)-1, 1)
	name := runewidth.FillRight(TruncateToWidth(c.Name, nameWidth), nameWidth)
	nameRow := marker + Avatar(c.Avatar, c.Name) + " " + presence + " " + name + " " + right

	preview := strings.Repeat(" ", prefixWidth) + SidebarMutedStyle.Render(TruncateToWidth(c.Preview, max(inner-prefixWidth, 1)))

	return []string{
		itemStyle.Width(width).MaxHeight(1).Render(nameRow),
		itemStyle.Width(width).MaxHeight(1).Render(preview),
	}
}
