package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, set from the current theme by regenerateStyles
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorMuted       color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorSelf        color.Color // Outgoing messages
	ColorPeer        color.Color // Incoming messages
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
)

// Header styles
var (
	HeaderStyle      lipgloss.Style
	HeaderTitleStyle lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Sidebar and navigation styles
var (
	SidebarItemStyle     lipgloss.Style
	SidebarSelectedStyle lipgloss.Style
	SidebarMutedStyle    lipgloss.Style
	UnreadBadgeStyle     lipgloss.Style
	OnlineDotStyle       lipgloss.Style
	NavItemStyle         lipgloss.Style
	NavActiveStyle       lipgloss.Style
	AvatarStyle          lipgloss.Style
)

// Chat styles
var (
	ChatSelfStyle         lipgloss.Style
	ChatPeerStyle         lipgloss.Style
	ChatTimeStyle         lipgloss.Style
	ChatMessageStyle      lipgloss.Style
	ChatSelectedStyle     lipgloss.Style
	ChatMediaStyle        lipgloss.Style
	ChatReactionStyle     lipgloss.Style
	ChatInputStyle        lipgloss.Style
	ChatInputFocusedStyle lipgloss.Style
)

// Composer accessory styles
var (
	PickerStyle          lipgloss.Style
	PickerCursorStyle    lipgloss.Style
	RecordingStyle       lipgloss.Style
	TriggerStyle         lipgloss.Style
	TriggerDisabledStyle lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Status and inline markdown styles
var (
	StatusErrorStyle        lipgloss.Style
	MarkdownBoldStyle       lipgloss.Style
	MarkdownInlineCodeStyle lipgloss.Style
	MarkdownCodeBlockStyle  lipgloss.Style
)

func init() {
	regenerateStyles()
}

// buildStyles rebuilds every style from the color variables.
func buildStyles(t Theme) {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	SidebarItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)

	SidebarMutedStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	UnreadBadgeStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorSecondary).
		Bold(true).
		Padding(0, 1)

	OnlineDotStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	NavItemStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	NavActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	AvatarStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true)

	ChatSelfStyle = lipgloss.NewStyle().
		Foreground(ColorSelf).
		Bold(true)

	ChatPeerStyle = lipgloss.NewStyle().
		Foreground(ColorPeer).
		Bold(true)

	ChatTimeStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ChatMessageStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ChatSelectedStyle = lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)

	ChatMediaStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	ChatReactionStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(lipgloss.Color(t.CodeBg)).
		Padding(0, 1)

	ChatInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	PickerStyle = lipgloss.NewStyle().
		Padding(0, 1)

	PickerCursorStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Padding(0, 1)

	RecordingStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)

	TriggerStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	TriggerDisabledStyle = lipgloss.NewStyle().
		Foreground(ColorBorder).
		Strikethrough(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	MarkdownBoldStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	MarkdownInlineCodeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Code)).
		Background(lipgloss.Color(t.CodeBg))

	MarkdownCodeBlockStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.CodeBg))
}
