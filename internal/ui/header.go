package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const headerTitle = " dialogo"

// Header represents the top header bar
type Header struct {
	width        int
	conversation string
	status       string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetConversation sets the open conversation name to display
func (h *Header) SetConversation(name string) {
	h.conversation = name
}

// SetStatus sets the muted presence text shown after the conversation name
func (h *Header) SetStatus(status string) {
	h.status = status
}

// View renders the header
func (h *Header) View() string {
	var rightText string
	if h.conversation != "" {
		rightText = h.conversation
		if h.status != "" {
			rightText += " · " + h.status
		}
		rightText += " "
	}

	paddingLen := max(h.width-runewidth.StringWidth(headerTitle)-runewidth.StringWidth(rightText), 0)
	fullContent := headerTitle + strings.Repeat(" ", paddingLen) + rightText

	mutedFrom := -1
	if h.status != "" {
		mutedFrom = strings.LastIndex(fullContent, " · "+h.status)
	}
	return renderGradient(fullContent, mutedFrom)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders content over a background fading from the primary
// color to the main background. Bytes at or after mutedFrom use the muted
// text color. The gradient advances per grapheme cluster so emoji in
// conversation names stay intact.
func renderGradient(content string, mutedFrom int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	total := uniseg.GraphemeClusterCount(content)
	var result strings.Builder

	rest := content
	state := -1
	offset := 0
	for i := 0; len(rest) > 0; i++ {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)

		t := float64(i) / float64(total)
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)
		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < len(headerTitle))
		if mutedFrom >= 0 && offset >= mutedFrom {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(cluster))
		offset += len(cluster)
	}

	return result.String()
}
