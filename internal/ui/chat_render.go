package ui

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/dialogo/internal/chat"
)

// Compiled regex patterns for inline markdown
var (
	boldPattern       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
)

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return strings.TrimRight(buf.String(), "\n")
}

// renderInlineMarkdown applies **bold** and `code` formatting to a line
func renderInlineMarkdown(line string) string {
	// Protect code spans from bold formatting
	var codeSpans []string
	line = inlineCodePattern.ReplaceAllStringFunc(line, func(match string) string {
		code := inlineCodePattern.FindStringSubmatch(match)[1]
		codeSpans = append(codeSpans, MarkdownInlineCodeStyle.Render(code))
		return fmt.Sprintf("\x00CODE%d\x00", len(codeSpans)-1)
	})

	line = boldPattern.ReplaceAllStringFunc(line, func(match string) string {
		return MarkdownBoldStyle.Render(boldPattern.FindStringSubmatch(match)[1])
	})

	for i, rendered := range codeSpans {
		line = strings.Replace(line, fmt.Sprintf("\x00CODE%d\x00", i), rendered, 1)
	}
	return line
}

// wrapText wraps text to the specified width, handling ANSI escape codes
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wordwrap(text, width, "")
}

// renderMarkdown renders message text with syntax-highlighted fenced code
// blocks and inline formatting
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var result strings.Builder
	inCodeBlock := false
	codeBlockLang := ""
	var codeBlockContent strings.Builder

	flushCode := func() {
		result.WriteString(MarkdownCodeBlockStyle.Render(highlightCode(codeBlockContent.String(), codeBlockLang)))
		result.WriteString("\n")
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if !inCodeBlock {
				inCodeBlock = true
				codeBlockLang = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "```"))
				codeBlockContent.Reset()
			} else {
				inCodeBlock = false
				flushCode()
				codeBlockLang = ""
			}
			continue
		}

		if inCodeBlock {
			if codeBlockContent.Len() > 0 {
				codeBlockContent.WriteString("\n")
			}
			codeBlockContent.WriteString(line)
			continue
		}
		result.WriteString(wrapText(renderInlineMarkdown(line), width))
		result.WriteString("\n")
	}

	// Unterminated block: show what we have
	if inCodeBlock {
		flushCode()
	}

	return strings.TrimRight(result.String(), "\n")
}

// mediaLabel is the icon and caption of a voice or video message
func mediaLabel(kind chat.Kind) string {
	if kind == chat.KindVideo {
		return "🎥 Video message"
	}
	return "🎤 Voice message"
}

// renderMediaBody renders the player row of a voice or video message
func renderMediaBody(msg chat.Message) string {
	return ChatMediaStyle.Render(mediaLabel(msg.Kind) + "  ▶ ━━━━━━━━ " + msg.Duration)
}

// renderReactions renders reaction chips grouped by glyph in first-seen order
func renderReactions(msg chat.Message) string {
	groups := msg.ReactionGroups()
	if len(groups) == 0 {
		return ""
	}
	chips := make([]string, 0, len(groups))
	for _, g := range groups {
		label := g.Glyph
		if g.Count > 1 {
			label = fmt.Sprintf("%s %d", g.Glyph, g.Count)
		}
		chips = append(chips, ChatReactionStyle.Render(label))
	}
	return strings.Join(chips, " ")
}

// renderMessage renders one timeline entry: sender and time, body, and
// reactions. Outgoing messages are right aligned.
func renderMessage(msg chat.Message, peerName string, width int, selected bool) string {
	bodyWidth := max(width*3/4, 10)

	var label string
	if msg.Sender == chat.SenderSelf {
		label = ChatSelfStyle.Render("You")
	} else {
		label = ChatPeerStyle.Render(peerName)
	}
	headerLine := label + " " + ChatTimeStyle.Render(msg.Time)

	var body string
	if msg.Kind.IsMedia() {
		body = renderMediaBody(msg)
	} else {
		body = ChatMessageStyle.Render(renderMarkdown(msg.Text, bodyWidth))
	}

	parts := []string{headerLine, body}
	if reactions := renderReactions(msg); reactions != "" {
		parts = append(parts, reactions)
	}
	block := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if msg.Sender == chat.SenderSelf {
		block = lipgloss.JoinVertical(lipgloss.Right, parts...)
	}

	if selected {
		block = ChatSelectedStyle.Render(block)
	}
	if msg.Sender == chat.SenderSelf {
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, block)
	}
	return block
}

// renderTimeline renders every message of the open conversation
func renderTimeline(msgs []chat.Message, peerName string, width, selectedID int) string {
	if len(msgs) == 0 {
		return lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No messages yet. Say hi 👋")
	}
	blocks := make([]string, 0, len(msgs))
	for _, m := range msgs {
		blocks = append(blocks, renderMessage(m, peerName, width, m.ID == selectedID))
	}
	return strings.Join(blocks, "\n\n")
}

// renderNoConversationMessage renders the placeholder shown when no
// conversation is open
func renderNoConversationMessage() string {
	msgStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	var sb strings.Builder
	sb.WriteString(msgStyle.Italic(true).Render("No conversation selected"))
	sb.WriteString("\n\n")
	sb.WriteString(msgStyle.Render("  • Press "))
	sb.WriteString(keyStyle.Render("↑/↓"))
	sb.WriteString(msgStyle.Render(" and "))
	sb.WriteString(keyStyle.Render("enter"))
	sb.WriteString(msgStyle.Render(" to open one"))
	return sb.String()
}
