package ui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dialogo/internal/chat"
)

// keyPress creates a tea.KeyPressMsg for the given key string
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	default:
		r := []rune(key)[0]
		return tea.KeyPressMsg{Code: r, Text: key}
	}
}

func testConversations() []chat.Conversation {
	return chat.DefaultSeed().Conversations
}

func testSnapshot() chat.Snapshot {
	w := chat.NewWorkspace(chat.Options{Seed: chat.DefaultSeed()})
	return w.Snapshot()
}
