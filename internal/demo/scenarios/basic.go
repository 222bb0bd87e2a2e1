// Package scenarios contains built-in demo scenarios for Dialogo.
package scenarios

import (
	"time"

	"github.com/zhubert/dialogo/internal/demo"
	"github.com/zhubert/dialogo/internal/keys"
)

// Basic walks through a text conversation:
// - Opening a conversation from the sidebar
// - Sending a message with inline markdown
// - Inserting an emoji from the picker
// - Reacting to a message
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Open a chat, send a message, pick an emoji, react",
	Width:       120,
	Height:      40,
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),
		demo.Annotate("Conversations on the left, the open chat on the right"),
		demo.Capture(),

		// Open Max Ivanov
		demo.Key("j"),
		demo.Key("j"),
		demo.KeyWithDesc(keys.Enter, "Open conversation"),
		demo.Wait(500 * time.Millisecond),

		demo.Type("Sure, **15:00** works. I'll send the `invite`"),
		demo.Wait(300 * time.Millisecond),
		demo.Key(keys.Enter),
		demo.Wait(500 * time.Millisecond),

		// Emoji picker
		demo.Type("See you "),
		demo.KeyWithDesc(keys.CtrlE, "Open emoji picker"),
		demo.Key(keys.Right),
		demo.Key(keys.Right),
		demo.Key(keys.Right),
		demo.Annotate("Pick an emoji with left/right"),
		demo.Capture(),
		demo.Key(keys.Enter),
		demo.Key(keys.Enter),
		demo.Wait(500 * time.Millisecond),

		// React to the peer's question
		demo.KeyWithDesc(keys.CtrlUp, "Select message"),
		demo.KeyWithDesc(keys.CtrlUp, "Select message"),
		demo.KeyWithDesc(keys.CtrlUp, "Select message"),
		demo.KeyWithDesc(keys.Alt2, "React with 👍"),
		demo.Annotate("Quick reactions on the selected message"),
		demo.Wait(1 * time.Second),
	},
}
