package scenarios

import (
	"time"

	"github.com/zhubert/dialogo/internal/demo"
	"github.com/zhubert/dialogo/internal/keys"
)

// Recording shows the voice and video capture flow: a voice message that
// runs out its window, then a video recording canceled midway.
var Recording = &demo.Scenario{
	Name:        "recording",
	Description: "Record a voice message, cancel a video",
	Width:       120,
	Height:      40,
	Steps: []demo.Step{
		demo.KeyWithDesc(keys.Tab, "Focus chat"),
		demo.Wait(500 * time.Millisecond),

		demo.KeyWithDesc(keys.CtrlR, "Start voice recording"),
		demo.Annotate("Triggers are disabled while recording"),
		demo.Capture(),
		demo.Tick(2),
		demo.Timeout(),
		demo.Annotate("Voice message sent"),
		demo.Wait(1 * time.Second),

		demo.KeyWithDesc(keys.CtrlT, "Start video recording"),
		demo.Tick(1),
		demo.KeyWithDesc(keys.Escape, "Cancel"),
		demo.Annotate("Canceled, nothing was sent"),
		demo.Wait(1 * time.Second),
	},
}
