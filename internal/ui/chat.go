package ui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/dialogo/internal/chat"
)

// Chat is the right-hand panel: message timeline, composer input and the
// accessory row (glyph picker, recording bar or record triggers).
type Chat struct {
	viewport viewport.Model
	input    textinput.Model
	width    int
	height   int
	focused  bool

	active   *chat.Conversation
	messages []chat.Message

	picker       chat.Picker
	pickerCursor int

	recording       chat.Recording
	triggersEnabled bool
	recordWindow    time.Duration

	// Message highlighted for reactions and copy; 0 means none
	selectedID int
}

// NewChat creates a new chat panel
func NewChat() *Chat {
	ti := textinput.New()
	ti.Placeholder = "Write a message..."

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &Chat{
		viewport:     vp,
		input:        ti,
		recordWindow: chat.DefaultRecordWindow,
	}
}

// timelineHeight is the outer height of the bordered message panel
func (c *Chat) timelineHeight() int {
	return max(c.height-InputHeight-AccessoryHeight, BorderSize+1)
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()
	c.viewport.SetWidth(max(ctx.InnerWidth(width), 1))
	c.viewport.SetHeight(max(ctx.InnerHeight(c.timelineHeight()), 1))

	// Border, horizontal padding and the prompt
	c.input.SetWidth(max(ctx.InnerWidth(width)-4, 1))

	ctx.log.Debug("chat resized",
		"width", width,
		"height", height,
		"viewportWidth", c.viewport.Width(),
		"viewportHeight", c.viewport.Height(),
	)
	c.updateContent()
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) tea.Cmd {
	c.focused = focused
	if focused {
		return c.input.Focus()
	}
	c.input.Blur()
	return nil
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// HasConversation reports whether a conversation is open
func (c *Chat) HasConversation() bool {
	return c.active != nil
}

// Apply synchronizes the panel with a workspace snapshot. window is the
// configured capture window shown in the recording bar.
func (c *Chat) Apply(snap chat.Snapshot, window time.Duration) {
	if !sameConversation(c.active, snap.Active) {
		c.selectedID = 0
		c.viewport.GotoTop()
	}
	c.active = snap.Active
	c.messages = snap.Messages

	if snap.Composer.Picker != c.picker {
		c.pickerCursor = 0
	}
	c.picker = snap.Composer.Picker

	if c.input.Value() != snap.Composer.Text {
		c.input.SetValue(snap.Composer.Text)
		c.input.CursorEnd()
	}

	c.recording = snap.Recording
	c.triggersEnabled = snap.RecordTriggersEnabled()
	if window > 0 {
		c.recordWindow = window
	}

	if c.selectedID != 0 {
		if _, ok := c.SelectedMessage(); !ok {
			c.selectedID = 0
		}
	}
	c.updateContent()
}

func sameConversation(a, b *chat.Conversation) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}

// InputValue returns the text in the composer input
func (c *Chat) InputValue() string {
	return c.input.Value()
}

// UpdateInput forwards a message to the text input
func (c *Chat) UpdateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// PickerOpen reports whether the emoji or sticker picker is showing
func (c *Chat) PickerOpen() bool {
	return c.picker != chat.PickerNone
}

// MovePickerCursor moves the picker highlight by delta, wrapping at the ends
func (c *Chat) MovePickerCursor(delta int) {
	glyphs := chat.Glyphs(c.picker)
	if len(glyphs) == 0 {
		return
	}
	n := len(glyphs)
	c.pickerCursor = ((c.pickerCursor+delta)%n + n) % n
}

// PickerGlyph returns the open picker and the glyph under the cursor
func (c *Chat) PickerGlyph() (chat.Picker, string, bool) {
	glyphs := chat.Glyphs(c.picker)
	if c.pickerCursor < 0 || c.pickerCursor >= len(glyphs) {
		return chat.PickerNone, "", false
	}
	return c.picker, glyphs[c.pickerCursor], true
}

func (c *Chat) selectedIndex() int {
	for i, m := range c.messages {
		if m.ID == c.selectedID {
			return i
		}
	}
	return -1
}

// SelectPrevMessage moves the message highlight up. With nothing selected
// it starts at the newest message.
func (c *Chat) SelectPrevMessage() bool {
	if len(c.messages) == 0 {
		return false
	}
	i := c.selectedIndex()
	switch {
	case i < 0:
		i = len(c.messages) - 1
	case i > 0:
		i--
	}
	c.selectedID = c.messages[i].ID
	c.updateContent()
	return true
}

// SelectNextMessage moves the message highlight down, stopping at the newest
func (c *Chat) SelectNextMessage() bool {
	i := c.selectedIndex()
	if i < 0 {
		return false
	}
	if i < len(c.messages)-1 {
		i++
	}
	c.selectedID = c.messages[i].ID
	c.updateContent()
	return true
}

// SelectedMessage returns the highlighted message
func (c *Chat) SelectedMessage() (chat.Message, bool) {
	if i := c.selectedIndex(); i >= 0 {
		return c.messages[i], true
	}
	return chat.Message{}, false
}

// ClearSelection removes the message highlight
func (c *Chat) ClearSelection() bool {
	if c.selectedID == 0 {
		return false
	}
	c.selectedID = 0
	c.updateContent()
	return true
}

// Scroll pages the timeline for pgup/pgdown
func (c *Chat) Scroll(key string) {
	switch key {
	case "pgup":
		c.viewport.PageUp()
	case "pgdown":
		c.viewport.PageDown()
	}
}

func (c *Chat) updateContent() {
	if c.active == nil {
		c.viewport.SetContent("")
		return
	}
	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}
	c.viewport.SetContent(renderTimeline(c.messages, c.active.Name, wrapWidth, c.selectedID))
	if c.selectedID == 0 {
		c.viewport.GotoBottom()
	}
}

func (c *Chat) renderPicker() string {
	var label string
	if c.picker == chat.PickerSticker {
		label = "Stickers"
	} else {
		label = "Emoji"
	}

	var sb strings.Builder
	sb.WriteString(FooterDescStyle.Render(label + " "))
	for i, g := range chat.Glyphs(c.picker) {
		if i == c.pickerCursor {
			sb.WriteString(PickerCursorStyle.Render(g))
		} else {
			sb.WriteString(PickerStyle.Render(g))
		}
	}
	if c.picker == chat.PickerSticker && c.pickerCursor < len(chat.StickerPacks) {
		sb.WriteString(FooterDescStyle.Render(" " + chat.StickerPacks[c.pickerCursor].Name))
	}
	return sb.String()
}

func (c *Chat) renderTriggers() string {
	style := TriggerStyle
	if !c.triggersEnabled {
		style = TriggerDisabledStyle
	}
	return style.Render("ctrl+r 🎤 voice") + "  " + style.Render("ctrl+t 🎥 video")
}

func (c *Chat) renderRecordingBar() string {
	dot := "●"
	if c.recording.Elapsed%2 == 1 {
		dot = " "
	}
	mode := "Voice"
	if c.recording.Mode == chat.ModeVideo {
		mode = "Video"
	}
	progress := chat.FormatDuration(c.recording.Elapsed) + " / " +
		chat.FormatDuration(int(c.recordWindow/time.Second))

	return RecordingStyle.Render(dot+" REC "+mode) + " " +
		ChatTimeStyle.Render(progress) + "  " +
		FooterDescStyle.Render("esc cancel") + "  " +
		c.renderTriggers()
}

func (c *Chat) renderAccessory() string {
	var row string
	switch {
	case c.recording.Active():
		row = c.renderRecordingBar()
	case c.PickerOpen():
		row = c.renderPicker()
	default:
		row = c.renderTriggers() + "  " + FooterDescStyle.Render("ctrl+e emoji · ctrl+s stickers")
	}
	return lipgloss.NewStyle().MaxWidth(c.width).Render(" " + row)
}

// View renders the chat panel
func (c *Chat) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	if c.active == nil {
		return panelStyle.Width(c.width).Height(c.height).Render(renderNoConversationMessage())
	}

	timeline := panelStyle.Width(c.width).Height(c.timelineHeight()).Render(c.viewport.View())

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(c.width).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, timeline, inputArea, c.renderAccessory())
}
