package chat

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Picker is the glyph selection panel attached to the composer.
type Picker int

const (
	PickerNone Picker = iota
	PickerEmoji
	PickerSticker
)

func (p Picker) String() string {
	switch p {
	case PickerEmoji:
		return "emoji"
	case PickerSticker:
		return "sticker"
	default:
		return "none"
	}
}

// Sticker is one entry of the sticker picker.
type Sticker struct {
	ID    int
	Name  string
	Glyph string
}

// EmojiPalette is the content of the emoji picker.
var EmojiPalette = []string{"😊", "❤️", "👍", "🔥", "😂", "😍", "🎉", "✨", "💯", "🚀"}

// StickerPacks is the content of the sticker picker.
var StickerPacks = []Sticker{
	{ID: 1, Name: "Cat", Glyph: "🐱"},
	{ID: 2, Name: "Dog", Glyph: "🐶"},
	{ID: 3, Name: "Panda", Glyph: "🐼"},
	{ID: 4, Name: "Fox", Glyph: "🦊"},
}

// QuickReactions are offered on every message.
var QuickReactions = []string{"❤️", "👍", "😂"}

// Glyphs returns the selectable glyphs of a picker.
func Glyphs(p Picker) []string {
	switch p {
	case PickerEmoji:
		return EmojiPalette
	case PickerSticker:
		glyphs := make([]string, len(StickerPacks))
		for i, s := range StickerPacks {
			glyphs[i] = s.Glyph
		}
		return glyphs
	default:
		return nil
	}
}

// Composer holds the in-progress outgoing message. At most one picker is
// open at a time.
type Composer struct {
	text   string
	picker Picker
}

// NewComposer returns an empty composer with no picker open.
func NewComposer() *Composer {
	return &Composer{}
}

// Text returns the buffer.
func (c *Composer) Text() string { return c.text }

// Picker returns the open picker.
func (c *Composer) Picker() Picker { return c.picker }

// SetText replaces the buffer unconditionally.
func (c *Composer) SetText(s string) {
	c.text = s
}

// AppendGlyph concatenates s to the buffer and closes whichever picker is open.
func (c *Composer) AppendGlyph(s string) {
	c.text += s
	c.picker = PickerNone
}

// Backspace removes the last grapheme cluster so multi-rune emoji delete as one.
func (c *Composer) Backspace() bool {
	if c.text == "" {
		return false
	}
	last := 0
	state := -1
	rest := c.text
	offset := 0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		last = offset
		offset += len(cluster)
	}
	c.text = c.text[:last]
	return true
}

// TogglePicker hides kind if it is open, otherwise opens it and closes the other.
func (c *Composer) TogglePicker(kind Picker) {
	if c.picker == kind {
		c.picker = PickerNone
		return
	}
	c.picker = kind
}

// ClosePicker hides any open picker.
func (c *Composer) ClosePicker() bool {
	if c.picker == PickerNone {
		return false
	}
	c.picker = PickerNone
	return true
}

// Submit turns the buffer into a text draft. An empty or whitespace-only
// buffer yields nothing and leaves the composer as it was. The draft text is
// the buffer as typed, not trimmed.
func (c *Composer) Submit() (Draft, bool) {
	if strings.TrimSpace(c.text) == "" {
		return Draft{}, false
	}
	d := TextDraft(c.text)
	c.Reset()
	return d, true
}

// Reset empties the buffer and closes the picker.
func (c *Composer) Reset() {
	c.text = ""
	c.picker = PickerNone
}
