package chat

import "testing"

func TestComposer_TogglePickerExclusive(t *testing.T) {
	tests := []struct {
		name    string
		toggles []Picker
		want    Picker
	}{
		{"emoji", []Picker{PickerEmoji}, PickerEmoji},
		{"emoji twice hides", []Picker{PickerEmoji, PickerEmoji}, PickerNone},
		{"emoji then sticker", []Picker{PickerEmoji, PickerSticker}, PickerSticker},
		{"sticker then emoji", []Picker{PickerSticker, PickerEmoji}, PickerEmoji},
		{"sticker emoji sticker", []Picker{PickerSticker, PickerEmoji, PickerSticker}, PickerSticker},
		{"emoji sticker sticker", []Picker{PickerEmoji, PickerSticker, PickerSticker}, PickerNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewComposer()
			for _, p := range tt.toggles {
				c.TogglePicker(p)
			}
			if c.Picker() != tt.want {
				t.Errorf("Picker() = %v, want %v", c.Picker(), tt.want)
			}
		})
	}
}

func TestComposer_AppendGlyphClosesPicker(t *testing.T) {
	c := NewComposer()
	c.SetText("hi ")
	c.TogglePicker(PickerSticker)

	c.AppendGlyph("🐼")

	if c.Text() != "hi 🐼" {
		t.Errorf("Text() = %q, want %q", c.Text(), "hi 🐼")
	}
	if c.Picker() != PickerNone {
		t.Errorf("Picker() = %v, want none", c.Picker())
	}
}

func TestComposer_SubmitRejectsBlank(t *testing.T) {
	for _, text := range []string{"", " ", "\t\n  "} {
		c := NewComposer()
		c.SetText(text)
		c.TogglePicker(PickerEmoji)

		if _, ok := c.Submit(); ok {
			t.Errorf("Submit(%q) should be rejected", text)
		}
		if c.Text() != text {
			t.Errorf("buffer changed after rejected submit: %q -> %q", text, c.Text())
		}
		if c.Picker() != PickerEmoji {
			t.Errorf("picker changed after rejected submit: %v", c.Picker())
		}
	}
}

func TestComposer_SubmitKeepsTextUntrimmedAndResets(t *testing.T) {
	c := NewComposer()
	c.SetText("  hello  ")
	c.TogglePicker(PickerEmoji)

	d, ok := c.Submit()
	if !ok {
		t.Fatal("Submit refused non-blank text")
	}
	if d.Text != "  hello  " || d.Kind != KindText {
		t.Errorf("draft = %+v, want untrimmed text draft", d)
	}
	if c.Text() != "" || c.Picker() != PickerNone {
		t.Errorf("composer not reset: text=%q picker=%v", c.Text(), c.Picker())
	}
}

func TestComposer_Backspace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc", "ab"},
		{"hi❤️", "hi"},
		{"ok👍🏽", "ok"},
		{"🇷🇺", ""},
		{"a", ""},
	}

	for _, tt := range tests {
		c := NewComposer()
		c.SetText(tt.in)
		if !c.Backspace() {
			t.Errorf("Backspace(%q) reported no change", tt.in)
		}
		if c.Text() != tt.want {
			t.Errorf("Backspace(%q) = %q, want %q", tt.in, c.Text(), tt.want)
		}
	}

	if NewComposer().Backspace() {
		t.Error("Backspace on empty buffer should report false")
	}
}

func TestGlyphs(t *testing.T) {
	if len(Glyphs(PickerEmoji)) != len(EmojiPalette) {
		t.Error("emoji picker should expose the emoji palette")
	}
	stickers := Glyphs(PickerSticker)
	if len(stickers) != 4 || stickers[0] != "🐱" || stickers[3] != "🦊" {
		t.Errorf("sticker glyphs = %v", stickers)
	}
	if Glyphs(PickerNone) != nil {
		t.Error("no picker has no glyphs")
	}
}
