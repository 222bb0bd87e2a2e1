package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// AvatarWidth is the number of cells an avatar occupies
const AvatarWidth = 2

// Initials returns up to two uppercase initials from the first grapheme of
// the first two words of name. An empty name yields "?".
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(word, -1)
		b.WriteString(strings.ToUpper(cluster))
		if uniseg.GraphemeClusterCount(b.String()) == 2 {
			break
		}
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}

// Avatar renders a fixed-width avatar cell. A preset avatar glyph wins over
// generated initials.
func Avatar(avatar, name string) string {
	text := avatar
	if text == "" {
		text = Initials(name)
	}
	text = runewidth.Truncate(text, AvatarWidth, "")
	return AvatarStyle.Render(runewidth.FillRight(text, AvatarWidth))
}

// TruncateToWidth cuts s to at most width display cells, ending with an
// ellipsis when it was shortened.
func TruncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
