package chat

import (
	"fmt"
	"slices"

	perrors "github.com/zhubert/dialogo/internal/errors"
)

// Sender identifies who wrote a message.
type Sender string

const (
	SenderSelf Sender = "self"
	SenderPeer Sender = "peer"
)

// Kind is the payload type of a message.
type Kind string

const (
	KindText  Kind = "text"
	KindVoice Kind = "voice"
	KindVideo Kind = "video"
)

// IsMedia reports whether messages of this kind carry a duration instead of text.
func (k Kind) IsMedia() bool {
	return k == KindVoice || k == KindVideo
}

// Message is one entry in a conversation log. Text, Kind and Duration never
// change after the message is appended; only Reactions grow.
type Message struct {
	ID        int
	Text      string
	Time      string // HH:MM wall-clock time at append
	Sender    Sender
	Kind      Kind
	Duration  string   // M:SS, voice and video only
	Reactions []string // insertion order, duplicates allowed
}

// clone returns a copy that shares no memory with m.
func (m Message) clone() Message {
	m.Reactions = slices.Clone(m.Reactions)
	return m
}

// ReactionGroup is an aggregated reaction for display.
type ReactionGroup struct {
	Glyph string
	Count int
}

// ReactionGroups aggregates reactions by glyph in first-seen order.
func (m Message) ReactionGroups() []ReactionGroup {
	var groups []ReactionGroup
	index := make(map[string]int)
	for _, r := range m.Reactions {
		if i, ok := index[r]; ok {
			groups[i].Count++
			continue
		}
		index[r] = len(groups)
		groups = append(groups, ReactionGroup{Glyph: r, Count: 1})
	}
	return groups
}

// Draft is an unsent message payload pending id assignment and timestamping.
// Drafts are always authored by SenderSelf unless Sender says otherwise.
type Draft struct {
	Text     string
	Kind     Kind
	Duration string
	Sender   Sender
}

// TextDraft builds a text-kind draft.
func TextDraft(text string) Draft {
	return Draft{Text: text, Kind: KindText}
}

// Validate enforces the payload invariant: a text message has text and no
// duration, a voice or video message has a duration and no text.
func (d Draft) Validate() error {
	switch {
	case d.Kind == KindText:
		if d.Text == "" {
			return perrors.DraftInvalid("text message has no text")
		}
		if d.Duration != "" {
			return perrors.DraftInvalid("text message cannot carry a duration")
		}
	case d.Kind.IsMedia():
		if d.Duration == "" {
			return perrors.DraftInvalid(fmt.Sprintf("%s message needs a duration", d.Kind))
		}
		if d.Text != "" {
			return perrors.DraftInvalid(fmt.Sprintf("%s message cannot carry text", d.Kind))
		}
	default:
		return perrors.DraftInvalid(fmt.Sprintf("unknown message kind %q", d.Kind))
	}
	switch d.Sender {
	case "", SenderSelf, SenderPeer:
		return nil
	default:
		return perrors.DraftInvalid(fmt.Sprintf("unknown sender %q", d.Sender))
	}
}

// FormatDuration renders whole seconds as M:SS.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
