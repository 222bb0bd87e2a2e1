package chat

import (
	"fmt"
	"time"
)

// fixedClock returns a clock that always reports 09:05.
func fixedClock() Clock {
	return func() time.Time {
		return time.Date(2026, 3, 14, 9, 5, 0, 0, time.Local)
	}
}

// sequentialTokens replaces uuid generation with predictable tokens.
func sequentialTokens(r *Recorder) {
	n := 0
	r.newToken = func() string {
		n++
		return fmt.Sprintf("token-%d", n)
	}
}

// emptySeed has two conversations with no messages.
func emptySeed() Seed {
	return Seed{
		Conversations: []Conversation{
			{ID: 1, Name: "Alice", Unread: 2},
			{ID: 2, Name: "Bob"},
		},
		Messages: map[int][]Message{},
		Selected: 1,
	}
}

// testWorkspace creates a workspace over emptySeed with deterministic tokens.
func testWorkspace() *Workspace {
	w := NewWorkspace(Options{Clock: fixedClock(), Seed: emptySeed()})
	sequentialTokens(w.recorder)
	return w
}
