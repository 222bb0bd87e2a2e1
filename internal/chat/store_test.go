package chat

import (
	"slices"
	"testing"
)

func TestStore_AppendAssignsSequentialIDs(t *testing.T) {
	s := NewStore(fixedClock())

	first, ok := s.Append(1, TextDraft("hi"))
	if !ok {
		t.Fatal("Append(hi) refused")
	}
	if first.ID != 1 || first.Text != "hi" || first.Sender != SenderSelf || first.Kind != KindText {
		t.Errorf("first = %+v, want id 1 text hi from self", first)
	}

	second, _ := s.Append(1, TextDraft("yo"))
	if second.ID != 2 {
		t.Errorf("second.ID = %d, want 2", second.ID)
	}

	got := s.List(1)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("List() = %+v, want ids [1 2]", got)
	}
}

func TestStore_IDsIncreaseByOne(t *testing.T) {
	s := NewStore(fixedClock())
	for i := 0; i < 50; i++ {
		s.Append(7, TextDraft("m"))
	}

	for i, m := range s.List(7) {
		if m.ID != i+1 {
			t.Fatalf("message %d has id %d, want %d", i, m.ID, i+1)
		}
	}
}

func TestStore_AppendUsesMaxIDPlusOne(t *testing.T) {
	s := NewStore(fixedClock())
	s.Seed(1, []Message{
		{ID: 9, Text: "late", Kind: KindText},
		{ID: 2, Text: "early", Kind: KindText},
	})

	msg, _ := s.Append(1, TextDraft("next"))
	if msg.ID != 10 {
		t.Errorf("Append after ids {2, 9} = %d, want 10", msg.ID)
	}
	ids := []int{}
	for m := range s.All(1) {
		ids = append(ids, m.ID)
	}
	if !slices.Equal(ids, []int{2, 9, 10}) {
		t.Errorf("ids = %v, want [2 9 10]", ids)
	}
}

func TestStore_PartitionsAreIsolated(t *testing.T) {
	s := NewStore(fixedClock())
	s.Append(1, TextDraft("a"))
	s.Append(1, TextDraft("b"))

	msg, _ := s.Append(2, TextDraft("c"))
	if msg.ID != 1 {
		t.Errorf("first message of conversation 2 has id %d, want 1", msg.ID)
	}
	if s.Len(1) != 2 || s.Len(2) != 1 {
		t.Errorf("Len = %d/%d, want 2/1", s.Len(1), s.Len(2))
	}
}

func TestStore_AppendStampsTime(t *testing.T) {
	s := NewStore(fixedClock())

	msg, _ := s.Append(1, TextDraft("hi"))
	if msg.Time != "09:05" {
		t.Errorf("Time = %q, want 09:05", msg.Time)
	}
}

func TestStore_AppendRefusesInvalidDraft(t *testing.T) {
	s := NewStore(fixedClock())

	if _, ok := s.Append(1, Draft{Kind: KindVoice}); ok {
		t.Error("voice draft without duration should be refused")
	}
	if s.Len(1) != 0 {
		t.Errorf("Len = %d after refused append, want 0", s.Len(1))
	}
}

func TestStore_AddReactionAppendsToTail(t *testing.T) {
	s := NewStore(fixedClock())
	s.Seed(1, []Message{
		{ID: 1, Text: "a", Kind: KindText},
		{ID: 2, Text: "b", Kind: KindText},
		{ID: 3, Kind: KindVoice, Duration: "0:15", Reactions: []string{"👍", "😊"}},
	})

	msg, ok := s.AddReaction(1, 3, "🔥")
	if !ok {
		t.Fatal("AddReaction on existing message refused")
	}
	want := []string{"👍", "😊", "🔥"}
	if !slices.Equal(msg.Reactions, want) {
		t.Errorf("Reactions = %v, want %v", msg.Reactions, want)
	}

	s.AddReaction(1, 3, "👍")
	stored, _ := s.Get(1, 3)
	if !slices.Equal(stored.Reactions, []string{"👍", "😊", "🔥", "👍"}) {
		t.Errorf("duplicate reaction not appended in call order: %v", stored.Reactions)
	}
}

func TestStore_AddReactionUnknownMessageIsNoOp(t *testing.T) {
	s := NewStore(fixedClock())
	s.Seed(1, []Message{
		{ID: 1, Text: "a", Kind: KindText, Reactions: []string{"❤️"}},
		{ID: 2, Text: "b", Kind: KindText},
	})
	before := s.List(1)

	if _, ok := s.AddReaction(1, 42, "🔥"); ok {
		t.Error("AddReaction on missing id should report false")
	}
	if _, ok := s.AddReaction(1, 1, ""); ok {
		t.Error("AddReaction with empty glyph should report false")
	}

	after := s.List(1)
	if len(after) != len(before) {
		t.Fatalf("message count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if !slices.Equal(before[i].Reactions, after[i].Reactions) {
			t.Errorf("message %d reactions changed: %v -> %v", before[i].ID, before[i].Reactions, after[i].Reactions)
		}
	}
}

func TestStore_ListReturnsCopies(t *testing.T) {
	s := NewStore(fixedClock())
	s.Seed(1, []Message{{ID: 1, Text: "a", Kind: KindText, Reactions: []string{"❤️"}}})

	got := s.List(1)
	got[0].Text = "mutated"
	got[0].Reactions[0] = "💀"

	stored, _ := s.Get(1, 1)
	if stored.Text != "a" || stored.Reactions[0] != "❤️" {
		t.Errorf("List() leaked internal state: %+v", stored)
	}
}

func TestStore_AllIsRestartable(t *testing.T) {
	s := NewStore(fixedClock())
	s.Append(1, TextDraft("a"))
	s.Append(1, TextDraft("b"))
	seq := s.All(1)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if count() != 2 {
		t.Fatal("first iteration should see 2 messages")
	}
	s.Append(1, TextDraft("c"))
	if count() != 3 {
		t.Error("restarted iteration should see the appended message")
	}

	for m := range seq {
		if m.ID != 1 {
			t.Errorf("first yielded id = %d, want 1", m.ID)
		}
		break
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := NewStore(nil)
	if _, ok := s.Get(1, 1); ok {
		t.Error("Get on empty store should miss")
	}
}
