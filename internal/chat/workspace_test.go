package chat

import (
	"testing"
)

func TestNewWorkspace_SelectsSeedConversation(t *testing.T) {
	w := testWorkspace()

	snap := w.Snapshot()
	if snap.Active == nil || snap.Active.ID != 1 {
		t.Fatalf("Active = %v, want conversation 1", snap.Active)
	}
	if snap.Active.Unread != 0 {
		t.Errorf("opening a conversation should clear unread, got %d", snap.Active.Unread)
	}
	if snap.Section != SectionChats {
		t.Errorf("Section = %v, want chats", snap.Section)
	}
}

func TestWorkspace_DefaultSeed(t *testing.T) {
	w := NewWorkspace(Options{Clock: fixedClock(), Seed: DefaultSeed()})

	snap := w.Snapshot()
	if len(snap.Conversations) != 4 {
		t.Errorf("conversations = %d, want 4", len(snap.Conversations))
	}
	if len(snap.Messages) != 6 {
		t.Errorf("messages of conversation 1 = %d, want 6", len(snap.Messages))
	}

	msg, ok := w.AddReaction(3, "🔥")
	if !ok || msg.Reactions[len(msg.Reactions)-1] != "🔥" || len(msg.Reactions) != 3 {
		t.Errorf("AddReaction(3, 🔥) = %+v, %v", msg, ok)
	}
}

func TestWorkspace_SendText(t *testing.T) {
	w := testWorkspace()
	var snaps []Snapshot
	w.Subscribe(func(s Snapshot) { snaps = append(snaps, s) })

	w.SetText("hi")
	msg, ok := w.SendText()
	if !ok || msg.ID != 1 || msg.Text != "hi" || msg.Sender != SenderSelf {
		t.Fatalf("SendText() = %+v, %v", msg, ok)
	}

	last := snaps[len(snaps)-1]
	if len(last.Messages) != 1 || last.Composer.Text != "" {
		t.Errorf("snapshot after send = %+v", last)
	}
}

func TestWorkspace_SendBlankDoesNothing(t *testing.T) {
	w := testWorkspace()
	w.SetText("   ")
	w.TogglePicker(PickerEmoji)
	published := 0
	w.Subscribe(func(Snapshot) { published++ })

	if _, ok := w.SendText(); ok {
		t.Fatal("blank send should be rejected")
	}
	if published != 0 {
		t.Errorf("rejected send published %d snapshots", published)
	}
	snap := w.Snapshot()
	if snap.Composer.Text != "   " || snap.Composer.Picker != PickerEmoji || len(snap.Messages) != 0 {
		t.Errorf("state changed after rejected send: %+v", snap)
	}
}

func TestWorkspace_SendWithoutConversation(t *testing.T) {
	w := testWorkspace()
	w.SelectConversation(99)
	w.SetText("hello")

	if _, ok := w.SendText(); ok {
		t.Error("send with no open conversation should be rejected")
	}
	if w.Snapshot().Composer.Text != "hello" {
		t.Error("rejected send should keep the buffer")
	}
}

func TestWorkspace_SelectUnknownIsEmptyState(t *testing.T) {
	w := testWorkspace()

	if w.SelectConversation(42) {
		t.Error("selecting an unknown id should report false")
	}
	snap := w.Snapshot()
	if snap.Active != nil || snap.Messages != nil {
		t.Errorf("expected empty state, got %+v", snap.Active)
	}
	if snap.RecordTriggersEnabled() {
		t.Error("record triggers should be disabled with no conversation")
	}
}

func TestWorkspace_VoiceCancelScenario(t *testing.T) {
	w := testWorkspace()
	w.SetText("draft")
	w.SendText()
	before := w.Store().Len(1)

	timers, ok := w.StartRecording(ModeVoice)
	if !ok {
		t.Fatal("StartRecording(voice) refused")
	}
	for i := 0; i < 3; i++ {
		w.TickRecording(timers.Token)
	}
	if w.Snapshot().Recording.Elapsed != 3 {
		t.Errorf("elapsed = %d, want 3", w.Snapshot().Recording.Elapsed)
	}

	if !w.CancelRecording(ModeVoice) {
		t.Fatal("CancelRecording(voice) refused")
	}
	if w.Store().Len(1) != before {
		t.Error("cancel must not add a message")
	}
	if w.Snapshot().Recording.Active() {
		t.Error("recording should be idle after cancel")
	}
	if _, ok := w.FinalizeRecording(timers.Token); ok {
		t.Error("timeout after cancel must not finalize")
	}
}

func TestWorkspace_CancelWrongModeIgnored(t *testing.T) {
	w := testWorkspace()
	w.StartRecording(ModeVideo)

	if w.CancelRecording(ModeVoice) {
		t.Error("canceling voice must not stop a video recording")
	}
	if w.Snapshot().Recording.Mode != ModeVideo {
		t.Error("video recording should still be active")
	}
}

func TestWorkspace_VoiceRefusedDuringVideo(t *testing.T) {
	w := testWorkspace()
	timers, _ := w.StartRecording(ModeVideo)
	w.TickRecording(timers.Token)

	if _, ok := w.StartRecording(ModeVoice); ok {
		t.Fatal("voice start during video should be refused")
	}
	rec := w.Snapshot().Recording
	if rec.Mode != ModeVideo || rec.Elapsed != 1 {
		t.Errorf("recording = %+v, want video/1", rec)
	}
	if w.Snapshot().RecordTriggersEnabled() {
		t.Error("record triggers should be disabled while recording")
	}
}

func TestWorkspace_FinalizeAppendsMediaMessage(t *testing.T) {
	w := testWorkspace()
	timers, _ := w.StartRecording(ModeVoice)
	w.TickRecording(timers.Token)

	msg, ok := w.FinalizeRecording(timers.Token)
	if !ok {
		t.Fatal("FinalizeRecording refused")
	}
	if msg.ID != 1 || msg.Kind != KindVoice || msg.Duration != "0:00" || msg.Sender != SenderSelf {
		t.Errorf("finalized message = %+v", msg)
	}
	if w.Snapshot().Recording.Active() {
		t.Error("recording should be idle after finalize")
	}
}

func TestWorkspace_SwitchConversationTearsDownSessions(t *testing.T) {
	w := testWorkspace()
	w.SetText("unsent")
	w.TogglePicker(PickerSticker)
	timers, _ := w.StartRecording(ModeVoice)

	if !w.SelectConversation(2) {
		t.Fatal("SelectConversation(2) failed")
	}

	snap := w.Snapshot()
	if snap.Recording.Active() {
		t.Error("recording should be canceled on conversation switch")
	}
	if snap.Composer.Text != "" || snap.Composer.Picker != PickerNone {
		t.Errorf("composer should be discarded, got %+v", snap.Composer)
	}
	if _, ok := w.FinalizeRecording(timers.Token); ok {
		t.Error("orphaned timeout must not append to any conversation")
	}
	if w.Store().Len(1) != 0 || w.Store().Len(2) != 0 {
		t.Error("no message should be appended")
	}
}

func TestWorkspace_ReselectKeepsSessions(t *testing.T) {
	w := testWorkspace()
	w.SetText("keep me")
	w.StartRecording(ModeVoice)

	w.SelectConversation(1)

	snap := w.Snapshot()
	if snap.Composer.Text != "keep me" || !snap.Recording.Active() {
		t.Errorf("re-selecting the open conversation discarded state: %+v", snap)
	}
}

func TestWorkspace_LeavingChatsCancelsRecording(t *testing.T) {
	w := testWorkspace()
	w.StartRecording(ModeVideo)

	w.SetSection(SectionSettings)

	if w.Snapshot().Recording.Active() {
		t.Error("recording should be torn down when leaving the chats section")
	}
	if _, ok := w.StartRecording(ModeVoice); ok {
		t.Error("recording should not start outside the chats section")
	}
}

func TestWorkspace_PickGlyphFlow(t *testing.T) {
	w := testWorkspace()
	w.SetText("hey")
	w.TogglePicker(PickerEmoji)
	w.TogglePicker(PickerSticker)

	if w.Snapshot().Composer.Picker != PickerSticker {
		t.Fatal("sticker picker should be the only open picker")
	}
	w.PickGlyph(PickerSticker, "🦊")

	c := w.Snapshot().Composer
	if c.Text != "hey🦊" || c.Picker != PickerNone {
		t.Errorf("composer = %+v", c)
	}
}

func TestWorkspace_AddReactionUnknownDoesNotPublish(t *testing.T) {
	w := testWorkspace()
	w.SetText("x")
	w.SendText()
	published := 0
	w.Subscribe(func(Snapshot) { published++ })

	if _, ok := w.AddReaction(5, "🔥"); ok {
		t.Error("reaction on unknown id should be rejected")
	}
	if published != 0 {
		t.Error("rejected reaction should not publish")
	}
}

func TestWorkspace_SnapshotsAreImmutable(t *testing.T) {
	w := testWorkspace()
	w.SetText("x")
	w.SendText()
	w.AddReaction(1, "❤️")

	snap := w.Snapshot()
	snap.Messages[0].Reactions[0] = "💀"
	snap.Conversations[0].Name = "mutated"
	snap.Active.Name = "mutated"

	again := w.Snapshot()
	if again.Messages[0].Reactions[0] != "❤️" || again.Conversations[0].Name != "Alice" || again.Active.Name != "Alice" {
		t.Error("mutating a snapshot leaked into the workspace")
	}
}

func TestWorkspace_Unsubscribe(t *testing.T) {
	w := testWorkspace()
	calls := 0
	unsubscribe := w.Subscribe(func(Snapshot) { calls++ })

	w.SetText("a")
	unsubscribe()
	w.SetText("b")

	if calls != 1 {
		t.Errorf("subscriber called %d times, want 1", calls)
	}
}

func TestWorkspace_VersionAdvances(t *testing.T) {
	w := testWorkspace()
	v0 := w.Snapshot().Version

	w.SetText("a")
	w.SetText("a") // unchanged, no publish

	if got := w.Snapshot().Version; got != v0+1 {
		t.Errorf("Version = %d, want %d", got, v0+1)
	}
}

func TestSection_Names(t *testing.T) {
	if len(Sections) != 5 {
		t.Fatalf("Sections = %d, want 5", len(Sections))
	}
	if SectionNotifications.String() != "notifications" || SectionSettings.Title() != "Settings" {
		t.Error("unexpected section labels")
	}
}
