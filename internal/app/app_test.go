package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/dialogo/internal/chat"
	"github.com/zhubert/dialogo/internal/keys"
	"github.com/zhubert/dialogo/internal/ui"
)

func TestNew_SavedThemeInitialization(t *testing.T) {
	cfg := testConfig(t)
	cfg.SetTheme(string(ui.ThemeNord))

	testModel(t, cfg)

	if got := ui.CurrentTheme().Name; got != "Nord" {
		t.Errorf("expected theme Nord, got %s", got)
	}
}

func TestNew_InitialState(t *testing.T) {
	m := testModel(t, testConfig(t))

	if m.Focus() != FocusSidebar {
		t.Errorf("expected sidebar focus, got %v", m.Focus())
	}
	snap := m.Snapshot()
	if snap.Active == nil || snap.Active.ID != 1 {
		t.Fatalf("expected conversation 1 open, got %+v", snap.Active)
	}
	if snap.Section != chat.SectionChats {
		t.Errorf("expected chats section, got %v", snap.Section)
	}
}

func TestView_RendersLayout(t *testing.T) {
	m := testModel(t, testConfig(t))

	view := ansi.Strip(m.RenderToString())
	for _, want := range []string{"dialogo", "Alice Petrova", "Design Team", "Voice message", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}

	v := m.View()
	if !v.AltScreen {
		t.Error("expected alt screen")
	}
}

func TestView_Loading(t *testing.T) {
	t.Cleanup(func() { ui.SetTheme(ui.DefaultTheme) })
	m := New(testConfig(t), "test")
	defer m.Close()

	if got := m.RenderToString(); got != "Loading..." {
		t.Errorf("RenderToString() before size = %q", got)
	}
}

func TestFocus_TabToggle(t *testing.T) {
	m := testModel(t, testConfig(t))

	m = sendKey(m, keys.Tab)
	if m.Focus() != FocusChat {
		t.Fatalf("expected chat focus after tab, got %v", m.Focus())
	}
	m = sendKey(m, keys.Tab)
	if m.Focus() != FocusSidebar {
		t.Errorf("expected sidebar focus after second tab, got %v", m.Focus())
	}
}

func TestFocus_TabNeedsConversation(t *testing.T) {
	m := testModel(t, testConfig(t))

	m = sendKey(m, "2") // contacts
	m = sendKey(m, keys.Tab)
	if m.Focus() != FocusSidebar {
		t.Error("tab should not focus chat outside the chats section")
	}
}

func TestSidebar_OpenConversation(t *testing.T) {
	m := testModel(t, testConfig(t))

	m = sendKey(m, "j")
	m = sendKey(m, "j")
	m = sendKey(m, keys.Enter)

	snap := m.Snapshot()
	if snap.Active == nil || snap.Active.ID != 3 {
		t.Fatalf("expected conversation 3 open, got %+v", snap.Active)
	}
	if snap.Active.Unread != 0 {
		t.Errorf("expected unread cleared, got %d", snap.Active.Unread)
	}
	if m.Focus() != FocusChat {
		t.Error("opening a conversation should focus chat")
	}
}

func TestSections_NumberKeys(t *testing.T) {
	tests := []struct {
		key   string
		want  chat.Section
		title string
	}{
		{"2", chat.SectionContacts, "Contacts"},
		{"3", chat.SectionNotifications, "Notifications"},
		{"4", chat.SectionProfile, "Profile"},
		{"5", chat.SectionSettings, "Settings"},
		{"1", chat.SectionChats, "Alice Petrova"},
	}

	m := testModel(t, testConfig(t))
	for _, tt := range tests {
		m = sendKey(m, tt.key)
		if got := m.Snapshot().Section; got != tt.want {
			t.Errorf("key %s: section = %v, want %v", tt.key, got, tt.want)
		}
		if view := ansi.Strip(m.RenderToString()); !strings.Contains(view, tt.title) {
			t.Errorf("key %s: expected %q in view", tt.key, tt.title)
		}
	}
}

func TestComposer_TypeAndSend(t *testing.T) {
	m := testModel(t, testConfig(t))
	m = sendKey(m, keys.Tab)
	before := len(m.Snapshot().Messages)

	m = typeText(m, "hello q?")
	if got := m.Snapshot().Composer.Text; got != "hello q?" {
		t.Fatalf("composer text = %q, want %q", got, "hello q?")
	}

	m = sendKey(m, keys.Enter)
	snap := m.Snapshot()
	if len(snap.Messages) != before+1 {
		t.Fatalf("expected %d messages, got %d", before+1, len(snap.Messages))
	}
	msg := lastMessage(t, m)
	if msg.Text != "hello q?" || msg.Sender != chat.SenderSelf || msg.Time != "09:41" {
		t.Errorf("unexpected message %+v", msg)
	}
	if snap.Composer.Text != "" {
		t.Errorf("composer should be cleared, got %q", snap.Composer.Text)
	}
	if m.chat.InputValue() != "" {
		t.Errorf("input should be cleared, got %q", m.chat.InputValue())
	}
}

func TestComposer_BlankSendIsNoOp(t *testing.T) {
	m := testModel(t, testConfig(t))
	m = sendKey(m, keys.Tab)
	before := m.Snapshot()

	m = typeText(m, "   ")
	m = sendKey(m, keys.Enter)

	if got := len(m.Snapshot().Messages); got != len(before.Messages) {
		t.Errorf("blank send appended a message")
	}
	if got := m.Snapshot().Composer.Text; got != "   " {
		t.Errorf("blank send should keep the buffer, got %q", got)
	}
}

func TestComposer_BackspaceRemovesGrapheme(t *testing.T) {
	m := testModel(t, testConfig(t))
	m = sendKey(m, keys.Tab)

	m.Workspace().SetText("hi👍")
	m = sendKey(m, keys.Backspace)

	if got := m.Snapshot().Composer.Text; got != "hi" {
		t.Errorf("composer = %q, want %q", got, "hi")
	}
	if got := m.chat.InputValue(); got != "hi" {
		t.Errorf("input = %q, want %q", got, "hi")
	}
}

func TestPicker_EmojiFlow(t *testing.T) {
	m := testModel(t, testConfig(t))
	m = sendKey(m, keys.Tab)
	m = typeText(m, "hey")

	m = sendKey(m, keys.CtrlE)
	if m.Snapshot().Composer.Picker != chat.PickerEmoji {
		t.Fatal("expected emoji picker open")
	}
	m = sendKey(m, keys.Right)
	m = sendKey(m, keys.Enter)

	snap := m.Snapshot()
	if snap.Composer.Text != "hey❤️" {
		t.Errorf("composer = %q, want %q", snap.Composer.Text, "hey❤️")
	}
	if snap.Composer.Picker != chat.PickerNone {
		t.Error("picking a glyph should close the picker")
	}
}

func TestPicker_MutualExclusionAndEscape(t *testing.T) {
	m := testModel(t, testConfig(t))
	m = sendKey(m, keys.Tab)

	m = sendKey(m, keys.CtrlE)
	m = sendKey(m, keys.CtrlS)
	if got := m.Snapshot().Composer.Picker; got != chat.PickerSticker {
		t.Fatalf("picker = %v, want sticker", got)
	}
	m = sendKey(m, keys.Left) // wraps to the last sticker
	m = sendKey(m, keys.Enter)
	if got := m.Snapshot().Composer.Text; got != "🦊" {
		t.Errorf("composer = %q, want 🦊", got)
	}

	m = sendKey(m, keys.CtrlS)
	m = sendKey(m, keys.Escape)
	if got := m.Snapshot().Composer.Picker; got != chat.PickerNone {
		t.Errorf("esc should close the picker, got %v", got)
	}
	if m.Focus() != FocusChat {
		t.Error("closing the picker should keep chat focus")
	}
}

func TestReactions_QuickReactOnSelectedMessage(t *testing.T) {
	m := testModel(t, testConfig(t))
	m = sendKey(m, keys.Tab)

	// alt+1 without a selection does nothing
	m = sendKey(m, keys.Alt1)
	if got := lastMessage(t, m).Reactions; len(got) != 1 {
		t.Fatalf("unexpected reactions %v", got)
	}

	m = sendKey(m, keys.CtrlUp)
	m = sendKey(m, keys.Alt2)
	m = sendKey(m, keys.Alt2)

	got := lastMessage(t, m).Reactions
	want := []string{"🔥", "👍", "👍"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("reactions = %v, want %v", got, want)
	}
	if view := ansi.Strip(m.RenderToString()); !strings.Contains(view, "👍 2") {
		t.Error("expected grouped reaction chip in view")
	}
}

func TestEscape_UnwindsLayers(t *testing.T) {
	m := testModel(t, testConfig(t))
	m = sendKey(m, keys.Tab)
	m = sendKey(m, keys.CtrlUp)

	m = sendKey(m, keys.Escape)
	if _, ok := m.chat.SelectedMessage(); ok {
		t.Fatal("first esc should clear the selection")
	}
	if m.Focus() != FocusChat {
		t.Fatal("first esc should keep chat focus")
	}
	m = sendKey(m, keys.Escape)
	if m.Focus() != FocusSidebar {
		t.Error("second esc should return to the sidebar")
	}
}

func TestCopy_SelectedMessage(t *testing.T) {
	m := testModel(t, testConfig(t))
	m = sendKey(m, keys.Tab)

	m = sendKey(m, keys.CtrlY)
	if got := m.Snapshot().Composer.Text; got != "" {
		t.Errorf("ctrl+y without a selection changed the composer: %q", got)
	}
	m = sendKey(m, keys.CtrlUp)
	if cmd := sendKeyCmd(m, keys.CtrlY); cmd == nil {
		t.Error("ctrl+y with a selection should return a copy command")
	}
}

func TestMessageCopyText(t *testing.T) {
	tests := []struct {
		msg  chat.Message
		want string
	}{
		{chat.Message{Kind: chat.KindText, Text: "hi"}, "hi"},
		{chat.Message{Kind: chat.KindVoice, Duration: "0:15"}, "Voice message (0:15)"},
		{chat.Message{Kind: chat.KindVideo, Duration: "0:08"}, "Video message (0:08)"},
	}
	for _, tt := range tests {
		if got := messageCopyText(tt.msg); got != tt.want {
			t.Errorf("messageCopyText(%v) = %q, want %q", tt.msg.Kind, got, tt.want)
		}
	}
}

func TestResultMessages_Flash(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
		want string
	}{
		{"clipboard ok", ClipboardResultMsg{}, "Copied to clipboard"},
		{"clipboard failed", ClipboardResultMsg{Err: errTest}, "Could not copy to clipboard"},
		{"notify failed", NotificationResultMsg{Err: errTest}, "Desktop notification failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel(t, testConfig(t))
			send(m, tt.msg)
			if got := m.FlashText(); got != tt.want {
				t.Errorf("flash = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSidebarSearch_OpensFilteredConversation(t *testing.T) {
	m := testModel(t, testConfig(t))

	m = sendKey(m, "/")
	if !m.sidebar.IsSearchMode() {
		t.Fatal("/ should start searching")
	}

	// Shortcut letters are typed into the query
	m = sendKey(m, "q")
	if got := m.sidebar.SearchQuery(); got != "q" {
		t.Fatalf("q while searching should be typed, query = %q", got)
	}
	m = sendKey(m, keys.Backspace)
	for _, r := range "max" {
		m = sendKey(m, string(r))
	}
	if got := m.sidebar.SearchQuery(); got != "max" {
		t.Fatalf("query = %q, want max", got)
	}
	if view := ansi.Strip(m.RenderToString()); !strings.Contains(view, "keep filter") {
		t.Error("footer should show search bindings")
	}

	m = sendKey(m, keys.Enter)
	if m.sidebar.IsSearchMode() {
		t.Error("enter should stop typing")
	}
	if m.Focus() != FocusSidebar {
		t.Error("first enter should keep sidebar focus")
	}

	m = sendKey(m, keys.Enter)
	snap := m.Snapshot()
	if snap.Active == nil || snap.Active.ID != 3 {
		t.Fatalf("Active = %v, want Max Ivanov", snap.Active)
	}
	if m.Focus() != FocusChat {
		t.Error("opening a conversation should focus the chat")
	}
}

func TestSidebarSearch_FiltersContacts(t *testing.T) {
	m := testModel(t, testConfig(t))
	m = sendKey(m, "2")
	m = sendKey(m, "/")
	m = sendKey(m, "m")
	m = sendKey(m, "o")

	if view := ansi.Strip(m.RenderToString()); !strings.Contains(view, `matching "mo"`) {
		t.Errorf("contacts panel should show the filter\n%s", view)
	}

	m = sendKey(m, keys.Escape)
	if view := ansi.Strip(m.RenderToString()); strings.Contains(view, "matching") {
		t.Error("esc should clear the contacts filter")
	}
	if m.Snapshot().Section != chat.SectionContacts {
		t.Error("searching should not change the section")
	}
}

func TestCtrlC_Quits(t *testing.T) {
	m := testModel(t, testConfig(t))
	cmd := sendKeyCmd(m, keys.CtrlC)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestQ_QuitsOnlyFromSidebar(t *testing.T) {
	m := testModel(t, testConfig(t))
	m = sendKey(m, keys.Tab)

	m = sendKey(m, "q")
	if got := m.Snapshot().Composer.Text; got != "q" {
		t.Errorf("q in chat should be typed, composer = %q", got)
	}

	m = sendKey(m, keys.Tab)
	if cmd := sendKeyCmd(m, "q"); cmd == nil {
		t.Error("q in sidebar should quit")
	}
}
