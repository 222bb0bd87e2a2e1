package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/dialogo/internal/chat"
	"github.com/zhubert/dialogo/internal/notification"
)

// recordingTick schedules the next elapsed-second tick for token
func recordingTick(token string, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return RecordingTickMsg{Token: token}
	})
}

// recordingTimeout schedules the end of the capture window for token
func recordingTimeout(token string, window time.Duration) tea.Cmd {
	return tea.Tick(window, func(time.Time) tea.Msg {
		return RecordingTimeoutMsg{Token: token}
	})
}

// startRecording arms a recording and its two timers. Both carry the
// session token, so they go inert once the session ends.
func (m *Model) startRecording(mode chat.RecordingMode) tea.Cmd {
	timers, ok := m.workspace.StartRecording(mode)
	if !ok {
		m.log.Debug("record trigger ignored", "mode", mode)
		return nil
	}
	return tea.Batch(
		recordingTick(timers.Token, timers.Tick),
		recordingTimeout(timers.Token, timers.Window),
	)
}

func (m *Model) handleRecordingTick(msg RecordingTickMsg) tea.Cmd {
	if !m.workspace.TickRecording(msg.Token) {
		return nil
	}
	return recordingTick(msg.Token, chat.TickInterval)
}

func (m *Model) handleRecordingTimeout(msg RecordingTimeoutMsg) tea.Cmd {
	var convName string
	if m.snap.Active != nil {
		convName = m.snap.Active.Name
	}

	sent, ok := m.workspace.FinalizeRecording(msg.Token)
	if !ok {
		return nil
	}

	label := modeLabel(chat.ModeVoice)
	if sent.Kind == chat.KindVideo {
		label = modeLabel(chat.ModeVideo)
	}
	cmds := []tea.Cmd{m.ShowFlashSuccess(label + " message sent (" + sent.Duration + ")")}
	if m.config.GetNotificationsEnabled() {
		cmds = append(cmds, notifyRecordingSent(convName, string(sent.Kind), sent.Duration))
	}
	return tea.Batch(cmds...)
}

func notifyRecordingSent(conversation, kind, duration string) tea.Cmd {
	return func() tea.Msg {
		return NotificationResultMsg{Err: notification.RecordingSent(conversation, kind, duration)}
	}
}

// cancelRecording stops whichever recording is running
func (m *Model) cancelRecording() tea.Cmd {
	mode := m.snap.Recording.Mode
	if !m.workspace.CancelRecording(chat.ModeInactive) {
		return nil
	}
	return m.ShowFlashInfo(modeLabel(mode) + " recording canceled")
}

func modeLabel(mode chat.RecordingMode) string {
	if mode == chat.ModeVideo {
		return "Video"
	}
	return "Voice"
}
