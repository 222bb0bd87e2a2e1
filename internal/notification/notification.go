// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	perrors "github.com/zhubert/dialogo/internal/errors"
	"github.com/zhubert/dialogo/internal/logger"
)

// AppName is the title of every notification.
const AppName = "Dialogo"

var notifier = beeep.Notify

// SetNotifier replaces the notification backend. Used by tests and the demo
// runner so no real notification is shown.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores the beeep backend.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
func Send(title, message string) error {
	log := logger.ComponentLogger("Notification")
	log.Debug("sending notification", "title", title, "message", message)
	// Empty icon, beeep picks the platform default
	if err := notifier(title, message, ""); err != nil {
		log.Warn("failed to send notification", "error", err)
		return perrors.NotifyFailed(title, err)
	}
	return nil
}

// RecordingSent announces that a voice or video recording was delivered to
// a conversation.
func RecordingSent(conversation, kind, duration string) error {
	return Send(AppName, kind+" message ("+duration+") sent to "+conversation)
}
