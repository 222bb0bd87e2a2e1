package app

// RecordingTickMsg advances the recording identified by Token by one second
type RecordingTickMsg struct {
	Token string
}

// RecordingTimeoutMsg ends the capture window of the recording identified by Token
type RecordingTimeoutMsg struct {
	Token string
}

// ClipboardResultMsg reports the outcome of copying a message
type ClipboardResultMsg struct {
	Err error
}

// NotificationResultMsg reports the outcome of a desktop notification
type NotificationResultMsg struct {
	Err error
}
