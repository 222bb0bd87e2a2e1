package chat

// Seed is the in-memory data a workspace starts with.
type Seed struct {
	Conversations []Conversation
	Messages      map[int][]Message
	Contacts      []Contact
	Notifications []Notification
	Profile       Profile
	// Selected is the conversation opened at startup; 0 opens none.
	Selected int
}

// DefaultSeed returns the built-in demo data set.
func DefaultSeed() Seed {
	return Seed{
		Conversations: []Conversation{
			{ID: 1, Name: "Alice Petrova", Preview: "Hi! How are you?", LastActivity: "14:32", Unread: 3, Online: true},
			{ID: 2, Name: "Design Team", Preview: "Sent the mockups", LastActivity: "13:15"},
			{ID: 3, Name: "Max Ivanov", Preview: "Call at 15:00?", LastActivity: "12:48", Unread: 1, Online: true},
			{ID: 4, Name: "Mom", Preview: "Don't forget to buy bread", LastActivity: "Yesterday"},
		},
		Messages: map[int][]Message{
			1: {
				{ID: 1, Text: "Hi! How are you?", Time: "14:30", Sender: SenderPeer, Kind: KindText},
				{ID: 2, Text: "Great! Working on a new project", Time: "14:31", Sender: SenderSelf, Kind: KindText},
				{ID: 3, Time: "14:32", Sender: SenderPeer, Kind: KindVoice, Duration: "0:15", Reactions: []string{"👍", "😊"}},
				{ID: 4, Text: "Oh, interesting! Tell me more?", Time: "14:32", Sender: SenderPeer, Kind: KindText},
				{ID: 5, Time: "14:33", Sender: SenderSelf, Kind: KindVideo, Duration: "0:08"},
				{ID: 6, Text: "Sure! It's a messenger with cool features", Time: "14:33", Sender: SenderSelf, Kind: KindText, Reactions: []string{"🔥"}},
			},
			2: {
				{ID: 1, Text: "Sent the mockups", Time: "13:15", Sender: SenderPeer, Kind: KindText},
			},
			3: {
				{ID: 1, Text: "Call at 15:00?", Time: "12:48", Sender: SenderPeer, Kind: KindText},
			},
			4: {
				{ID: 1, Text: "Don't forget to buy bread", Time: "19:02", Sender: SenderPeer, Kind: KindText},
			},
		},
		Contacts: []Contact{
			{ID: 1, Name: "Alice Petrova", Status: "Online", Online: true},
			{ID: 2, Name: "Max Ivanov", Status: "Online", Online: true},
			{ID: 3, Name: "Design Team", Status: "5 members"},
			{ID: 4, Name: "Mom", Status: "Last seen 2 hours ago"},
		},
		Notifications: []Notification{
			{Text: "Alice Petrova sent you a message", When: "2 min ago"},
			{Text: "Max Ivanov added you to contacts", When: "1 hour ago"},
			{Text: "Mom reacted to your message", When: "3 hours ago"},
		},
		Profile: Profile{
			Name:   "Me",
			Handle: "@me",
			Bio:    "Hi! I'm using Dialogo to chat 💬",
		},
		Selected: 1,
	}
}
