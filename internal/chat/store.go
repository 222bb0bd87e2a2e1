package chat

import (
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/zhubert/dialogo/internal/logger"
)

// TimeFormat is the HH:MM layout stamped on appended messages.
const TimeFormat = "15:04"

// Clock returns the current wall-clock time.
type Clock func() time.Time

// Store owns the message log of every conversation. Each conversation is an
// isolated partition ordered by ascending id.
type Store struct {
	mu    sync.RWMutex
	logs  map[int][]Message
	clock Clock
}

// NewStore creates an empty store. A nil clock uses time.Now.
func NewStore(clock Clock) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{
		logs:  make(map[int][]Message),
		clock: clock,
	}
}

// Seed replaces a conversation's log with msgs, ordered by id.
func (s *Store) Seed(conversationID int, msgs []Message) {
	log := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		log = append(log, m.clone())
	}
	slices.SortFunc(log, func(a, b Message) int { return a.ID - b.ID })

	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs[conversationID] = log
}

// Append assigns the next id (max existing id + 1, starting at 1), stamps the
// current time and appends the draft to the tail of the conversation's log.
// Invalid drafts are refused.
func (s *Store) Append(conversationID int, d Draft) (Message, bool) {
	log := logger.WithConversation(conversationID)
	if err := d.Validate(); err != nil {
		log.Debug("refusing draft", "error", err)
		return Message{}, false
	}
	sender := d.Sender
	if sender == "" {
		sender = SenderSelf
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.logs[conversationID]
	nextID := 1
	for _, m := range msgs {
		if m.ID >= nextID {
			nextID = m.ID + 1
		}
	}

	msg := Message{
		ID:       nextID,
		Text:     d.Text,
		Time:     s.clock().Format(TimeFormat),
		Sender:   sender,
		Kind:     d.Kind,
		Duration: d.Duration,
	}
	s.logs[conversationID] = append(msgs, msg)
	log.Debug("message appended", "id", msg.ID, "kind", msg.Kind)
	return msg.clone(), true
}

// AddReaction appends glyph to the tail of a message's reactions. An unknown
// message id or an empty glyph leaves the store untouched.
func (s *Store) AddReaction(conversationID, messageID int, glyph string) (Message, bool) {
	if glyph == "" {
		return Message{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.logs[conversationID]
	for i := range msgs {
		if msgs[i].ID != messageID {
			continue
		}
		msgs[i].Reactions = append(msgs[i].Reactions, glyph)
		return msgs[i].clone(), true
	}
	logger.WithConversation(conversationID).Debug("reaction on unknown message", "messageID", messageID)
	return Message{}, false
}

// List returns a copy of the conversation's log in ascending id order.
func (s *Store) List(conversationID int) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := s.logs[conversationID]
	out := make([]Message, len(msgs))
	for i, m := range msgs {
		out[i] = m.clone()
	}
	return out
}

// All returns a lazy, restartable sequence over the conversation's log. Each
// iteration observes the log as it is when the iteration starts.
func (s *Store) All(conversationID int) iter.Seq[Message] {
	return func(yield func(Message) bool) {
		for _, m := range s.List(conversationID) {
			if !yield(m) {
				return
			}
		}
	}
}

// Get returns the message with the given id.
func (s *Store) Get(conversationID, messageID int) (Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.logs[conversationID] {
		if m.ID == messageID {
			return m.clone(), true
		}
	}
	return Message{}, false
}

// Len returns the number of messages in the conversation.
func (s *Store) Len(conversationID int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.logs[conversationID])
}
