package chat

import (
	"slices"
	"sync"
)

// Conversation is a catalog entry in the registry.
type Conversation struct {
	ID           int
	Name         string
	Avatar       string // image reference; empty renders initials
	Preview      string // last-message preview
	LastActivity string
	Unread       int
	Online       bool
}

// Registry is the ordered catalog of conversations.
type Registry struct {
	mu            sync.RWMutex
	conversations []Conversation
}

// NewRegistry creates a registry holding convs in the given order.
func NewRegistry(convs []Conversation) *Registry {
	return &Registry{conversations: slices.Clone(convs)}
}

// List returns the conversations in catalog order.
func (r *Registry) List() []Conversation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.conversations)
}

// Select looks up a conversation by id. A miss is a valid empty selection.
func (r *Registry) Select(id int) (Conversation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.conversations {
		if c.ID == id {
			return c, true
		}
	}
	return Conversation{}, false
}

// MarkRead clears the unread counter of a conversation.
func (r *Registry) MarkRead(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.conversations {
		if r.conversations[i].ID == id {
			changed := r.conversations[i].Unread != 0
			r.conversations[i].Unread = 0
			return changed
		}
	}
	return false
}

// Contact is an address-book entry shown in the contacts panel.
type Contact struct {
	ID     int
	Name   string
	Status string
	Online bool
}

// Notification is an entry in the notifications panel.
type Notification struct {
	Text string
	When string
}

// Profile describes the local user.
type Profile struct {
	Name   string
	Handle string
	Bio    string
}
