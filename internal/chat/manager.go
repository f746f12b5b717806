package chat

import (
	"sync"

	"lumina/internal/llm"
)

// Manager hands out one lazily created session per chat. Sessions live
// for the process lifetime and are not persisted; a restart starts the
// conversation over.
type Manager struct {
	mu       sync.Mutex
	client   llm.StreamingClient
	sessions map[int64]*Session
}

func NewManager(client llm.StreamingClient) *Manager {
	return &Manager{
		client:   client,
		sessions: make(map[int64]*Session),
	}
}

// Session returns the chat's session, creating it on first use.
func (m *Manager) Session(chatID int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[chatID]
	if !ok {
		s = NewSession(m.client)
		m.sessions[chatID] = s
	}
	return s
}

// Reset drops the chat's session so the next message starts fresh.
func (m *Manager) Reset(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, chatID)
}
