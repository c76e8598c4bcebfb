package services

import (
	"context"
	"errors"
	"sync"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/memory"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionManager owns the mapping from caller-supplied session ids to chat
// histories. Sessions live in process memory only; a restart loses them all.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*memory.ChatMessageHistory
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*memory.ChatMessageHistory),
	}
}

// GetOrCreate returns the history for a session, creating it on first use.
func (m *SessionManager) GetOrCreate(sessionID string) *memory.ChatMessageHistory {
	m.mu.Lock()
	defer m.mu.Unlock()

	hist, ok := m.sessions[sessionID]
	if !ok {
		hist = memory.NewChatMessageHistory()
		m.sessions[sessionID] = hist
	}
	return hist
}

// Messages returns the ordered message log for a session.
func (m *SessionManager) Messages(ctx context.Context, sessionID string) ([]llms.ChatMessage, error) {
	m.mu.RLock()
	hist, ok := m.sessions[sessionID]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	return hist.Messages(ctx)
}

// Clear empties a session's history. The session itself stays registered, so
// a subsequent history request sees an empty log rather than a missing one.
func (m *SessionManager) Clear(ctx context.Context, sessionID string) error {
	m.mu.RLock()
	hist, ok := m.sessions[sessionID]
	m.mu.RUnlock()

	if !ok {
		return ErrSessionNotFound
	}
	return hist.Clear(ctx)
}

// Count returns the number of known sessions.
func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
