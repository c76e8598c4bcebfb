package services

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/memory"
)

type ChatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// ChatService runs the conversational chain over per-session message history.
type ChatService struct {
	llm      llms.Model
	sessions *SessionManager
}

func NewChatService(llm llms.Model, sessions *SessionManager) *ChatService {
	return &ChatService{
		llm:      llm,
		sessions: sessions,
	}
}

// Send routes a message through the conversation chain backed by the session's
// history. The human message and the model's reply are appended to the log by
// the chain's memory, so history keeps the order the turns happened in.
func (s *ChatService) Send(ctx context.Context, sessionID, message string) (string, error) {
	hist := s.sessions.GetOrCreate(sessionID)

	conversation := chains.NewConversation(
		s.llm,
		memory.NewConversationBuffer(memory.WithChatHistory(hist)),
	)

	reply, err := chains.Run(ctx, conversation, message, chains.WithTemperature(0.3))
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	return reply, nil
}

// History returns the ordered message log for a session.
func (s *ChatService) History(ctx context.Context, sessionID string) ([]llms.ChatMessage, error) {
	return s.sessions.Messages(ctx, sessionID)
}

// Clear empties a session's history.
func (s *ChatService) Clear(ctx context.Context, sessionID string) error {
	return s.sessions.Clear(ctx, sessionID)
}
