package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

func TestSessionManager_GetOrCreate(t *testing.T) {
	m := NewSessionManager()

	first := m.GetOrCreate("alpha")
	require.NotNil(t, first)
	assert.Equal(t, 1, m.Count())

	// Same id returns the same history, not a fresh one.
	second := m.GetOrCreate("alpha")
	assert.Same(t, first, second)
	assert.Equal(t, 1, m.Count())

	m.GetOrCreate("beta")
	assert.Equal(t, 2, m.Count())
}

func TestSessionManager_MessagesKeepOrder(t *testing.T) {
	ctx := context.Background()
	m := NewSessionManager()

	hist := m.GetOrCreate("alpha")
	require.NoError(t, hist.AddUserMessage(ctx, "how many projects are late?"))
	require.NoError(t, hist.AddAIMessage(ctx, "12 projects are past their planned end date."))
	require.NoError(t, hist.AddUserMessage(ctx, "which ones?"))

	messages, err := m.Messages(ctx, "alpha")
	require.NoError(t, err)
	require.Len(t, messages, 3)

	assert.Equal(t, llms.ChatMessageTypeHuman, messages[0].GetType())
	assert.Equal(t, "how many projects are late?", messages[0].GetContent())
	assert.Equal(t, llms.ChatMessageTypeAI, messages[1].GetType())
	assert.Equal(t, llms.ChatMessageTypeHuman, messages[2].GetType())
}

func TestSessionManager_UnknownSession(t *testing.T) {
	ctx := context.Background()
	m := NewSessionManager()

	_, err := m.Messages(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	err = m.Clear(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionManager_ClearKeepsSessionRegistered(t *testing.T) {
	ctx := context.Background()
	m := NewSessionManager()

	hist := m.GetOrCreate("alpha")
	require.NoError(t, hist.AddUserMessage(ctx, "hello"))
	require.NoError(t, m.Clear(ctx, "alpha"))

	// Cleared, not forgotten: history reads back empty instead of missing.
	messages, err := m.Messages(ctx, "alpha")
	require.NoError(t, err)
	assert.Empty(t, messages)
	assert.Equal(t, 1, m.Count())
}
