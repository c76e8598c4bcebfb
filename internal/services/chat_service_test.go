package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel answers every completion with a canned reply. It counts calls so
// tests can assert how often the chain reached the model.
type fakeModel struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (m *fakeModel) reply() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return fmt.Sprintf("reply %d", m.calls)
}

func (m *fakeModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.reply()}},
	}, nil
}

func (m *fakeModel) Call(ctx context.Context, _ string, options ...llms.CallOption) (string, error) {
	resp, err := m.GenerateContent(ctx, nil, options...)
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Content, nil
}

func TestChatService_SendRecordsHistory(t *testing.T) {
	ctx := context.Background()
	svc := NewChatService(&fakeModel{}, NewSessionManager())

	reply, err := svc.Send(ctx, "alpha", "how many companies are there?")
	require.NoError(t, err)
	assert.Equal(t, "reply 1", reply)

	reply, err = svc.Send(ctx, "alpha", "and how many clients?")
	require.NoError(t, err)
	assert.Equal(t, "reply 2", reply)

	messages, err := svc.History(ctx, "alpha")
	require.NoError(t, err)
	require.Len(t, messages, 4)

	assert.Equal(t, llms.ChatMessageTypeHuman, messages[0].GetType())
	assert.Equal(t, "how many companies are there?", messages[0].GetContent())
	assert.Equal(t, llms.ChatMessageTypeAI, messages[1].GetType())
	assert.Equal(t, "reply 1", messages[1].GetContent())
	assert.Equal(t, llms.ChatMessageTypeHuman, messages[2].GetType())
	assert.Equal(t, "and how many clients?", messages[2].GetContent())
	assert.Equal(t, llms.ChatMessageTypeAI, messages[3].GetType())
	assert.Equal(t, "reply 2", messages[3].GetContent())
}

func TestChatService_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc := NewChatService(&fakeModel{}, NewSessionManager())

	_, err := svc.Send(ctx, "alpha", "hello from alpha")
	require.NoError(t, err)
	_, err = svc.Send(ctx, "beta", "hello from beta")
	require.NoError(t, err)

	alpha, err := svc.History(ctx, "alpha")
	require.NoError(t, err)
	require.Len(t, alpha, 2)
	assert.Equal(t, "hello from alpha", alpha[0].GetContent())

	beta, err := svc.History(ctx, "beta")
	require.NoError(t, err)
	require.Len(t, beta, 2)
	assert.Equal(t, "hello from beta", beta[0].GetContent())
}

func TestChatService_SendFailure(t *testing.T) {
	ctx := context.Background()
	svc := NewChatService(&fakeModel{err: errors.New("upstream unavailable")}, NewSessionManager())

	_, err := svc.Send(ctx, "alpha", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat completion failed")
}

func TestChatService_ClearThenHistoryIsEmpty(t *testing.T) {
	ctx := context.Background()
	svc := NewChatService(&fakeModel{}, NewSessionManager())

	_, err := svc.Send(ctx, "alpha", "hello")
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "alpha"))

	messages, err := svc.History(ctx, "alpha")
	require.NoError(t, err)
	assert.Empty(t, messages)
}
