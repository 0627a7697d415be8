package app

import (
	"context"
	"sync"

	"employee_console_service/internal/chat/domain"

	"github.com/stretchr/testify/mock"
)

// MockTranscriptRepository Mock TranscriptRepository
type MockTranscriptRepository struct {
	mock.Mock
}

// Append moke append message
func (m *MockTranscriptRepository) Append(ctx context.Context, conversationID string, sender domain.ViewerRole, text string) (*domain.ChatMessage, error) {
	args := m.Called(ctx, conversationID, sender, text)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ChatMessage), args.Error(1)
	}
	return nil, args.Error(1)
}

// Read moke read transcript
func (m *MockTranscriptRepository) Read(ctx context.Context, conversationID string) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.ChatMessage), args.Error(1)
	}
	return nil, args.Error(1)
}

// fakeViewer 收集 hub 推送的事件
type fakeViewer struct {
	mu       sync.Mutex
	received []domain.WSResponse
}

func (v *fakeViewer) Push(resp domain.WSResponse) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.received = append(v.received, resp)
}

func (v *fakeViewer) pushed() []domain.WSResponse {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]domain.WSResponse, len(v.received))
	copy(out, v.received)
	return out
}
