package app

import (
	"context"
	"errors"
	"testing"

	"employee_console_service/internal/chat/domain"
	errprocess "employee_console_service/pkg/err"

	"github.com/stretchr/testify/assert"
)

// 測試空對話 id 直接拒絕
func TestHistoryUseCase_EmptyConversationID(t *testing.T) {
	mockRepo := new(MockTranscriptRepository)
	uc := NewHistoryUseCase(mockRepo)

	_, err := uc.Execute(context.Background(), "")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errprocess.ErrValidation))
	mockRepo.AssertNotCalled(t, "Read")
}

// 測試未知對話回空陣列
func TestHistoryUseCase_UnknownConversation(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTranscriptRepository)
	mockRepo.On("Read", ctx, "nobody").Return(nil, nil)

	uc := NewHistoryUseCase(mockRepo)
	msgs, err := uc.Execute(ctx, "nobody")

	assert.NoError(t, err)
	assert.NotNil(t, msgs)
	assert.Empty(t, msgs)
}

// 測試照持久化順序回傳
func TestHistoryUseCase_ReturnsTranscript(t *testing.T) {
	ctx := context.Background()
	want := []domain.ChatMessage{
		{ID: "m1", ConversationID: "emp-1", SenderRole: domain.RoleOwner, Text: "hi", Timestamp: 1},
		{ID: "m2", ConversationID: "emp-1", SenderRole: domain.RoleEmployee, Text: "hello", Timestamp: 2},
	}
	mockRepo := new(MockTranscriptRepository)
	mockRepo.On("Read", ctx, "emp-1").Return(want, nil)

	uc := NewHistoryUseCase(mockRepo)
	msgs, err := uc.Execute(ctx, "emp-1")

	assert.NoError(t, err)
	assert.Equal(t, want, msgs)
}
