package app

import (
	"context"
	"errors"
	"testing"

	"employee_console_service/internal/chat/domain"
	"employee_console_service/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.SetNewNop()
	m.Run()
}

// 測試 Submit: 持久化後廣播給所有觀看者 (含發送者)
func TestBroadcastHub_Submit(t *testing.T) {
	ctx := context.Background()
	conversationID := uuid.New().String()

	registry := NewConversationRegistry()
	owner := &fakeViewer{}
	employee := &fakeViewer{}
	registry.Join(owner, conversationID, domain.RoleOwner)
	registry.Join(employee, conversationID, domain.RoleEmployee)

	mockRepo := new(MockTranscriptRepository)
	persisted := &domain.ChatMessage{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		SenderRole:     domain.RoleOwner,
		Text:           "Hello",
		Timestamp:      1000,
	}
	mockRepo.On("Append", ctx, conversationID, domain.RoleOwner, "Hello").Return(persisted, nil)

	hub := NewBroadcastHub(registry, mockRepo)
	err := hub.Submit(ctx, conversationID, domain.RoleOwner, "Hello")

	assert.NoError(t, err)

	// 發送者本人也收到同一事件
	for _, v := range []*fakeViewer{owner, employee} {
		pushed := v.pushed()
		assert.Len(t, pushed, 1)
		assert.Equal(t, string(domain.SendMessage), pushed[0].Action)
		assert.Equal(t, "Hello", pushed[0].Payload["text"])
		assert.Equal(t, "owner", pushed[0].Payload["sender_role"])
		assert.Equal(t, persisted.ID, pushed[0].Payload["id"])
	}

	mockRepo.AssertExpectations(t)
}

// 測試空訊息靜默丟棄，不觸碰 store
func TestBroadcastHub_Submit_EmptyText(t *testing.T) {
	registry := NewConversationRegistry()
	v := &fakeViewer{}
	registry.Join(v, "emp-1", domain.RoleOwner)

	mockRepo := new(MockTranscriptRepository)
	hub := NewBroadcastHub(registry, mockRepo)

	err := hub.Submit(context.Background(), "emp-1", domain.RoleOwner, "")

	assert.NoError(t, err)
	assert.Empty(t, v.pushed())
	mockRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// 測試持久化失敗時不廣播 (durability before visibility)
func TestBroadcastHub_Submit_StorageError(t *testing.T) {
	ctx := context.Background()
	registry := NewConversationRegistry()
	v := &fakeViewer{}
	registry.Join(v, "emp-1", domain.RoleOwner)

	mockRepo := new(MockTranscriptRepository)
	mockRepo.On("Append", ctx, "emp-1", domain.RoleOwner, "Hello").Return(nil, errors.New("disk gone"))

	hub := NewBroadcastHub(registry, mockRepo)
	err := hub.Submit(ctx, "emp-1", domain.RoleOwner, "Hello")

	assert.Error(t, err)
	assert.Empty(t, v.pushed())
	mockRepo.AssertExpectations(t)
}

// 測試 registry 為空時訊息仍被持久化
func TestBroadcastHub_Submit_NoViewers(t *testing.T) {
	ctx := context.Background()
	registry := NewConversationRegistry()

	mockRepo := new(MockTranscriptRepository)
	persisted := &domain.ChatMessage{ID: uuid.New().String(), ConversationID: "emp-1", SenderRole: domain.RoleEmployee, Text: "anyone?"}
	mockRepo.On("Append", ctx, "emp-1", domain.RoleEmployee, "anyone?").Return(persisted, nil)

	hub := NewBroadcastHub(registry, mockRepo)
	err := hub.Submit(ctx, "emp-1", domain.RoleEmployee, "anyone?")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// 測試同一對話的廣播順序與持久化順序一致
func TestBroadcastHub_Submit_Ordering(t *testing.T) {
	ctx := context.Background()
	conversationID := "emp-1"

	registry := NewConversationRegistry()
	owner := &fakeViewer{}
	employee := &fakeViewer{}
	registry.Join(owner, conversationID, domain.RoleOwner)
	registry.Join(employee, conversationID, domain.RoleEmployee)

	mockRepo := new(MockTranscriptRepository)
	m1 := &domain.ChatMessage{ID: "m1", ConversationID: conversationID, SenderRole: domain.RoleOwner, Text: "first", Timestamp: 1}
	m2 := &domain.ChatMessage{ID: "m2", ConversationID: conversationID, SenderRole: domain.RoleOwner, Text: "second", Timestamp: 2}
	mockRepo.On("Append", ctx, conversationID, domain.RoleOwner, "first").Return(m1, nil)
	mockRepo.On("Append", ctx, conversationID, domain.RoleOwner, "second").Return(m2, nil)

	hub := NewBroadcastHub(registry, mockRepo)
	assert.NoError(t, hub.Submit(ctx, conversationID, domain.RoleOwner, "first"))
	assert.NoError(t, hub.Submit(ctx, conversationID, domain.RoleOwner, "second"))

	// 兩個觀看者收到相同的相對順序
	for _, v := range []*fakeViewer{owner, employee} {
		pushed := v.pushed()
		assert.Len(t, pushed, 2)
		assert.Equal(t, "m1", pushed[0].Payload["id"])
		assert.Equal(t, "m2", pushed[1].Payload["id"])
	}
}

// 測試斷線的觀看者不再收到廣播，其餘觀看者不受影響
func TestBroadcastHub_Submit_AfterDisconnect(t *testing.T) {
	ctx := context.Background()
	conversationID := "emp-1"

	registry := NewConversationRegistry()
	owner := &fakeViewer{}
	employee := &fakeViewer{}
	registry.Join(owner, conversationID, domain.RoleOwner)
	registry.Join(employee, conversationID, domain.RoleEmployee)

	// employee 斷線
	registry.Leave(employee)

	mockRepo := new(MockTranscriptRepository)
	persisted := &domain.ChatMessage{ID: "m1", ConversationID: conversationID, SenderRole: domain.RoleOwner, Text: "Still there?"}
	mockRepo.On("Append", ctx, conversationID, domain.RoleOwner, "Still there?").Return(persisted, nil)

	hub := NewBroadcastHub(registry, mockRepo)
	assert.NoError(t, hub.Submit(ctx, conversationID, domain.RoleOwner, "Still there?"))

	assert.Len(t, owner.pushed(), 1)
	assert.Empty(t, employee.pushed())
	mockRepo.AssertExpectations(t)
}
