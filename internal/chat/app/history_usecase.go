package app

import (
	"context"

	"employee_console_service/internal/chat/domain"
	"employee_console_service/internal/chat/repository"
	errprocess "employee_console_service/pkg/err"
)

// HistoryUseCase 一次性撈取整段 transcript (live channel 之外的查詢)
type HistoryUseCase struct {
	transcripts repository.TranscriptRepository
}

// NewHistoryUseCase create HistoryUseCase
func NewHistoryUseCase(transcripts repository.TranscriptRepository) *HistoryUseCase {
	return &HistoryUseCase{transcripts: transcripts}
}

// Execute get full transcript in creation order
// 沒有訊息的對話回空陣列，不是 error
func (uc *HistoryUseCase) Execute(ctx context.Context, conversationID string) ([]domain.ChatMessage, error) {
	if conversationID == "" {
		return nil, errprocess.Validation("conversation id is required")
	}

	msgs, err := uc.transcripts.Read(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	return msgs, nil
}
