package repository

import (
	"context"
	"time"

	"employee_console_service/internal/chat/domain"
	"employee_console_service/pkg/database"
	errprocess "employee_console_service/pkg/err"

	"github.com/google/uuid"
)

// chats section: conversation id -> append-only message sequence
const chatSection = "chats"

// TranscriptRepository definition per-conversation durable message log
type TranscriptRepository interface {
	// Append 驗證輸入、分配 id 與 timestamp、追加到該對話的序列
	// text 為空或缺 conversation id 回 ErrValidation，寫入失敗回 ErrStorage
	Append(ctx context.Context, conversationID string, sender domain.ViewerRole, text string) (*domain.ChatMessage, error)
	// Read 回傳完整 transcript (寫入順序)，未知對話回空序列不是 error
	Read(ctx context.Context, conversationID string) ([]domain.ChatMessage, error)
}

type docTranscriptRepository struct {
	store *database.DocStore
}

// NewDocTranscriptRepository create a TranscriptRepository backed by the flat file document store
func NewDocTranscriptRepository(store *database.DocStore) TranscriptRepository {
	return &docTranscriptRepository{store: store}
}

func (r *docTranscriptRepository) Append(ctx context.Context, conversationID string, sender domain.ViewerRole, text string) (*domain.ChatMessage, error) {
	if conversationID == "" {
		return nil, errprocess.Validation("conversation id is required")
	}
	if text == "" {
		return nil, errprocess.Validation("text is required")
	}
	if !sender.Valid() {
		return nil, errprocess.Validation("sender role must be owner or employee")
	}

	msg := domain.ChatMessage{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		SenderRole:     sender,
		Text:           text,
		Timestamp:      time.Now().UnixMilli(),
	}

	err := database.UpdateSection(r.store, chatSection, func(chats map[string][]domain.ChatMessage) (map[string][]domain.ChatMessage, error) {
		if chats == nil {
			chats = make(map[string][]domain.ChatMessage)
		}
		seq := chats[conversationID]
		// 同一對話內 timestamp 單調不減，平手以寫入順序為準
		if n := len(seq); n > 0 && msg.Timestamp < seq[n-1].Timestamp {
			msg.Timestamp = seq[n-1].Timestamp
		}
		chats[conversationID] = append(seq, msg)
		return chats, nil
	})
	if err != nil {
		return nil, errprocess.Storage(err)
	}

	return &msg, nil
}

func (r *docTranscriptRepository) Read(ctx context.Context, conversationID string) ([]domain.ChatMessage, error) {
	if conversationID == "" {
		return nil, errprocess.Validation("conversation id is required")
	}

	chats, err := database.ViewSection[map[string][]domain.ChatMessage](r.store, chatSection)
	if err != nil {
		return nil, errprocess.Storage(err)
	}
	return chats[conversationID], nil
}
