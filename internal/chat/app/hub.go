package app

import (
	"context"
	"sync"

	"employee_console_service/internal/chat/domain"
	"employee_console_service/internal/chat/repository"
	"employee_console_service/pkg/logger"

	"go.uber.org/zap"
)

// BroadcastHub 接收觀看者送進來的訊息，先持久化再廣播
// 同一對話的 Submit 彼此串行，保證所有觀看者看到同樣的順序
type BroadcastHub struct {
	registry    *ConversationRegistry
	transcripts repository.TranscriptRepository

	mu    sync.Mutex
	convs map[string]*sync.Mutex
}

// NewBroadcastHub create a BroadcastHub
func NewBroadcastHub(registry *ConversationRegistry, transcripts repository.TranscriptRepository) *BroadcastHub {
	return &BroadcastHub{
		registry:    registry,
		transcripts: transcripts,
		convs:       make(map[string]*sync.Mutex),
	}
}

// convLock 取得 per-conversation 鎖，不同對話的 Submit 可平行
func (h *BroadcastHub) convLock(conversationID string) *sync.Mutex {
	h.mu.Lock()
	defer h.mu.Unlock()

	lock, ok := h.convs[conversationID]
	if !ok {
		lock = new(sync.Mutex)
		h.convs[conversationID] = lock
	}
	return lock
}

// Submit 驗證 -> 持久化 -> 廣播給該對話所有觀看者 (含發送者)
// 驗證失敗靜默丟棄；持久化失敗只記日誌，未持久化的訊息絕不廣播
func (h *BroadcastHub) Submit(ctx context.Context, conversationID string, sender domain.ViewerRole, text string) error {
	if conversationID == "" || text == "" {
		logger.Log.Warn("drop chat message",
			zap.String("conversation_id", conversationID),
			zap.String("reason", "empty text or conversation id"),
		)
		return nil
	}

	lock := h.convLock(conversationID)
	lock.Lock()
	defer lock.Unlock()

	msg, err := h.transcripts.Append(ctx, conversationID, sender, text)
	if err != nil {
		logger.Log.Errorf("persist chat message failed:", err, zap.String("conversation_id", conversationID))
		return err
	}

	resp := domain.WSResponse{
		Action:  string(domain.SendMessage),
		Success: true,
		Payload: map[string]interface{}{
			"conversation_id": msg.ConversationID,
			"id":              msg.ID,
			"sender_role":     string(msg.SenderRole),
			"text":            msg.Text,
			"timestamp":       msg.Timestamp,
		},
	}

	// registry 為空也沒關係，訊息已持久化
	for _, v := range h.registry.ViewersOf(conversationID) {
		v.Push(resp)
	}
	return nil
}
