package app

import (
	"sync"

	"employee_console_service/internal/chat/domain"
)

// ConversationRegistry 對話 id -> 目前連線中的觀看者集合
// 只存活於進程內，重啟即重建；持久化永遠不依賴這裡
type ConversationRegistry struct {
	mu      sync.RWMutex
	viewers map[string]map[domain.Viewer]domain.ViewerRole
	joined  map[domain.Viewer]string
}

// NewConversationRegistry create a ConversationRegistry
func NewConversationRegistry() *ConversationRegistry {
	return &ConversationRegistry{
		viewers: make(map[string]map[domain.Viewer]domain.ViewerRole),
		joined:  make(map[domain.Viewer]string),
	}
}

// Join 註冊觀看者到對話，重複 join 同一對話為冪等
// 一條連線同時只屬於一個對話，換對話等同 leave 再 join
func (r *ConversationRegistry) Join(v domain.Viewer, conversationID string, role domain.ViewerRole) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cur, ok := r.joined[v]; ok {
		if cur == conversationID {
			r.viewers[cur][v] = role
			return
		}
		r.removeLocked(v, cur)
	}

	set, ok := r.viewers[conversationID]
	if !ok {
		set = make(map[domain.Viewer]domain.ViewerRole)
		r.viewers[conversationID] = set
	}
	set[v] = role
	r.joined[v] = conversationID
}

// Leave 移除觀看者的註冊，未註冊時為 no-op
func (r *ConversationRegistry) Leave(v domain.Viewer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.joined[v]
	if !ok {
		return
	}
	r.removeLocked(v, cur)
}

func (r *ConversationRegistry) removeLocked(v domain.Viewer, conversationID string) {
	if set, ok := r.viewers[conversationID]; ok {
		delete(set, v)
		if len(set) == 0 {
			delete(r.viewers, conversationID)
		}
	}
	delete(r.joined, v)
}

// ViewersOf 回傳目前註冊在該對話的觀看者快照
func (r *ConversationRegistry) ViewersOf(conversationID string) []domain.Viewer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.viewers[conversationID]
	out := make([]domain.Viewer, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	return out
}
