package app

import (
	"encoding/json"
	"sync"

	"employee_console_service/internal/chat/domain"
	"employee_console_service/pkg/logger"

	"github.com/gofiber/websocket/v2"
)

// wsConn session 需要的最小連線面，測試時可替換
type wsConn interface {
	WriteMessage(messageType int, data []byte) error
}

// ViewerSession 一條 websocket 連線的狀態
// Connected (未 join) -> Joined (綁定一個對話與角色) -> Disconnected (終態)
type ViewerSession struct {
	conn wsConn

	mu             sync.Mutex
	closed         bool
	conversationID string
	role           domain.ViewerRole
}

// NewViewerSession create a ViewerSession with the role taken from the connection token
func NewViewerSession(conn wsConn, role domain.ViewerRole) *ViewerSession {
	return &ViewerSession{conn: conn, role: role}
}

// Bind 綁定對話與角色 (join 事件)，再次 join 會重新綁定
func (s *ViewerSession) Bind(conversationID string, role domain.ViewerRole) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversationID = conversationID
	s.role = role
}

// Binding 回傳目前綁定的對話與角色，未 join 時對話為空字串
func (s *ViewerSession) Binding() (string, domain.ViewerRole) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversationID, s.role
}

// Close 標記連線終止，之後的 Push 都是 no-op
func (s *ViewerSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Push 將 hub 廣播的事件寫回客戶端
// 斷線後緩衝中的推送直接丟棄，客戶端重連後自行重撈 history
func (s *ViewerSession) Push(resp domain.WSResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	b, _ := json.Marshal(resp)
	if err := s.conn.WriteMessage(websocket.TextMessage, b); err != nil {
		logger.Log.Errorf("write message error:", err)
	}
}
