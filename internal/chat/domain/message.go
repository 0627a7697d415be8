package domain

// ViewerRole 對話雙方固定角色 (owner / employee)，不是自由字串
type ViewerRole string

const (
	// RoleOwner console owner (admin) viewer
	RoleOwner ViewerRole = "owner"
	// RoleEmployee employee viewer
	RoleEmployee ViewerRole = "employee"
)

// Valid check role is one of the two parties
func (r ViewerRole) Valid() bool {
	return r == RoleOwner || r == RoleEmployee
}

// ChatMessage 表示一則已持久化的聊天訊息
// 寫入後不再變動，id 全 store 唯一
type ChatMessage struct {
	ID             string     `json:"id"`
	ConversationID string     `json:"conversation_id"`
	SenderRole     ViewerRole `json:"sender_role"`
	Text           string     `json:"text"`
	Timestamp      int64      `json:"timestamp"` // unix milli，同一對話內單調不減
}
