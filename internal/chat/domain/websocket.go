package domain

// Action websocket request action
type Action string

const (
	// JoinConversation websocket action join
	JoinConversation Action = "join"
	// SendMessage websocket action message
	SendMessage Action = "message"
)

// WSRequest websocket Request
type WSRequest struct {
	Action         string `json:"action"`
	ConversationID string `json:"conversation_id"`
	ViewerRole     string `json:"viewer_role"`
	Text           string `json:"text"`
}

// WSResponse websocket Response
type WSResponse struct {
	Action  string                 `json:"action"`
	Success bool                   `json:"success"`
	Payload map[string]interface{} `json:"payload,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// Viewer 已註冊的即時觀看者，hub 廣播時呼叫 Push
// 斷線後的 Push 必須是 no-op，不能阻塞 hub
type Viewer interface {
	Push(resp WSResponse)
}
