package app

import (
	"context"
	"encoding/json"
	"time"

	"employee_console_service/internal/chat/domain"
	"employee_console_service/pkg/logger"
	"employee_console_service/pkg/middlewares"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

// ChatWebsocketHandler 可包含所有需要的 UseCase
type ChatWebsocketHandler struct {
	registry *ConversationRegistry
	hub      *BroadcastHub
}

// NewChatWebsocketHandler create ChatWebsocketHandler
func NewChatWebsocketHandler(registry *ConversationRegistry, hub *BroadcastHub) *ChatWebsocketHandler {
	return &ChatWebsocketHandler{
		registry: registry,
		hub:      hub,
	}
}

// HandleConnection 是 WebSocket 連線的進入點
func (h *ChatWebsocketHandler) HandleConnection(ctx context.Context, conn *websocket.Conn) {
	identity, _ := conn.Locals(middlewares.TokenIdentity).(string)
	tokenRole, _ := conn.Locals(middlewares.TokenRole).(string)
	logger.Log.Info("websocket connected", zap.String("identity", identity), zap.String("role", tokenRole))

	sess := NewViewerSession(conn, domain.ViewerRole(tokenRole))

	ticker := time.NewTicker(10 * time.Minute)
	ctxClose, cancel := context.WithCancel(context.Background())

	defer func() {
		ticker.Stop()
		cancel()
		// 斷線自動離開對話；in-flight 的廣播對本連線變成 no-op
		h.registry.Leave(sess)
		sess.Close()
		logger.Log.Info("websocket close", zap.String("identity", identity))
		conn.Close()
	}()

	// client 發出 close，fiber 在 read msg 回傳 err，故需要 SetCloseHandler 另外接出
	conn.SetCloseHandler(func(code int, text string) error {
		logger.Log.Infof("WebSocket closed:", conn.RemoteAddr())
		return nil
	})

	conn.SetPongHandler(func(appData string) error {
		return nil
	})

	// 定期發送 Ping
	go func() {
		for {
			select {
			case <-ticker.C:
				if err := conn.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
					logger.Log.Errorf("Ping error:", err)
					return
				}
			case <-ctxClose.Done():
				return
			}
		}
	}()

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived,
			) {
				logger.Log.Infof("Connection closed:", err)
			} else {
				logger.Log.Errorf("websocket read error:", err)
			}
			return
		}
		h.execWebsocketAction(ctx, sess, mt, message)
	}
}

func (h *ChatWebsocketHandler) execWebsocketAction(ctx context.Context, sess *ViewerSession, mt int, msg []byte) {
	switch mt {
	case websocket.TextMessage:
		h.textMessageAction(ctx, sess, msg)
	default:
		h.sendError(sess, "unknown message type")
	}
}

func (h *ChatWebsocketHandler) textMessageAction(ctx context.Context, sess *ViewerSession, msg []byte) {
	var req domain.WSRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		logger.Log.Errorf("json unmarshal error:", err)
		return
	}

	switch req.Action {
	// 加入對話，之後的訊息與廣播都以這個對話為準
	case string(domain.JoinConversation):
		if req.ConversationID == "" {
			return
		}
		role := domain.ViewerRole(req.ViewerRole)
		if !role.Valid() {
			// join 沒帶角色時退回 token 的角色
			_, role = sess.Binding()
		}
		sess.Bind(req.ConversationID, role)
		h.registry.Join(sess, req.ConversationID, role)

	// 傳送訊息: hub 先持久化再廣播給對話內所有觀看者
	case string(domain.SendMessage):
		conversationID, role := sess.Binding()
		if conversationID == "" {
			logger.Log.Warn("message before join, dropped")
			return
		}
		// fire-and-forget: 失敗已在 hub 記錄，不回 ack
		_ = h.hub.Submit(ctx, conversationID, role, req.Text)

	default:
		h.sendError(sess, "unknown action")
	}
}

func (h *ChatWebsocketHandler) sendError(sess *ViewerSession, errorMsg string) {
	sess.Push(domain.WSResponse{
		Action:  "error",
		Success: false,
		Error:   errorMsg,
	})
}
