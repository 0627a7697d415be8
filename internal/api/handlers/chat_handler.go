package handlers

import (
	"context"
	"errors"

	chatapp "employee_console_service/internal/chat/app"
	errprocess "employee_console_service/pkg/err"
	"employee_console_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler 處理 live channel 之外的一次性 transcript 查詢
type ChatHandler struct {
	history *chatapp.HistoryUseCase
}

// NewChatHandler 創建新的 ChatHandler
func NewChatHandler(history *chatapp.HistoryUseCase) *ChatHandler {
	return &ChatHandler{history: history}
}

// ChatHistory 取得整段對話 transcript
// @Summary Get chat history
// @Description Returns the full ordered transcript for one employee conversation
// @Tags Chat
// @Produce json
// @Param employeeId query string true "Employee id (conversation id)"
// @Success 200 {array} domain.ChatMessage
// @Failure 400 {object} string "missing employeeId"
// @Router /owner/ChatHistory [get]
func (h *ChatHandler) ChatHistory(c *fiber.Ctx) error {
	employeeID := c.Query("employeeId")

	msgs, err := h.history.Execute(context.Background(), employeeID)
	if err != nil {
		if errors.Is(err, errprocess.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "employeeId is required"})
		}
		logger.Log.Errorf("read chat history failed:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.JSON(msgs)
}
