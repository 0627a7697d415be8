package handlers

import (
	"context"
	"errors"

	identityapp "employee_console_service/internal/identity/app"
	"employee_console_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler 處理驗證碼簽發與驗證的 HTTP 請求
type AuthHandler struct {
	access identityapp.AccessUseCase
}

// NewAuthHandler 創建新的 AuthHandler
func NewAuthHandler(access identityapp.AccessUseCase) *AuthHandler {
	return &AuthHandler{access: access}
}

// CreateOwnerAccessCode 簽發 owner 驗證碼
// @Summary Issue owner access code
// @Description Issues a one-time access code for the owner phone number
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object true "phoneNumber"
// @Success 200 {object} map[string]string "accessCode"
// @Failure 400 {object} string "missing phoneNumber"
// @Router /owner/CreateNewAccessCode [post]
func (h *AuthHandler) CreateOwnerAccessCode(c *fiber.Ctx) error {
	type request struct {
		PhoneNumber string `json:"phoneNumber"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil || req.PhoneNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "phoneNumber is required"})
	}

	code, err := h.access.IssueOwnerCode(context.Background(), req.PhoneNumber)
	if err != nil {
		logger.Log.Errorf("issue owner code failed:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.JSON(fiber.Map{"accessCode": code})
}

// ValidateOwnerAccessCode 驗證 owner 驗證碼
// @Summary Validate owner access code
// @Description One-time validation, returns a session token on success
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object true "phoneNumber + accessCode"
// @Success 200 {object} map[string]interface{} "success + token"
// @Failure 401 {object} string "invalid code"
// @Router /owner/ValidateAccessCode [post]
func (h *AuthHandler) ValidateOwnerAccessCode(c *fiber.Ctx) error {
	type request struct {
		PhoneNumber string `json:"phoneNumber"`
		AccessCode  string `json:"accessCode"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil || req.PhoneNumber == "" || req.AccessCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "accessCode and phoneNumber are required"})
	}

	t, err := h.access.VerifyOwnerCode(context.Background(), req.PhoneNumber, req.AccessCode)
	if err != nil {
		if errors.Is(err, identityapp.ErrInvalidCode) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Invalid code"})
		}
		logger.Log.Errorf("verify owner code failed:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Internal server error"})
	}

	return c.JSON(fiber.Map{"success": true, "token": t})
}

// EmployeeLoginEmail 簽發 employee 驗證碼並寄到信箱
// @Summary Issue employee access code
// @Description Issues a one-time access code and mails it to the employee
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object true "email"
// @Success 200 {object} map[string]string "accessCode"
// @Failure 400 {object} string "missing email"
// @Router /employee/LoginEmail [post]
func (h *AuthHandler) EmployeeLoginEmail(c *fiber.Ctx) error {
	type request struct {
		Email string `json:"email"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email is required"})
	}

	code, err := h.access.IssueEmployeeCode(context.Background(), req.Email)
	if err != nil {
		logger.Log.Errorf("issue employee code failed:", err, zap.String("email", req.Email))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.JSON(fiber.Map{"accessCode": code})
}

// ValidateEmployeeAccessCode 驗證 employee 驗證碼
// @Summary Validate employee access code
// @Description One-time validation, returns a session token on success
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object true "email + accessCode"
// @Success 200 {object} map[string]interface{} "success + token"
// @Failure 401 {object} string "invalid code"
// @Router /employee/ValidateAccessCode [post]
func (h *AuthHandler) ValidateEmployeeAccessCode(c *fiber.Ctx) error {
	type request struct {
		Email      string `json:"email"`
		AccessCode string `json:"accessCode"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.AccessCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "accessCode and email are required"})
	}

	t, err := h.access.VerifyEmployeeCode(context.Background(), req.Email, req.AccessCode)
	if err != nil {
		if errors.Is(err, identityapp.ErrInvalidCode) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Invalid code"})
		}
		logger.Log.Errorf("verify employee code failed:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Internal server error"})
	}

	return c.JSON(fiber.Map{"success": true, "token": t})
}
