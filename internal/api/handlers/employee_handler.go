package handlers

import (
	"context"
	"errors"

	employeeapp "employee_console_service/internal/employee/app"
	errprocess "employee_console_service/pkg/err"
	"employee_console_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// EmployeeHandler 處理員工目錄 CRUD 的 HTTP 請求
type EmployeeHandler struct {
	directory employeeapp.DirectoryUseCase
}

// NewEmployeeHandler 創建新的 EmployeeHandler
func NewEmployeeHandler(directory employeeapp.DirectoryUseCase) *EmployeeHandler {
	return &EmployeeHandler{directory: directory}
}

// CreateEmployee 建立員工
// @Summary Create employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param request body object true "employee fields"
// @Success 200 {object} map[string]interface{} "success + employeeId"
// @Failure 400 {object} string "validation error"
// @Router /owner/CreateEmployee [post]
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	type request struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
		Role    string `json:"role"`
		Status  string `json:"status"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request"})
	}

	id, err := h.directory.Create(context.Background(), employeeapp.CreateEmployeeInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Role:    req.Role,
		Status:  req.Status,
	})
	if err != nil {
		return h.errToResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "employeeId": id})
}

// GetEmployee 查詢單一員工
// @Summary Get employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param request body object true "employeeId"
// @Success 200 {object} domain.Employee
// @Failure 404 {object} string "employee not found"
// @Router /owner/GetEmployee [post]
func (h *EmployeeHandler) GetEmployee(c *fiber.Ctx) error {
	type request struct {
		EmployeeID string `json:"employeeId"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil || req.EmployeeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "employeeId is required"})
	}

	emp, err := h.directory.Get(context.Background(), req.EmployeeID)
	if err != nil {
		return h.errToResponse(c, err)
	}

	return c.JSON(emp)
}

// ListEmployees 列出全部員工
// @Summary List employees
// @Tags Employees
// @Produce json
// @Success 200 {array} domain.Employee
// @Router /owner/ListEmployees [get]
func (h *EmployeeHandler) ListEmployees(c *fiber.Ctx) error {
	list, err := h.directory.List(context.Background())
	if err != nil {
		return h.errToResponse(c, err)
	}
	return c.JSON(list)
}

// UpdateEmployee 部分更新員工資料
// @Summary Update employee
// @Description Partial update, absent fields keep their old values
// @Tags Employees
// @Accept json
// @Produce json
// @Param request body object true "employeeId + fields"
// @Success 200 {object} map[string]bool "success"
// @Failure 404 {object} string "employee not found"
// @Router /owner/UpdateEmployee [post]
func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	type request struct {
		EmployeeID string  `json:"employeeId"`
		Name       *string `json:"name"`
		Email      *string `json:"email"`
		Phone      *string `json:"phone"`
		Address    *string `json:"address"`
		Role       *string `json:"role"`
		Status     *string `json:"status"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil || req.EmployeeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "employeeId is required"})
	}

	err := h.directory.Update(context.Background(), req.EmployeeID, employeeapp.UpdateEmployeeInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Role:    req.Role,
		Status:  req.Status,
	})
	if err != nil {
		return h.errToResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

// DeleteEmployee 刪除員工 (對話 transcript 保留)
// @Summary Delete employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param request body object true "employeeId"
// @Success 200 {object} map[string]bool "success"
// @Failure 404 {object} string "employee not found"
// @Router /owner/DeleteEmployee [post]
func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	type request struct {
		EmployeeID string `json:"employeeId"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil || req.EmployeeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "employeeId is required"})
	}

	if err := h.directory.Delete(context.Background(), req.EmployeeID); err != nil {
		return h.errToResponse(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *EmployeeHandler) errToResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errprocess.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	case errors.Is(err, errprocess.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Employee not found"})
	default:
		logger.Log.Errorf("employee directory error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Internal server error"})
	}
}
