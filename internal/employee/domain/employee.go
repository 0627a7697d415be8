package domain

import (
	"strings"
	"time"

	"employee_console_service/pkg"
	errprocess "employee_console_service/pkg/err"
)

// EmployeeStatus 任職狀態
type EmployeeStatus string

const (
	// StatusActive 在職
	StatusActive EmployeeStatus = "active"
	// StatusDeactive 停用
	StatusDeactive EmployeeStatus = "deactive"
)

// Employee 員工資料
type Employee struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone,omitempty"`
	Address   string         `json:"address,omitempty"`
	Role      string         `json:"role"`
	Status    EmployeeStatus `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
}

// EmployeeUpdate 部分更新，nil 欄位保留舊值
type EmployeeUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Role    *string
	Status  *EmployeeStatus
}

// NormalizeStatus lowercase 後驗證是否為合法狀態
func NormalizeStatus(s string) (EmployeeStatus, error) {
	normalized := strings.ToLower(s)
	if !pkg.Contains([]string{string(StatusActive), string(StatusDeactive)}, normalized) {
		return "", errprocess.Validation("status must be 'active' or 'deactive'")
	}
	return EmployeeStatus(normalized), nil
}
