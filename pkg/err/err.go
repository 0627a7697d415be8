package errprocess

import (
	"errors"
	"fmt"

	"employee_console_service/pkg/logger"
)

// 錯誤分類，caller 用 errors.Is 判斷
var (
	// ErrValidation 輸入驗證失敗 (空訊息、缺少對話 id 等)
	ErrValidation = errors.New("validation error")
	// ErrStorage 持久化寫入失敗
	ErrStorage = errors.New("storage error")
	// ErrNotFound 查無資料
	ErrNotFound = errors.New("not found")
)

// Set set err info
func Set(errMsg string) error {
	logger.Log.Error(errMsg)
	return errors.New(errMsg)
}

// Validation wrap ErrValidation with detail
func Validation(detail string) error {
	return fmt.Errorf("%w: %s", ErrValidation, detail)
}

// Storage wrap ErrStorage with cause
func Storage(cause error) error {
	return fmt.Errorf("%w: %v", ErrStorage, cause)
}

// NotFound wrap ErrNotFound with detail
func NotFound(detail string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, detail)
}
