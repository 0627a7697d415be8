package encrypt

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = bcrypt.DefaultCost

// ErrCodeMismatch access code 不匹配
var ErrCodeMismatch = errors.New("access code does not match")

// GenerateAccessCode 產生 6 位數一次性驗證碼
func GenerateAccessCode() (string, error) {
	// 100000 ~ 999999
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate access code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// HashAccessCode 將驗證碼進行加密後存儲
func HashAccessCode(code string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash access code: %w", err)
	}
	return string(hashed), nil
}

// CheckAccessCode 驗證驗證碼是否匹配
func CheckAccessCode(hashedCode, code string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedCode), []byte(code)); err != nil {
		return ErrCodeMismatch
	}
	return nil
}
