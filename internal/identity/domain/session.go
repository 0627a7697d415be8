package domain

import "time"

// ConsoleSession 驗證碼通過後建立的會話
type ConsoleSession struct {
	Token     string    `json:"Token"`
	Identity  string    `json:"Identity"` // owner: phone number / employee: email
	Role      string    `json:"Role"`
	CreatedAt time.Time `json:"CreatedAt"`
	ExpiredAt time.Time `json:"ExpiredAt"`
}

// IsExpired check session expiration
func (s ConsoleSession) IsExpired() bool {
	return time.Now().After(s.ExpiredAt)
}
