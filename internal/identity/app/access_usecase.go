package app

import (
	"context"
	"errors"
	"time"

	"employee_console_service/internal/identity/domain"
	"employee_console_service/pkg/database"
	"employee_console_service/pkg/encrypt"
	"employee_console_service/pkg/logger"
	"employee_console_service/pkg/mailer"
	token "employee_console_service/pkg/token"

	"go.uber.org/zap"
)

// ErrInvalidCode 驗證碼錯誤、過期或已使用
var ErrInvalidCode = errors.New("invalid access code")

const (
	ownerCodePrefix    = "owner:code:"
	employeeCodePrefix = "employee:code:"
	sessionPrefix      = "session:"
)

// AccessUseCase 一次性驗證碼的簽發與驗證
// issue -> code / verify -> session token，驗證成功即作廢
type AccessUseCase interface {
	IssueOwnerCode(ctx context.Context, phoneNumber string) (string, error)
	VerifyOwnerCode(ctx context.Context, phoneNumber, code string) (string, error)
	IssueEmployeeCode(ctx context.Context, email string) (string, error)
	VerifyEmployeeCode(ctx context.Context, email, code string) (string, error)
}

type accessUseCase struct {
	codeRepo    database.RedisRepository[string]
	sessionRepo database.RedisRepository[domain.ConsoleSession]
	mail        mailer.Sender
	codeTTL     time.Duration
	sessionTTL  time.Duration
}

// NewAccessUseCase 建立一個新的 AccessUseCase
func NewAccessUseCase(
	codeRepo database.RedisRepository[string],
	sessionRepo database.RedisRepository[domain.ConsoleSession],
	mail mailer.Sender,
	codeTTL, sessionTTL time.Duration,
) AccessUseCase {
	return &accessUseCase{
		codeRepo:    codeRepo,
		sessionRepo: sessionRepo,
		mail:        mail,
		codeTTL:     codeTTL,
		sessionTTL:  sessionTTL,
	}
}

// IssueOwnerCode 簽發 owner 驗證碼 (以電話號碼為身份)
func (uc *accessUseCase) IssueOwnerCode(ctx context.Context, phoneNumber string) (string, error) {
	return uc.issue(ctx, ownerCodePrefix+phoneNumber)
}

// VerifyOwnerCode 驗證 owner 驗證碼，成功回傳 session token
func (uc *accessUseCase) VerifyOwnerCode(ctx context.Context, phoneNumber, code string) (string, error) {
	return uc.verify(ctx, ownerCodePrefix+phoneNumber, phoneNumber, string(token.RoleOwner), code)
}

// IssueEmployeeCode 簽發 employee 驗證碼並寄到信箱
func (uc *accessUseCase) IssueEmployeeCode(ctx context.Context, email string) (string, error) {
	code, err := uc.issue(ctx, employeeCodePrefix+email)
	if err != nil {
		return "", err
	}

	// 寄信失敗不中斷流程，驗證碼已經生效
	if err := uc.mail.SendAccessCode(email, code); err != nil {
		logger.Log.Errorf("send access code mail failed:", err, zap.String("email", email))
	}
	return code, nil
}

// VerifyEmployeeCode 驗證 employee 驗證碼，成功回傳 session token
func (uc *accessUseCase) VerifyEmployeeCode(ctx context.Context, email, code string) (string, error) {
	return uc.verify(ctx, employeeCodePrefix+email, email, string(token.RoleEmployee), code)
}

func (uc *accessUseCase) issue(ctx context.Context, key string) (string, error) {
	code, err := encrypt.GenerateAccessCode()
	if err != nil {
		return "", err
	}

	// 只存 hash，新碼覆蓋舊碼
	hashed, err := encrypt.HashAccessCode(code)
	if err != nil {
		return "", err
	}
	if err := uc.codeRepo.Set(ctx, key, hashed, uc.codeTTL); err != nil {
		return "", err
	}
	return code, nil
}

func (uc *accessUseCase) verify(ctx context.Context, key, identity, role, code string) (string, error) {
	if code == "" {
		return "", ErrInvalidCode
	}

	hashed, err := uc.codeRepo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, database.ErrKeyNotFound) {
			return "", ErrInvalidCode
		}
		return "", err
	}

	if err := encrypt.CheckAccessCode(hashed, code); err != nil {
		return "", ErrInvalidCode
	}

	// 一次性: 驗證通過立刻作廢
	if err := uc.codeRepo.Del(ctx, key); err != nil {
		logger.Log.Errorf("invalidate access code failed:", err)
	}

	t, err := token.GenerateJWTWrapper(identity, role)
	if err != nil {
		return "", err
	}

	now := time.Now()
	session := domain.ConsoleSession{
		Token:     t,
		Identity:  identity,
		Role:      role,
		CreatedAt: now,
		ExpiredAt: now.Add(uc.sessionTTL),
	}
	if err := uc.sessionRepo.Set(ctx, sessionPrefix+identity, session, uc.sessionTTL); err != nil {
		logger.Log.Errorf("store session failed:", err)
	}

	return t, nil
}
