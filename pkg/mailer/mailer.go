package mailer

import (
	"fmt"

	"employee_console_service/pkg/config"
	"employee_console_service/pkg/logger"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Sender 寄出一次性驗證碼
type Sender interface {
	SendAccessCode(to, code string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

type logMailer struct{}

// New create a Sender
// SMTP 未設定時退回 logMailer，驗證碼只寫到日誌 (本地開發用)
func New(cfg config.SMTPConfig) Sender {
	if cfg.Host == "" || cfg.User == "" {
		logger.Log.Warn("SMTP not configured, access codes will only be logged")
		return &logMailer{}
	}

	from := cfg.From
	if from == "" {
		from = cfg.User
	}

	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   from,
	}
}

// SendAccessCode 寄出驗證碼 email
func (m *smtpMailer) SendAccessCode(to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your access code")
	msg.SetBody("text/plain", fmt.Sprintf("Your access code is: %s", code))
	msg.AddAlternative("text/html", fmt.Sprintf("<p>Your access code is: <b>%s</b></p>", code))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send access code mail: %w", err)
	}
	return nil
}

func (m *logMailer) SendAccessCode(to, code string) error {
	logger.Log.Info("access code issued", zap.String("to", to), zap.String("code", code))
	return nil
}
