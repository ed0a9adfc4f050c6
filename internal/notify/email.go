// Package notify отправка email-уведомлений клиентам салона
package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Logger интерфейс логгера для отправителей писем
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// EmailSender интерфейс отправки писем
// Реализации взаимозаменяемы (SendGrid, заглушка для dev-окружения)
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailMessage письмо для отправки
type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

// SendGridConfig настройки SendGrid
type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// SendGridSender отправляет письма через SendGrid API
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	logger    Logger
}

// NewSendGridSender создает отправителя через SendGrid
// Возвращает nil при пустом API ключе - вызывающий код должен
// подставить заглушку
func NewSendGridSender(cfg SendGridConfig, logger Logger) *SendGridSender {
	if cfg.APIKey == "" {
		return nil
	}
	if cfg.FromName == "" {
		cfg.FromName = "Nail Artist"
	}
	return &SendGridSender{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		logger:    logger,
	}
}

// Send отправляет письмо через SendGrid
func (s *SendGridSender) Send(ctx context.Context, msg EmailMessage) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Body, msg.Body)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		s.logger.Error("sendgrid send failed: to=%s, err=%v", msg.To, err)
		return fmt.Errorf("notify: sendgrid send failed: %w", err)
	}

	if response.StatusCode >= 400 {
		s.logger.Error("sendgrid returned error status: to=%s, status=%d", msg.To, response.StatusCode)
		return fmt.Errorf("notify: sendgrid returned status %d", response.StatusCode)
	}

	s.logger.Info("email sent: to=%s, subject=%q", msg.To, msg.Subject)
	return nil
}

// StubEmailSender заглушка: пишет письмо в лог вместо отправки
// Используется в dev-окружении и когда SendGrid не настроен
type StubEmailSender struct {
	logger Logger
}

// NewStubEmailSender создает заглушку отправителя
func NewStubEmailSender(logger Logger) *StubEmailSender {
	return &StubEmailSender{logger: logger}
}

// Send логирует письмо без реальной отправки
func (s *StubEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	s.logger.Info("stub email sender: would send email: to=%s, subject=%q", msg.To, msg.Subject)
	return nil
}
