package email

import (
	"context"
	"fmt"

	gomail "github.com/go-mail/mail"
)

// SMTPConfig configura el mailer SMTP.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// SMTP envía correo real vía go-mail.
type SMTP struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTP(cfg SMTPConfig) *SMTP {
	return &SMTP{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
	}
}

func (s *SMTP) SendWelcome(ctx context.Context, to, displayName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Welcome to QueueCX")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour QueueCX account is ready.\n", displayName))
	return s.dialer.DialAndSend(m)
}

var _ Mailer = (*SMTP)(nil)
