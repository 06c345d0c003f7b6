// Package email envía correo transaccional. SMTP vía go-mail en prod,
// Noop en dev/offline. Todos los envíos son best-effort: el caller loguea
// el error y sigue.
package email

import "context"

// Mailer es el puerto de correo saliente.
type Mailer interface {
	// SendWelcome envía el correo de bienvenida post-registro.
	SendWelcome(ctx context.Context, to, displayName string) error
}

// Noop descarta todo. Para modo offline y tests.
type Noop struct{}

func (Noop) SendWelcome(ctx context.Context, to, displayName string) error { return nil }

var _ Mailer = Noop{}
