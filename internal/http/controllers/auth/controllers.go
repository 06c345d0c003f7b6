// Package auth contiene los controllers de autenticación.
package auth

import svc "github.com/ngoiyaeric/dash/internal/http/services/auth"

// Controllers agrupa los controllers del dominio auth.
type Controllers struct {
	Login    *LoginController
	Register *RegisterController
	Logout   *LogoutController
	Session  *SessionController
}

// NewControllers crea el agregador de controllers auth.
func NewControllers(s svc.Service) *Controllers {
	return &Controllers{
		Login:    NewLoginController(s),
		Register: NewRegisterController(s),
		Logout:   NewLogoutController(s),
		Session:  NewSessionController(s),
	}
}
