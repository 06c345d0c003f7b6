// Package profile contiene los controllers de perfil.
package profile

import svc "github.com/ngoiyaeric/dash/internal/http/services/profile"

// Controllers agrupa los controllers del dominio profile.
type Controllers struct {
	Update   *UpdateController
	Avatar   *AvatarController
	Accounts *AccountsController
}

// NewControllers crea el agregador de controllers de perfil.
func NewControllers(s svc.Service) *Controllers {
	return &Controllers{
		Update:   NewUpdateController(s),
		Avatar:   NewAvatarController(s),
		Accounts: NewAccountsController(s),
	}
}
