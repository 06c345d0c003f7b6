// Package store agrupa las implementaciones del row store detrás de un
// DataAccess único que el wiring reparte a los services.
package store

import "github.com/ngoiyaeric/dash/internal/domain/repository"

// DataAccess expone los repositorios del row store.
type DataAccess interface {
	Profiles() repository.ProfileRepository
	ConnectedAccounts() repository.ConnectedAccountRepository
	Identities() repository.IdentityRepository
	Settings() repository.SettingsRepository

	// Close libera conexiones. Idempotente.
	Close() error
}
