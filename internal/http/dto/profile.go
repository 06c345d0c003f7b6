// Package dto define los tipos de request/response del API.
package dto

import "time"

// UpdateProfileRequest es el body de POST /v1/profile.
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
}

// MessageResponse es el resultado tagueado de éxito de una acción.
type MessageResponse struct {
	Message string `json:"message"`
}

// AvatarResponse retorna la URL del avatar recién subido.
type AvatarResponse struct {
	Message   string `json:"message"`
	AvatarURL string `json:"avatar_url"`
}

// ConnectedAccount es una vinculación con un proveedor externo.
type ConnectedAccount struct {
	ID        string    `json:"id"`
	Provider  string    `json:"provider"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ConnectedAccountsResponse lista las cuentas conectadas. Error viene
// poblado junto a la lista vacía cuando la acción falla (resultado
// tagueado, la lista nunca es null).
type ConnectedAccountsResponse struct {
	Accounts []ConnectedAccount `json:"accounts"`
	Error    string             `json:"error,omitempty"`
}

// Profile es la representación pública del perfil.
type Profile struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
