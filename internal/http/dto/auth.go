package dto

import "time"

// LoginRequest es el body de POST /v1/auth/login y /v1/auth/register.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse describe la sesión emitida o vigente.
type SessionResponse struct {
	Token     string    `json:"token,omitempty"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	// Profile viene mergeado best-effort; null si el fetch falló o el
	// usuario no tiene fila todavía.
	Profile *Profile `json:"profile"`
}
