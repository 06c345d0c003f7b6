package middlewares

import (
	"context"

	"github.com/ngoiyaeric/dash/internal/authn"
)

type ctxKeyRequestID struct{}
type ctxKeySession struct{}

func setRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID{}, rid)
}

// GetRequestID retorna el request ID del contexto, o "".
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyRequestID{}).(string); ok {
		return v
	}
	return ""
}

// WithSession inyecta la sesión resuelta en el contexto.
func WithSession(ctx context.Context, s *authn.Session) context.Context {
	return context.WithValue(ctx, ctxKeySession{}, s)
}

// GetSession retorna la sesión del contexto, o nil.
func GetSession(ctx context.Context) *authn.Session {
	if s, ok := ctx.Value(ctxKeySession{}).(*authn.Session); ok {
		return s
	}
	return nil
}

// GetUserID retorna el ID del usuario autenticado, o "".
func GetUserID(ctx context.Context) string {
	if s := GetSession(ctx); s != nil {
		return s.UserID
	}
	return ""
}
