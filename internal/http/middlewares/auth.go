package middlewares

import (
	"net/http"
	"strings"

	"github.com/ngoiyaeric/dash/internal/authn"
	httperrors "github.com/ngoiyaeric/dash/internal/http/errors"
)

// RequireAuth valida Authorization: Bearer <token> contra el auth service
// y guarda la sesión en el contexto. Sin token válido responde 401.
func RequireAuth(auth authn.Service) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				w.Header().Set("WWW-Authenticate", `Bearer realm="api", error="invalid_token", error_description="missing bearer token"`)
				httperrors.WriteError(w, httperrors.ErrAuthRequired)
				return
			}

			sess, err := auth.CurrentSession(r.Context(), token)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="api", error="invalid_token"`)
				httperrors.WriteError(w, httperrors.ErrAuthRequired.WithDetail("invalid or expired session"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// OptionalAuth resuelve la sesión si hay token pero NO falla si falta o es
// inválido. Para endpoints con comportamiento distinto para autenticados:
// el handler decide qué hacer con la ausencia.
func OptionalAuth(auth authn.Service) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			sess, err := auth.CurrentSession(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

func bearerToken(r *http.Request) string {
	ah := strings.TrimSpace(r.Header.Get("Authorization"))
	if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
		return ""
	}
	return strings.TrimSpace(ah[len("Bearer "):])
}
