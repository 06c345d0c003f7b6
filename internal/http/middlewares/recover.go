package middlewares

import (
	"net/http"
	"runtime/debug"

	httperrors "github.com/ngoiyaeric/dash/internal/http/errors"
	"github.com/ngoiyaeric/dash/internal/observability/logger"
)

// WithRecover captura panics del handler y responde 500 en vez de tirar
// la conexión.
func WithRecover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.From(r.Context()).Error("panic recovered",
						logger.Path(r.URL.Path),
						logger.Any("panic", rec),
						logger.Stack(debug.Stack()),
					)
					httperrors.WriteError(w, httperrors.ErrInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
