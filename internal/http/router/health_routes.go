package router

import (
	"net/http"

	mw "github.com/ngoiyaeric/dash/internal/http/middlewares"
)

// RegisterHealthRoutes registra /healthz y /readyz. Públicos, sin logging
// (se llaman muy seguido).
func RegisterHealthRoutes(mux *http.ServeMux, deps Deps) {
	mux.Handle("/healthz", healthBaseHandler(http.HandlerFunc(deps.Health.Healthz)))
	mux.Handle("/readyz", healthBaseHandler(http.HandlerFunc(deps.Health.Readyz)))
}

func healthBaseHandler(handler http.Handler) http.Handler {
	return mw.Chain(handler,
		mw.WithRecover(),
		mw.WithRequestID(),
	)
}
