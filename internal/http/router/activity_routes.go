package router

import "net/http"

// RegisterActivityRoutes registra las rutas de actividad.
func RegisterActivityRoutes(mux *http.ServeMux, deps Deps) {
	// GET /v1/activity/search
	mux.Handle("/v1/activity/search",
		protectedHandler(deps.Auth, http.HandlerFunc(deps.ActivitySearch.Search)))
}
