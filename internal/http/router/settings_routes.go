package router

import "net/http"

// RegisterSettingsRoutes registra las rutas de settings.
func RegisterSettingsRoutes(mux *http.ServeMux, deps Deps) {
	// PUT /v1/settings/personalization
	mux.Handle("/v1/settings/personalization",
		protectedHandler(deps.Auth, http.HandlerFunc(deps.Personalization.Update)))
}
