package router

import "net/http"

// RegisterProfileRoutes registra las rutas de perfil.
func RegisterProfileRoutes(mux *http.ServeMux, deps Deps) {
	c := deps.ProfileControllers

	// POST /v1/profile
	mux.Handle("/v1/profile", protectedHandler(deps.Auth, http.HandlerFunc(c.Update.Update)))

	// POST /v1/profile/avatar
	mux.Handle("/v1/profile/avatar", protectedHandler(deps.Auth, http.HandlerFunc(c.Avatar.Upload)))

	// GET /v1/profile/accounts
	// Auth opcional: sin sesión responde 200 con accounts vacíos + error,
	// no 401. El controller arma esa respuesta.
	mux.Handle("/v1/profile/accounts", optionalAuthHandler(deps.Auth, http.HandlerFunc(c.Accounts.List)))
}
