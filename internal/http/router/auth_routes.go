package router

import "net/http"

// RegisterAuthRoutes registra las rutas de autenticación.
// login y register son públicas; logout y session requieren bearer token.
func RegisterAuthRoutes(mux *http.ServeMux, deps Deps) {
	c := deps.AuthControllers

	// POST /v1/auth/login
	mux.Handle("/v1/auth/login", baseHandler(http.HandlerFunc(c.Login.Login)))

	// POST /v1/auth/register
	mux.Handle("/v1/auth/register", baseHandler(http.HandlerFunc(c.Register.Register)))

	// POST /v1/auth/logout
	mux.Handle("/v1/auth/logout", protectedHandler(deps.Auth, http.HandlerFunc(c.Logout.Logout)))

	// GET /v1/auth/session
	mux.Handle("/v1/auth/session", protectedHandler(deps.Auth, http.HandlerFunc(c.Session.Session)))
}
