// Package router contiene el agregador de rutas del servicio.
package router

import (
	"net/http"

	"github.com/ngoiyaeric/dash/internal/authn"
	activityctrl "github.com/ngoiyaeric/dash/internal/http/controllers/activity"
	authctrl "github.com/ngoiyaeric/dash/internal/http/controllers/auth"
	healthctrl "github.com/ngoiyaeric/dash/internal/http/controllers/health"
	profilectrl "github.com/ngoiyaeric/dash/internal/http/controllers/profile"
	settingsctrl "github.com/ngoiyaeric/dash/internal/http/controllers/settings"
	mw "github.com/ngoiyaeric/dash/internal/http/middlewares"
	"github.com/ngoiyaeric/dash/internal/metrics"
)

// Deps contiene todas las dependencias del router.
type Deps struct {
	// Auth resuelve bearer tokens para las rutas protegidas.
	Auth authn.Service

	// Controllers
	AuthControllers    *authctrl.Controllers
	ProfileControllers *profilectrl.Controllers
	Personalization    *settingsctrl.PersonalizationController
	ActivitySearch     *activityctrl.SearchController
	Health             *healthctrl.Controller

	// MediaRoot es la raíz del object store en disco. Vacío desactiva
	// /media (modo offline con store en memoria).
	MediaRoot string
}

// New arma el handler HTTP completo: rutas + middlewares.
func New(deps Deps) http.Handler {
	mux := http.NewServeMux()

	RegisterAuthRoutes(mux, deps)
	RegisterProfileRoutes(mux, deps)
	RegisterSettingsRoutes(mux, deps)
	RegisterActivityRoutes(mux, deps)
	RegisterHealthRoutes(mux, deps)
	RegisterMediaRoutes(mux, deps)

	mux.Handle("/metrics", metrics.Handler())

	return mux
}

// baseHandler es el chain de infra común a todos los endpoints de la API.
func baseHandler(handler http.Handler) http.Handler {
	return mw.Chain(handler,
		mw.WithRecover(),
		mw.WithRequestID(),
		metrics.WithMetrics(),
		mw.WithLogging(),
	)
}

// protectedHandler agrega validación de bearer token al chain base.
func protectedHandler(auth authn.Service, handler http.Handler) http.Handler {
	return mw.Chain(handler,
		mw.WithRecover(),
		mw.WithRequestID(),
		metrics.WithMetrics(),
		mw.WithLogging(),
		mw.RequireAuth(auth),
	)
}

// optionalAuthHandler resuelve la sesión si hay token pero deja pasar sin
// ella; el controller decide la respuesta para no-autenticados.
func optionalAuthHandler(auth authn.Service, handler http.Handler) http.Handler {
	return mw.Chain(handler,
		mw.WithRecover(),
		mw.WithRequestID(),
		metrics.WithMetrics(),
		mw.WithLogging(),
		mw.OptionalAuth(auth),
	)
}
