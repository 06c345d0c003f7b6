package router

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	httperrors "github.com/ngoiyaeric/dash/internal/http/errors"
	mw "github.com/ngoiyaeric/dash/internal/http/middlewares"
)

// RegisterMediaRoutes sirve los objetos públicos del object store en disco
// bajo GET /media/{bucket}/{key}. Con MediaRoot vacío la ruta no existe.
func RegisterMediaRoutes(mux *http.ServeMux, deps Deps) {
	if deps.MediaRoot == "" {
		return
	}

	r := chi.NewRouter()
	r.Get("/media/{bucket}/{key}", serveObject(deps.MediaRoot))

	mux.Handle("/media/", mw.Chain(r,
		mw.WithRecover(),
		mw.WithRequestID(),
	))
}

// serveObject resuelve bucket/key contra la raíz en disco. Nombres con
// separadores o ".." se rechazan antes de tocar el filesystem.
func serveObject(root string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bucket := chi.URLParam(r, "bucket")
		key := chi.URLParam(r, "key")
		if !validSegment(bucket) || !validSegment(key) {
			httperrors.WriteError(w, httperrors.ErrRouteNotFound)
			return
		}

		w.Header().Set("Cache-Control", "public, max-age=86400")
		http.ServeFile(w, r, filepath.Join(root, bucket, key))
	}
}

func validSegment(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, "/\\")
}
