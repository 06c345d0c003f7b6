package auth

import (
	"encoding/json"
	"net/http"

	httperrors "github.com/ngoiyaeric/dash/internal/http/errors"
	mw "github.com/ngoiyaeric/dash/internal/http/middlewares"
	svc "github.com/ngoiyaeric/dash/internal/http/services/auth"
	"github.com/ngoiyaeric/dash/internal/observability/logger"
)

// SessionController maneja GET /v1/auth/session.
type SessionController struct {
	service svc.Service
}

// NewSessionController crea el controller de sesión.
func NewSessionController(service svc.Service) *SessionController {
	return &SessionController{service: service}
}

// Session describe la sesión vigente con el perfil mergeado best-effort.
func (c *SessionController) Session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("SessionController.Session"))

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
		return
	}

	sess := mw.GetSession(ctx)
	if sess == nil {
		httperrors.WriteError(w, httperrors.ErrAuthRequired)
		return
	}

	resp, err := c.service.Session(ctx, sess)
	if err != nil {
		log.Error("session resolve failed", logger.Err(err))
		httperrors.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}
