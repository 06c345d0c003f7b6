package auth

import (
	"encoding/json"
	"net/http"

	"github.com/ngoiyaeric/dash/internal/http/dto"
	httperrors "github.com/ngoiyaeric/dash/internal/http/errors"
	mw "github.com/ngoiyaeric/dash/internal/http/middlewares"
	svc "github.com/ngoiyaeric/dash/internal/http/services/auth"
	"github.com/ngoiyaeric/dash/internal/observability/logger"
)

// LogoutController maneja POST /v1/auth/logout.
type LogoutController struct {
	service svc.Service
}

// NewLogoutController crea el controller de logout.
func NewLogoutController(service svc.Service) *LogoutController {
	return &LogoutController{service: service}
}

// Logout destruye la sesión del caller.
func (c *LogoutController) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("LogoutController.Logout"))

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
		return
	}

	var token string
	if sess := mw.GetSession(ctx); sess != nil {
		token = sess.Token
	}
	if err := c.service.Logout(ctx, token); err != nil {
		log.Error("logout failed", logger.Err(err))
		httperrors.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(dto.MessageResponse{Message: "Signed out"})
}
