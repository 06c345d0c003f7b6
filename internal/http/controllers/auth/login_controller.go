package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ngoiyaeric/dash/internal/authn"
	"github.com/ngoiyaeric/dash/internal/http/dto"
	httperrors "github.com/ngoiyaeric/dash/internal/http/errors"
	svc "github.com/ngoiyaeric/dash/internal/http/services/auth"
	"github.com/ngoiyaeric/dash/internal/observability/logger"
)

const (
	maxAuthBodySize = 64 * 1024 // 64KB
	contentTypeJSON = "application/json; charset=utf-8"
)

// LoginController maneja POST /v1/auth/login.
type LoginController struct {
	service svc.Service
}

// NewLoginController crea el controller de login.
func NewLoginController(service svc.Service) *LoginController {
	return &LoginController{service: service}
}

// Login autentica email+password y emite una sesión.
func (c *LoginController) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("LoginController.Login"))

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAuthBodySize)
	defer r.Body.Close()

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return
	}

	resp, err := c.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authn.ErrInvalidCredentials) {
			httperrors.WriteError(w, httperrors.ErrInvalidCredentials)
			return
		}
		log.Error("login failed", logger.Err(err))
		httperrors.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)

	log.Info("login ok")
}
