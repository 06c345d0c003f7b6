package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ngoiyaeric/dash/internal/authn"
	"github.com/ngoiyaeric/dash/internal/domain/repository"
	"github.com/ngoiyaeric/dash/internal/http/dto"
	httperrors "github.com/ngoiyaeric/dash/internal/http/errors"
	svc "github.com/ngoiyaeric/dash/internal/http/services/auth"
	"github.com/ngoiyaeric/dash/internal/observability/logger"
)

// RegisterController maneja POST /v1/auth/register.
type RegisterController struct {
	service svc.Service
}

// NewRegisterController crea el controller de registro.
func NewRegisterController(service svc.Service) *RegisterController {
	return &RegisterController{service: service}
}

// Register da de alta una identidad nueva y emite sesión.
func (c *RegisterController) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("RegisterController.Register"))

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

	resp, err := c.service.Register(ctx, req.Email, req.Password)
	if err != nil {
		c.handleError(w, err, log)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(resp)

	log.Info("register ok")
}

// handleError mapea errores del service a respuestas HTTP.
func (c *RegisterController) handleError(w http.ResponseWriter, err error, log *zap.Logger) {
	switch {
	case errors.Is(err, authn.ErrEmailInUse):
		httperrors.WriteError(w, httperrors.ErrEmailInUse)
	case errors.Is(err, authn.ErrWeakPassword):
		httperrors.WriteError(w, httperrors.ErrValidation.WithDetail("Password must be at least 8 characters"))
	case errors.Is(err, repository.ErrInvalidInput):
		httperrors.WriteError(w, httperrors.ErrValidation.WithDetail("A valid email address is required"))
	default:
		log.Error("register failed", logger.Err(err))
		httperrors.WriteError(w, err)
	}
}
