// Package settings contiene los controllers de settings de usuario.
package settings

import (
	"encoding/json"
	"net/http"

	"github.com/ngoiyaeric/dash/internal/http/dto"
	httperrors "github.com/ngoiyaeric/dash/internal/http/errors"
	mw "github.com/ngoiyaeric/dash/internal/http/middlewares"
	svc "github.com/ngoiyaeric/dash/internal/http/services/settings"
	"github.com/ngoiyaeric/dash/internal/observability/logger"
)

const maxPersonalizationBodySize = 64 * 1024 // 64KB

// PersonalizationController handles PUT /v1/settings/personalization.
type PersonalizationController struct {
	service svc.Service
}

// NewPersonalizationController creates the personalization controller.
func NewPersonalizationController(service svc.Service) *PersonalizationController {
	return &PersonalizationController{service: service}
}

// Update validates and persists the personalization settings.
func (c *PersonalizationController) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("PersonalizationController.Update"))

	if r.Method != http.MethodPut {
		w.Header().Set("Allow", "PUT")
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPersonalizationBodySize)
	defer r.Body.Close()

	var req dto.PersonalizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return
	}

	msg, err := c.service.UpdatePersonalization(ctx, mw.GetUserID(ctx), req.SystemPrompt, req.Notes)
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(dto.MessageResponse{Message: msg})

	log.Info("personalization saved")
}
