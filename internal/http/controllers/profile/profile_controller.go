package profile

import (
	"encoding/json"
	"net/http"

	"github.com/ngoiyaeric/dash/internal/http/dto"
	httperrors "github.com/ngoiyaeric/dash/internal/http/errors"
	mw "github.com/ngoiyaeric/dash/internal/http/middlewares"
	svc "github.com/ngoiyaeric/dash/internal/http/services/profile"
	"github.com/ngoiyaeric/dash/internal/observability/logger"
)

const (
	maxUpdateBodySize = 64 * 1024 // 64KB
	contentTypeJSON   = "application/json; charset=utf-8"
)

// UpdateController handles POST /v1/profile.
type UpdateController struct {
	service svc.Service
}

// NewUpdateController creates the display-name update controller.
func NewUpdateController(service svc.Service) *UpdateController {
	return &UpdateController{service: service}
}

// Update persists the caller's display name.
func (c *UpdateController) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("UpdateController.Update"))

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUpdateBodySize)
	defer r.Body.Close()

	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return
	}

	msg, err := c.service.UpdateDisplayName(ctx, mw.GetUserID(ctx), req.DisplayName)
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(dto.MessageResponse{Message: msg})

	log.Info("profile updated")
}
