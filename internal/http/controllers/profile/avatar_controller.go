package profile

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/ngoiyaeric/dash/internal/http/dto"
	httperrors "github.com/ngoiyaeric/dash/internal/http/errors"
	mw "github.com/ngoiyaeric/dash/internal/http/middlewares"
	svc "github.com/ngoiyaeric/dash/internal/http/services/profile"
	"github.com/ngoiyaeric/dash/internal/observability/logger"
)

// El body se corta bien por encima del límite de validación (2MiB) para
// que un archivo grande reciba el mensaje de validación, no un 413.
const maxAvatarBodySize = 8 * 1024 * 1024 // 8MB

// AvatarController handles POST /v1/profile/avatar.
type AvatarController struct {
	service svc.Service
}

// NewAvatarController creates the avatar upload controller.
func NewAvatarController(service svc.Service) *AvatarController {
	return &AvatarController{service: service}
}

// Upload stores the avatar file and writes its public URL to the profile.
func (c *AvatarController) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("AvatarController.Upload"))

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarBodySize)
	defer r.Body.Close()

	if err := r.ParseMultipartForm(maxAvatarBodySize); err != nil {
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("expected multipart form with an avatar file"))
		return
	}

	up := svc.AvatarUpload{}
	file, header, err := r.FormFile("avatar")
	if err == nil {
		defer file.Close()
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("could not read uploaded file"))
			return
		}
		up = svc.AvatarUpload{
			Filename:    header.Filename,
			Size:        int64(len(data)),
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		}
	}
	// Sin archivo: up queda en cero y la validación del service responde
	// con el mensaje de "archivo requerido"

	url, err := c.service.UploadAvatar(ctx, mw.GetUserID(ctx), up)
	if err != nil {
		httperrors.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(dto.AvatarResponse{
		Message:   "Avatar updated successfully",
		AvatarURL: url,
	})

	log.Info("avatar uploaded")
}
