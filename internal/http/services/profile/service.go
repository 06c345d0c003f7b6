// Package profile implements the profile actions: display-name update,
// avatar upload and connected-accounts listing.
package profile

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ngoiyaeric/dash/internal/domain/repository"
	"github.com/ngoiyaeric/dash/internal/fault"
	"github.com/ngoiyaeric/dash/internal/metrics"
	"github.com/ngoiyaeric/dash/internal/observability/logger"
	"github.com/ngoiyaeric/dash/internal/storage"
	"github.com/ngoiyaeric/dash/internal/validation"
	"github.com/ngoiyaeric/dash/internal/viewcache"
)

// AvatarBucket is the logical bucket avatar objects live under.
const AvatarBucket = "avatars"

// AvatarUpload describes an uploaded avatar file.
type AvatarUpload struct {
	Filename    string
	Size        int64
	ContentType string
	Data        []byte
}

// Service defines the profile actions.
type Service interface {
	// UpdateDisplayName validates and persists the display name for the
	// authenticated user, then invalidates the settings and dashboard
	// views. Returns the success message.
	UpdateDisplayName(ctx context.Context, userID, displayName string) (string, error)

	// UploadAvatar validates the file, stores it, writes the public URL
	// to the profile row and invalidates the affected views. If the
	// profile write fails the uploaded object is removed before
	// returning: no orphaned object is left in storage.
	UploadAvatar(ctx context.Context, userID string, up AvatarUpload) (string, error)

	// ListConnectedAccounts returns the user's connected accounts
	// ordered by creation time ascending.
	ListConnectedAccounts(ctx context.Context, userID string) ([]repository.ConnectedAccount, error)
}

// Deps contains dependencies for the profile service.
type Deps struct {
	Profiles repository.ProfileRepository
	Accounts repository.ConnectedAccountRepository
	Objects  storage.ObjectStore
	Views    viewcache.Invalidator
}

type service struct {
	deps Deps
}

// NewService creates the profile service.
func NewService(deps Deps) Service {
	return &service{deps: deps}
}

func (s *service) UpdateDisplayName(ctx context.Context, userID, displayName string) (string, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Component("profile"), logger.Op("UpdateDisplayName"))

	// Validación primero: sin llamada remota si el input es inválido
	if err := validation.DisplayName(displayName); err != nil {
		metrics.Action("profile_update", "validation")
		return "", err
	}
	if userID == "" {
		metrics.Action("profile_update", "auth")
		return "", fault.Auth("Not authenticated")
	}

	if err := s.deps.Profiles.UpdateDisplayName(ctx, userID, displayName, time.Now()); err != nil {
		log.Error("display name update failed", logger.Err(err), logger.UserID(userID))
		metrics.Action("profile_update", "remote")
		return "", fault.RemoteWrap(err)
	}

	s.invalidate(ctx, log, viewcache.ViewSettings, viewcache.ViewDashboard)
	metrics.Action("profile_update", "ok")

	log.Info("display name updated", logger.UserID(userID))
	return "Profile updated successfully", nil
}

func (s *service) UploadAvatar(ctx context.Context, userID string, up AvatarUpload) (string, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Component("profile"), logger.Op("UploadAvatar"))

	if err := validation.Avatar(up.Size, up.ContentType); err != nil {
		metrics.Action("avatar_upload", "validation")
		return "", err
	}
	if userID == "" {
		metrics.Action("avatar_upload", "auth")
		return "", fault.Auth("Not authenticated")
	}

	key := avatarKey(userID, up.Filename, time.Now())

	if err := s.deps.Objects.Upload(ctx, AvatarBucket, key, up.Data, up.ContentType); err != nil {
		log.Error("avatar upload failed", logger.Err(err), logger.Key(key))
		metrics.Action("avatar_upload", "remote")
		return "", fault.RemoteWrap(err)
	}

	url, ok := s.deps.Objects.PublicURL(AvatarBucket, key)
	if !ok {
		metrics.Action("avatar_upload", "remote")
		return "", fault.Remote("Failed to get avatar URL")
	}

	if err := s.deps.Profiles.UpdateAvatarURL(ctx, userID, url, time.Now()); err != nil {
		// Compensación: nunca dejar un objeto huérfano si la fila de
		// perfil no se pudo escribir
		if rmErr := s.deps.Objects.Remove(ctx, AvatarBucket, key); rmErr != nil {
			log.Error("orphan cleanup failed", logger.Err(rmErr), logger.Key(key))
		}
		log.Error("avatar profile write failed", logger.Err(err), logger.UserID(userID))
		metrics.Action("avatar_upload", "remote")
		return "", fault.RemoteWrap(err)
	}

	s.invalidate(ctx, log, viewcache.ViewSettings, viewcache.ViewDashboard)
	metrics.Action("avatar_upload", "ok")

	log.Info("avatar updated", logger.UserID(userID), logger.Key(key))
	return url, nil
}

func (s *service) ListConnectedAccounts(ctx context.Context, userID string) ([]repository.ConnectedAccount, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Component("profile"), logger.Op("ListConnectedAccounts"))

	if userID == "" {
		metrics.Action("accounts_list", "auth")
		return nil, fault.Auth("Not authenticated")
	}

	accounts, err := s.deps.Accounts.ListByUser(ctx, userID)
	if err != nil {
		log.Error("connected accounts query failed", logger.Err(err), logger.UserID(userID))
		metrics.Action("accounts_list", "remote")
		return nil, fault.RemoteWrap(err)
	}

	metrics.Action("accounts_list", "ok")
	return accounts, nil
}

// invalidate marca vistas como stale. Best-effort: la acción ya se
// persistió, un fallo acá solo se loguea.
func (s *service) invalidate(ctx context.Context, log *zap.Logger, views ...string) {
	for _, v := range views {
		if err := s.deps.Views.Invalidate(ctx, v); err != nil {
			log.Warn("view invalidation failed", logger.Err(err), logger.View(v))
			continue
		}
		metrics.ViewInvalidated(v)
	}
}

// avatarKey deriva la key de storage: {userID}-{unixMillis}{ext original}.
func avatarKey(userID, filename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s-%d%s", userID, now.UnixMilli(), ext)
}
