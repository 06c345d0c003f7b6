// Package settings implements the personalization settings action.
package settings

import (
	"context"
	"time"

	"github.com/ngoiyaeric/dash/internal/domain/repository"
	"github.com/ngoiyaeric/dash/internal/fault"
	"github.com/ngoiyaeric/dash/internal/metrics"
	"github.com/ngoiyaeric/dash/internal/observability/logger"
	"github.com/ngoiyaeric/dash/internal/validation"
	"github.com/ngoiyaeric/dash/internal/viewcache"
)

// Service defines the settings actions.
type Service interface {
	// UpdatePersonalization validates (system prompt before notes),
	// persists and invalidates the settings view.
	UpdatePersonalization(ctx context.Context, userID, systemPrompt, notes string) (string, error)
}

// Deps contains dependencies for the settings service.
type Deps struct {
	Settings repository.SettingsRepository
	Views    viewcache.Invalidator
}

type service struct {
	deps Deps
}

// NewService creates the settings service.
func NewService(deps Deps) Service {
	return &service{deps: deps}
}

func (s *service) UpdatePersonalization(ctx context.Context, userID, systemPrompt, notes string) (string, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Component("settings"), logger.Op("UpdatePersonalization"))

	if err := validation.Personalization(systemPrompt, notes); err != nil {
		metrics.Action("personalization_update", "validation")
		return "", err
	}
	if userID == "" {
		metrics.Action("personalization_update", "auth")
		return "", fault.Auth("Not authenticated")
	}

	p := &repository.Personalization{
		UserID:       userID,
		SystemPrompt: systemPrompt,
		Notes:        notes,
		UpdatedAt:    time.Now(),
	}
	if err := s.deps.Settings.UpsertPersonalization(ctx, p); err != nil {
		log.Error("personalization upsert failed", logger.Err(err), logger.UserID(userID))
		metrics.Action("personalization_update", "remote")
		return "", fault.RemoteWrap(err)
	}

	if err := s.deps.Views.Invalidate(ctx, viewcache.ViewSettings); err != nil {
		log.Warn("view invalidation failed", logger.Err(err), logger.View(viewcache.ViewSettings))
	} else {
		metrics.ViewInvalidated(viewcache.ViewSettings)
	}
	metrics.Action("personalization_update", "ok")

	log.Info("personalization updated", logger.UserID(userID))
	return "Settings saved successfully", nil
}
