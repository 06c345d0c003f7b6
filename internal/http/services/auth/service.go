// Package auth adapts the auth-service port to the HTTP API: credential
// actions plus session introspection with the profile row merged in.
package auth

import (
	"context"

	"github.com/ngoiyaeric/dash/internal/authn"
	"github.com/ngoiyaeric/dash/internal/domain/repository"
	"github.com/ngoiyaeric/dash/internal/http/dto"
	"github.com/ngoiyaeric/dash/internal/metrics"
	"github.com/ngoiyaeric/dash/internal/observability/logger"
)

// Service defines the auth actions.
type Service interface {
	Login(ctx context.Context, email, password string) (*dto.SessionResponse, error)
	Register(ctx context.Context, email, password string) (*dto.SessionResponse, error)
	Logout(ctx context.Context, token string) error

	// Session describes the current session, with the profile merged
	// best-effort: a nil profile never means unauthenticated.
	Session(ctx context.Context, sess *authn.Session) (*dto.SessionResponse, error)
}

// Deps contains dependencies for the auth service.
type Deps struct {
	Auth     authn.Service
	Profiles repository.ProfileRepository
}

type service struct {
	deps Deps
}

// NewService creates the auth HTTP service.
func NewService(deps Deps) Service {
	return &service{deps: deps}
}

func (s *service) Login(ctx context.Context, email, password string) (*dto.SessionResponse, error) {
	sess, _, err := s.deps.Auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		metrics.Action("login", "auth")
		return nil, err
	}
	metrics.Action("login", "ok")
	return s.respond(ctx, sess, true), nil
}

func (s *service) Register(ctx context.Context, email, password string) (*dto.SessionResponse, error) {
	sess, _, err := s.deps.Auth.SignUp(ctx, email, password)
	if err != nil {
		metrics.Action("register", "validation")
		return nil, err
	}
	metrics.Action("register", "ok")
	return s.respond(ctx, sess, true), nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	metrics.Action("logout", "ok")
	return s.deps.Auth.SignOut(ctx, token)
}

func (s *service) Session(ctx context.Context, sess *authn.Session) (*dto.SessionResponse, error) {
	return s.respond(ctx, sess, false), nil
}

// respond arma la respuesta de sesión mergeando el perfil best-effort.
func (s *service) respond(ctx context.Context, sess *authn.Session, includeToken bool) *dto.SessionResponse {
	resp := &dto.SessionResponse{
		UserID:    sess.UserID,
		Email:     sess.Email,
		ExpiresAt: sess.ExpiresAt,
	}
	if includeToken {
		resp.Token = sess.Token
	}

	prof, err := s.deps.Profiles.GetByID(ctx, sess.UserID)
	if err != nil {
		// Sin perfil no es no-autenticado; se deja null
		logger.From(ctx).Debug("profile fetch failed",
			logger.Layer("service"), logger.Component("auth"), logger.Err(err), logger.UserID(sess.UserID))
		return resp
	}
	resp.Profile = &dto.Profile{
		ID:          prof.ID,
		DisplayName: prof.DisplayName,
		AvatarURL:   prof.AvatarURL,
		Email:       prof.Email,
		CreatedAt:   prof.CreatedAt,
		UpdatedAt:   prof.UpdatedAt,
	}
	return resp
}
