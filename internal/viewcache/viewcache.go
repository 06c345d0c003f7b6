// Package viewcache señaliza invalidación de vistas: cada path de vista
// ("/settings", "/dashboard") tiene una versión monótona; invalidar bumpea
// la versión para que los renders cacheados se consideren stale.
//
// Backends: memory (in-process) y redis (compartido entre instancias).
package viewcache

import (
	"context"
	"time"
)

// Vistas afectadas por la capa de acciones.
const (
	ViewSettings  = "/settings"
	ViewDashboard = "/dashboard"
)

// Invalidator marca vistas como stale y expone su versión actual.
type Invalidator interface {
	// Invalidate bumpea la versión de la vista. Best-effort: los
	// callers loguean el error pero no fallan la acción por esto.
	Invalidate(ctx context.Context, view string) error

	// Version retorna la versión actual de la vista (0 si nunca se
	// invalidó).
	Version(ctx context.Context, view string) (int64, error)
}

// Config del backend.
type Config struct {
	Kind       string // "memory" | "redis"
	RedisAddr  string
	RedisDB    int
	Prefix     string
	DefaultTTL time.Duration
}

// New construye el Invalidator según la config.
func New(cfg Config) Invalidator {
	switch cfg.Kind {
	case "redis":
		return NewRedis(cfg.RedisAddr, cfg.RedisDB, cfg.Prefix)
	default:
		return NewMemory(cfg.DefaultTTL)
	}
}
