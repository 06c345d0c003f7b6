// Package server arma el handler HTTP con todas las dependencias
// cableadas según la config.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ngoiyaeric/dash/internal/authn"
	"github.com/ngoiyaeric/dash/internal/config"
	"github.com/ngoiyaeric/dash/internal/domain/repository"
	"github.com/ngoiyaeric/dash/internal/email"
	activityctrl "github.com/ngoiyaeric/dash/internal/http/controllers/activity"
	authctrl "github.com/ngoiyaeric/dash/internal/http/controllers/auth"
	healthctrl "github.com/ngoiyaeric/dash/internal/http/controllers/health"
	profilectrl "github.com/ngoiyaeric/dash/internal/http/controllers/profile"
	settingsctrl "github.com/ngoiyaeric/dash/internal/http/controllers/settings"
	"github.com/ngoiyaeric/dash/internal/http/router"
	activitysvc "github.com/ngoiyaeric/dash/internal/http/services/activity"
	authsvc "github.com/ngoiyaeric/dash/internal/http/services/auth"
	profilesvc "github.com/ngoiyaeric/dash/internal/http/services/profile"
	settingssvc "github.com/ngoiyaeric/dash/internal/http/services/settings"
	"github.com/ngoiyaeric/dash/internal/observability/logger"
	"github.com/ngoiyaeric/dash/internal/storage"
	storagefs "github.com/ngoiyaeric/dash/internal/storage/fs"
	storagemem "github.com/ngoiyaeric/dash/internal/storage/memory"
	"github.com/ngoiyaeric/dash/internal/store"
	storemem "github.com/ngoiyaeric/dash/internal/store/memory"
	storepg "github.com/ngoiyaeric/dash/internal/store/pg"
	"github.com/ngoiyaeric/dash/internal/viewcache"
)

// BuildHandler construye el handler HTTP completo. Retorna el handler, un
// cleanup que libera conexiones y un error de wiring.
//
// El modo ("live" | "offline") se resuelve acá una sola vez: cada
// colaborador sale ya elegido, el resto del código no pregunta por modo.
func BuildHandler(ctx context.Context, cfg *config.Config) (http.Handler, func() error, error) {
	log := logger.L().With(logger.Layer("server"), logger.Component("wiring"))

	var (
		dal       store.DataAccess
		objects   storage.ObjectStore
		auth      authn.Service
		mediaRoot string
		ready     func(r *http.Request) error
	)

	switch cfg.App.Mode {
	case "live":
		pgStore, err := storepg.New(ctx, cfg.Storage.Postgres.DSN, storepg.Config{
			MaxConns:        cfg.Storage.Postgres.MaxConns,
			ConnMaxLifetime: cfg.Storage.Postgres.ConnMaxLifetime,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("postgres init: %w", err)
		}
		if err := pgStore.ApplySchema(ctx); err != nil {
			_ = pgStore.Close()
			return nil, nil, fmt.Errorf("apply schema: %w", err)
		}
		dal = pgStore
		ready = func(r *http.Request) error {
			pingCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			return pgStore.Pool().Ping(pingCtx)
		}

		fsStore, err := storagefs.New(cfg.Storage.Objects.Dir, cfg.Server.PublicBaseURL)
		if err != nil {
			_ = pgStore.Close()
			return nil, nil, fmt.Errorf("object store init: %w", err)
		}
		objects = fsStore
		mediaRoot = fsStore.Root()

		if cfg.Auth.SessionSecret == "" {
			_ = pgStore.Close()
			return nil, nil, fmt.Errorf("auth.session_secret is required in live mode")
		}

		var mailer email.Mailer = email.Noop{}
		if cfg.Email.Enabled {
			mailer = email.NewSMTP(email.SMTPConfig{
				Host: cfg.Email.Host,
				Port: cfg.Email.Port,
				User: cfg.Email.User,
				Pass: cfg.Email.Pass,
				From: cfg.Email.From,
			})
		}

		auth = authn.NewLive(authn.LiveDeps{
			Identities:    dal.Identities(),
			Profiles:      dal.Profiles(),
			Mailer:        mailer,
			SessionSecret: []byte(cfg.Auth.SessionSecret),
			SessionTTL:    cfg.SessionTTL(),
		})
		log.Info("wiring complete", logger.String("mode", "live"))

	default:
		memStore := storemem.New()
		seedDemoFixtures(memStore)
		dal = memStore
		objects = storagemem.New(cfg.Server.PublicBaseURL)
		auth = authn.NewOffline()
		log.Info("wiring complete", logger.String("mode", "offline"))
	}

	views := viewcache.New(viewcache.Config{
		Kind:       cfg.Cache.Kind,
		RedisAddr:  cfg.Cache.Redis.Addr,
		RedisDB:    cfg.Cache.Redis.DB,
		Prefix:     cfg.Cache.Redis.Prefix,
		DefaultTTL: cfg.MemoryTTL(),
	})

	// Services
	profileService := profilesvc.NewService(profilesvc.Deps{
		Profiles: dal.Profiles(),
		Accounts: dal.ConnectedAccounts(),
		Objects:  objects,
		Views:    views,
	})
	settingsService := settingssvc.NewService(settingssvc.Deps{
		Settings: dal.Settings(),
		Views:    views,
	})
	authService := authsvc.NewService(authsvc.Deps{
		Auth:     auth,
		Profiles: dal.Profiles(),
	})
	searcher := activitysvc.NewFixtureSearcher()

	// Controllers + rutas
	handler := router.New(router.Deps{
		Auth:               auth,
		AuthControllers:    authctrl.NewControllers(authService),
		ProfileControllers: profilectrl.NewControllers(profileService),
		Personalization:    settingsctrl.NewPersonalizationController(settingsService),
		ActivitySearch:     activityctrl.NewSearchController(searcher),
		Health:             healthctrl.NewController(ready),
		MediaRoot:          mediaRoot,
	})

	cleanup := func() error { return dal.Close() }
	return handler, cleanup, nil
}

// seedDemoFixtures carga el perfil demo y un par de cuentas conectadas
// para que el modo offline tenga datos que mostrar.
func seedDemoFixtures(s *storemem.Store) {
	now := time.Now()
	_ = s.Profiles().Create(context.Background(), &repository.Profile{
		ID:          authn.DemoUserID,
		DisplayName: authn.DemoName,
		Email:       authn.DemoEmail,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	s.SeedConnectedAccount(repository.ConnectedAccount{
		ID:                "acc-github",
		UserID:            authn.DemoUserID,
		Provider:          "github",
		ProviderAccountID: "1001",
		Email:             authn.DemoEmail,
		CreatedAt:         now.Add(-48 * time.Hour),
	})
	s.SeedConnectedAccount(repository.ConnectedAccount{
		ID:                "acc-google",
		UserID:            authn.DemoUserID,
		Provider:          "google",
		ProviderAccountID: "1002",
		Email:             authn.DemoEmail,
		CreatedAt:         now.Add(-24 * time.Hour),
	})
}
