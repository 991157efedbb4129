package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	adapthttp "fittrack/internal/adapter/http"
	"fittrack/internal/adapter/file"
	"fittrack/internal/adapter/memory"
	"fittrack/internal/adapter/postgres"
	"fittrack/internal/adapter/recordstore"
	"fittrack/internal/app"
	"fittrack/internal/config"
	"fittrack/internal/domain"
	"fittrack/internal/storage"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	var (
		blobs    storage.BlobStore
		users    domain.UserRepository
		sessions domain.SessionRepository
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		blobs = db
		users = db
		sessions = postgres.NewSessionRepo(db)
	} else {
		fs, err := file.Open(cfg.DataDir)
		if err != nil {
			log.Fatalf("open data dir: %v", err)
		}
		blobs = fs
		// Accounts live in memory when running without a database; forward
		// auth or SSO re-provisions them on restart.
		mem := memory.New()
		users = mem
		sessions = mem.NewSessionRepo()
	}

	store := app.NewStore(storage.NewCollections(blobs))
	if err := store.Load(ctx); err != nil {
		log.Fatalf("load collections: %v", err)
	}

	todaySvc := app.NewTodayService(store)
	dashboardSvc := app.NewDashboardService(store)
	authSvc := app.NewAuthService(users, sessions)

	srv := adapthttp.New(store, todaySvc, dashboardSvc, authSvc)

	if cfg.RecordStoreURL != "" {
		records := recordstore.New(cfg.RecordStoreURL)
		if err := records.Health(ctx); err != nil {
			log.Printf("record store unavailable: %v", err)
		}
		srv = srv.WithExport(app.NewExportService(store, records))
	}

	if cfg.SSOConfigured() {
		provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuerURL)
		if err != nil {
			log.Fatalf("oidc provider: %v", err)
		}
		srv = srv.WithOIDC(adapthttp.OIDCConfig{
			Enabled:  true,
			Provider: provider,
			OAuth2Config: &oauth2.Config{
				ClientID:     cfg.OIDCClientID,
				ClientSecret: cfg.OIDCClientSecret,
				RedirectURL:  cfg.OIDCRedirectURL,
				Endpoint:     provider.Endpoint(),
				Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
			},
		})
	}

	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Handler()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
