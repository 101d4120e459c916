package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/crickethub/club-api/internal/config"
	"github.com/crickethub/club-api/internal/infrastructure/storage/clubstore"
	"github.com/crickethub/club-api/internal/infrastructure/storage/kv"
	"github.com/crickethub/club-api/internal/interfaces/httpapi"
	idgen "github.com/crickethub/club-api/internal/platform/id"
	"github.com/crickethub/club-api/internal/platform/logging"
	"github.com/crickethub/club-api/internal/usecase"
)

// Server bundles the HTTP server with the storage handle it owns, so the
// caller can close the backend after the listener drains.
type Server struct {
	HTTP    *http.Server
	backend kv.Store
	logger  *logging.Logger
}

func NewServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	backend, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open storage backend: %w", err)
	}

	store, err := clubstore.Open(ctx, backend, cfg.StorageKey, logger)
	if err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("open club store: %w", err)
	}

	authSvc := usecase.NewAuthService(store, cfg.AdminUsername, cfg.AdminPassword, logger)
	catalogSvc := usecase.NewCatalogService(store)
	rankingSvc := usecase.NewRankingService(store)
	profileSvc := usecase.NewProfileService(store)
	adminSvc := usecase.NewAdminService(store, idgen.NewTimestampGenerator(), logger)

	handler := httpapi.NewHandler(authSvc, catalogSvc, rankingSvc, profileSvc, adminSvc, logger)
	router := httpapi.NewRouter(handler, authSvc, logger, cfg.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if srv.Addr == "" {
		_ = backend.Close()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &Server{HTTP: srv, backend: backend, logger: logger}, nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.HTTP.Shutdown(ctx); err != nil {
		_ = s.backend.Close()
		return err
	}

	if err := s.backend.Close(); err != nil {
		return fmt.Errorf("close storage backend: %w", err)
	}

	return nil
}

func openBackend(ctx context.Context, cfg config.Config) (kv.Store, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendFile:
		return kv.NewFileStore(cfg.StorageDir)
	case config.StorageBackendSQLite:
		return kv.NewSQLiteStore(ctx, cfg.SQLitePath)
	case config.StorageBackendMemory:
		return kv.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
