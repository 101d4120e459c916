package usecase

import (
	"context"
	"fmt"

	"github.com/crickethub/club-api/internal/domain/identity"
	"github.com/crickethub/club-api/internal/infrastructure/storage/clubstore"
	"github.com/crickethub/club-api/internal/platform/logging"
)

// AuthService resolves submitted credentials into a role-tagged identity.
// Comparison is exact plaintext against the fixed admin pair or the player
// collection. No hashing, lockout, or rate limiting exists here; that is the
// design scope, not an omission to fix.
type AuthService struct {
	store         *clubstore.Store
	adminUsername string
	adminPassword string
	logger        *logging.Logger
}

func NewAuthService(store *clubstore.Store, adminUsername, adminPassword string, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AuthService{
		store:         store,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		logger:        logger,
	}
}

// Authenticate returns the admin identity for the configured admin pair, the
// first player whose username and password both match exactly, or
// ErrInvalidCredentials. Credentials are compared as-is; no trimming, since
// stored passwords are opaque strings.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (identity.Identity, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Authenticate")
	defer span.End()

	if username == "" || password == "" {
		return identity.Identity{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	if username == s.adminUsername && password == s.adminPassword {
		return identity.Identity{Role: identity.RoleAdmin, Username: username}, nil
	}

	doc := s.store.Snapshot(ctx)
	for _, p := range doc.Players {
		if p.Username == username && p.Password == password {
			return identity.Identity{
				Role:     identity.RolePlayer,
				Username: p.Username,
				PlayerID: p.ID,
			}, nil
		}
	}

	s.logger.DebugContext(ctx, "credential check failed", "username", username)
	return identity.Identity{}, fmt.Errorf("%w: check username or password", ErrInvalidCredentials)
}
