package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/crickethub/club-api/internal/domain/identity"
	"github.com/crickethub/club-api/internal/infrastructure/storage/clubstore"
	"github.com/crickethub/club-api/internal/infrastructure/storage/kv"
	"github.com/crickethub/club-api/internal/platform/logging"
)

func newTestStore(t *testing.T) (*clubstore.Store, *kv.MemoryStore) {
	t.Helper()

	backend := kv.NewMemoryStore()
	store, err := clubstore.Open(context.Background(), backend, clubstore.DefaultKey, logging.NewNop())
	if err != nil {
		t.Fatalf("open club store: %v", err)
	}

	return store, backend
}

func TestAuthService_AdminPair(t *testing.T) {
	store, _ := newTestStore(t)
	service := NewAuthService(store, "admin", "9908", logging.NewNop())

	ident, err := service.Authenticate(t.Context(), "admin", "9908")
	if err != nil {
		t.Fatalf("authenticate admin: %v", err)
	}
	if ident.Role != identity.RoleAdmin {
		t.Fatalf("expected admin role, got %s", ident.Role)
	}
	if ident.PlayerID != "" {
		t.Fatalf("admin identity must not carry a player id, got %q", ident.PlayerID)
	}
}

func TestAuthService_SeededPlayers(t *testing.T) {
	store, _ := newTestStore(t)
	service := NewAuthService(store, "admin", "9908", logging.NewNop())

	cases := []struct {
		username string
		password string
		playerID string
	}{
		{"virat", "123", "p1"},
		{"jasprit", "123", "p2"},
		{"ben", "123", "p3"},
	}

	for _, tc := range cases {
		ident, err := service.Authenticate(t.Context(), tc.username, tc.password)
		if err != nil {
			t.Fatalf("authenticate %s: %v", tc.username, err)
		}
		if ident.Role != identity.RolePlayer {
			t.Fatalf("expected player role for %s, got %s", tc.username, ident.Role)
		}
		if ident.PlayerID != tc.playerID {
			t.Fatalf("expected player id %s for %s, got %s", tc.playerID, tc.username, ident.PlayerID)
		}
	}
}

func TestAuthService_InvalidCredentials(t *testing.T) {
	store, _ := newTestStore(t)
	service := NewAuthService(store, "admin", "9908", logging.NewNop())

	cases := [][2]string{
		{"virat", "wrong"},
		{"nobody", "123"},
		{"admin", "1234"},
	}

	for _, tc := range cases {
		if _, err := service.Authenticate(t.Context(), tc[0], tc[1]); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials for %s/%s, got %v", tc[0], tc[1], err)
		}
	}
}

func TestAuthService_EmptyInput(t *testing.T) {
	store, _ := newTestStore(t)
	service := NewAuthService(store, "admin", "9908", logging.NewNop())

	if _, err := service.Authenticate(t.Context(), "", "9908"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty username, got %v", err)
	}
	if _, err := service.Authenticate(t.Context(), "admin", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty password, got %v", err)
	}
}
