package usecase

import (
	"context"

	"github.com/crickethub/club-api/internal/domain/announcement"
	"github.com/crickethub/club-api/internal/domain/match"
	"github.com/crickethub/club-api/internal/domain/player"
	"github.com/crickethub/club-api/internal/domain/team"
	"github.com/crickethub/club-api/internal/domain/tournament"
	"github.com/crickethub/club-api/internal/infrastructure/storage/clubstore"
)

// CatalogService serves the public read surface: the raw collections as they
// sit in the document, in collection order, with no filtering.
type CatalogService struct {
	store *clubstore.Store
}

func NewCatalogService(store *clubstore.Store) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListPlayers")
	defer span.End()

	return s.store.Snapshot(ctx).Players, nil
}

func (s *CatalogService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListTeams")
	defer span.End()

	return s.store.Snapshot(ctx).Teams, nil
}

func (s *CatalogService) ListTournaments(ctx context.Context) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListTournaments")
	defer span.End()

	return s.store.Snapshot(ctx).Tournaments, nil
}

func (s *CatalogService) ListMatches(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListMatches")
	defer span.End()

	return s.store.Snapshot(ctx).Matches, nil
}

func (s *CatalogService) ListAnnouncements(ctx context.Context) ([]announcement.Announcement, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListAnnouncements")
	defer span.End()

	return s.store.Snapshot(ctx).Announcements, nil
}

func (s *CatalogService) Seasons(ctx context.Context) ([]int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.Seasons")
	defer span.End()

	return s.store.Snapshot(ctx).Seasons, nil
}
