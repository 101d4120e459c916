package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/crickethub/club-api/internal/domain/match"
	"github.com/crickethub/club-api/internal/domain/player"
	"github.com/crickethub/club-api/internal/domain/team"
	"github.com/crickethub/club-api/internal/infrastructure/storage/clubstore"
)

// TeamStanding pairs a team with its table counters. Played and Points are
// literal zeros: no scoring rule exists in the data model, and inventing one
// is out of scope.
type TeamStanding struct {
	Team   team.Team
	Played int
	Points int
}

// RankingService derives read-only views from the store. Nothing is cached;
// every call recomputes from a fresh snapshot.
type RankingService struct {
	store *clubstore.Store
	now   func() time.Time
}

func NewRankingService(store *clubstore.Store) *RankingService {
	return &RankingService{
		store: store,
		now:   time.Now,
	}
}

// Leaderboard returns all players ordered by runs descending. The sort is
// stable: players with equal runs keep their collection order. Callers apply
// any display cutoff themselves; the full ordering is always computed.
func (s *RankingService) Leaderboard(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Leaderboard")
	defer span.End()

	doc := s.store.Snapshot(ctx)
	players := doc.Players
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Runs > players[j].Runs
	})

	return players, nil
}

// NextMatch selects the earliest scheduled match strictly after the current
// time. The second return value is false when no such match exists.
func (s *RankingService) NextMatch(ctx context.Context) (match.Match, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.NextMatch")
	defer span.End()

	now := s.now()
	doc := s.store.Snapshot(ctx)

	var next match.Match
	found := false
	for _, m := range doc.Matches {
		if m.Status != match.StatusScheduled || !m.Date.After(now) {
			continue
		}
		if !found || m.Date.Before(next.Date) {
			next = m
			found = true
		}
	}

	return next, found, nil
}

// Standings returns every team in collection order with zero counters.
func (s *RankingService) Standings(ctx context.Context) ([]TeamStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Standings")
	defer span.End()

	doc := s.store.Snapshot(ctx)
	out := make([]TeamStanding, 0, len(doc.Teams))
	for _, t := range doc.Teams {
		out = append(out, TeamStanding{Team: t})
	}

	return out, nil
}
