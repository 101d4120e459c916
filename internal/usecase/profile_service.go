package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/crickethub/club-api/internal/domain/match"
	"github.com/crickethub/club-api/internal/domain/player"
	"github.com/crickethub/club-api/internal/infrastructure/storage/clubstore"
)

const recentMatchLimit = 3

// Profile is a player's dashboard view: their record plus the most recent
// completed fixtures.
type Profile struct {
	Player        player.Player
	RecentMatches []match.Match
}

type ProfileService struct {
	store *clubstore.Store
}

func NewProfileService(store *clubstore.Store) *ProfileService {
	return &ProfileService{store: store}
}

func (s *ProfileService) GetProfile(ctx context.Context, playerID string) (Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.GetProfile")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return Profile{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	doc := s.store.Snapshot(ctx)

	var found *player.Player
	for i := range doc.Players {
		if doc.Players[i].ID == playerID {
			found = &doc.Players[i]
			break
		}
	}
	if found == nil {
		return Profile{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	recent := make([]match.Match, 0, recentMatchLimit)
	for _, m := range doc.Matches {
		if m.Status != match.StatusCompleted {
			continue
		}
		recent = append(recent, m)
		if len(recent) == recentMatchLimit {
			break
		}
	}

	return Profile{Player: *found, RecentMatches: recent}, nil
}
