package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/crickethub/club-api/internal/domain/announcement"
	"github.com/crickethub/club-api/internal/domain/match"
	"github.com/crickethub/club-api/internal/domain/player"
	"github.com/crickethub/club-api/internal/domain/team"
	"github.com/crickethub/club-api/internal/domain/tournament"
	"github.com/crickethub/club-api/internal/platform/logging"
	"github.com/crickethub/club-api/internal/usecase"
)

type Handler struct {
	authService    *usecase.AuthService
	catalogService *usecase.CatalogService
	rankingService *usecase.RankingService
	profileService *usecase.ProfileService
	adminService   *usecase.AdminService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	catalogService *usecase.CatalogService,
	rankingService *usecase.RankingService,
	profileService *usecase.ProfileService,
	adminService *usecase.AdminService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		authService:    authService,
		catalogService: catalogService,
		rankingService: rankingService,
		profileService: profileService,
		adminService:   adminService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// Passwords never leave the service, not even for the admin surface.
type playerDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	Username      string  `json:"username"`
	Runs          int     `json:"runs"`
	Wickets       int     `json:"wickets"`
	MatchesPlayed int     `json:"matchesPlayed"`
	Average       float64 `json:"average"`
	StrikeRate    float64 `json:"strikeRate"`
}

type teamDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Logo      string `json:"logo"`
}

type tournamentDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Year   int    `json:"year"`
	Status string `json:"status"`
}

// Match references are not integrity-checked anywhere, so the resolved names
// may be blank when a referenced team or tournament has been deleted. That is
// rendered, never treated as an error.
type matchDTO struct {
	ID             string `json:"id"`
	TournamentID   string `json:"tournamentId"`
	TournamentName string `json:"tournamentName"`
	Date           string `json:"date"`
	TeamAID        string `json:"teamAId"`
	TeamAName      string `json:"teamAName"`
	TeamBID        string `json:"teamBId"`
	TeamBName      string `json:"teamBName"`
	Stage          string `json:"stage"`
	Status         string `json:"status"`
	Venue          string `json:"venue"`
}

type announcementDTO struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

type standingDTO struct {
	Team   teamDTO `json:"team"`
	Played int     `json:"played"`
	Points int     `json:"points"`
}

type profileDTO struct {
	Player        playerDTO  `json:"player"`
	RecentMatches []matchDTO `json:"recentMatches"`
}

type identityDTO struct {
	Role     string `json:"role"`
	Username string `json:"username"`
	PlayerID string `json:"playerId,omitempty"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:            p.ID,
		Name:          p.Name,
		Role:          string(p.Role),
		Username:      p.Username,
		Runs:          p.Runs,
		Wickets:       p.Wickets,
		MatchesPlayed: p.MatchesPlayed,
		Average:       p.Average,
		StrikeRate:    p.StrikeRate,
	}
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:        t.ID,
		Name:      t.Name,
		ShortName: t.ShortName,
		Logo:      t.Logo,
	}
}

func tournamentToDTO(t tournament.Tournament) tournamentDTO {
	return tournamentDTO{
		ID:     t.ID,
		Name:   t.Name,
		Year:   t.Year,
		Status: string(t.Status),
	}
}

func matchToDTO(m match.Match, teamNames map[string]string, tournamentNames map[string]string) matchDTO {
	return matchDTO{
		ID:             m.ID,
		TournamentID:   m.TournamentID,
		TournamentName: tournamentNames[m.TournamentID],
		Date:           m.Date.Format(time.RFC3339),
		TeamAID:        m.TeamAID,
		TeamAName:      teamNames[m.TeamAID],
		TeamBID:        m.TeamBID,
		TeamBName:      teamNames[m.TeamBID],
		Stage:          m.Stage,
		Status:         string(m.Status),
		Venue:          m.Venue,
	}
}

func announcementToDTO(a announcement.Announcement) announcementDTO {
	return announcementDTO{
		ID:        a.ID,
		Text:      a.Text,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func (h *Handler) referenceNames(ctx context.Context) (map[string]string, map[string]string, error) {
	teams, err := h.catalogService.ListTeams(ctx)
	if err != nil {
		return nil, nil, err
	}
	tournaments, err := h.catalogService.ListTournaments(ctx)
	if err != nil {
		return nil, nil, err
	}

	teamNames := make(map[string]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}
	tournamentNames := make(map[string]string, len(tournaments))
	for _, t := range tournaments {
		tournamentNames[t.ID] = t.Name
	}

	return teamNames, tournamentNames, nil
}
