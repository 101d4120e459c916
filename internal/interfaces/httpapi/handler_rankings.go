package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/crickethub/club-api/internal/usecase"
)

// defaultRankingLimit matches the display cutoff of the club home page. The
// full ordering is always computed; only the response is truncated.
const defaultRankingLimit = 8

func (h *Handler) ListPlayerRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerRankings")
	defer span.End()

	limit := defaultRankingLimit
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(ctx, w, fmt.Errorf("%w: limit must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		limit = parsed
	}

	players, err := h.rankingService.Leaderboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	if len(players) > limit {
		players = players[:limit]
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeamStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamStandings")
	defer span.End()

	standings, err := h.rankingService.Standings(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingDTO, 0, len(standings))
	for _, s := range standings {
		items = append(items, standingDTO{
			Team:   teamToDTO(s.Team),
			Played: s.Played,
			Points: s.Points,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetNextMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNextMatch")
	defer span.End()

	next, exists, err := h.rankingService.NextMatch(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "next match failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}

	teamNames, tournamentNames, err := h.referenceNames(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "resolve match references failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(next, teamNames, tournamentNames))
}
