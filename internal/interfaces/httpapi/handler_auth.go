package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/crickethub/club-api/internal/usecase"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	id, err := h.authService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed", "username", req.Username, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, identityDTO{
		Role:     string(id.Role),
		Username: id.Username,
		PlayerID: id.PlayerID,
	})
}

func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerProfile")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	h.writeProfile(w, r.WithContext(ctx), playerID)
}

func (h *Handler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyProfile")
	defer span.End()

	id, ok := identityFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: identity is missing from request context", usecase.ErrUnauthorized))
		return
	}

	h.writeProfile(w, r.WithContext(ctx), id.PlayerID)
}

func (h *Handler) writeProfile(w http.ResponseWriter, r *http.Request, playerID string) {
	ctx := r.Context()

	profile, err := h.profileService.GetProfile(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get profile failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	teamNames, tournamentNames, err := h.referenceNames(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "resolve match references failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	recent := make([]matchDTO, 0, len(profile.RecentMatches))
	for _, m := range profile.RecentMatches {
		recent = append(recent, matchToDTO(m, teamNames, tournamentNames))
	}

	writeSuccess(ctx, w, http.StatusOK, profileDTO{
		Player:        playerToDTO(profile.Player),
		RecentMatches: recent,
	})
}
