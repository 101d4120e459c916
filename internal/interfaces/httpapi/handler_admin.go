package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/crickethub/club-api/internal/domain/club"
	"github.com/crickethub/club-api/internal/usecase"
)

type createPlayerRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createTeamRequest struct {
	Name      string `json:"name" validate:"required"`
	ShortName string `json:"shortName" validate:"required"`
	Logo      string `json:"logo" validate:"omitempty,url"`
}

type createTournamentRequest struct {
	Name string `json:"name" validate:"required"`
	Year int    `json:"year" validate:"required,gt=0"`
}

type createMatchRequest struct {
	Stage        string `json:"stage" validate:"required"`
	TournamentID string `json:"tournamentId"`
	TeamAID      string `json:"teamAId"`
	TeamBID      string `json:"teamBId"`
	Venue        string `json:"venue"`
	Date         string `json:"date" validate:"omitempty"`
}

type createAnnouncementRequest struct {
	Text string `json:"text" validate:"required"`
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
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

	created, err := h.adminService.CreatePlayer(ctx, usecase.CreatePlayerInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
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

	created, err := h.adminService.CreateTeam(ctx, usecase.CreateTeamInput{
		Name:      req.Name,
		ShortName: req.ShortName,
		Logo:      req.Logo,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(created))
}

func (h *Handler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTournament")
	defer span.End()

	var req createTournamentRequest
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

	created, err := h.adminService.CreateTournament(ctx, usecase.CreateTournamentInput{
		Name: req.Name,
		Year: req.Year,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create tournament failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, tournamentToDTO(created))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
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

	var date time.Time
	if raw := strings.TrimSpace(req.Date); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: date must be RFC 3339: %v", usecase.ErrInvalidInput, err))
			return
		}
		date = parsed
	}

	created, err := h.adminService.CreateMatch(ctx, usecase.CreateMatchInput{
		Stage:        req.Stage,
		TournamentID: req.TournamentID,
		TeamAID:      req.TeamAID,
		TeamBID:      req.TeamBID,
		Venue:        req.Venue,
		Date:         date,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	teamNames, tournamentNames, err := h.referenceNames(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "resolve match references failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created, teamNames, tournamentNames))
}

func (h *Handler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAnnouncement")
	defer span.End()

	var req createAnnouncementRequest
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

	created, err := h.adminService.CreateAnnouncement(ctx, usecase.CreateAnnouncementInput{Text: req.Text})
	if err != nil {
		h.logger.WarnContext(ctx, "create announcement failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, announcementToDTO(created))
}

// DeleteEntity requires an explicit confirm=true query parameter, the API
// analog of the destructive-action prompt. Deleting an id that is not present
// is a no-op success.
func (h *Handler) DeleteEntity(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteEntity")
	defer span.End()

	if r.URL.Query().Get("confirm") != "true" {
		writeError(ctx, w, fmt.Errorf("%w: deletion requires confirm=true", usecase.ErrInvalidInput))
		return
	}

	col, err := club.ParseCollection(r.PathValue("collection"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	entityID := strings.TrimSpace(r.PathValue("entityID"))
	removed, err := h.adminService.Delete(ctx, col, entityID)
	if err != nil {
		h.logger.WarnContext(ctx, "delete failed", "collection", col, "entity_id", entityID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"collection": string(col),
		"id":         entityID,
		"removed":    removed,
	})
}

// ExportDocument returns the raw persisted document, credentials included.
// The route is admin-gated and exists for backup and migration.
func (h *Handler) ExportDocument(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportDocument")
	defer span.End()

	doc, err := h.adminService.ExportDocument(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "export failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, doc)
}

func (h *Handler) ImportDocument(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportDocument")
	defer span.End()

	var doc club.Document
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.adminService.ImportDocument(ctx, doc); err != nil {
		h.logger.WarnContext(ctx, "import failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "imported"})
}
