package httpapi

import (
	"net/http"

	"github.com/crickethub/club-api/internal/domain/identity"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/login", handler.Login)

	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayerProfile)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/next", handler.GetNextMatch)
	mux.HandleFunc("GET /v1/announcements", handler.ListAnnouncements)
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)

	mux.HandleFunc("GET /v1/rankings/players", handler.ListPlayerRankings)
	mux.HandleFunc("GET /v1/standings/teams", handler.ListTeamStandings)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler, resolver CredentialResolver) {
	mux.Handle("GET /v1/me/profile", RequireRole(resolver, identity.RolePlayer, http.HandlerFunc(handler.GetMyProfile)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, resolver CredentialResolver) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireRole(resolver, identity.RoleAdmin, h)
	}

	mux.Handle("POST /v1/admin/players", admin(handler.CreatePlayer))
	mux.Handle("POST /v1/admin/teams", admin(handler.CreateTeam))
	mux.Handle("POST /v1/admin/tournaments", admin(handler.CreateTournament))
	mux.Handle("POST /v1/admin/matches", admin(handler.CreateMatch))
	mux.Handle("POST /v1/admin/announcements", admin(handler.CreateAnnouncement))
	mux.Handle("DELETE /v1/admin/{collection}/{entityID}", admin(handler.DeleteEntity))
	mux.Handle("GET /v1/admin/export", admin(handler.ExportDocument))
	mux.Handle("POST /v1/admin/import", admin(handler.ImportDocument))
}
