package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/crickethub/club-api/internal/infrastructure/storage/clubstore"
	"github.com/crickethub/club-api/internal/infrastructure/storage/kv"
	"github.com/crickethub/club-api/internal/platform/id"
	"github.com/crickethub/club-api/internal/platform/logging"
	"github.com/crickethub/club-api/internal/usecase"
)

func newTestResolver(t *testing.T) CredentialResolver {
	t.Helper()

	_, resolver := newTestRouterParts(t)
	return resolver
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	router, _ := newTestRouterParts(t)
	return router
}

func newTestRouterParts(t *testing.T) (http.Handler, CredentialResolver) {
	t.Helper()

	store, err := clubstore.Open(context.Background(), kv.NewMemoryStore(), clubstore.DefaultKey, logging.NewNop())
	if err != nil {
		t.Fatalf("open club store: %v", err)
	}

	authService := usecase.NewAuthService(store, "admin", "9908", logging.NewNop())
	handler := NewHandler(
		authService,
		usecase.NewCatalogService(store),
		usecase.NewRankingService(store),
		usecase.NewProfileService(store),
		usecase.NewAdminService(store, id.NewTimestampGenerator(), logging.NewNop()),
		logging.NewNop(),
	)

	return NewRouter(handler, authService, logging.NewNop(), []string{"*"}), authService
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	return body
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestListPlayers_OmitsPasswords(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/players", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `"password"`) {
		t.Fatal("player listing leaked a password field")
	}

	body := decodeEnvelope(t, rec)
	items, ok := body["data"].([]any)
	if !ok || len(items) != 3 {
		t.Fatalf("expected 3 seeded players, got %v", body["data"])
	}
}

func TestLogin_PlayerCredentials(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{"username":"virat","password":"123"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["role"].(string); got != "player" {
		t.Fatalf("expected role player, got %v", data["role"])
	}
	if got, _ := data["playerId"].(string); got != "p1" {
		t.Fatalf("expected playerId p1, got %v", data["playerId"])
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{"username":"virat","password":"wrong"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	errorObj, _ := body["error"].(map[string]any)
	items, _ := errorObj["errors"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected a single error item, got %v", errorObj)
	}
	item, _ := items[0].(map[string]any)
	if got, _ := item["reason"].(string); got != "invalidCredentials" {
		t.Fatalf("expected reason invalidCredentials, got %v", item["reason"])
	}
}

func TestPlayerRankings_DefaultLimitAndOrder(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/rankings/players?limit=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	items, _ := body["data"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 ranked players, got %d", len(items))
	}
	first, _ := items[0].(map[string]any)
	second, _ := items[1].(map[string]any)
	if first["id"] != "p1" || second["id"] != "p3" {
		t.Fatalf("expected runs-descending order p1,p3, got %v,%v", first["id"], second["id"])
	}
}

func TestNextMatch_SeededFixture(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/matches/next", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["id"].(string); got != "m1" {
		t.Fatalf("expected earliest upcoming match m1, got %v", data["id"])
	}
	if got, _ := data["teamAName"].(string); got != "Royal Challengers" {
		t.Fatalf("expected resolved team name, got %v", data["teamAName"])
	}
}

func TestAdminCreateTeam_RequiresAdmin(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/teams", strings.NewReader(`{"name":"Delhi Capitals","shortName":"DC"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without credentials, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/admin/teams", strings.NewReader(`{"name":"Delhi Capitals","shortName":"DC"}`))
	req.SetBasicAuth("admin", "9908")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["shortName"].(string); got != "DC" {
		t.Fatalf("expected created team shortName DC, got %v", data["shortName"])
	}
	if got, _ := data["logo"].(string); got == "" {
		t.Fatal("expected a defaulted logo URL")
	}
}

func TestAdminCreateTeam_RejectsMissingFields(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/teams", strings.NewReader(`{"name":"Delhi Capitals"}`))
	req.SetBasicAuth("admin", "9908")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestAdminDelete_RequiresConfirmation(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/teams/t1", nil)
	req.SetBasicAuth("admin", "9908")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without confirm=true, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/v1/admin/teams/t1?confirm=true", nil)
	req.SetBasicAuth("admin", "9908")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if removed, _ := data["removed"].(bool); !removed {
		t.Fatalf("expected removed=true, got %v", data["removed"])
	}
}

func TestAdminDelete_UnknownIDIsNoOpSuccess(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/players/ghost?confirm=true", nil)
	req.SetBasicAuth("admin", "9908")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if removed, _ := data["removed"].(bool); removed {
		t.Fatalf("expected removed=false for unknown id, got %v", data["removed"])
	}
}

func TestAdminDelete_UnknownCollection(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/venues/v1?confirm=true", nil)
	req.SetBasicAuth("admin", "9908")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown collection, got %d", rec.Code)
	}
}

func TestMyProfile_PlayerRole(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/me/profile", nil)
	req.SetBasicAuth("virat", "123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	playerObj, _ := data["player"].(map[string]any)
	if got, _ := playerObj["id"].(string); got != "p1" {
		t.Fatalf("expected own profile p1, got %v", playerObj["id"])
	}
}

func TestDeletedTeamRendersBlankMatchName(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/teams/t1?confirm=true", nil)
	req.SetBasicAuth("admin", "9908")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete team: expected status 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/matches", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("list matches: expected status 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	items, _ := body["data"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected both seeded matches to survive, got %d", len(items))
	}
	first, _ := items[0].(map[string]any)
	if got, _ := first["teamAName"].(string); got != "" {
		t.Fatalf("expected blank name for dangling team reference, got %q", got)
	}
	if got, _ := first["teamAId"].(string); got != "t1" {
		t.Fatalf("expected dangling team id preserved, got %v", first["teamAId"])
	}
}
