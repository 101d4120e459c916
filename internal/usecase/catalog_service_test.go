package usecase

import (
	"testing"
)

func TestCatalogServiceListsSeededCollections(t *testing.T) {
	store, _ := newTestStore(t)
	svc := NewCatalogService(store)
	ctx := t.Context()

	players, err := svc.ListPlayers(ctx)
	if err != nil {
		t.Fatalf("ListPlayers() error = %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("len(players) = %d, want 3", len(players))
	}
	if players[0].ID != "p1" || players[0].Name != "Virat Kohli" {
		t.Fatalf("players[0] = %+v, want seeded p1", players[0])
	}

	teams, err := svc.ListTeams(ctx)
	if err != nil {
		t.Fatalf("ListTeams() error = %v", err)
	}
	if len(teams) != 3 || teams[0].ShortName != "RCB" {
		t.Fatalf("teams = %+v, want 3 seeded teams starting with RCB", teams)
	}

	tournaments, err := svc.ListTournaments(ctx)
	if err != nil {
		t.Fatalf("ListTournaments() error = %v", err)
	}
	if len(tournaments) != 2 {
		t.Fatalf("len(tournaments) = %d, want 2", len(tournaments))
	}

	matches, err := svc.ListMatches(ctx)
	if err != nil {
		t.Fatalf("ListMatches() error = %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}

	announcements, err := svc.ListAnnouncements(ctx)
	if err != nil {
		t.Fatalf("ListAnnouncements() error = %v", err)
	}
	if len(announcements) != 2 {
		t.Fatalf("len(announcements) = %d, want 2", len(announcements))
	}

	seasons, err := svc.Seasons(ctx)
	if err != nil {
		t.Fatalf("Seasons() error = %v", err)
	}
	if len(seasons) != 3 || seasons[0] != 2023 {
		t.Fatalf("seasons = %v, want [2023 2024 2025]", seasons)
	}
}
