package club

import (
	"time"

	"github.com/crickethub/club-api/internal/domain/announcement"
	"github.com/crickethub/club-api/internal/domain/match"
	"github.com/crickethub/club-api/internal/domain/player"
	"github.com/crickethub/club-api/internal/domain/team"
	"github.com/crickethub/club-api/internal/domain/tournament"
)

// Seed returns the built-in default document used when no persisted document
// exists yet. Match dates are anchored to the supplied clock so the seeded
// fixtures start out upcoming.
func Seed(now time.Time) Document {
	return Document{
		Players: []player.Player{
			{ID: "p1", Name: "Virat Kohli", Role: player.RoleBatsman, Username: "virat", Password: "123", Runs: 12000, Wickets: 4, MatchesPlayed: 254, Average: 59.3, StrikeRate: 93.5},
			{ID: "p2", Name: "Jasprit Bumrah", Role: player.RoleBowler, Username: "jasprit", Password: "123", Runs: 200, Wickets: 350, MatchesPlayed: 140, Average: 12.4, StrikeRate: 45.2},
			{ID: "p3", Name: "Ben Stokes", Role: player.RoleAllRounder, Username: "ben", Password: "123", Runs: 5000, Wickets: 190, MatchesPlayed: 110, Average: 38.9, StrikeRate: 95.1},
		},
		Teams: []team.Team{
			{ID: "t1", Name: "Royal Challengers", ShortName: "RCB", Logo: "https://picsum.photos/seed/rcb/150/150"},
			{ID: "t2", Name: "Mumbai Indians", ShortName: "MI", Logo: "https://picsum.photos/seed/mi/150/150"},
			{ID: "t3", Name: "Chennai Super Kings", ShortName: "CSK", Logo: "https://picsum.photos/seed/csk/150/150"},
		},
		Tournaments: []tournament.Tournament{
			{ID: "tr1", Name: "Premier League", Year: 2024, Status: tournament.StatusOngoing},
			{ID: "tr2", Name: "Champions Trophy", Year: 2023, Status: tournament.StatusCompleted},
		},
		Matches: []match.Match{
			{ID: "m1", TournamentID: "tr1", Date: now.Add(2 * 24 * time.Hour), TeamAID: "t1", TeamBID: "t2", Stage: "League Match", Status: match.StatusScheduled, Venue: "M. Chinnaswamy Stadium"},
			{ID: "m2", TournamentID: "tr1", Date: now.Add(5 * 24 * time.Hour), TeamAID: "t2", TeamBID: "t3", Stage: "Semi-Final", Status: match.StatusScheduled, Venue: "Wankhede Stadium"},
		},
		Announcements: []announcement.Announcement{
			{ID: "a1", Text: "Club Membership drive starts from Jan 1st!", CreatedAt: now},
			{ID: "a2", Text: "New equipment arriving next week for all players.", CreatedAt: now},
		},
		Seasons: []int{2023, 2024, 2025},
	}
}
