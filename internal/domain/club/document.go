package club

import (
	"fmt"

	"github.com/crickethub/club-api/internal/domain/announcement"
	"github.com/crickethub/club-api/internal/domain/match"
	"github.com/crickethub/club-api/internal/domain/player"
	"github.com/crickethub/club-api/internal/domain/team"
	"github.com/crickethub/club-api/internal/domain/tournament"
)

// Collection names one of the entity collections held by the Document.
// Seasons is a flat year list, not an entity collection, and is not
// addressable for create/delete.
type Collection string

const (
	CollectionPlayers       Collection = "players"
	CollectionTeams         Collection = "teams"
	CollectionTournaments   Collection = "tournaments"
	CollectionMatches       Collection = "matches"
	CollectionAnnouncements Collection = "announcements"
)

var allCollections = map[Collection]struct{}{
	CollectionPlayers:       {},
	CollectionTeams:         {},
	CollectionTournaments:   {},
	CollectionMatches:       {},
	CollectionAnnouncements: {},
}

func ParseCollection(v string) (Collection, error) {
	c := Collection(v)
	if _, ok := allCollections[c]; !ok {
		return "", fmt.Errorf("unknown collection %q", v)
	}
	return c, nil
}

// Document is the single aggregate of all club collections, persisted as one
// JSON unit. There is no schema version field; fields absent from older
// persisted documents decode to their zero values.
type Document struct {
	Players       []player.Player             `json:"players"`
	Teams         []team.Team                 `json:"teams"`
	Tournaments   []tournament.Tournament     `json:"tournaments"`
	Matches       []match.Match               `json:"matches"`
	Announcements []announcement.Announcement `json:"announcements"`
	Seasons       []int                       `json:"seasons"`
}

// Clone returns a value-independent copy. Entity structs hold no reference
// types beyond strings, so copying the slices is sufficient.
func (d Document) Clone() Document {
	out := Document{
		Players:       make([]player.Player, len(d.Players)),
		Teams:         make([]team.Team, len(d.Teams)),
		Tournaments:   make([]tournament.Tournament, len(d.Tournaments)),
		Matches:       make([]match.Match, len(d.Matches)),
		Announcements: make([]announcement.Announcement, len(d.Announcements)),
		Seasons:       make([]int, len(d.Seasons)),
	}
	copy(out.Players, d.Players)
	copy(out.Teams, d.Teams)
	copy(out.Tournaments, d.Tournaments)
	copy(out.Matches, d.Matches)
	copy(out.Announcements, d.Announcements)
	copy(out.Seasons, d.Seasons)

	return out
}

// Validate checks every entity in every collection.
func (d Document) Validate() error {
	for _, p := range d.Players {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("players: %w", err)
		}
	}
	for _, t := range d.Teams {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("teams: %w", err)
		}
	}
	for _, tr := range d.Tournaments {
		if err := tr.Validate(); err != nil {
			return fmt.Errorf("tournaments: %w", err)
		}
	}
	for _, m := range d.Matches {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("matches: %w", err)
		}
	}
	for _, a := range d.Announcements {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("announcements: %w", err)
		}
	}

	return nil
}
