package match

import (
	"fmt"
	"time"
)

// Status of a fixture. The stored value is free-form in old documents; only
// these two are produced by this system.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
)

// Match references a tournament and two teams by id. Referential integrity is
// deliberately not enforced: deleting a team or tournament does not cascade,
// so consumers must tolerate dangling ids and render them as unknown.
type Match struct {
	ID           string    `json:"id"`
	TournamentID string    `json:"tournamentId"`
	Date         time.Time `json:"date"`
	TeamAID      string    `json:"teamAId"`
	TeamBID      string    `json:"teamBId"`
	Stage        string    `json:"stage"`
	Status       Status    `json:"status"`
	Venue        string    `json:"venue"`
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.Stage == "" {
		return fmt.Errorf("match stage is required")
	}
	if m.Date.IsZero() {
		return fmt.Errorf("match date is required")
	}

	return nil
}
