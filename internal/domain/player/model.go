package player

import "fmt"

// Role represents cricket playing role categories.
type Role string

const (
	RoleBatsman    Role = "Batsman"
	RoleBowler     Role = "Bowler"
	RoleAllRounder Role = "All-Rounder"
)

var AllRoles = map[Role]struct{}{
	RoleBatsman:    {},
	RoleBowler:     {},
	RoleAllRounder: {},
}

// Player is a registered club member. Career counters are caller-supplied and
// trusted as-is; Average and StrikeRate are never recomputed here.
type Player struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Role          Role    `json:"role"`
	Username      string  `json:"username"`
	Password      string  `json:"password"`
	Runs          int     `json:"runs"`
	Wickets       int     `json:"wickets"`
	MatchesPlayed int     `json:"matchesPlayed"`
	Average       float64 `json:"average"`
	StrikeRate    float64 `json:"strikeRate"`
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Username == "" {
		return fmt.Errorf("player username is required")
	}
	if p.Password == "" {
		return fmt.Errorf("player password is required")
	}
	if _, ok := AllRoles[p.Role]; !ok {
		return fmt.Errorf("invalid player role: %s", p.Role)
	}
	if p.Runs < 0 || p.Wickets < 0 || p.MatchesPlayed < 0 {
		return fmt.Errorf("player career counters must be non-negative")
	}
	if p.Average < 0 || p.StrikeRate < 0 {
		return fmt.Errorf("player derived stats must be non-negative")
	}

	return nil
}
