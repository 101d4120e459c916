package team

import "fmt"

// Team is a club side. No roster relationship to players is modeled.
type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Logo      string `json:"logo"`
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.ShortName == "" {
		return fmt.Errorf("team short name is required")
	}

	return nil
}
