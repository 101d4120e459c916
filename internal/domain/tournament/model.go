package tournament

import "fmt"

// Status tracks where a tournament sits in its lifecycle.
type Status string

const (
	StatusUpcoming  Status = "Upcoming"
	StatusOngoing   Status = "Ongoing"
	StatusCompleted Status = "Completed"
)

var AllStatuses = map[Status]struct{}{
	StatusUpcoming:  {},
	StatusOngoing:   {},
	StatusCompleted: {},
}

type Tournament struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Year   int    `json:"year"`
	Status Status `json:"status"`
}

func (t Tournament) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tournament id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("tournament name is required")
	}
	if t.Year <= 0 {
		return fmt.Errorf("tournament year must be a positive integer")
	}
	if _, ok := AllStatuses[t.Status]; !ok {
		return fmt.Errorf("invalid tournament status: %s", t.Status)
	}

	return nil
}
