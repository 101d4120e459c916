package announcement

import (
	"fmt"
	"time"
)

// Announcement is a free-text club notice. The collection is kept
// newest-first: creates prepend.
type Announcement struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a Announcement) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("announcement id is required")
	}
	if a.Text == "" {
		return fmt.Errorf("announcement text is required")
	}

	return nil
}
