package watchlist

import (
	"fmt"
	"time"
)

// Entry links a user to a player they follow. Duplicates are allowed.
type Entry struct {
	ID        string
	UserID    string
	PlayerID  string
	Note      string
	CreatedAt time.Time
}

func (e Entry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("watchlist entry id is required")
	}
	if e.UserID == "" {
		return fmt.Errorf("watchlist user id is required")
	}
	if e.PlayerID == "" {
		return fmt.Errorf("watchlist player id is required")
	}
	return nil
}
