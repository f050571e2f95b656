package transfer

import (
	"fmt"
	"time"
)

const TypePermanent = "Permanent"

// Record is a completed move of a player between two clubs.
type Record struct {
	PlayerID string
	Date     time.Time
	FromClub string
	ToClub   string
	Fee      int64
	Type     string
}

func (r Record) Validate() error {
	if r.PlayerID == "" {
		return fmt.Errorf("transfer player id is required")
	}
	if r.FromClub == "" || r.ToClub == "" {
		return fmt.Errorf("transfer %s: clubs are required", r.PlayerID)
	}
	if r.Fee < 0 {
		return fmt.Errorf("transfer fee must not be negative")
	}
	return nil
}

// Probability is the confidence tier of a rumour.
type Probability string

const (
	ProbabilityLow    Probability = "Low"
	ProbabilityMedium Probability = "Medium"
	ProbabilityHigh   Probability = "High"
)

const RumourStatusActive = "Active"

// Rumour is a speculated move.
type Rumour struct {
	ID           string
	PlayerID     string
	FromClub     string
	ToClub       string
	Probability  Probability
	Source       string
	EstimatedFee int64
	Status       string
}

func (r Rumour) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("rumour id is required")
	}
	if r.PlayerID == "" {
		return fmt.Errorf("rumour %s: player id is required", r.ID)
	}
	switch r.Probability {
	case ProbabilityLow, ProbabilityMedium, ProbabilityHigh:
	default:
		return fmt.Errorf("invalid rumour probability: %s", r.Probability)
	}
	return nil
}
