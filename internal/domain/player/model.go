package player

import (
	"fmt"
	"time"
)

// Foot is the preferred side of a player.
type Foot string

const (
	FootRight Foot = "Right"
	FootLeft  Foot = "Left"
	FootBoth  Foot = "Both"
)

var AllFeet = []Foot{FootRight, FootLeft, FootBoth}

// Status is the market status of a player.
type Status string

const (
	StatusActive         Status = "Active"
	StatusTransferListed Status = "Transfer Listed"
	StatusFreeAgent      Status = "Free Agent"
)

// Player is a generated market profile. Money fields are in base currency units.
type Player struct {
	ID                 string
	Name               string
	Age                int
	Nationality        string
	Position           string
	Foot               Foot
	HeightCM           int
	Club               string
	JerseyNumber       int
	ContractUntil      time.Time
	MarketValue        int64
	HighestValue       int64
	Status             Status
	InternationalCaps  int
	InternationalGoals int
	PreviousClub       *string
	TransferFee        *int64
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Club == "" {
		return fmt.Errorf("player club is required")
	}
	if p.MarketValue < 0 {
		return fmt.Errorf("player market value must not be negative")
	}
	if (p.PreviousClub == nil) != (p.TransferFee == nil) {
		return fmt.Errorf("player %s: previous club and transfer fee must be set together", p.ID)
	}
	switch p.Status {
	case StatusActive, StatusTransferListed, StatusFreeAgent:
	default:
		return fmt.Errorf("invalid player status: %s", p.Status)
	}

	return nil
}

// HasPreviousClub reports whether the player moved at least once.
func (p Player) HasPreviousClub() bool {
	return p.PreviousClub != nil
}
