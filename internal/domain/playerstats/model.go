package playerstats

import (
	"fmt"
	"math"
)

// SeasonStatistic is the production of one player in one season.
type SeasonStatistic struct {
	PlayerID    string
	Season      string
	Competition string
	Appearances int
	Goals       int
	Assists     int
	Minutes     int
}

func (s SeasonStatistic) Validate() error {
	if s.PlayerID == "" {
		return fmt.Errorf("statistic player id is required")
	}
	if s.Season == "" {
		return fmt.Errorf("statistic season is required")
	}
	if s.Appearances < 0 || s.Goals < 0 || s.Assists < 0 || s.Minutes < 0 {
		return fmt.Errorf("statistic %s/%s has negative counters", s.PlayerID, s.Season)
	}
	return nil
}

func (s SeasonStatistic) GoalContributions() int {
	return s.Goals + s.Assists
}

// PerAppearance divides n by appearances, rounded to two decimals.
func (s SeasonStatistic) PerAppearance(n int) float64 {
	if s.Appearances <= 0 {
		return 0
	}
	return math.Round(float64(n)/float64(s.Appearances)*100) / 100
}
