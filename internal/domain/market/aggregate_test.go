package market

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/domain/transfer"
)

func TestSnapshot_ValueByLeague_SkipsUnmatchedClubs(t *testing.T) {
	t.Parallel()

	got := fixtureSnapshot(t).ValueByLeague()
	assert.Equal(t, []Group{
		{Key: "Premier League", Value: 330_000_000, Count: 2},
		{Key: "La Liga", Value: 280_000_000, Count: 2},
	}, got)
}

func TestSnapshot_ValueByNationality(t *testing.T) {
	t.Parallel()

	got := fixtureSnapshot(t).ValueByNationality()
	assert.Equal(t, "Spain", got[0].Key)
	assert.Equal(t, int64(280_000_000), got[0].Value)
	assert.Equal(t, []string{"France", "Morocco"}, []string{got[3].Key, got[4].Key})
}

func TestSnapshot_CountByPosition(t *testing.T) {
	t.Parallel()

	got := fixtureSnapshot(t).CountByPosition()
	assert.Equal(t, []Group{
		{Key: "CM", Value: 105_000_000, Count: 2},
		{Key: "RW", Value: 330_000_000, Count: 2},
		{Key: "LW", Value: 5_000_000, Count: 1},
		{Key: "ST", Value: 180_000_000, Count: 1},
	}, got)
}

func TestSnapshot_AgeHistogram(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []AgeBucket{
		{Age: 17, Count: 1},
		{Age: 21, Count: 1},
		{Age: 23, Count: 1},
		{Age: 24, Count: 1},
		{Age: 31, Count: 2},
	}, fixtureSnapshot(t).AgeHistogram())
}

func TestSnapshot_Summary(t *testing.T) {
	t.Parallel()

	s := fixtureSnapshot(t)
	got := s.Summary()

	assert.Equal(t, 6, got.Players)
	assert.Equal(t, int64(620_000_000), got.TotalValue)
	assert.Equal(t, int64(103_333_333), got.AverageValue)
	assert.Equal(t, 13, got.Leagues)
	assert.Equal(t, len(s.Catalog().Clubs())-1, got.Clubs)
	assert.Equal(t, 5, got.Nationalities)
	assert.Equal(t, 1, got.FreeAgents)
	assert.Equal(t, 1, got.Rumours)
}

func TestDataset_ValidateReferentialIntegrity(t *testing.T) {
	t.Parallel()

	ds := generateDataset(t, 3)
	assert.NoError(t, ds.Validate())

	broken := ds
	broken.Transfers = append([]transfer.Record(nil), ds.Transfers...)
	if len(broken.Transfers) > 0 {
		broken.Transfers[0].ToClub = "Somewhere Else"
		assert.Error(t, broken.Validate())
	}

	orphan := ds
	orphan.History = append(append(orphan.History[:0:0], ds.History...), ds.History[0])
	orphan.History[len(orphan.History)-1].PlayerID = "TM-99999"
	assert.Error(t, orphan.Validate())
}
