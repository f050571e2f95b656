package catalog

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeed(t *testing.T) {
	t.Parallel()

	seed, err := DefaultSeed()
	require.NoError(t, err)
	require.NotEmpty(t, seed.Players)
	assert.Len(t, seed.Rumours, 10)

	c, err := Default()
	require.NoError(t, err)

	names := make(map[string]struct{}, len(seed.Players))
	for _, p := range seed.Players {
		_, dup := names[p.Name]
		assert.False(t, dup, "duplicate seed player %q", p.Name)
		names[p.Name] = struct{}{}

		_, ok := c.Position(p.Position)
		assert.True(t, ok, "position %q of %s", p.Position, p.Name)
		assert.Positive(t, p.Value, p.Name)
	}

	freeAgents := 0
	for _, p := range seed.Players {
		if c.IsFreeAgent(p.Club) {
			freeAgents++
			assert.Zero(t, p.Number, "free agent %s has no squad number", p.Name)
		}
	}
	assert.Positive(t, freeAgents)
}

func TestLoadSeed_MissingRequiredField(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	cases := map[string]string{
		"missing value":      "players:\n  - {name: A, club: Ajax, position: ST, nationality: X, age: 20, number: 9}\n",
		"missing number":     "players:\n  - {name: A, club: Ajax, position: ST, nationality: X, age: 20, value: 3}\n",
		"missing name":       "players:\n  - {club: Ajax, position: ST, nationality: X, age: 20, value: 3, number: 9}\n",
		"unknown position":   "players:\n  - {name: A, club: Ajax, position: SW, nationality: X, age: 20, value: 3, number: 9}\n",
		"bad probability":    "players:\n  - {name: A, club: Ajax, position: ST, nationality: X, age: 20, value: 3, number: 9}\nrumours:\n  - {player: A, from: Ajax, to: PSG, probability: Certain, fee: 3}\n",
		"rumour without fee": "players:\n  - {name: A, club: Ajax, position: ST, nationality: X, age: 20, value: 3, number: 9}\nrumours:\n  - {player: A, from: Ajax, to: PSG, probability: Low}\n",
		"no players":         "rumours: []\n",
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadSeed([]byte(raw), c)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidData), "error should be marked: %v", err)
		})
	}
}

func TestLoadSeed_ZeroNumberAndUnknownClubAreValid(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	raw := "players:\n" +
		"  - {name: A, club: Free Agent, position: CB, nationality: X, age: 30, value: 2, number: 0}\n" +
		"  - {name: B, club: Somewhere FC, position: GK, nationality: Y, age: 25, value: 1.5, number: 1}\n"

	seed, err := LoadSeed([]byte(raw), c)
	require.NoError(t, err)
	require.Len(t, seed.Players, 2)
	assert.Equal(t, 0, seed.Players[0].Number)
	assert.InDelta(t, 1.5, seed.Players[1].Value, 1e-9)
	assert.Empty(t, seed.Rumours)
}
