package joker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gameplayFor(t *testing.T, id ID) Gameplay {
	t.Helper()
	j, err := New(id)
	require.NoError(t, err)
	g, ok := SupportsGameplay(j)
	require.True(t, ok)
	return g
}

func TestRedCardScalesWithSkippedPacks(t *testing.T) {
	g := gameplayFor(t, RedCard)

	e, err := g.OnHandPlayed(NewContext(ContextParams{}))
	require.NoError(t, err)
	assert.True(t, e.IsIdentity(), "no packs skipped yet")

	e, err = g.OnHandPlayed(NewContext(ContextParams{PacksSkipped: 2}))
	require.NoError(t, err)
	assert.Equal(t, int64(6), e.Mult)
}

func TestSteelJokerScalesWithSteelCardsInDeck(t *testing.T) {
	g := gameplayFor(t, SteelJoker)

	e, err := g.OnHandPlayed(NewContext(ContextParams{}))
	require.NoError(t, err)
	assert.True(t, e.IsIdentity(), "no steel cards, no multiplier")

	e, err = g.OnHandPlayed(NewContext(ContextParams{SteelCardsInDeck: 4}))
	require.NoError(t, err)
	assert.Equal(t, 2.0, e.MultTimes)
}

func TestThrowbackScalesWithSkippedBlinds(t *testing.T) {
	g := gameplayFor(t, Throwback)

	e, err := g.OnHandPlayed(NewContext(ContextParams{BlindsSkipped: 1}))
	require.NoError(t, err)
	assert.Equal(t, 1.25, e.MultTimes)
}
