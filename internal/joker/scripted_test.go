package joker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jokersim/joker-engine-go/internal/cards"
)

func newScriptedForTest(t *testing.T, source string) *ScriptedJoker {
	t.Helper()
	j, err := NewScripted(NewBase("script_test", "Script", "", Rare, 10), source)
	require.NoError(t, err)
	return j
}

func TestScriptedEffect(t *testing.T) {
	j := newScriptedForTest(t, `({chips: 10, mult: 2})`)
	e, err := j.OnHandPlayed(NewContext(ContextParams{}))
	require.NoError(t, err)
	assert.Equal(t, int64(10), e.Chips)
	assert.Equal(t, int64(2), e.Mult)
}

func TestScriptedReadsContext(t *testing.T) {
	j := newScriptedForTest(t, `ctx.handType === "Pair" ? {mult: 8} : null`)

	pair := NewContext(ContextParams{Hand: cards.NewHand(
		cards.NewCard(cards.Nine, cards.Spade),
		cards.NewCard(cards.Nine, cards.Heart),
	)})
	e, err := j.OnHandPlayed(pair)
	require.NoError(t, err)
	assert.Equal(t, int64(8), e.Mult)

	high := NewContext(ContextParams{Hand: cards.NewHand(
		cards.NewCard(cards.Nine, cards.Spade),
	)})
	e, err = j.OnHandPlayed(high)
	require.NoError(t, err)
	assert.True(t, e.IsIdentity())
}

func TestScriptedCardView(t *testing.T) {
	j := newScriptedForTest(t, `ctx.cardSuit === "Hearts" ? {chips: 5} : null`)
	ctx := NewContext(ContextParams{})

	e, err := j.OnCardScored(ctx, cards.NewCard(cards.Two, cards.Heart), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), e.Chips)

	e, err = j.OnCardScored(ctx, cards.NewCard(cards.Two, cards.Spade), 0)
	require.NoError(t, err)
	assert.True(t, e.IsIdentity())
}

func TestScriptedCountersPersist(t *testing.T) {
	j := newScriptedForTest(t, `counters.n = (counters.n || 0) + 1; ({mult: counters.n})`)
	ctx := NewContext(ContextParams{})

	var last int64
	for i := 1; i <= 3; i++ {
		e, err := j.OnHandPlayed(ctx)
		require.NoError(t, err)
		last = e.Mult
	}
	assert.Equal(t, int64(3), last)

	raw, err := j.SerializeState()
	require.NoError(t, err)

	fresh := newScriptedForTest(t, `({mult: 1})`)
	require.NoError(t, fresh.DeserializeState(raw))
	e, err := fresh.OnHandPlayed(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), e.Mult, "restored counters and restored script both apply")
}

func TestScriptedRuntimeErrorSurfaces(t *testing.T) {
	j := newScriptedForTest(t, `nope.missing`)
	e, err := j.OnHandPlayed(NewContext(ContextParams{}))
	require.Error(t, err)
	assert.True(t, e.IsIdentity())
}

func TestScriptedRejectsBadPayloads(t *testing.T) {
	j := newScriptedForTest(t, `({mult: 1})`)

	require.ErrorIs(t, j.DeserializeState([]byte(`{"version":1,"source":""}`)), ErrBadState)
	require.ErrorIs(t, j.DeserializeState([]byte(`{"version":2,"source":"({mult:1})"}`)), ErrUnsupportedVersion)
	require.ErrorIs(t, j.DeserializeState([]byte(`{"version":1,"source":"syntax error ((("}`)), ErrBadState)
}

func TestNewScriptedRejectsBadSource(t *testing.T) {
	_, err := NewScripted(NewBase("bad", "Bad", "", Rare, 10), "")
	require.Error(t, err)
	_, err = NewScripted(NewBase("bad", "Bad", "", Rare, 10), "((")
	require.Error(t, err)
}
