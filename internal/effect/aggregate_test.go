package effect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulateAdditiveThenMultiplier(t *testing.T) {
	// Two +4 mult jokers and one x2 joker: additive first, product folded
	// in at the end. Base mult 4 -> (4+4+4) * 2 = 24.
	agg := NewAggregate()
	require.NoError(t, agg.Accumulate(AddMult(4)))
	require.NoError(t, agg.Accumulate(AddMult(4)))
	require.NoError(t, agg.Accumulate(TimesMult(2)))

	assert.Equal(t, int64(8), agg.Mult)
	assert.Equal(t, 2.0, agg.MultTimes)
	assert.Equal(t, int64(24), agg.FinalMult(4))
}

func TestMultCapIsExact(t *testing.T) {
	agg := NewAggregate()
	require.NoError(t, agg.Accumulate(AddMult(2_000_000)))
	assert.Equal(t, MaxMult, agg.Mult, "cap applies after each accumulation step")

	// The cap survives multiplication too.
	require.NoError(t, agg.Accumulate(TimesMult(3)))
	assert.Equal(t, MaxMult, agg.FinalMult(0))
}

func TestCapAppliesPerStepNotAtEnd(t *testing.T) {
	agg := NewAggregate()
	require.NoError(t, agg.Accumulate(AddMult(900_000)))
	require.NoError(t, agg.Accumulate(AddMult(900_000)))
	// Not 1,800,000 clamped once at the end: the second step already
	// started from a capped 900,000.
	assert.Equal(t, MaxMult, agg.Mult)
}

func TestZeroEffectsIsIdentity(t *testing.T) {
	agg := NewAggregate()
	assert.True(t, agg.IsIdentity())
	assert.Equal(t, int64(5), agg.FinalMult(5))
	assert.Equal(t, int64(50), agg.Score(10, 5))
}

func TestNonFiniteMultiplierRollsBack(t *testing.T) {
	agg := NewAggregate()
	require.NoError(t, agg.Accumulate(TimesMult(2)))

	err := agg.Accumulate(TimesMult(math.Inf(1)))
	require.ErrorIs(t, err, ErrNonFinite)
	assert.Equal(t, 2.0, agg.MultTimes, "rejected step leaves prior value")
	assert.Equal(t, 1, agg.NonFiniteRejections)

	err = agg.Accumulate(TimesMult(math.NaN()))
	require.ErrorIs(t, err, ErrNonFinite)
	assert.Equal(t, 2, agg.NonFiniteRejections)
}

func TestNonFiniteStepKeepsAdditiveFields(t *testing.T) {
	// A single effect can carry both additive fields and a bad multiplier;
	// only the multiplier step is rejected.
	agg := NewAggregate()
	e := Effect{Chips: 30, Mult: 4, MultTimes: math.Inf(1)}
	err := agg.Accumulate(e)
	require.ErrorIs(t, err, ErrNonFinite)
	assert.Equal(t, int64(30), agg.Chips)
	assert.Equal(t, int64(4), agg.Mult)
	assert.Equal(t, 1.0, agg.MultTimes)
}

func TestChipSaturationNoWrap(t *testing.T) {
	agg := NewAggregate()
	require.NoError(t, agg.Accumulate(AddChips(math.MaxInt64-10)))
	require.NoError(t, agg.Accumulate(AddChips(100)))
	assert.Equal(t, int64(math.MaxInt64), agg.Chips)
}

func TestScoreSaturates(t *testing.T) {
	agg := NewAggregate()
	require.NoError(t, agg.Accumulate(AddChips(math.MaxInt64-1)))
	require.NoError(t, agg.Accumulate(AddMult(MaxMult)))
	assert.Equal(t, int64(math.MaxInt64), agg.Score(0, 0))
}

func TestApplyMoneyClampsAtApplication(t *testing.T) {
	agg := NewAggregate()
	require.NoError(t, agg.Accumulate(AddMoney(-10)))
	require.NoError(t, agg.Accumulate(AddMoney(3)))

	// The accumulated delta stays negative; only application clamps.
	assert.Equal(t, int64(-7), agg.Money)
	assert.Equal(t, int64(0), agg.ApplyMoney(4))
	assert.Equal(t, int64(5), agg.ApplyMoney(12))
}

func TestNegativeMultiplierFloorsAtZero(t *testing.T) {
	agg := NewAggregate()
	require.NoError(t, agg.Accumulate(TimesMult(-3)))
	assert.Equal(t, 0.0, agg.MultTimes)
	assert.Equal(t, int64(0), agg.FinalMult(10))
}

func TestEffectIdentity(t *testing.T) {
	assert.True(t, Identity().IsIdentity())
	assert.False(t, AddMult(1).IsIdentity())
	assert.False(t, Effect{DestroySelf: true}.IsIdentity())
	assert.False(t, TimesMult(1).IsIdentity(), "an explicit x1 is still a contribution")
}
