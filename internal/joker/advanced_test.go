package joker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jokersim/joker-engine-go/internal/cards"
	"github.com/jokersim/joker-engine-go/internal/effect"
)

func TestAdvancedStateRoundTrip(t *testing.T) {
	j, err := New(GreenJoker)
	require.NoError(t, err)
	adv, ok := j.(*AdvancedJoker)
	require.True(t, ok)

	ctx := NewContext(ContextParams{
		Hand:  cards.NewHand(cards.NewCard(cards.Two, cards.Spade)),
		Round: 1,
	})
	ctx.SetSlot(0)
	for i := 0; i < 4; i++ {
		_, err := adv.OnHandPlayed(ctx)
		require.NoError(t, err)
	}

	raw, err := adv.SerializeState()
	require.NoError(t, err)

	fresh, err := New(GreenJoker)
	require.NoError(t, err)
	restored := fresh.(*AdvancedJoker)
	require.NoError(t, restored.DeserializeState(raw))
	assert.Equal(t, adv.Counter("mult"), restored.Counter("mult"))
}

func TestAdvancedRejectsNewerVersion(t *testing.T) {
	j, err := New(GreenJoker)
	require.NoError(t, err)
	adv := j.(*AdvancedJoker)

	payload, err := json.Marshal(map[string]any{
		"version":  advancedStateVersion + 1,
		"counters": map[string]float64{"mult": 3},
	})
	require.NoError(t, err)
	require.ErrorIs(t, adv.DeserializeState(payload), ErrUnsupportedVersion)
}

func TestAdvancedFailedLoadLeavesStateUntouched(t *testing.T) {
	adv := &AdvancedJoker{
		Base:            NewBase("counter_test", "Counter", "", Common, 4),
		InitialCounters: map[string]float64{"n": 7},
	}
	require.Equal(t, 7.0, adv.Counter("n"))

	require.ErrorIs(t, adv.DeserializeState(json.RawMessage(`{broken`)), ErrBadState)
	assert.Equal(t, 7.0, adv.Counter("n"), "malformed payload must not clobber state")

	nan := json.RawMessage(`{"version":1,"counters":{"n":"NaN"}}`)
	require.Error(t, adv.DeserializeState(nan))
	assert.Equal(t, 7.0, adv.Counter("n"))
}

func TestAdvancedConditionCache(t *testing.T) {
	evals := 0
	adv := &AdvancedJoker{
		Base: NewBase("cache_test", "Cache", "", Common, 4),
		Cond: CondFunc(func(ctx *Context) bool {
			evals++
			return ctx.Ante() >= 2
		}),
		Fingerprint: func(ctx *Context) uint64 { return uint64(ctx.Ante()) },
		HandEffect: func(*Context, map[string]float64) effect.Effect {
			return effect.AddMult(10)
		},
	}

	ctx := NewContext(ContextParams{Ante: 2, Round: 3})
	ctx.SetSlot(0)
	for i := 0; i < 5; i++ {
		e, err := adv.OnHandPlayed(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(10), e.Mult)
	}
	assert.Equal(t, 1, evals, "same fingerprint within a round is served from cache")
	assert.Equal(t, uint64(4), adv.CacheStats().Hits)
	assert.Equal(t, uint64(1), adv.CacheStats().Misses)
}

func TestAdvancedCacheInvalidatesOnNewRound(t *testing.T) {
	evals := 0
	adv := &AdvancedJoker{
		Base:        NewBase("epoch_test", "Epoch", "", Common, 4),
		Cond:        CondFunc(func(*Context) bool { evals++; return true }),
		Fingerprint: func(*Context) uint64 { return 42 },
		HandEffect: func(*Context, map[string]float64) effect.Effect {
			return effect.AddMult(1)
		},
	}

	r1 := NewContext(ContextParams{Round: 1})
	r1.SetSlot(0)
	_, err := adv.OnHandPlayed(r1)
	require.NoError(t, err)
	_, err = adv.OnHandPlayed(r1)
	require.NoError(t, err)
	assert.Equal(t, 1, evals)

	// Round boundary: the cached result must not survive.
	r2 := NewContext(ContextParams{Round: 2})
	r2.SetSlot(0)
	_, err = adv.OnHandPlayed(r2)
	require.NoError(t, err)
	assert.Equal(t, 2, evals)
}

func TestAdvancedPublishesCounters(t *testing.T) {
	store := NewStateStore()
	adv := &AdvancedJoker{
		Base:            NewBase("pub_test", "Pub", "", Common, 4),
		InitialCounters: map[string]float64{"stack": 0},
		HandEffect: func(_ *Context, counters map[string]float64) effect.Effect {
			counters["stack"]++
			return effect.AddMult(int64(counters["stack"]))
		},
	}

	ctx := NewContext(ContextParams{States: store, Round: 1})
	ctx.SetSlot(2)
	_, err := adv.OnHandPlayed(ctx)
	require.NoError(t, err)

	v, ok := store.Get(StateKey{ID: "pub_test", Slot: 2}, "stack")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	// Selling drops the published state.
	adv.OnSell(ctx)
	_, ok = store.Get(StateKey{ID: "pub_test", Slot: 2}, "stack")
	assert.False(t, ok)
}
