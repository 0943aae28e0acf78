package pipeline

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jokersim/joker-engine-go/internal/cards"
	"github.com/jokersim/joker-engine-go/internal/effect"
	"github.com/jokersim/joker-engine-go/internal/joker"
)

func newProcessor() *Processor { return New(zerolog.Nop()) }

func handOf(cs ...cards.Card) cards.Hand { return cards.NewHand(cs...) }

func ctxFor(hand cards.Hand) *joker.Context {
	return joker.NewContext(joker.ContextParams{Hand: hand, Round: 1})
}

// addJoker constructs a registry kind and panics on failure; roster bugs
// should fail loudly in tests.
func addJoker(t *testing.T, col *joker.Collection, id joker.ID) {
	t.Helper()
	j, err := joker.New(id)
	require.NoError(t, err)
	col.Add(j)
}

func TestEvaluateZeroJokersIsIdentity(t *testing.T) {
	p := newProcessor()
	hand := handOf(cards.NewCard(cards.Ace, cards.Spade))
	res := p.EvaluateHand(ctxFor(hand), joker.NewCollection())
	assert.True(t, res.Aggregate.IsIdentity())
	assert.Empty(t, res.HookErrors)
	assert.Empty(t, res.Directives.DestroySlots)
}

func TestEvaluateEmptyHand(t *testing.T) {
	p := newProcessor()
	col := joker.NewCollection()
	addJoker(t, col, joker.TheJoker)
	res := p.EvaluateHand(ctxFor(cards.Hand{}), col)
	// The Joker is unconditional at hand level; per-card hooks had no
	// cards to fire on.
	assert.Equal(t, int64(4), res.Aggregate.Mult)
	assert.Empty(t, res.HookErrors)
}

func TestAdditiveThenMultiplicative(t *testing.T) {
	// Two flat +4 jokers plus a pair-gated x2; with a pair played the
	// aggregate folds to mult 8, times 2.
	p := newProcessor()
	col := joker.NewCollection()
	addJoker(t, col, joker.TheJoker)
	addJoker(t, col, joker.TheJoker)
	addJoker(t, col, joker.TheDuo)

	hand := handOf(
		cards.NewCard(cards.Nine, cards.Spade),
		cards.NewCard(cards.Nine, cards.Heart),
	)
	res := p.EvaluateHand(ctxFor(hand), col)
	require.Empty(t, res.HookErrors)
	assert.Equal(t, int64(8), res.Aggregate.Mult)
	assert.Equal(t, 2.0, res.Aggregate.MultTimes)

	// Base mult 2 for a pair: (2 + 8) * 2 = 20.
	assert.Equal(t, int64(20), res.Aggregate.FinalMult(2))
}

type erroringJoker struct {
	joker.Base
	calls int
}

func (e *erroringJoker) OnHandPlayed(*joker.Context) (effect.Effect, error) {
	e.calls++
	return effect.AddMult(99), errors.New("boom")
}

func (e *erroringJoker) OnCardScored(*joker.Context, cards.Card, int) (effect.Effect, error) {
	return effect.Identity(), nil
}

func TestHookErrorIsIsolated(t *testing.T) {
	p := newProcessor()
	col := joker.NewCollection()
	bad := &erroringJoker{Base: joker.NewBase("bad", "Bad", "", joker.Common, 1)}
	col.Add(bad)
	addJoker(t, col, joker.TheJoker)

	hand := handOf(cards.NewCard(cards.Two, cards.Club))
	res := p.EvaluateHand(ctxFor(hand), col)

	// The failing hook contributed nothing; the sibling still fired.
	assert.Equal(t, int64(4), res.Aggregate.Mult)
	require.Len(t, res.HookErrors, 1)
	assert.Equal(t, joker.ID("bad"), res.HookErrors[0].ID)
	assert.Equal(t, "on_hand_played", res.HookErrors[0].Hook)
	assert.Error(t, res.Err())
}

type selfDestroyer struct {
	joker.Base
	cardCalls int
}

func (s *selfDestroyer) OnHandPlayed(*joker.Context) (effect.Effect, error) {
	return effect.Effect{Mult: 5, DestroySelf: true}, nil
}

func (s *selfDestroyer) OnCardScored(*joker.Context, cards.Card, int) (effect.Effect, error) {
	s.cardCalls++
	return effect.AddChips(1), nil
}

func TestDestroyIsDeferredToEndOfPass(t *testing.T) {
	p := newProcessor()
	col := joker.NewCollection()
	sd := &selfDestroyer{Base: joker.NewBase("ephemeral", "Ephemeral", "", joker.Common, 1)}
	col.Add(sd)
	addJoker(t, col, joker.TheJoker)

	hand := handOf(
		cards.NewCard(cards.Two, cards.Club),
		cards.NewCard(cards.Three, cards.Club),
	)
	res := p.EvaluateHand(ctxFor(hand), col)

	// The destroyed joker still participated in the full pass, including
	// the per-card pass after it flagged itself.
	assert.Equal(t, 2, sd.cardCalls)
	assert.Equal(t, int64(9), res.Aggregate.Mult)
	assert.Equal(t, int64(2), res.Aggregate.Chips)
	assert.Equal(t, []int{0}, res.Directives.DestroySlots)
	assert.Equal(t, 2, col.Len(), "the pipeline never mutates the collection")
}

type retriggerRequester struct {
	joker.Base
}

func (retriggerRequester) OnHandPlayed(*joker.Context) (effect.Effect, error) {
	return effect.Identity(), nil
}

func (retriggerRequester) OnCardScored(*joker.Context, cards.Card, int) (effect.Effect, error) {
	return effect.Effect{Retrigger: 1}, nil
}

type chipPerCard struct {
	joker.Base
	calls int
}

func (c *chipPerCard) OnHandPlayed(*joker.Context) (effect.Effect, error) {
	return effect.Identity(), nil
}

func (c *chipPerCard) OnCardScored(*joker.Context, cards.Card, int) (effect.Effect, error) {
	c.calls++
	return effect.AddChips(10), nil
}

func TestRetriggerReplaysCardForSiblings(t *testing.T) {
	p := newProcessor()
	col := joker.NewCollection()
	col.Add(retriggerRequester{Base: joker.NewBase("again", "Again", "", joker.Common, 1)})
	counter := &chipPerCard{Base: joker.NewBase("chipper", "Chipper", "", joker.Common, 1)}
	col.Add(counter)

	hand := handOf(cards.NewCard(cards.Five, cards.Spade))
	res := p.EvaluateHand(ctxFor(hand), col)

	// One natural evaluation plus one retriggered evaluation.
	assert.Equal(t, 2, counter.calls)
	assert.Equal(t, int64(20), res.Aggregate.Chips)
}

func TestRetriggerBudgetIsFinite(t *testing.T) {
	p := newProcessor()
	col := joker.NewCollection()
	// Several retrigger sources stacked on a multi-card hand must stay
	// inside the per-pass budget.
	for i := 0; i < 6; i++ {
		col.Add(retriggerRequester{Base: joker.NewBase("again", "Again", "", joker.Common, 1)})
	}
	counter := &chipPerCard{Base: joker.NewBase("chipper", "Chipper", "", joker.Common, 1)}
	col.Add(counter)

	hand := handOf(
		cards.NewCard(cards.Two, cards.Spade),
		cards.NewCard(cards.Three, cards.Spade),
		cards.NewCard(cards.Four, cards.Spade),
		cards.NewCard(cards.Five, cards.Spade),
		cards.NewCard(cards.Six, cards.Spade),
	)
	p.EvaluateHand(ctxFor(hand), col)

	// 5 natural calls plus at most the pass budget of retriggered ones.
	assert.LessOrEqual(t, counter.calls, 5+40)
	assert.Greater(t, counter.calls, 5)
}

func TestSeltzerWindowClosesWithoutAFinalRetrigger(t *testing.T) {
	p := newProcessor()
	col := joker.NewCollection()
	addJoker(t, col, joker.Seltzer)
	counter := &chipPerCard{Base: joker.NewBase("chipper", "Chipper", "", joker.Common, 1)}
	col.Add(counter)

	hand := handOf(cards.NewCard(cards.Five, cards.Spade))
	for i := 0; i < 10; i++ {
		res := p.EvaluateHand(ctxFor(hand), col)
		require.Empty(t, res.Directives.DestroySlots, "hand %d", i+1)
	}
	// Ten hands, each scored once naturally and replayed once.
	assert.Equal(t, 20, counter.calls)

	// The eleventh hand pops the joker; the popping hand itself must not
	// replay anything.
	res := p.EvaluateHand(ctxFor(hand), col)
	assert.Equal(t, []int{0}, res.Directives.DestroySlots)
	assert.Equal(t, 21, counter.calls)
}

func TestDeterministicEvaluation(t *testing.T) {
	// The same joker list and hand evaluated twice from identically seeded
	// contexts produce identical aggregates, including random jokers.
	eval := func() effect.Aggregate {
		p := newProcessor()
		col := joker.NewCollection()
		addJoker(t, col, joker.Misprint)
		addJoker(t, col, joker.TheJoker)
		hand := handOf(cards.NewCard(cards.King, cards.Club))
		res := p.EvaluateHand(ctxFor(hand), col)
		require.Empty(t, res.HookErrors)
		return res.Aggregate
	}
	assert.Equal(t, eval(), eval())
}
