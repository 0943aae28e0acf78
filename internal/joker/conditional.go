package joker

import (
	"github.com/jokersim/joker-engine-go/internal/cards"
	"github.com/jokersim/joker-engine-go/internal/effect"
)

// The conditional framework expresses jokers as declarative trigger
// condition plus effect pairs. Conditions compose with And/Or/Not over
// primitive predicates of the context, so a joker like "if the hand is a
// Flush and money is at least 10, gain ×2 mult" is data, not code.

// Condition is a predicate over the evaluation context.
type Condition interface {
	Eval(ctx *Context) bool
}

// CondFunc adapts a plain function to a Condition.
type CondFunc func(ctx *Context) bool

func (f CondFunc) Eval(ctx *Context) bool { return f(ctx) }

// And holds when every child condition holds. Evaluation short-circuits.
func And(conds ...Condition) Condition {
	return CondFunc(func(ctx *Context) bool {
		for _, c := range conds {
			if !c.Eval(ctx) {
				return false
			}
		}
		return true
	})
}

// Or holds when any child condition holds. Evaluation short-circuits.
func Or(conds ...Condition) Condition {
	return CondFunc(func(ctx *Context) bool {
		for _, c := range conds {
			if c.Eval(ctx) {
				return true
			}
		}
		return false
	})
}

// Not negates a condition.
func Not(c Condition) Condition {
	return CondFunc(func(ctx *Context) bool { return !c.Eval(ctx) })
}

// Primitive predicates.

// HandTypeIs holds when the played hand contains the rank.
func HandTypeIs(r cards.HandRank) Condition {
	return CondFunc(func(ctx *Context) bool { return ctx.HandRank().Contains(r) })
}

// HandTypeExactly holds only for the exact classification.
func HandTypeExactly(r cards.HandRank) Condition {
	return CondFunc(func(ctx *Context) bool { return ctx.HandRank() == r })
}

// MoneyAtLeast holds when the wallet is at or above n.
func MoneyAtLeast(n int64) Condition {
	return CondFunc(func(ctx *Context) bool { return ctx.Money() >= n })
}

// MoneyAtMost holds when the wallet is at or below n.
func MoneyAtMost(n int64) Condition {
	return CondFunc(func(ctx *Context) bool { return ctx.Money() <= n })
}

// AnteAtLeast holds from the given ante on.
func AnteAtLeast(n int) Condition {
	return CondFunc(func(ctx *Context) bool { return ctx.Ante() >= n })
}

// DiscardsRemainingIs holds when exactly n discards remain.
func DiscardsRemainingIs(n int) Condition {
	return CondFunc(func(ctx *Context) bool { return ctx.DiscardsRemaining() == n })
}

// FirstHandOfRound holds for the first hand played in a round.
func FirstHandOfRound() Condition {
	return CondFunc(func(ctx *Context) bool { return ctx.HandsPlayedThisRound() == 0 })
}

// FinalHandOfRound holds for the last hand of a round.
func FinalHandOfRound() Condition {
	return CondFunc(func(ctx *Context) bool { return ctx.HandsRemaining() <= 1 })
}

// NoFaceCardsHeld holds when no held card is a face card.
func NoFaceCardsHeld() Condition {
	return CondFunc(func(ctx *Context) bool {
		for _, c := range ctx.Held() {
			if c.Enhancement != cards.Stone && c.Rank.IsFace() {
				return false
			}
		}
		return true
	})
}

// HandAllSameColor holds when every played card is black (spades/clubs) or
// every played card is red (hearts/diamonds).
func HandAllSameColor() Condition {
	return CondFunc(func(ctx *Context) bool {
		black, red := 0, 0
		for _, c := range ctx.Hand().Cards {
			if c.Enhancement == cards.Stone {
				continue
			}
			if c.Suit == cards.Spade || c.Suit == cards.Club {
				black++
			} else {
				red++
			}
		}
		return black == 0 || red == 0
	})
}

// Chance holds with probability 1/n per evaluation, drawn from the
// context's deterministic random source. Each owned Oops! All 6s halves
// the odds denominator.
func Chance(n int) Condition {
	return CondFunc(func(ctx *Context) bool {
		for _, j := range ctx.Jokers() {
			if j.ID() == OopsAllSixes {
				n /= 2
			}
		}
		if n <= 1 {
			return true
		}
		return ctx.Random().Intn(n) == 0
	})
}

// ConditionalJoker pairs a condition with an effect. EffectFn receives the
// context so effects can scale off it; Effect is used when EffectFn is nil.
type ConditionalJoker struct {
	Base
	Cond     Condition
	When     effect.Effect
	EffectFn func(ctx *Context) effect.Effect
	// CardCond, when set, moves the joker to the per-card hook: the
	// condition gates the hand and CardCond gates each card.
	CardCond func(ctx *Context, card cards.Card) bool
}

var _ interface {
	Identity
	Gameplay
} = (*ConditionalJoker)(nil)

func (c *ConditionalJoker) emit(ctx *Context) effect.Effect {
	if c.EffectFn != nil {
		return c.EffectFn(ctx)
	}
	return c.When
}

func (c *ConditionalJoker) OnHandPlayed(ctx *Context) (effect.Effect, error) {
	if c.CardCond != nil {
		return effect.Identity(), nil
	}
	if c.Cond != nil && !c.Cond.Eval(ctx) {
		return effect.Identity(), nil
	}
	return c.emit(ctx), nil
}

func (c *ConditionalJoker) OnCardScored(ctx *Context, card cards.Card, _ int) (effect.Effect, error) {
	if c.CardCond == nil || !c.CardCond(ctx, card) {
		return effect.Identity(), nil
	}
	if c.Cond != nil && !c.Cond.Eval(ctx) {
		return effect.Identity(), nil
	}
	return c.emit(ctx), nil
}
