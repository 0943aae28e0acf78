package joker

import (
	"fmt"

	"github.com/jokersim/joker-engine-go/internal/cards"
	"github.com/jokersim/joker-engine-go/internal/effect"
)

// The static framework covers jokers whose effect is a fixed formula with
// no internal state: a chips/mult/xmult bundle gated by a simple trigger
// condition, firing either once per hand or once per scoring card. These
// are the bulk of the roster and the hot path of every evaluation, so the
// implementation is a couple of field reads and comparisons per call.

// StaticCondition gates a static joker's effect.
type StaticCondition interface {
	// MatchesHand gates the per-hand hook.
	MatchesHand(ctx *Context) bool
	// MatchesCard gates the per-card hook.
	MatchesCard(ctx *Context, card cards.Card) bool
}

// Always fires unconditionally.
type Always struct{}

func (Always) MatchesHand(*Context) bool            { return true }
func (Always) MatchesCard(*Context, cards.Card) bool { return true }

// SuitScored fires per card of the given suit. Stone cards have no suit.
type SuitScored struct{ Suit cards.Suit }

func (s SuitScored) MatchesHand(*Context) bool { return false }
func (s SuitScored) MatchesCard(_ *Context, c cards.Card) bool {
	return c.Enhancement != cards.Stone && c.Suit == s.Suit
}

// AnySuitScored fires per card matching any listed suit.
type AnySuitScored struct{ Suits []cards.Suit }

func (s AnySuitScored) MatchesHand(*Context) bool { return false }
func (s AnySuitScored) MatchesCard(_ *Context, c cards.Card) bool {
	if c.Enhancement == cards.Stone {
		return false
	}
	for _, suit := range s.Suits {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

// RankScored fires per card of the given rank.
type RankScored struct{ Rank cards.Rank }

func (r RankScored) MatchesHand(*Context) bool { return false }
func (r RankScored) MatchesCard(_ *Context, c cards.Card) bool {
	return c.Enhancement != cards.Stone && c.Rank == r.Rank
}

// AnyRankScored fires per card matching any listed rank.
type AnyRankScored struct{ Ranks []cards.Rank }

func (r AnyRankScored) MatchesHand(*Context) bool { return false }
func (r AnyRankScored) MatchesCard(_ *Context, c cards.Card) bool {
	if c.Enhancement == cards.Stone {
		return false
	}
	for _, rank := range r.Ranks {
		if c.Rank == rank {
			return true
		}
	}
	return false
}

// FaceScored fires per face card.
type FaceScored struct{}

func (FaceScored) MatchesHand(*Context) bool { return false }
func (FaceScored) MatchesCard(_ *Context, c cards.Card) bool {
	return c.Enhancement != cards.Stone && c.Rank.IsFace()
}

// HandContains fires per hand when the played hand contains the rank; a
// Full House contains a Pair, and so on.
type HandContains struct{ Rank cards.HandRank }

func (h HandContains) MatchesHand(ctx *Context) bool {
	return ctx.HandRank().Contains(h.Rank)
}
func (h HandContains) MatchesCard(*Context, cards.Card) bool { return false }

// HandSizeAtMost fires per hand when the hand has at most N cards.
type HandSizeAtMost struct{ N int }

func (h HandSizeAtMost) MatchesHand(ctx *Context) bool {
	return ctx.Hand().Len() <= h.N
}
func (h HandSizeAtMost) MatchesCard(*Context, cards.Card) bool { return false }

// StaticJoker is a fixed-formula joker built by StaticBuilder. It
// implements Identity and Gameplay only.
type StaticJoker struct {
	Base
	cond     StaticCondition
	chips    int64
	mult     int64
	xmult    float64
	money    int64
	perCard  bool
	// scale derives a per-trigger multiplier from the context, for formulas
	// like "+30 chips per remaining discard". Nil means a flat bonus.
	scale func(ctx *Context) int64
}

var _ interface {
	Identity
	Gameplay
} = (*StaticJoker)(nil)

func (s *StaticJoker) buildEffect(ctx *Context) effect.Effect {
	n := int64(1)
	if s.scale != nil {
		n = s.scale(ctx)
		if n <= 0 {
			return effect.Identity()
		}
	}
	return effect.Effect{
		Chips:     s.chips * n,
		Mult:      s.mult * n,
		Money:     s.money * n,
		MultTimes: s.xmult,
	}
}

// OnHandPlayed applies the effect when the joker is hand-scoped and its
// condition holds.
func (s *StaticJoker) OnHandPlayed(ctx *Context) (effect.Effect, error) {
	if s.perCard || !s.cond.MatchesHand(ctx) {
		return effect.Identity(), nil
	}
	return s.buildEffect(ctx), nil
}

// OnCardScored applies the effect when the joker is card-scoped and the
// card matches.
func (s *StaticJoker) OnCardScored(ctx *Context, card cards.Card, _ int) (effect.Effect, error) {
	if !s.perCard || !s.cond.MatchesCard(ctx, card) {
		return effect.Identity(), nil
	}
	return s.buildEffect(ctx), nil
}

// StaticBuilder assembles a StaticJoker. Build fails when the definition
// is incoherent rather than producing a silent no-op joker.
type StaticBuilder struct {
	j   StaticJoker
	err error
}

// NewStatic starts a builder with identity metadata and a Common rarity.
func NewStatic(id ID, name, description string) *StaticBuilder {
	return &StaticBuilder{j: StaticJoker{
		Base: NewBase(id, name, description, Common, 4),
		cond: Always{},
	}}
}

func (b *StaticBuilder) Rarity(r Rarity) *StaticBuilder {
	b.j.Base.rarity = r
	return b
}

func (b *StaticBuilder) Cost(c int64) *StaticBuilder {
	b.j.Base.cost = c
	return b
}

func (b *StaticBuilder) Chips(n int64) *StaticBuilder {
	b.j.chips = n
	return b
}

func (b *StaticBuilder) Mult(n int64) *StaticBuilder {
	b.j.mult = n
	return b
}

func (b *StaticBuilder) XMult(x float64) *StaticBuilder {
	if x < 0 {
		b.err = fmt.Errorf("static joker %s: negative mult multiplier %v", b.j.ID(), x)
	}
	b.j.xmult = x
	return b
}

func (b *StaticBuilder) Money(n int64) *StaticBuilder {
	b.j.money = n
	return b
}

func (b *StaticBuilder) Condition(c StaticCondition) *StaticBuilder {
	b.j.cond = c
	return b
}

// PerCard makes the effect fire once per matching scored card.
func (b *StaticBuilder) PerCard() *StaticBuilder {
	b.j.perCard = true
	return b
}

// PerHand makes the effect fire once per hand (the default).
func (b *StaticBuilder) PerHand() *StaticBuilder {
	b.j.perCard = false
	return b
}

// ScaledBy derives the trigger count from the context.
func (b *StaticBuilder) ScaledBy(f func(ctx *Context) int64) *StaticBuilder {
	b.j.scale = f
	return b
}

// Build returns the finished joker.
func (b *StaticBuilder) Build() (*StaticJoker, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.j.chips == 0 && b.j.mult == 0 && b.j.xmult == 0 && b.j.money == 0 {
		return nil, fmt.Errorf("static joker %s: no effect configured", b.j.ID())
	}
	j := b.j
	return &j, nil
}

// MustBuild is Build for the compile-time roster, where a bad definition is
// a programming error.
func (b *StaticBuilder) MustBuild() *StaticJoker {
	j, err := b.Build()
	if err != nil {
		panic(err)
	}
	return j
}
