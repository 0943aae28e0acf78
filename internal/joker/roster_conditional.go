package joker

import (
	"math"

	"github.com/jokersim/joker-engine-go/internal/cards"
	"github.com/jokersim/joker-engine-go/internal/effect"
)

// The conditional roster: declarative trigger-plus-effect jokers whose
// conditions read more of the context than the static framework exposes.
func registerConditionalRoster(r *Registry) {
	defs := []func() *ConditionalJoker{
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(MysticSummit, "Mystic Summit", "+15 Mult when 0 discards remaining", Common, 5),
				Cond: DiscardsRemainingIs(0),
				When: effect.AddMult(15),
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(Misprint, "Misprint", "+0 to +23 Mult", Common, 4),
				EffectFn: func(ctx *Context) effect.Effect {
					return effect.AddMult(int64(ctx.Random().IntBetween(0, 23)))
				},
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(RaisedFist, "Raised Fist", "Adds double the rank chips of the lowest held card to Mult", Common, 5),
				EffectFn: func(ctx *Context) effect.Effect {
					lowest := int64(0)
					for _, c := range ctx.Held() {
						if c.Enhancement == cards.Stone {
							continue
						}
						if v := c.Rank.Chips(); lowest == 0 || v < lowest {
							lowest = v
						}
					}
					return effect.AddMult(2 * lowest)
				},
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(Blackboard, "Blackboard", "×3 Mult if all held cards are Spades or Clubs", Uncommon, 6),
				Cond: CondFunc(func(ctx *Context) bool {
					for _, c := range ctx.Held() {
						if c.Enhancement == cards.Stone {
							continue
						}
						if c.Suit == cards.Heart || c.Suit == cards.Diamond {
							return false
						}
					}
					return true
				}),
				When: effect.TimesMult(3),
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(Acrobat, "Acrobat", "×3 Mult on the final hand of the round", Uncommon, 6),
				Cond: FinalHandOfRound(),
				When: effect.TimesMult(3),
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(Burglar, "Burglar", "+3 Mult on the first hand of each round", Uncommon, 6),
				Cond: FirstHandOfRound(),
				When: effect.AddMult(3),
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(FacelessJoker, "Faceless Joker", "Earn $5 if 3 or more face cards are played", Common, 4),
				Cond: CondFunc(func(ctx *Context) bool {
					return ctx.Hand().CountFaces() >= 3
				}),
				When: effect.AddMoney(5),
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(BusinessCard, "Business Card", "Played face cards have a 1 in 2 chance to give $2 when scored", Common, 4),
				Cond: Chance(2),
				CardCond: func(_ *Context, c cards.Card) bool {
					return c.Enhancement != cards.Stone && c.Rank.IsFace()
				},
				When: effect.AddMoney(2),
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(Bloodstone, "Bloodstone", "Played Hearts have a 1 in 2 chance to give ×1.5 Mult when scored", Uncommon, 7),
				Cond: Chance(2),
				CardCond: func(_ *Context, c cards.Card) bool {
					return c.Enhancement != cards.Stone && c.Suit == cards.Heart
				},
				When: effect.TimesMult(1.5),
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(Triboulet, "Triboulet", "Played Kings and Queens give ×2 Mult when scored", Legendary, 20),
				CardCond: func(_ *Context, c cards.Card) bool {
					return c.Enhancement != cards.Stone && (c.Rank == cards.King || c.Rank == cards.Queen)
				},
				When: effect.TimesMult(2),
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(Baron, "Baron", "Each King held gives ×1.5 Mult", Rare, 8),
				EffectFn: func(ctx *Context) effect.Effect {
					kings := 0
					for _, c := range ctx.Held() {
						if c.Enhancement != cards.Stone && c.Rank == cards.King {
							kings++
						}
					}
					if kings == 0 {
						return effect.Identity()
					}
					return effect.TimesMult(math.Pow(1.5, float64(kings)))
				},
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(ShootTheMoon, "Shoot the Moon", "+13 Mult for each Queen held", Common, 5),
				EffectFn: func(ctx *Context) effect.Effect {
					queens := int64(0)
					for _, c := range ctx.Held() {
						if c.Enhancement != cards.Stone && c.Rank == cards.Queen {
							queens++
						}
					}
					return effect.AddMult(13 * queens)
				},
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(Vagabond, "Vagabond", "Create a Tarot card if the hand is played with $4 or less", Rare, 8),
				Cond: MoneyAtMost(4),
				When: effect.Effect{CreateConsumables: []effect.ConsumableKind{effect.ConsumableTarot}},
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(Superposition, "Superposition", "Create a Tarot card if the hand contains an Ace and a Straight", Common, 4),
				Cond: And(
					HandTypeIs(cards.Straight),
					CondFunc(func(ctx *Context) bool { return ctx.Hand().CountRank(cards.Ace) > 0 }),
				),
				When: effect.Effect{CreateConsumables: []effect.ConsumableKind{effect.ConsumableTarot}},
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(Seance, "Séance", "Create a Spectral card if the hand is a Straight Flush", Uncommon, 6),
				Cond: HandTypeIs(cards.StraightFlush),
				When: effect.Effect{CreateConsumables: []effect.ConsumableKind{effect.ConsumableSpectral}},
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(EightBall, "8 Ball", "Played 8s have a 1 in 4 chance to create a Tarot card when scored", Common, 5),
				Cond: Chance(4),
				CardCond: func(_ *Context, c cards.Card) bool {
					return c.Enhancement != cards.Stone && c.Rank == cards.Eight
				},
				When: effect.Effect{CreateConsumables: []effect.ConsumableKind{effect.ConsumableTarot}},
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(FlowerPot, "Flower Pot", "×3 Mult if the hand contains a card of every suit", Uncommon, 6),
				Cond: CondFunc(func(ctx *Context) bool {
					for _, s := range cards.Suits() {
						if ctx.Hand().CountSuit(s) == 0 {
							return false
						}
					}
					return true
				}),
				When: effect.TimesMult(3),
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(SpaceJoker, "Space Joker", "1 in 4 chance to give +50 Chips when a hand is played", Uncommon, 5),
				Cond: Chance(4),
				When: effect.AddChips(50),
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(ReservedParking, "Reserved Parking", "Each held face card has a 1 in 2 chance to give $1", Common, 6),
				EffectFn: func(ctx *Context) effect.Effect {
					paid := int64(0)
					for _, c := range ctx.Held() {
						if c.Enhancement != cards.Stone && c.Rank.IsFace() && ctx.Random().Intn(2) == 0 {
							paid++
						}
					}
					if paid == 0 {
						return effect.Identity()
					}
					return effect.AddMoney(paid)
				},
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(SteelJoker, "Steel Joker", "Gives ×0.25 Mult for each Steel Card in your full deck", Uncommon, 6),
				EffectFn: func(ctx *Context) effect.Effect {
					n := ctx.SteelCardsInDeck()
					if n == 0 {
						return effect.Identity()
					}
					return effect.TimesMult(1 + 0.25*float64(n))
				},
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(Throwback, "Throwback", "×0.25 Mult for each Blind skipped this run", Uncommon, 6),
				EffectFn: func(ctx *Context) effect.Effect {
					n := ctx.BlindsSkipped()
					if n == 0 {
						return effect.Identity()
					}
					return effect.TimesMult(1 + 0.25*float64(n))
				},
			}
		},
		func() *ConditionalJoker {
			return &ConditionalJoker{
				Base: NewBase(CardSharp, "Card Sharp", "×3 Mult if the played hand type was already played this run", Uncommon, 6),
				Cond: CondFunc(func(ctx *Context) bool {
					return ctx.HandTypeCount(ctx.HandRank()) > 0
				}),
				When: effect.TimesMult(3),
			}
		},
	}

	for _, build := range defs {
		build := build
		r.registerSimple(func() Joker { return build() })
	}
}
