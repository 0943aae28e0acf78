package joker

import (
	"github.com/jokersim/joker-engine-go/internal/cards"
	"github.com/jokersim/joker-engine-go/internal/effect"
)

// The scaling roster: advanced-framework jokers with persistent counters
// or temporal conditions. Counters serialize through the State capability
// and mirror into the run's state store for cross-joker conditions.
func registerScalingRoster(r *Registry) {
	defs := []func() *AdvancedJoker{
		func() *AdvancedJoker {
			return &AdvancedJoker{
				Base: NewBase(GreenJoker, "Green Joker", "+1 Mult per hand played, -1 Mult per discard used", Common, 4),
				HandEffect: func(ctx *Context, counters map[string]float64) effect.Effect {
					counters["mult"]++
					m := counters["mult"] - float64(ctx.DiscardsUsedThisRound())
					if m <= 0 {
						return effect.Identity()
					}
					return effect.AddMult(int64(m))
				},
			}
		},
		func() *AdvancedJoker {
			return &AdvancedJoker{
				Base: NewBase(RideTheBus, "Ride the Bus", "+1 Mult per consecutive hand played without a scoring face card", Common, 6),
				HandEffect: func(ctx *Context, counters map[string]float64) effect.Effect {
					if ctx.Hand().CountFaces() > 0 {
						counters["streak"] = 0
						return effect.Identity()
					}
					counters["streak"]++
					return effect.AddMult(int64(counters["streak"]))
				},
			}
		},
		func() *AdvancedJoker {
			return &AdvancedJoker{
				Base: NewBase(SpareTrousers, "Spare Trousers", "+2 Mult for each Two Pair played this run", Uncommon, 6),
				HandEffect: func(ctx *Context, counters map[string]float64) effect.Effect {
					if ctx.HandRank().Contains(cards.TwoPair) {
						counters["played"]++
					}
					return effect.AddMult(2 * int64(counters["played"]))
				},
			}
		},
		func() *AdvancedJoker {
			return &AdvancedJoker{
				Base: NewBase(SquareJoker, "Square Joker", "+4 Chips for each 4-card hand played this run", Common, 4),
				HandEffect: func(ctx *Context, counters map[string]float64) effect.Effect {
					if ctx.Hand().Len() == 4 {
						counters["played"]++
					}
					return effect.AddChips(4 * int64(counters["played"]))
				},
			}
		},
		func() *AdvancedJoker {
			return &AdvancedJoker{
				Base: NewBase(Runner, "Runner", "+15 Chips for each Straight played this run", Common, 5),
				HandEffect: func(ctx *Context, counters map[string]float64) effect.Effect {
					if ctx.HandRank().Contains(cards.Straight) {
						counters["played"]++
					}
					return effect.AddChips(15 * int64(counters["played"]))
				},
			}
		},
		func() *AdvancedJoker {
			return &AdvancedJoker{
				Base:            NewBase(IceCream, "Ice Cream", "+100 Chips, melts by 5 Chips per hand played", Common, 5),
				InitialCounters: map[string]float64{"chips": 100},
				HandEffect: func(_ *Context, counters map[string]float64) effect.Effect {
					c := counters["chips"]
					if c <= 0 {
						return effect.Effect{DestroySelf: true, Message: "Melted!"}
					}
					counters["chips"] = c - 5
					return effect.AddChips(int64(c))
				},
			}
		},
		func() *AdvancedJoker {
			return &AdvancedJoker{
				Base:            NewBase(Popcorn, "Popcorn", "+20 Mult, loses 4 Mult per round", Common, 5),
				InitialCounters: map[string]float64{"mult": 20},
				HandEffect: func(_ *Context, counters map[string]float64) effect.Effect {
					m := counters["mult"]
					if m <= 0 {
						return effect.Effect{DestroySelf: true, Message: "Eaten!"}
					}
					return effect.AddMult(int64(m))
				},
				RoundEnd: func(_ *Context, counters map[string]float64) {
					counters["mult"] -= 4
				},
			}
		},
		func() *AdvancedJoker {
			return &AdvancedJoker{
				Base:            NewBase(Ramen, "Ramen", "×2 Mult, loses ×0.01 per card discarded", Uncommon, 6),
				InitialCounters: map[string]float64{"xmult": 2},
				HandEffect: func(_ *Context, counters map[string]float64) effect.Effect {
					x := counters["xmult"]
					if x <= 1 {
						return effect.Effect{DestroySelf: true, Message: "Slurped!"}
					}
					return effect.TimesMult(x)
				},
				RoundEnd: func(ctx *Context, counters map[string]float64) {
					counters["xmult"] -= 0.01 * float64(len(ctx.Discarded()))
				},
			}
		},
		func() *AdvancedJoker {
			// Condition reads run-level hand-type counts, which only move
			// once per hand; cached per (hand rank, count) within a round.
			return &AdvancedJoker{
				Base: NewBase(Supernova, "Supernova", "Adds the number of times the hand type was played this run to Mult", Common, 5),
				Cond: CondFunc(func(ctx *Context) bool {
					return ctx.HandTypeCount(ctx.HandRank()) > 0
				}),
				Fingerprint: func(ctx *Context) uint64 {
					return fnv1a(uint64(ctx.HandRank()), uint64(ctx.HandTypeCount(ctx.HandRank())))
				},
				HandEffect: func(ctx *Context, _ map[string]float64) effect.Effect {
					return effect.AddMult(int64(ctx.HandTypeCount(ctx.HandRank())))
				},
			}
		},
		func() *AdvancedJoker {
			return &AdvancedJoker{
				Base: NewBase(WeeJoker, "Wee Joker", "Gains +8 Chips for each played 2 scored", Rare, 8),
				CardEffect: func(_ *Context, card cards.Card, _ int, counters map[string]float64) effect.Effect {
					if card.Enhancement != cards.Stone && card.Rank == cards.Two {
						counters["chips"] += 8
					}
					if counters["chips"] == 0 {
						return effect.Identity()
					}
					return effect.AddChips(int64(counters["chips"]))
				},
			}
		},
		func() *AdvancedJoker {
			return &AdvancedJoker{
				Base: NewBase(Castle, "Castle", "Gains +3 Chips per discarded Spade", Uncommon, 6),
				RoundEnd: func(ctx *Context, counters map[string]float64) {
					for _, c := range ctx.Discarded() {
						if c.Enhancement != cards.Stone && c.Suit == cards.Spade {
							counters["chips"] += 3
						}
					}
				},
				HandEffect: func(_ *Context, counters map[string]float64) effect.Effect {
					if counters["chips"] == 0 {
						return effect.Identity()
					}
					return effect.AddChips(int64(counters["chips"]))
				},
			}
		},
		func() *AdvancedJoker {
			return &AdvancedJoker{
				Base: NewBase(Hiker, "Hiker", "Every played card permanently gains +30 Chips when scored", Uncommon, 5),
				CardEffect: func(_ *Context, card cards.Card, idx int, _ map[string]float64) effect.Effect {
					if card.Enhancement != cards.NoEnhancement {
						return effect.Identity()
					}
					return effect.Effect{TransformCards: []effect.CardTransform{
						{CardIndex: idx, Enhancement: cards.Bonus},
					}}
				},
			}
		},
		func() *AdvancedJoker {
			return &AdvancedJoker{
				Base: NewBase(GrosMichel, "Gros Michel", "+15 Mult, 1 in 6 chance to be destroyed at end of round", Common, 5),
				HandEffect: func(_ *Context, counters map[string]float64) effect.Effect {
					if counters["extinct"] != 0 {
						return effect.Effect{DestroySelf: true, Message: "Extinct!"}
					}
					return effect.AddMult(15)
				},
				RoundEnd: func(ctx *Context, counters map[string]float64) {
					if ctx.Random().Intn(6) == 0 {
						counters["extinct"] = 1
					}
				},
			}
		},
		func() *AdvancedJoker {
			return &AdvancedJoker{
				Base: NewBase(Cavendish, "Cavendish", "×3 Mult, 1 in 1000 chance to be destroyed at end of round", Common, 4),
				HandEffect: func(_ *Context, counters map[string]float64) effect.Effect {
					if counters["extinct"] != 0 {
						return effect.Effect{DestroySelf: true, Message: "Extinct!"}
					}
					return effect.TimesMult(3)
				},
				RoundEnd: func(ctx *Context, counters map[string]float64) {
					if ctx.Random().Intn(1000) == 0 {
						counters["extinct"] = 1
					}
				},
			}
		},
		func() *AdvancedJoker {
			// Picks a suit at round start; played cards of that suit give
			// ×1.5 Mult. The pick persists in the counters so a reload
			// keeps the same suit for the round.
			return &AdvancedJoker{
				Base:            NewBase(AncientJoker, "Ancient Joker", "Each played card of the chosen suit gives ×1.5 Mult when scored; the suit changes every round", Rare, 8),
				InitialCounters: map[string]float64{"suit": float64(cards.Spade)},
				RoundStart: func(ctx *Context, counters map[string]float64) {
					counters["suit"] = float64(ctx.Random().Intn(4))
				},
				CardEffect: func(_ *Context, card cards.Card, _ int, counters map[string]float64) effect.Effect {
					if card.Enhancement != cards.Stone && card.Suit == cards.Suit(uint8(counters["suit"])) {
						return effect.TimesMult(1.5)
					}
					return effect.Identity()
				},
			}
		},
		func() *AdvancedJoker {
			return &AdvancedJoker{
				Base: NewBase(LuckyCat, "Lucky Cat", "Gains ×0.25 Mult for each Lucky card scored", Uncommon, 6),
				CardEffect: func(_ *Context, card cards.Card, _ int, counters map[string]float64) effect.Effect {
					if card.Enhancement == cards.Lucky {
						counters["triggers"]++
					}
					if counters["triggers"] == 0 {
						return effect.Identity()
					}
					return effect.TimesMult(1 + 0.25*counters["triggers"])
				},
			}
		},
		func() *AdvancedJoker {
			return &AdvancedJoker{
				Base:            NewBase(LoyaltyCard, "Loyalty Card", "×4 Mult every 6th hand played", Uncommon, 5),
				InitialCounters: map[string]float64{"remaining": 5},
				HandEffect: func(_ *Context, counters map[string]float64) effect.Effect {
					if counters["remaining"] > 0 {
						counters["remaining"]--
						return effect.Identity()
					}
					counters["remaining"] = 5
					return effect.TimesMult(4)
				},
			}
		},
		func() *AdvancedJoker {
			// Scales off consecutive hands that avoid the run's most-played
			// hand type. Playing a most-played type resets the streak.
			return &AdvancedJoker{
				Base: NewBase(Obelisk, "Obelisk", "×0.2 Mult per consecutive hand played without playing your most played hand type", Rare, 8),
				HandEffect: func(ctx *Context, counters map[string]float64) effect.Effect {
					most := 0
					for _, rank := range cards.HandRanks() {
						if n := ctx.HandTypeCount(rank); n > most {
							most = n
						}
					}
					if most > 0 && ctx.HandTypeCount(ctx.HandRank()) == most {
						counters["streak"] = 0
						return effect.Identity()
					}
					counters["streak"]++
					return effect.TimesMult(1 + 0.2*counters["streak"])
				},
			}
		},
		func() *AdvancedJoker {
			return &AdvancedJoker{
				Base: NewBase(Campfire, "Campfire", "Gains ×0.25 Mult for each Joker sold or destroyed", Rare, 9),
				SiblingChange: func(_ *Context, _ ID, added bool, counters map[string]float64) {
					if !added {
						counters["burned"]++
					}
				},
				HandEffect: func(_ *Context, counters map[string]float64) effect.Effect {
					if counters["burned"] == 0 {
						return effect.Identity()
					}
					return effect.TimesMult(1 + 0.25*counters["burned"])
				},
			}
		},
		func() *AdvancedJoker {
			// Consumes the enhancement of each scored enhanced card,
			// converting it into a permanent mult multiplier.
			return &AdvancedJoker{
				Base: NewBase(Vampire, "Vampire", "Gains ×0.1 Mult per scored enhanced card; removes the enhancement", Rare, 8),
				CardEffect: func(_ *Context, card cards.Card, idx int, counters map[string]float64) effect.Effect {
					out := effect.Effect{}
					if card.Enhancement != cards.NoEnhancement && card.Enhancement != cards.Stone {
						counters["drained"]++
						out.TransformCards = []effect.CardTransform{
							{CardIndex: idx, Enhancement: cards.NoEnhancement},
						}
					}
					if counters["drained"] > 0 {
						out.MultTimes = 1 + 0.1*counters["drained"]
					}
					return out
				},
			}
		},
		func() *AdvancedJoker {
			return &AdvancedJoker{
				Base: NewBase(MidasMask, "Midas Mask", "Played face cards become Gold cards when scored", Uncommon, 6),
				CardEffect: func(_ *Context, card cards.Card, idx int, _ map[string]float64) effect.Effect {
					if card.Enhancement != cards.NoEnhancement || !card.Rank.IsFace() {
						return effect.Identity()
					}
					return effect.Effect{TransformCards: []effect.CardTransform{
						{CardIndex: idx, Enhancement: cards.Gold},
					}}
				},
			}
		},
		func() *AdvancedJoker {
			// First scored face card of the hand gives ×2. Stateless per
			// hand: a card is "first" when no earlier played card is a face.
			return &AdvancedJoker{
				Base: NewBase(Photograph, "Photograph", "The first played face card gives ×2 Mult when scored", Common, 5),
				CardEffect: func(ctx *Context, card cards.Card, idx int, _ map[string]float64) effect.Effect {
					if card.Enhancement == cards.Stone || !card.Rank.IsFace() {
						return effect.Identity()
					}
					for i := 0; i < idx; i++ {
						earlier := ctx.Hand().Cards[i]
						if earlier.Enhancement != cards.Stone && earlier.Rank.IsFace() {
							return effect.Identity()
						}
					}
					return effect.TimesMult(2)
				},
			}
		},
	}

	for _, build := range defs {
		build := build
		r.registerSimple(func() Joker { return build() })
	}
}
