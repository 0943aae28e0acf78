package joker

import (
	"github.com/jokersim/joker-engine-go/internal/cards"
	"github.com/jokersim/joker-engine-go/internal/effect"
)

// atRoundEnd gates an effect to the round-end pass the run executes after
// the last hand. Economy payouts flow through the same accumulation
// pipeline as scoring effects, so the money clamp applies uniformly.
func atRoundEnd() Condition {
	return CondFunc(func(ctx *Context) bool { return ctx.Stage() == StageRoundEnd })
}

// The economy roster: money, interest, and sell-value jokers.
func registerEconomyRoster(r *Registry) {
	defs := []func() Joker{
		func() Joker {
			return &ConditionalJoker{
				Base: NewBase(GoldenJoker, "Golden Joker", "Earn $4 at end of round", Common, 6),
				Cond: atRoundEnd(),
				When: effect.AddMoney(4),
			}
		},
		func() Joker {
			return &ConditionalJoker{
				Base: NewBase(DelayedGrat, "Delayed Gratification", "Earn $2 per discard at end of round if no discards were used", Common, 4),
				Cond: And(atRoundEnd(), CondFunc(func(ctx *Context) bool {
					return ctx.DiscardsUsedThisRound() == 0
				})),
				EffectFn: func(ctx *Context) effect.Effect {
					return effect.AddMoney(2 * int64(ctx.DiscardsRemaining()))
				},
			}
		},
		func() Joker {
			return &ConditionalJoker{
				Base: NewBase(ToTheMoon, "To the Moon", "Earn an extra $1 of interest per $5 you have at end of round", Uncommon, 5),
				Cond: atRoundEnd(),
				When: effect.Effect{InterestBonus: 1},
			}
		},
		func() Joker {
			return &ConditionalJoker{
				Base: NewBase(CeremonialDagger, "Ceremonial Dagger", "Earn $1 at end of round per Joker card", Uncommon, 6),
				Cond: atRoundEnd(),
				EffectFn: func(ctx *Context) effect.Effect {
					return effect.AddMoney(int64(ctx.JokerCount()))
				},
			}
		},
		func() Joker {
			return &ConditionalJoker{
				Base: NewBase(Egg, "Egg", "Gains $3 of sell value at end of round", Common, 4),
				Cond: atRoundEnd(),
				When: effect.Effect{SellValueIncrease: 3},
			}
		},
		func() Joker {
			// The accumulated increase is applied to every owned instance,
			// so the effect contributes the per-joker amount exactly once.
			return &ConditionalJoker{
				Base: NewBase(GiftCard, "Gift Card", "Add $1 of sell value to every Joker at end of round", Uncommon, 6),
				Cond: atRoundEnd(),
				When: effect.Effect{SellValueIncrease: 1},
			}
		},
		func() Joker {
			return &ConditionalJoker{
				Base: NewBase(GoldenTicket, "Golden Ticket", "Played Gold cards earn $4 when scored", Common, 5),
				CardCond: func(_ *Context, c cards.Card) bool {
					return c.Enhancement == cards.Gold
				},
				When: effect.AddMoney(4),
			}
		},
		func() Joker {
			// Picks a rank at round start; each discarded card of that rank
			// pays out $5 in the round-end pass.
			return &AdvancedJoker{
				Base:            NewBase(Rebate, "Mail-In Rebate", "Earn $5 for each discarded card of the chosen rank; the rank changes every round", Common, 4),
				InitialCounters: map[string]float64{"rank": float64(cards.Two)},
				RoundStart: func(ctx *Context, counters map[string]float64) {
					counters["rank"] = float64(ctx.Random().Intn(13))
				},
				HandEffect: func(ctx *Context, counters map[string]float64) effect.Effect {
					if ctx.Stage() != StageRoundEnd {
						return effect.Identity()
					}
					want := cards.Rank(uint8(counters["rank"]))
					paid := int64(0)
					for _, c := range ctx.Discarded() {
						if c.Enhancement != cards.Stone && c.Rank == want {
							paid += 5
						}
					}
					if paid == 0 {
						return effect.Identity()
					}
					return effect.AddMoney(paid)
				},
			}
		},
		func() Joker {
			return &AdvancedJoker{
				Base:            NewBase(Rocket, "Rocket", "Earn $1 at end of round; payout rises by $2 each ante", Uncommon, 6),
				InitialCounters: map[string]float64{"payout": 1, "ante": 1},
				HandEffect: func(ctx *Context, counters map[string]float64) effect.Effect {
					if ctx.Stage() != StageRoundEnd {
						return effect.Identity()
					}
					if a := float64(ctx.Ante()); a > counters["ante"] {
						counters["payout"] += 2 * (a - counters["ante"])
						counters["ante"] = a
					}
					return effect.AddMoney(int64(counters["payout"]))
				},
			}
		},
	}

	for _, build := range defs {
		build := build
		r.registerSimple(build)
	}
}
