package joker

import (
	"github.com/jokersim/joker-engine-go/internal/cards"
	"github.com/jokersim/joker-engine-go/internal/effect"
)

// The retrigger roster: jokers whose effect is replaying other effects.
// A retrigger request on the card hook makes the pipeline re-invoke the
// remaining card-scoped hooks for that card, inside the retrigger budget.
func registerRetriggerRoster(r *Registry) {
	defs := []func() Joker{
		func() Joker {
			return &ConditionalJoker{
				Base: NewBase(Dusk, "Dusk", "Retrigger all played cards on the final hand of the round", Uncommon, 5),
				Cond: FinalHandOfRound(),
				CardCond: func(_ *Context, c cards.Card) bool { return true },
				When:     effect.Effect{Retrigger: 1},
			}
		},
		func() Joker {
			return &ConditionalJoker{
				Base: NewBase(Hack, "Hack", "Retrigger each played 2, 3, 4, or 5", Uncommon, 6),
				CardCond: func(_ *Context, c cards.Card) bool {
					if c.Enhancement == cards.Stone {
						return false
					}
					switch c.Rank {
					case cards.Two, cards.Three, cards.Four, cards.Five:
						return true
					}
					return false
				},
				When: effect.Effect{Retrigger: 1},
			}
		},
		func() Joker {
			return &ConditionalJoker{
				Base: NewBase(SockAndBuskin, "Sock and Buskin", "Retrigger all played face cards", Uncommon, 6),
				CardCond: func(_ *Context, c cards.Card) bool {
					return c.Enhancement != cards.Stone && c.Rank.IsFace()
				},
				When: effect.Effect{Retrigger: 1},
			}
		},
		func() Joker {
			// The hand hook runs before the card hooks, so the counter is
			// spent up front: it reaches -1 on the eleventh hand, which
			// destroys the joker and must not retrigger anything.
			return &AdvancedJoker{
				Base:            NewBase(Seltzer, "Seltzer", "Retrigger all played cards for the next 10 hands", Uncommon, 6),
				InitialCounters: map[string]float64{"hands": 10},
				HandEffect: func(_ *Context, counters map[string]float64) effect.Effect {
					counters["hands"]--
					if counters["hands"] < 0 {
						return effect.Effect{DestroySelf: true, Message: "Flat!"}
					}
					return effect.Identity()
				},
				CardEffect: func(_ *Context, _ cards.Card, _ int, counters map[string]float64) effect.Effect {
					if counters["hands"] < 0 {
						return effect.Identity()
					}
					return effect.Effect{Retrigger: 1}
				},
			}
		},
	}

	for _, build := range defs {
		build := build
		r.registerSimple(build)
	}
}
