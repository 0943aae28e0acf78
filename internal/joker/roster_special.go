package joker

import (
	"fmt"

	"github.com/jokersim/joker-engine-go/internal/cards"
	"github.com/jokersim/joker-engine-go/internal/effect"
)

// ModifierJoker is a passive rule adjustment with no scoring hooks: hand
// size and discard count changes that hold for as long as the joker is
// owned.
type ModifierJoker struct {
	Base
	HandSize int
	Discards int
}

var _ interface {
	Identity
	Modifiers
} = (*ModifierJoker)(nil)

func (m *ModifierJoker) HandSizeModifier() int { return m.HandSize }
func (m *ModifierJoker) DiscardModifier() int  { return m.Discards }

// staticWithMods composes a static scoring formula with passive modifiers,
// for jokers like Stuntman that trade hand size for chips.
type staticWithMods struct {
	*StaticJoker
	handSize int
	discards int
}

func (s *staticWithMods) HandSizeModifier() int { return s.handSize }
func (s *staticWithMods) DiscardModifier() int  { return s.discards }

// turtleBean is a hand-size bonus that shrinks every round.
type turtleBean struct {
	AdvancedJoker
}

func (t *turtleBean) HandSizeModifier() int {
	if n := int(t.Counter("handsize")); n > 0 {
		return n
	}
	return 0
}

func (t *turtleBean) DiscardModifier() int { return 0 }

func newTurtleBean() *turtleBean {
	return &turtleBean{AdvancedJoker: AdvancedJoker{
		Base:            NewBase(TurtleBean, "Turtle Bean", "+5 hand size, reduced by 1 each round", Uncommon, 6),
		InitialCounters: map[string]float64{"handsize": 5},
		RoundEnd: func(_ *Context, counters map[string]float64) {
			if counters["handsize"] > 0 {
				counters["handsize"]--
			}
		},
	}}
}

// blueprintJoker copies the Gameplay hooks of the joker to its right.
type blueprintJoker struct {
	Base
	NoLifecycle
}

func newBlueprint() *blueprintJoker {
	return &blueprintJoker{
		Base: NewBase(Blueprint, "Blueprint", "Copies the ability of the Joker to the right", Rare, 10),
	}
}

func (b *blueprintJoker) neighbor(ctx *Context) (Gameplay, bool) {
	slot := ctx.Slot()
	list := ctx.Jokers()
	if slot < 0 || slot+1 >= len(list) {
		return nil, false
	}
	next := list[slot+1]
	// Copying another Blueprint would re-enter at the same slot forever;
	// a Blueprint chain is inert past the first copy.
	if _, isBlueprint := next.(*blueprintJoker); isBlueprint {
		return nil, false
	}
	return SupportsGameplay(next)
}

func (b *blueprintJoker) OnHandPlayed(ctx *Context) (effect.Effect, error) {
	g, ok := b.neighbor(ctx)
	if !ok {
		return effect.Identity(), nil
	}
	return g.OnHandPlayed(ctx)
}

func (b *blueprintJoker) OnCardScored(ctx *Context, card cards.Card, idx int) (effect.Effect, error) {
	g, ok := b.neighbor(ctx)
	if !ok {
		return effect.Identity(), nil
	}
	return g.OnCardScored(ctx, card, idx)
}

func registerSpecialRoster(r *Registry) {
	r.registerSimple(func() Joker {
		return &ModifierJoker{
			Base:     NewBase(Juggler, "Juggler", "+1 hand size", Common, 4),
			HandSize: 1,
		}
	})
	r.registerSimple(func() Joker {
		return &ModifierJoker{
			Base:     NewBase(Drunkard, "Drunkard", "+1 discard each round", Common, 4),
			Discards: 1,
		}
	})
	r.registerSimple(func() Joker {
		return &ModifierJoker{
			Base:     NewBase(Troubadour, "Troubadour", "+2 hand size, -1 discard each round", Uncommon, 6),
			HandSize: 2,
			Discards: -1,
		}
	})
	r.registerUnlockable(Unlock{MinAnte: 2}, func() Joker {
		return &ModifierJoker{
			Base:     NewBase(MerryAndy, "Merry Andy", "+3 discards each round, -1 hand size", Uncommon, 7),
			HandSize: -1,
			Discards: 3,
		}
	})
	r.registerUnlockable(Unlock{MinAnte: 4, MinHandsPlayed: 50}, func() Joker {
		return &staticWithMods{
			StaticJoker: NewStatic(Stuntman, "Stuntman", "+250 Chips, -2 hand size").
				Cost(7).Rarity(Rare).Chips(250).MustBuild(),
			handSize: -2,
		}
	})
	// Pure marker: probability conditions scan the active list for it and
	// halve their odds denominator per copy.
	r.registerSimple(func() Joker {
		return &ModifierJoker{
			Base: NewBase(OopsAllSixes, "Oops! All 6s", "Doubles all listed probabilities", Uncommon, 4),
		}
	})
	r.registerSimple(func() Joker { return newTurtleBean() })
	r.registerSimple(func() Joker { return newBlueprint() })

	// Scripted jokers take their behavior from construction arguments.
	r.register(Entry{
		ID:          CustomScripted,
		Name:        "Custom",
		Description: "Scripted joker; behavior defined by its construction arguments",
		Rarity:      Rare,
		Cost:        10,
		New: func(args Args) (Joker, error) {
			src, _ := args["script"].(string)
			if src == "" {
				return nil, fmt.Errorf("scripted joker requires a %q argument", "script")
			}
			name, _ := args["name"].(string)
			if name == "" {
				name = "Custom"
			}
			desc, _ := args["description"].(string)
			return NewScripted(NewBase(CustomScripted, name, desc, Rare, 10), src)
		},
	})
}
