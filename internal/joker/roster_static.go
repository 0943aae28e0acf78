package joker

import "github.com/jokersim/joker-engine-go/internal/cards"

// The static roster: fixed-formula jokers. Definitions are declarative;
// behavior lives entirely in the framework.
func registerStaticRoster(r *Registry) {
	defs := []func() *StaticJoker{
		func() *StaticJoker {
			return NewStatic(TheJoker, "Joker", "+4 Mult").
				Cost(2).Mult(4).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(GreedyJoker, "Greedy Joker", "Played cards with Diamond suit give +3 Mult when scored").
				Cost(5).Mult(3).Condition(SuitScored{Suit: cards.Diamond}).PerCard().MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(LustyJoker, "Lusty Joker", "Played cards with Heart suit give +3 Mult when scored").
				Cost(5).Mult(3).Condition(SuitScored{Suit: cards.Heart}).PerCard().MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(WrathfulJoker, "Wrathful Joker", "Played cards with Spade suit give +3 Mult when scored").
				Cost(5).Mult(3).Condition(SuitScored{Suit: cards.Spade}).PerCard().MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(GluttonousJoker, "Gluttonous Joker", "Played cards with Club suit give +3 Mult when scored").
				Cost(5).Mult(3).Condition(SuitScored{Suit: cards.Club}).PerCard().MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(JollyJoker, "Jolly Joker", "+8 Mult if played hand contains a Pair").
				Cost(3).Mult(8).Condition(HandContains{Rank: cards.OnePair}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(ZanyJoker, "Zany Joker", "+12 Mult if played hand contains a Three of a Kind").
				Cost(4).Mult(12).Condition(HandContains{Rank: cards.ThreeOfAKind}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(MadJoker, "Mad Joker", "+10 Mult if played hand contains a Two Pair").
				Cost(4).Mult(10).Condition(HandContains{Rank: cards.TwoPair}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(CrazyJoker, "Crazy Joker", "+12 Mult if played hand contains a Straight").
				Cost(4).Mult(12).Condition(HandContains{Rank: cards.Straight}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(DrollJoker, "Droll Joker", "+10 Mult if played hand contains a Flush").
				Cost(4).Mult(10).Condition(HandContains{Rank: cards.Flush}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(SlyJoker, "Sly Joker", "+50 Chips if played hand contains a Pair").
				Cost(3).Chips(50).Condition(HandContains{Rank: cards.OnePair}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(WilyJoker, "Wily Joker", "+100 Chips if played hand contains a Three of a Kind").
				Cost(4).Chips(100).Condition(HandContains{Rank: cards.ThreeOfAKind}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(CleverJoker, "Clever Joker", "+80 Chips if played hand contains a Two Pair").
				Cost(4).Chips(80).Condition(HandContains{Rank: cards.TwoPair}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(DeviousJoker, "Devious Joker", "+100 Chips if played hand contains a Straight").
				Cost(4).Chips(100).Condition(HandContains{Rank: cards.Straight}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(CraftyJoker, "Crafty Joker", "+80 Chips if played hand contains a Flush").
				Cost(4).Chips(80).Condition(HandContains{Rank: cards.Flush}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(HalfJoker, "Half Joker", "+20 Mult if played hand contains 3 or fewer cards").
				Cost(5).Mult(20).Condition(HandSizeAtMost{N: 3}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(Banner, "Banner", "+30 Chips for each remaining discard").
				Cost(5).Chips(30).ScaledBy(func(ctx *Context) int64 {
				return int64(ctx.DiscardsRemaining())
			}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(ScaryFace, "Scary Face", "Played face cards give +30 Chips when scored").
				Cost(4).Chips(30).Condition(FaceScored{}).PerCard().MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(SmileyFace, "Smiley Face", "Played face cards give +5 Mult when scored").
				Cost(4).Mult(5).Condition(FaceScored{}).PerCard().MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(EvenSteven, "Even Steven", "Played cards with even rank give +4 Mult when scored").
				Cost(4).Mult(4).Condition(AnyRankScored{Ranks: []cards.Rank{
				cards.Two, cards.Four, cards.Six, cards.Eight, cards.Ten,
			}}).PerCard().MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(OddTodd, "Odd Todd", "Played cards with odd rank give +31 Chips when scored").
				Cost(4).Chips(31).Condition(AnyRankScored{Ranks: []cards.Rank{
				cards.Ace, cards.Three, cards.Five, cards.Seven, cards.Nine,
			}}).PerCard().MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(Scholar, "Scholar", "Played Aces give +20 Chips and +4 Mult when scored").
				Cost(4).Chips(20).Mult(4).Condition(RankScored{Rank: cards.Ace}).PerCard().MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(Fibonacci, "Fibonacci", "Each played Ace, 2, 3, 5, or 8 gives +8 Mult when scored").
				Cost(8).Rarity(Uncommon).Mult(8).Condition(AnyRankScored{Ranks: []cards.Rank{
				cards.Ace, cards.Two, cards.Three, cards.Five, cards.Eight,
			}}).PerCard().MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(WalkieTalkie, "Walkie Talkie", "Each played 10 or 4 gives +10 Chips and +4 Mult when scored").
				Cost(4).Chips(10).Mult(4).Condition(AnyRankScored{Ranks: []cards.Rank{
				cards.Ten, cards.Four,
			}}).PerCard().MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(Arrowhead, "Arrowhead", "Played cards with Spade suit give +50 Chips when scored").
				Cost(7).Rarity(Uncommon).Chips(50).Condition(SuitScored{Suit: cards.Spade}).PerCard().MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(OnyxAgate, "Onyx Agate", "Played cards with Club suit give +7 Mult when scored").
				Cost(7).Rarity(Uncommon).Mult(7).Condition(SuitScored{Suit: cards.Club}).PerCard().MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(RoughGem, "Rough Gem", "Played cards with Diamond suit earn $1 when scored").
				Cost(7).Rarity(Uncommon).Money(1).Condition(SuitScored{Suit: cards.Diamond}).PerCard().MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(TheDuo, "The Duo", "×2 Mult if played hand contains a Pair").
				Cost(8).Rarity(Rare).XMult(2).Condition(HandContains{Rank: cards.OnePair}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(TheTrio, "The Trio", "×3 Mult if played hand contains a Three of a Kind").
				Cost(8).Rarity(Rare).XMult(3).Condition(HandContains{Rank: cards.ThreeOfAKind}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(TheFamily, "The Family", "×4 Mult if played hand contains a Four of a Kind").
				Cost(8).Rarity(Rare).XMult(4).Condition(HandContains{Rank: cards.FourOfAKind}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(TheOrder, "The Order", "×3 Mult if played hand contains a Straight").
				Cost(8).Rarity(Rare).XMult(3).Condition(HandContains{Rank: cards.Straight}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(TheTribe, "The Tribe", "×2 Mult if played hand contains a Flush").
				Cost(8).Rarity(Rare).XMult(2).Condition(HandContains{Rank: cards.Flush}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(AbstractJoker, "Abstract Joker", "+3 Mult for each Joker card").
				Cost(4).Mult(3).ScaledBy(func(ctx *Context) int64 {
				return int64(ctx.JokerCount())
			}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(BlueJoker, "Blue Joker", "+2 Chips for each remaining card in deck").
				Cost(5).Chips(2).ScaledBy(func(ctx *Context) int64 {
				return int64(ctx.CardsInDeck())
			}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(StoneJoker, "Stone Joker", "+25 Chips for each Stone Card in the full deck").
				Cost(6).Rarity(Uncommon).Chips(25).ScaledBy(func(ctx *Context) int64 {
				return int64(ctx.StoneCardsInDeck())
			}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(Bull, "Bull", "+2 Chips for each $1 you have").
				Cost(6).Rarity(Uncommon).Chips(2).ScaledBy(func(ctx *Context) int64 {
				if m := ctx.Money(); m > 0 {
					return m
				}
				return 0
			}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(RedCard, "Red Card", "+3 Mult for each skipped Booster Pack").
				Cost(4).Mult(3).ScaledBy(func(ctx *Context) int64 {
				return int64(ctx.PacksSkipped())
			}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(Erosion, "Erosion", "+4 Mult for each card below the deck's starting size").
				Cost(6).Rarity(Uncommon).Mult(4).ScaledBy(func(ctx *Context) int64 {
				if n := ctx.DeckSize() - ctx.CardsInDeck(); n > 0 {
					return int64(n)
				}
				return 0
			}).MustBuild()
		},
		func() *StaticJoker {
			return NewStatic(Bootstraps, "Bootstraps", "+2 Mult for every $5 you have").
				Cost(7).Rarity(Uncommon).Mult(2).ScaledBy(func(ctx *Context) int64 {
				if m := ctx.Money(); m > 0 {
					return m / 5
				}
				return 0
			}).MustBuild()
		},
	}

	for _, build := range defs {
		build := build
		r.registerSimple(func() Joker { return build() })
	}
}
