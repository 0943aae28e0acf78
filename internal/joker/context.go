package joker

import (
	"github.com/jokersim/joker-engine-go/internal/cards"
	"github.com/jokersim/joker-engine-go/internal/rng"
)

// Context is the per-invocation view a joker hook reads. All fields are
// reachable only through accessors: a hook cannot write through the context
// and silently invalidate what a sibling observes mid-iteration. The
// pipeline owns the one sanctioned mutation, SetSlot, which points the
// context at the instance currently being invoked.
type Context struct {
	chips int64
	mult  int64
	money int64

	ante  int
	round int
	stage Stage

	handsPlayedRound    int
	handsRemaining      int
	discardsUsedRound   int
	discardsRemaining   int

	hand     cards.Hand
	handRank cards.HandRank
	held     []cards.Card
	discarded []cards.Card

	handTypeCounts map[cards.HandRank]int

	deckSize         int
	cardsInDeck      int
	stoneCardsInDeck int
	steelCardsInDeck int

	packsSkipped  int
	blindsSkipped int

	jokers []Joker
	slot   int

	states *StateStore
	random *rng.Source
}

// ContextParams is the run-state snapshot a Context is built from.
type ContextParams struct {
	Chips int64
	Mult  int64
	Money int64

	Ante  int
	Round int
	Stage Stage

	HandsPlayedRound  int
	HandsRemaining    int
	DiscardsUsedRound int
	DiscardsRemaining int

	Hand      cards.Hand
	Held      []cards.Card
	Discarded []cards.Card

	HandTypeCounts map[cards.HandRank]int

	DeckSize         int
	CardsInDeck      int
	StoneCardsInDeck int
	SteelCardsInDeck int

	PacksSkipped  int
	BlindsSkipped int

	Jokers []Joker
	States *StateStore
	Random *rng.Source
}

// NewContext snapshots run state into an evaluation context. The hand is
// classified once here; hooks read the cached rank.
func NewContext(p ContextParams) *Context {
	if p.States == nil {
		p.States = NewStateStore()
	}
	if p.Random == nil {
		p.Random = rng.ForTesting(0)
	}
	return &Context{
		chips:             p.Chips,
		mult:              p.Mult,
		money:             p.Money,
		ante:              p.Ante,
		round:             p.Round,
		stage:             p.Stage,
		handsPlayedRound:  p.HandsPlayedRound,
		handsRemaining:    p.HandsRemaining,
		discardsUsedRound: p.DiscardsUsedRound,
		discardsRemaining: p.DiscardsRemaining,
		hand:              p.Hand,
		handRank:          p.Hand.Classify(),
		held:              p.Held,
		discarded:         p.Discarded,
		handTypeCounts:    p.HandTypeCounts,
		deckSize:          p.DeckSize,
		cardsInDeck:       p.CardsInDeck,
		stoneCardsInDeck:  p.StoneCardsInDeck,
		steelCardsInDeck:  p.SteelCardsInDeck,
		packsSkipped:      p.PacksSkipped,
		blindsSkipped:     p.BlindsSkipped,
		jokers:            p.Jokers,
		slot:              -1,
		states:            p.States,
		random:            p.Random,
	}
}

// Chips returns the current chip accumulator before joker effects.
func (c *Context) Chips() int64 { return c.chips }

// Mult returns the current mult accumulator before joker effects.
func (c *Context) Mult() int64 { return c.mult }

// Money returns the run's wallet.
func (c *Context) Money() int64 { return c.money }

// Ante returns the current ante level.
func (c *Context) Ante() int { return c.ante }

// Round returns the current round counter. It also serves as the validity
// epoch for cached condition results.
func (c *Context) Round() int { return c.round }

// Stage returns the phase the hook fires in.
func (c *Context) Stage() Stage { return c.stage }

// HandsPlayedThisRound returns how many hands were already played this round.
func (c *Context) HandsPlayedThisRound() int { return c.handsPlayedRound }

// HandsRemaining returns how many hands are left this round, counting the
// one being evaluated.
func (c *Context) HandsRemaining() int { return c.handsRemaining }

// DiscardsUsedThisRound returns discards spent this round.
func (c *Context) DiscardsUsedThisRound() int { return c.discardsUsedRound }

// DiscardsRemaining returns discards left this round.
func (c *Context) DiscardsRemaining() int { return c.discardsRemaining }

// Hand returns the played hand under evaluation.
func (c *Context) Hand() cards.Hand { return c.hand }

// HandRank returns the classification of the played hand.
func (c *Context) HandRank() cards.HandRank { return c.handRank }

// Held returns the cards still held after playing.
func (c *Context) Held() []cards.Card { return c.held }

// Discarded returns cards discarded this round.
func (c *Context) Discarded() []cards.Card { return c.discarded }

// HandTypeCount returns how many times the hand type was played this run.
func (c *Context) HandTypeCount(r cards.HandRank) int {
	return c.handTypeCounts[r]
}

// DeckSize returns the starting size of the full deck.
func (c *Context) DeckSize() int { return c.deckSize }

// CardsInDeck returns the number of cards remaining in the draw pile.
func (c *Context) CardsInDeck() int { return c.cardsInDeck }

// StoneCardsInDeck returns the number of stone cards in the full deck.
func (c *Context) StoneCardsInDeck() int { return c.stoneCardsInDeck }

// SteelCardsInDeck returns the number of steel cards in the full deck.
func (c *Context) SteelCardsInDeck() int { return c.steelCardsInDeck }

// PacksSkipped returns how many booster packs were skipped this run.
func (c *Context) PacksSkipped() int { return c.packsSkipped }

// BlindsSkipped returns how many blinds were skipped this run.
func (c *Context) BlindsSkipped() int { return c.blindsSkipped }

// Jokers returns the active joker list in acquisition order. The slice is
// shared; callers must not mutate it.
func (c *Context) Jokers() []Joker { return c.jokers }

// JokerCount returns the number of active jokers.
func (c *Context) JokerCount() int { return len(c.jokers) }

// Slot returns the run-local slot of the instance currently being invoked.
func (c *Context) Slot() int { return c.slot }

// SetSlot points the context at the instance about to be invoked. Only the
// pipeline calls this, between invocations, never mid-hook.
func (c *Context) SetSlot(slot int) { c.slot = slot }

// States returns the per-run behavior state store.
func (c *Context) States() *StateStore { return c.states }

// Random returns the evaluation-scoped deterministic random source.
func (c *Context) Random() *rng.Source { return c.random }
