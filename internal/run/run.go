// Package run orchestrates one game: the active joker list, the wallet and
// round counters, hand evaluation through the pipeline, lifecycle and
// sibling notifications, and whole-run save/load.
package run

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jokersim/joker-engine-go/internal/cards"
	"github.com/jokersim/joker-engine-go/internal/effect"
	"github.com/jokersim/joker-engine-go/internal/joker"
	"github.com/jokersim/joker-engine-go/internal/pipeline"
	"github.com/jokersim/joker-engine-go/internal/rng"
	"github.com/jokersim/joker-engine-go/internal/shop"
)

// Handle identifies one acquired joker instance for the life of the run.
// Handles stay valid as slots shift; slot numbers do not leak to callers.
type Handle = uuid.UUID

// Config seeds a new run.
type Config struct {
	Seed             string
	StartingMoney    int64
	HandsPerRound    int
	DiscardsPerRound int
	DeckSize         int
	StoneCards       int
	SteelCards       int
	MaxJokerSlots    int
	Logger           zerolog.Logger
}

func (c *Config) defaults() {
	if c.Seed == "" {
		c.Seed = "RUNSEED"
	}
	if c.HandsPerRound == 0 {
		c.HandsPerRound = 4
	}
	if c.DiscardsPerRound == 0 {
		c.DiscardsPerRound = 3
	}
	if c.DeckSize == 0 {
		c.DeckSize = 52
	}
	if c.MaxJokerSlots == 0 {
		c.MaxJokerSlots = 5
	}
}

type instance struct {
	handle Handle
	args   joker.Args
	j      joker.Joker
	// sellBonus accumulates sell-value increases applied to this instance.
	sellBonus int64
}

// Run is a single game in progress. A Run belongs to one goroutine; the
// simulator gives each worker its own.
type Run struct {
	cfg  Config
	log  zerolog.Logger
	proc *pipeline.Processor
	rand *rng.Source

	col       *joker.Collection
	instances []*instance
	states    *joker.StateStore

	money int64
	ante  int
	round int

	handsPlayedRound  int
	discardsUsedRound int
	handsPlayedTotal  int
	handTypeCounts    map[cards.HandRank]int
	discardedRound    []cards.Card

	cardsInDeck      int
	stoneCardsInDeck int
	steelCardsInDeck int
	packsSkipped     int
	blindsSkipped    int
	hasWon           bool
}

// New starts a run from the config.
func New(cfg Config) *Run {
	cfg.defaults()
	return &Run{
		cfg:              cfg,
		log:              cfg.Logger,
		proc:             pipeline.New(cfg.Logger),
		rand:             rng.New(cfg.Seed, "run"),
		col:              joker.NewCollection(),
		states:           joker.NewStateStore(),
		money:            cfg.StartingMoney,
		ante:             1,
		round:            1,
		handTypeCounts:   make(map[cards.HandRank]int),
		cardsInDeck:      cfg.DeckSize,
		stoneCardsInDeck: cfg.StoneCards,
		steelCardsInDeck: cfg.SteelCards,
	}
}

// Money returns the wallet.
func (r *Run) Money() int64 { return r.money }

// Ante returns the current ante level.
func (r *Run) Ante() int { return r.ante }

// Round returns the current round counter.
func (r *Run) Round() int { return r.round }

// JokerIDs returns the active kinds in acquisition order.
func (r *Run) JokerIDs() []joker.ID { return r.col.IDs() }

// Progress reports unlock progress for shop eligibility.
func (r *Run) Progress() joker.Progress {
	return joker.Progress{Ante: r.ante, HandsPlayed: r.handsPlayedTotal, HasWon: r.hasWon}
}

// MarkWon records that the run has beaten its final blind at least once.
func (r *Run) MarkWon() { r.hasWon = true }

// HandSize returns the effective hand size: the base eight adjusted by
// every active instance exposing passive modifiers.
func (r *Run) HandSize() int {
	size := 8
	for _, j := range r.col.Items() {
		if m, ok := joker.SupportsModifiers(j); ok {
			size += m.HandSizeModifier()
		}
	}
	if size < 1 {
		size = 1
	}
	return size
}

// DiscardsPerRound returns the per-round discard allowance after passive
// modifiers.
func (r *Run) DiscardsPerRound() int {
	n := r.cfg.DiscardsPerRound
	for _, j := range r.col.Items() {
		if m, ok := joker.SupportsModifiers(j); ok {
			n += m.DiscardModifier()
		}
	}
	if n < 0 {
		n = 0
	}
	return n
}

func (r *Run) context(stage joker.Stage, hand cards.Hand, chips, mult int64) *joker.Context {
	return joker.NewContext(joker.ContextParams{
		Chips:             chips,
		Mult:              mult,
		Money:             r.money,
		Ante:              r.ante,
		Round:             r.round,
		Stage:             stage,
		HandsPlayedRound:  r.handsPlayedRound,
		HandsRemaining:    r.cfg.HandsPerRound - r.handsPlayedRound,
		DiscardsUsedRound: r.discardsUsedRound,
		DiscardsRemaining: r.DiscardsPerRound() - r.discardsUsedRound,
		Hand:              hand,
		Discarded:         r.discardedRound,
		HandTypeCounts:    r.handTypeCounts,
		DeckSize:          r.cfg.DeckSize,
		CardsInDeck:       r.cardsInDeck,
		StoneCardsInDeck:  r.stoneCardsInDeck,
		SteelCardsInDeck:  r.steelCardsInDeck,
		PacksSkipped:      r.packsSkipped,
		BlindsSkipped:     r.blindsSkipped,
		Jokers:            r.col.Items(),
		States:            r.states,
		Random:            r.rand.Fork(fmt.Sprintf("r%d", r.round)),
	})
}

// Acquire constructs the kind and appends it to the active list. Existing
// instances are notified of the new sibling after it is attached.
func (r *Run) Acquire(id joker.ID, args joker.Args) (Handle, error) {
	if r.col.Len() >= r.cfg.MaxJokerSlots {
		return Handle{}, fmt.Errorf("run: no free joker slot (%d in use)", r.col.Len())
	}
	j, err := joker.NewWithArgs(id, args)
	if err != nil {
		return Handle{}, err
	}
	slot := r.col.Add(j)
	inst := &instance{handle: uuid.New(), args: args, j: j}
	r.instances = append(r.instances, inst)

	ctx := r.context(joker.StageShop, cards.Hand{}, 0, 0)
	if lc, ok := joker.SupportsLifecycle(j); ok {
		ctx.SetSlot(slot)
		lc.OnAcquire(ctx)
	}
	for s, other := range r.col.Items() {
		if s == slot {
			continue
		}
		if lc, ok := joker.SupportsLifecycle(other); ok {
			ctx.SetSlot(s)
			lc.OnSiblingChange(ctx, id, true)
		}
	}
	r.log.Debug().Str("joker", string(id)).Str("handle", inst.handle.String()).Msg("joker acquired")
	return inst.handle, nil
}

func (r *Run) slotOf(h Handle) int {
	for i, inst := range r.instances {
		if inst.handle == h {
			return i
		}
	}
	return -1
}

// Sell removes the instance and pays out its sell value.
func (r *Run) Sell(h Handle) (int64, error) {
	slot := r.slotOf(h)
	if slot < 0 {
		return 0, fmt.Errorf("run: %w: no instance for handle %s", joker.ErrUnknownJoker, h)
	}
	inst := r.instances[slot]
	value := shop.SellValue(inst.j.BaseCost(), inst.sellBonus)
	r.remove(slot, false)
	r.money += value
	r.log.Debug().Str("joker", string(inst.j.ID())).Int64("value", value).Msg("joker sold")
	return value, nil
}

// Destroy removes the instance without paying out.
func (r *Run) Destroy(h Handle) error {
	slot := r.slotOf(h)
	if slot < 0 {
		return fmt.Errorf("run: %w: no instance for handle %s", joker.ErrUnknownJoker, h)
	}
	r.remove(slot, true)
	return nil
}

// remove runs the departing instance's lifecycle hook, detaches it, drops
// its published state, rekeys later slots, and notifies the survivors.
func (r *Run) remove(slot int, destroyed bool) {
	inst := r.instances[slot]
	ctx := r.context(joker.StageShop, cards.Hand{}, 0, 0)
	if lc, ok := joker.SupportsLifecycle(inst.j); ok {
		ctx.SetSlot(slot)
		if destroyed {
			lc.OnDestroy(ctx)
		} else {
			lc.OnSell(ctx)
		}
	}
	r.states.Drop(joker.StateKey{ID: inst.j.ID(), Slot: slot})
	r.col.Remove(slot)
	r.instances = append(r.instances[:slot], r.instances[slot+1:]...)
	r.states.ShiftDown(slot)

	ctx = r.context(joker.StageShop, cards.Hand{}, 0, 0)
	for s, other := range r.col.Items() {
		if lc, ok := joker.SupportsLifecycle(other); ok {
			ctx.SetSlot(s)
			lc.OnSiblingChange(ctx, inst.j.ID(), false)
		}
	}
}

// HandResult summarizes one played hand.
type HandResult struct {
	Rank      cards.HandRank
	BaseChips int64
	BaseMult  int64
	Score     int64
	Aggregate effect.Aggregate
	Destroyed []joker.ID
	Messages  []string
	// HookErrors carries isolated behavior failures; the hand still scored.
	HookErrors []pipeline.HookError
}

// PlayHand evaluates the played hand against the active list and applies
// the results: score, wallet delta, deferred destruction, sell-value and
// deck transforms.
func (r *Run) PlayHand(hand cards.Hand) (HandResult, error) {
	if r.handsPlayedRound >= r.cfg.HandsPerRound {
		return HandResult{}, fmt.Errorf("run: no hands remaining in round %d", r.round)
	}
	rank := hand.Classify()
	baseChips, baseMult := rank.BaseScore()
	for _, c := range hand.Cards {
		baseChips += c.Chips()
	}

	ctx := r.context(joker.StageBlind, hand, baseChips, baseMult)
	res := r.proc.EvaluateHand(ctx, r.col)

	r.money = res.Aggregate.ApplyMoney(r.money)
	r.applySellBonus(res.Aggregate.SellValueIncrease)
	destroyed := r.applyDestroy(res.Directives.DestroySlots)

	r.handsPlayedRound++
	r.handsPlayedTotal++
	r.handTypeCounts[rank]++

	out := HandResult{
		Rank:       rank,
		BaseChips:  baseChips,
		BaseMult:   baseMult,
		Score:      res.Aggregate.Score(baseChips, baseMult),
		Aggregate:  res.Aggregate,
		Destroyed:  destroyed,
		Messages:   res.Aggregate.Messages,
		HookErrors: res.HookErrors,
	}
	r.log.Debug().
		Str("rank", rank.String()).
		Int64("score", out.Score).
		Int("jokers", r.col.Len()).
		Msg("hand played")
	return out, nil
}

// Discard spends one discard and records the cards for conditions that
// read the round's discard pile.
func (r *Run) Discard(discarded []cards.Card) error {
	if r.discardsUsedRound >= r.DiscardsPerRound() {
		return fmt.Errorf("run: no discards remaining in round %d", r.round)
	}
	r.discardsUsedRound++
	r.discardedRound = append(r.discardedRound, discarded...)
	return nil
}

// applySellBonus spreads accumulated sell-value increases across every
// active instance, matching how egg-style effects apply.
func (r *Run) applySellBonus(inc int64) {
	if inc == 0 {
		return
	}
	for _, inst := range r.instances {
		inst.sellBonus += inc
	}
}

// applyDestroy removes slots flagged during a pass, highest slot first so
// earlier indices stay valid, and returns the removed kinds.
func (r *Run) applyDestroy(slots []int) []joker.ID {
	var ids []joker.ID
	for i := len(slots) - 1; i >= 0; i-- {
		slot := slots[i]
		if slot < 0 || slot >= r.col.Len() {
			continue
		}
		ids = append(ids, r.instances[slot].j.ID())
		r.remove(slot, true)
	}
	return ids
}

// StartRound advances the round counter, resets per-round state, and fires
// round-start lifecycle hooks. Advancing the round also invalidates every
// cached condition result from the previous round.
func (r *Run) StartRound() {
	r.round++
	r.handsPlayedRound = 0
	r.discardsUsedRound = 0
	r.discardedRound = nil
	ctx := r.context(joker.StageBlind, cards.Hand{}, 0, 0)
	for s, j := range r.col.Items() {
		if lc, ok := joker.SupportsLifecycle(j); ok {
			ctx.SetSlot(s)
			lc.OnRoundStart(ctx)
		}
	}
}

// RoundResult summarizes round-end settlement.
type RoundResult struct {
	Payout    int64
	Interest  int64
	Destroyed []joker.ID
}

// EndRound fires round-end lifecycle hooks, runs the economy pass, and
// settles interest. Economy payouts flow through the same accumulation and
// clamping as scoring effects.
func (r *Run) EndRound() RoundResult {
	ctx := r.context(joker.StageRoundEnd, cards.Hand{}, 0, 0)
	for s, j := range r.col.Items() {
		if lc, ok := joker.SupportsLifecycle(j); ok {
			ctx.SetSlot(s)
			lc.OnRoundEnd(ctx)
		}
	}

	ctx = r.context(joker.StageRoundEnd, cards.Hand{}, 0, 0)
	res := r.proc.EvaluatePass(ctx, r.col)

	before := r.money
	r.money = res.Aggregate.ApplyMoney(r.money)
	payout := r.money - before

	interest := shop.Interest(r.money, res.Aggregate.InterestBonus)
	r.money += interest

	r.applySellBonus(res.Aggregate.SellValueIncrease)
	destroyed := r.applyDestroy(res.Directives.DestroySlots)

	r.log.Debug().
		Int("round", r.round).
		Int64("payout", payout).
		Int64("interest", interest).
		Msg("round settled")
	return RoundResult{Payout: payout, Interest: interest, Destroyed: destroyed}
}

// SkipPack records a skipped booster pack. Pack-scaling jokers read the
// run total through the evaluation context.
func (r *Run) SkipPack() { r.packsSkipped++ }

// SkipBlind records a skipped blind.
func (r *Run) SkipBlind() { r.blindsSkipped++ }

// AdvanceAnte raises the ante after its final blind is beaten.
func (r *Run) AdvanceAnte() {
	r.ante++
	r.hasWon = true
}
