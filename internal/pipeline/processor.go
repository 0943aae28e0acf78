// Package pipeline drives the active joker list for each hand evaluation
// and folds the returned effects into one aggregate under the clamping
// rules. Evaluation is synchronous and deterministic: behaviors run in
// acquisition order, twice per hand (once at hand level, once per scoring
// card), and destroy/transform directives are resolved only after the full
// pass so every behavior observes a consistent sibling list.
package pipeline

import (
	"fmt"

	"github.com/rs/zerolog"
	"go.uber.org/multierr"

	"github.com/jokersim/joker-engine-go/internal/effect"
	"github.com/jokersim/joker-engine-go/internal/joker"
)

const (
	// maxRetriggersPerCard bounds how many extra evaluations of a single
	// card the retrigger jokers can request.
	maxRetriggersPerCard = 10
	// maxRetriggersPerPass bounds total retriggered evaluations per hand.
	maxRetriggersPerPass = 40
)

// HookError records one failed hook invocation. The hook's effect was
// treated as identity and the pass continued.
type HookError struct {
	Slot int
	ID   joker.ID
	Hook string
	Err  error
}

func (e HookError) Error() string {
	return fmt.Sprintf("joker %s (slot %d) %s: %v", e.ID, e.Slot, e.Hook, e.Err)
}

func (e HookError) Unwrap() error { return e.Err }

// Directives are the post-pass instructions the engine applies after
// accumulation: removals, card transforms, and consumable creation.
type Directives struct {
	// DestroySlots lists slots whose jokers set the self-destroy flag,
	// ascending. Removal happens after the pass, never mid-iteration.
	DestroySlots []int
	Transforms   []effect.CardTransform
	Consumables  []effect.ConsumableKind
}

// Result is a completed hand evaluation.
type Result struct {
	Aggregate  effect.Aggregate
	Directives Directives
	// HookErrors holds per-behavior failures that were isolated during
	// the pass. The pass itself always completes.
	HookErrors []HookError
}

// Err combines the isolated hook errors into one error, or nil.
func (r Result) Err() error {
	var errs []error
	for _, he := range r.HookErrors {
		errs = append(errs, he)
	}
	return multierr.Combine(errs...)
}

// Processor evaluates hands against a joker collection.
type Processor struct {
	log zerolog.Logger
}

// New returns a processor logging isolated failures to the given logger.
func New(log zerolog.Logger) *Processor {
	return &Processor{log: log}
}

// EvaluateHand runs the two-pass evaluation over the collection using the
// prepared context. Zero active behaviors yield the identity aggregate; an
// empty hand runs pass one and skips pass two.
func (p *Processor) EvaluateHand(ctx *joker.Context, list *joker.Collection) Result {
	res := Result{Aggregate: effect.NewAggregate()}
	destroyed := make(map[int]bool)

	// Pass 1: hand-level hooks in acquisition order.
	for slot, j := range list.Items() {
		g, ok := joker.SupportsGameplay(j)
		if !ok {
			continue
		}
		ctx.SetSlot(slot)
		e, err := g.OnHandPlayed(ctx)
		if err != nil {
			p.record(&res, slot, j.ID(), "on_hand_played", err)
			continue
		}
		p.accumulate(&res, slot, j.ID(), e, destroyed)
	}

	// Pass 2: card-level hooks, cards in played order, behaviors in
	// acquisition order for each card.
	budget := maxRetriggersPerPass
	for idx, card := range ctx.Hand().Cards {
		retriggers := 0
		for slot, j := range list.Items() {
			g, ok := joker.SupportsGameplay(j)
			if !ok {
				continue
			}
			ctx.SetSlot(slot)
			e, err := g.OnCardScored(ctx, card, idx)
			if err != nil {
				p.record(&res, slot, j.ID(), "on_card_scored", err)
				continue
			}
			if e.Retrigger > 0 {
				r := e.Retrigger
				if r > effect.MaxRetriggersPerEffect {
					r = effect.MaxRetriggersPerEffect
				}
				retriggers += r
				e.Retrigger = 0
			}
			p.accumulate(&res, slot, j.ID(), e, destroyed)
		}

		// Retrigger requests replay the card for every gameplay behavior,
		// the requester included, inside the pass budget. Requests made
		// during a replay are zeroed, never queued.
		if retriggers > maxRetriggersPerCard {
			retriggers = maxRetriggersPerCard
		}
		for r := 0; r < retriggers && budget > 0; r++ {
			budget--
			for slot, j := range list.Items() {
				g, ok := joker.SupportsGameplay(j)
				if !ok {
					continue
				}
				ctx.SetSlot(slot)
				e, err := g.OnCardScored(ctx, card, idx)
				if err != nil {
					p.record(&res, slot, j.ID(), "on_card_scored", err)
					continue
				}
				// A retriggered evaluation cannot queue further
				// retriggers; that way lies an unbounded loop.
				e.Retrigger = 0
				p.accumulate(&res, slot, j.ID(), e, destroyed)
			}
		}
	}
	ctx.SetSlot(-1)

	for slot := 0; slot < list.Len(); slot++ {
		if destroyed[slot] {
			res.Directives.DestroySlots = append(res.Directives.DestroySlots, slot)
		}
	}
	res.Directives.Transforms = res.Aggregate.TransformCards
	res.Directives.Consumables = res.Aggregate.CreateConsumables
	return res
}

// EvaluatePass runs a single hand-level pass. The run uses it with a
// round-end staged context for economy payouts.
func (p *Processor) EvaluatePass(ctx *joker.Context, list *joker.Collection) Result {
	res := Result{Aggregate: effect.NewAggregate()}
	destroyed := make(map[int]bool)
	for slot, j := range list.Items() {
		g, ok := joker.SupportsGameplay(j)
		if !ok {
			continue
		}
		ctx.SetSlot(slot)
		e, err := g.OnHandPlayed(ctx)
		if err != nil {
			p.record(&res, slot, j.ID(), "on_hand_played", err)
			continue
		}
		p.accumulate(&res, slot, j.ID(), e, destroyed)
	}
	ctx.SetSlot(-1)
	for slot := 0; slot < list.Len(); slot++ {
		if destroyed[slot] {
			res.Directives.DestroySlots = append(res.Directives.DestroySlots, slot)
		}
	}
	res.Directives.Transforms = res.Aggregate.TransformCards
	res.Directives.Consumables = res.Aggregate.CreateConsumables
	return res
}

func (p *Processor) accumulate(res *Result, slot int, id joker.ID, e effect.Effect, destroyed map[int]bool) {
	if e.DestroySelf {
		destroyed[slot] = true
	}
	if err := res.Aggregate.Accumulate(e); err != nil {
		p.record(res, slot, id, "accumulate", err)
	}
}

func (p *Processor) record(res *Result, slot int, id joker.ID, hook string, err error) {
	he := HookError{Slot: slot, ID: id, Hook: hook, Err: err}
	res.HookErrors = append(res.HookErrors, he)
	p.log.Warn().
		Str("joker", string(id)).
		Int("slot", slot).
		Str("hook", hook).
		Err(err).
		Msg("joker hook failed; treated as identity")
}
