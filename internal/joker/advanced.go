package joker

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/jokersim/joker-engine-go/internal/cards"
	"github.com/jokersim/joker-engine-go/internal/effect"
)

// The advanced framework serves jokers that need rich context, internal
// counters, or temporal conditions. Condition evaluation can be expensive
// here, so results are cached per instance, keyed by a fingerprint of the
// context slice the condition reads plus a validity epoch. The epoch is the
// round counter: a round boundary invalidates every cached result with one
// comparison instead of a scan.

// counterCap keeps scaling counters inside the effect bounds.
const counterCap = float64(effect.MaxMult)

// CacheStats reports condition-cache performance for one instance.
type CacheStats struct {
	Hits   uint64
	Misses uint64
}

// HitRate returns the fraction of lookups served from cache.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

type condCache struct {
	epoch   int
	results map[uint64]bool
	stats   CacheStats
}

// lookup returns the cached result for the fingerprint if it is still
// valid in the given epoch.
func (c *condCache) lookup(epoch int, fp uint64) (bool, bool) {
	if c.epoch != epoch {
		// Epoch bump invalidates wholesale; entries from prior rounds can
		// never be read again so the map is reset rather than scanned.
		c.epoch = epoch
		c.results = nil
	}
	v, ok := c.results[fp]
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	return v, ok
}

func (c *condCache) store(epoch int, fp uint64, v bool) {
	if c.results == nil {
		c.results = make(map[uint64]bool)
		c.epoch = epoch
	}
	c.results[fp] = v
}

// fnv1a folds values into a context fingerprint.
func fnv1a(vals ...uint64) uint64 {
	const offset, prime = 14695981039346656037, 1099511628211
	h := uint64(offset)
	for _, v := range vals {
		for i := 0; i < 8; i++ {
			h ^= (v >> (8 * i)) & 0xff
			h *= prime
		}
	}
	return h
}

// AdvancedJoker is a stateful, context-rich joker assembled from optional
// hook functions. The zero hooks are no-ops, so a definition only fills in
// what it uses.
type AdvancedJoker struct {
	Base

	// Cond gates both scoring hooks when set. Fingerprint must hash every
	// context input Cond reads; results are cached per (fingerprint, round).
	Cond        Condition
	Fingerprint func(ctx *Context) uint64

	// Scoring hooks. The counters map is the instance's persistent state.
	HandEffect func(ctx *Context, counters map[string]float64) effect.Effect
	CardEffect func(ctx *Context, card cards.Card, idx int, counters map[string]float64) effect.Effect

	// Lifecycle hooks.
	RoundStart    func(ctx *Context, counters map[string]float64)
	RoundEnd      func(ctx *Context, counters map[string]float64)
	Acquired      func(ctx *Context, counters map[string]float64)
	SiblingChange func(ctx *Context, other ID, added bool, counters map[string]float64)

	// InitialCounters seeds state at construction.
	InitialCounters map[string]float64

	counters map[string]float64
	cache    condCache
}

var _ interface {
	Identity
	Lifecycle
	Gameplay
	State
} = (*AdvancedJoker)(nil)

func (a *AdvancedJoker) ensureCounters() map[string]float64 {
	if a.counters == nil {
		a.counters = make(map[string]float64, len(a.InitialCounters))
		for k, v := range a.InitialCounters {
			a.counters[k] = v
		}
	}
	return a.counters
}

// Counter reads one of the instance's persistent counters.
func (a *AdvancedJoker) Counter(name string) float64 {
	return a.ensureCounters()[name]
}

// CacheStats returns the instance's condition-cache metrics.
func (a *AdvancedJoker) CacheStats() CacheStats { return a.cache.stats }

// publish mirrors counters into the run's state store so sibling jokers
// can condition on them.
func (a *AdvancedJoker) publish(ctx *Context) {
	if ctx.Slot() < 0 {
		return
	}
	key := StateKey{ID: a.ID(), Slot: ctx.Slot()}
	for name, v := range a.counters {
		ctx.States().Set(key, name, v)
	}
}

func (a *AdvancedJoker) conditionHolds(ctx *Context) bool {
	if a.Cond == nil {
		return true
	}
	if a.Fingerprint == nil {
		return a.Cond.Eval(ctx)
	}
	fp := a.Fingerprint(ctx)
	if v, ok := a.cache.lookup(ctx.Round(), fp); ok {
		return v
	}
	v := a.Cond.Eval(ctx)
	a.cache.store(ctx.Round(), fp, v)
	return v
}

func (a *AdvancedJoker) OnHandPlayed(ctx *Context) (effect.Effect, error) {
	if a.HandEffect == nil || !a.conditionHolds(ctx) {
		return effect.Identity(), nil
	}
	e := a.HandEffect(ctx, a.ensureCounters())
	a.publish(ctx)
	return e, nil
}

func (a *AdvancedJoker) OnCardScored(ctx *Context, card cards.Card, idx int) (effect.Effect, error) {
	if a.CardEffect == nil || !a.conditionHolds(ctx) {
		return effect.Identity(), nil
	}
	e := a.CardEffect(ctx, card, idx, a.ensureCounters())
	a.publish(ctx)
	return e, nil
}

func (a *AdvancedJoker) OnAcquire(ctx *Context) {
	if a.Acquired != nil {
		a.Acquired(ctx, a.ensureCounters())
		a.publish(ctx)
	}
}

func (a *AdvancedJoker) OnSell(ctx *Context)    { a.dropState(ctx) }
func (a *AdvancedJoker) OnDestroy(ctx *Context) { a.dropState(ctx) }

func (a *AdvancedJoker) dropState(ctx *Context) {
	if ctx.Slot() >= 0 {
		ctx.States().Drop(StateKey{ID: a.ID(), Slot: ctx.Slot()})
	}
}

func (a *AdvancedJoker) OnRoundStart(ctx *Context) {
	if a.RoundStart != nil {
		a.RoundStart(ctx, a.ensureCounters())
		a.publish(ctx)
	}
}

func (a *AdvancedJoker) OnRoundEnd(ctx *Context) {
	if a.RoundEnd != nil {
		a.RoundEnd(ctx, a.ensureCounters())
		a.publish(ctx)
	}
}

func (a *AdvancedJoker) OnSiblingChange(ctx *Context, other ID, added bool) {
	if a.SiblingChange != nil {
		a.SiblingChange(ctx, other, added, a.ensureCounters())
		a.publish(ctx)
	}
}

// advancedStateVersion tags serialized counter payloads. Bump when the
// payload shape changes.
const advancedStateVersion = 1

type advancedState struct {
	Version  int                `json:"version"`
	Counters map[string]float64 `json:"counters"`
}

// SerializeState writes the instance's counters with a schema version tag.
func (a *AdvancedJoker) SerializeState() (json.RawMessage, error) {
	return json.Marshal(advancedState{
		Version:  advancedStateVersion,
		Counters: a.ensureCounters(),
	})
}

// DeserializeState replaces the counters from a serialized payload. The
// payload is fully validated before anything is written: on any error the
// prior in-memory state is untouched.
func (a *AdvancedJoker) DeserializeState(data json.RawMessage) error {
	var st advancedState
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: %v", ErrBadState, err)
	}
	if st.Version > advancedStateVersion {
		return fmt.Errorf("%w: got v%d, max v%d", ErrUnsupportedVersion, st.Version, advancedStateVersion)
	}
	for name, v := range st.Counters {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: counter %q is non-finite", ErrBadState, name)
		}
	}
	next := make(map[string]float64, len(st.Counters))
	for name, v := range st.Counters {
		if v > counterCap {
			v = counterCap
		}
		next[name] = v
	}
	a.counters = next
	return nil
}
