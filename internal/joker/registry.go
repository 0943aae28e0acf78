package joker

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// Args are construction arguments for parameterized joker kinds. Most
// kinds take none.
type Args map[string]any

// Unlock describes when a joker kind becomes available to the shop.
// The zero value is always unlocked.
type Unlock struct {
	MinAnte        int  `json:"min_ante,omitempty"`
	RequiresWin    bool `json:"requires_win,omitempty"`
	MinHandsPlayed int  `json:"min_hands_played,omitempty"`
}

// Progress is the run progress an unlock condition is checked against.
type Progress struct {
	Ante        int
	HandsPlayed int
	HasWon      bool
}

// Satisfied reports whether the progress meets the unlock condition.
func (u Unlock) Satisfied(p Progress) bool {
	if p.Ante < u.MinAnte {
		return false
	}
	if u.RequiresWin && !p.HasWon {
		return false
	}
	return p.HandsPlayed >= u.MinHandsPlayed
}

// Entry is one registered joker kind: display metadata plus the
// construction function. Entries are immutable after registration.
type Entry struct {
	ID          ID
	Name        string
	Description string
	Rarity      Rarity
	Cost        int64
	Unlock      Unlock
	New         func(args Args) (Joker, error)
}

// Registry indexes joker kinds. It is populated once during construction
// and read-only afterwards, so concurrent lookups from parallel game
// instances need no locking.
type Registry struct {
	entries map[ID]Entry
	order   []ID
}

func newRegistry() *Registry {
	return &Registry{entries: make(map[ID]Entry)}
}

// register adds an entry during construction. Re-registering an identifier
// is a no-op, which makes repeated initialization idempotent.
func (r *Registry) register(e Entry) {
	if _, exists := r.entries[e.ID]; exists {
		return
	}
	r.entries[e.ID] = e
	r.order = append(r.order, e.ID)
}

// registerSimple wraps a plain constructor as an entry. Metadata is read
// from a constructed prototype so entry and instance can never disagree.
func (r *Registry) registerSimple(build func() Joker) {
	proto := build()
	r.register(Entry{
		ID:          proto.ID(),
		Name:        proto.Name(),
		Description: proto.Description(),
		Rarity:      proto.Rarity(),
		Cost:        proto.BaseCost(),
		New:         func(Args) (Joker, error) { return build(), nil },
	})
}

// registerUnlockable is registerSimple with an unlock condition attached.
func (r *Registry) registerUnlockable(u Unlock, build func() Joker) {
	proto := build()
	r.register(Entry{
		ID:          proto.ID(),
		Name:        proto.Name(),
		Description: proto.Description(),
		Rarity:      proto.Rarity(),
		Cost:        proto.BaseCost(),
		Unlock:      u,
		New:         func(Args) (Joker, error) { return build(), nil },
	})
}

// Lookup returns the entry for an identifier.
func (r *Registry) Lookup(id ID) (Entry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int { return len(r.entries) }

// All returns every entry in registration order.
func (r *Registry) All() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}

// ByRarity returns entries of the given tier in registration order.
func (r *Registry) ByRarity(tier Rarity) []Entry {
	var out []Entry
	for _, id := range r.order {
		if e := r.entries[id]; e.Rarity == tier {
			out = append(out, e)
		}
	}
	return out
}

// EligibleFor returns entries matching the predicate, in registration
// order. The shop uses this with unlock-progress predicates to sample
// purchasable jokers.
func (r *Registry) EligibleFor(pred func(Entry) bool) []Entry {
	var out []Entry
	for _, id := range r.order {
		if e := r.entries[id]; pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// IDs returns all registered identifiers, sorted.
func (r *Registry) IDs() []ID {
	out := make([]ID, len(r.order))
	copy(out, r.order)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// New constructs a fresh instance of the identified kind. Unknown
// identifiers are a construction error, never a fallback instance.
func (r *Registry) New(id ID, args Args) (Joker, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("joker: %w: %q", ErrUnknownJoker, id)
	}
	j, err := e.New(args)
	if err != nil {
		return nil, fmt.Errorf("joker: construct %q: %w", id, err)
	}
	return j, nil
}

var (
	defaultOnce sync.Once
	defaultReg  atomic.Pointer[Registry]
)

// Default returns the process-wide registry. The first caller builds it
// behind a one-time gate; every other goroutine either sees nothing (and
// waits on the gate) or sees the complete table, never a partial one.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg.Store(buildDefault())
	})
	return defaultReg.Load()
}

// ResetDefaultForTest rebuilds the process-wide registry. Test isolation
// only; production code never mutates the published registry.
func ResetDefaultForTest() {
	defaultOnce.Do(func() {})
	defaultReg.Store(buildDefault())
}

func buildDefault() *Registry {
	r := newRegistry()
	registerStaticRoster(r)
	registerConditionalRoster(r)
	registerScalingRoster(r)
	registerEconomyRoster(r)
	registerRetriggerRoster(r)
	registerSpecialRoster(r)
	return r
}
