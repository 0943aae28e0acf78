package joker

import (
	"encoding/json"

	"github.com/jokersim/joker-engine-go/internal/cards"
	"github.com/jokersim/joker-engine-go/internal/effect"
)

// LegacyJoker is the older monolithic behavior interface: one type carries
// every hook whether it uses it or not. New code implements the decomposed
// capability interfaces instead; this shape survives only so existing
// implementations keep working until their migration completes, at which
// point this file can be deleted without touching the new interfaces.
type LegacyJoker interface {
	Ident() ID
	DisplayName() string
	Desc() string
	Tier() Rarity
	Cost() int64

	OnPlay(ctx *Context) effect.Effect
	OnScore(ctx *Context, card cards.Card) effect.Effect

	OnBought(ctx *Context)
	OnSold(ctx *Context)
	OnRoundBegin(ctx *Context)
	OnRoundFinish(ctx *Context)

	HandSizeDelta() int
	DiscardDelta() int

	Save() ([]byte, error)
	Load(data []byte) error
}

// Bridge adapts a LegacyJoker to the decomposed interfaces. Every method
// forwards to the corresponding branch of the monolithic shape with no
// per-call allocation, so a bridged joker is behaviorally indistinguishable
// from calling the legacy implementation directly.
type Bridge struct {
	legacy LegacyJoker
}

var _ interface {
	Identity
	Lifecycle
	Gameplay
	Modifiers
	State
} = (*Bridge)(nil)

// WrapLegacy bridges a legacy joker into the capability model. The one
// allocation happens here, at wrap time.
func WrapLegacy(l LegacyJoker) *Bridge {
	return &Bridge{legacy: l}
}

// Unwrap returns the wrapped legacy implementation.
func (b *Bridge) Unwrap() LegacyJoker { return b.legacy }

func (b *Bridge) ID() ID              { return b.legacy.Ident() }
func (b *Bridge) Name() string        { return b.legacy.DisplayName() }
func (b *Bridge) Description() string { return b.legacy.Desc() }
func (b *Bridge) Rarity() Rarity      { return b.legacy.Tier() }
func (b *Bridge) BaseCost() int64     { return b.legacy.Cost() }

func (b *Bridge) OnHandPlayed(ctx *Context) (effect.Effect, error) {
	return b.legacy.OnPlay(ctx), nil
}

func (b *Bridge) OnCardScored(ctx *Context, card cards.Card, _ int) (effect.Effect, error) {
	return b.legacy.OnScore(ctx, card), nil
}

func (b *Bridge) OnAcquire(ctx *Context)    { b.legacy.OnBought(ctx) }
func (b *Bridge) OnSell(ctx *Context)       { b.legacy.OnSold(ctx) }
func (b *Bridge) OnDestroy(ctx *Context)    { b.legacy.OnSold(ctx) }
func (b *Bridge) OnRoundStart(ctx *Context) { b.legacy.OnRoundBegin(ctx) }
func (b *Bridge) OnRoundEnd(ctx *Context)   { b.legacy.OnRoundFinish(ctx) }

// OnSiblingChange has no legacy equivalent; legacy jokers never observed
// sibling changes.
func (b *Bridge) OnSiblingChange(*Context, ID, bool) {}

func (b *Bridge) HandSizeModifier() int { return b.legacy.HandSizeDelta() }
func (b *Bridge) DiscardModifier() int  { return b.legacy.DiscardDelta() }

func (b *Bridge) SerializeState() (json.RawMessage, error) {
	data, err := b.legacy.Save()
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

func (b *Bridge) DeserializeState(data json.RawMessage) error {
	return b.legacy.Load(data)
}

// Collection is an ordered list of active jokers. Bridged legacy jokers
// and native decomposed jokers sit behind the same interface set, so the
// pipeline never distinguishes them. Order is acquisition order and is
// stable for the life of the run.
type Collection struct {
	items []Joker
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add appends a native joker and returns its slot.
func (c *Collection) Add(j Joker) int {
	c.items = append(c.items, j)
	return len(c.items) - 1
}

// AddLegacy wraps and appends a legacy joker.
func (c *Collection) AddLegacy(l LegacyJoker) int {
	return c.Add(WrapLegacy(l))
}

// At returns the joker in the slot, or nil when the slot is out of range.
func (c *Collection) At(slot int) Joker {
	if slot < 0 || slot >= len(c.items) {
		return nil
	}
	return c.items[slot]
}

// Len returns the number of active jokers.
func (c *Collection) Len() int { return len(c.items) }

// Items returns the backing list in acquisition order. Callers must not
// mutate it.
func (c *Collection) Items() []Joker { return c.items }

// Remove deletes the slot and closes the gap, preserving relative order.
// It reports whether the slot existed.
func (c *Collection) Remove(slot int) bool {
	if slot < 0 || slot >= len(c.items) {
		return false
	}
	c.items = append(c.items[:slot], c.items[slot+1:]...)
	return true
}

// IDs returns the identifiers in acquisition order.
func (c *Collection) IDs() []ID {
	out := make([]ID, len(c.items))
	for i, j := range c.items {
		out[i] = j.ID()
	}
	return out
}
