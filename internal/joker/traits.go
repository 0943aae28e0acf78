// Package joker implements the scoring-modifier engine: the capability
// interfaces jokers implement, the implementation frameworks they are built
// from, the process-wide registry and factory, and the compatibility bridge
// for the legacy monolithic interface.
//
// A joker implements the subset of the five capability interfaces it needs.
// Identity is mandatory; the pipeline probes for the rest with type
// assertions rather than assuming a fixed shape.
package joker

import (
	"encoding/json"

	"github.com/jokersim/joker-engine-go/internal/cards"
	"github.com/jokersim/joker-engine-go/internal/effect"
)

// Rarity classifies jokers for shop weighting and pricing.
type Rarity uint8

const (
	Common Rarity = iota
	Uncommon
	Rare
	Legendary
)

var rarityNames = [...]string{"Common", "Uncommon", "Rare", "Legendary"}

func (r Rarity) String() string {
	if int(r) < len(rarityNames) {
		return rarityNames[r]
	}
	return "Unknown"
}

// Rarities returns all rarity tiers in ascending order.
func Rarities() [4]Rarity {
	return [4]Rarity{Common, Uncommon, Rare, Legendary}
}

// Stage is the phase of a round the engine is in when a hook fires.
type Stage uint8

const (
	StageBlind Stage = iota // playing hands against a blind
	StageShop
	StageRoundEnd
)

func (s Stage) String() string {
	switch s {
	case StageBlind:
		return "blind"
	case StageShop:
		return "shop"
	case StageRoundEnd:
		return "round_end"
	}
	return "unknown"
}

// Identity is the one mandatory capability: static metadata about a joker
// kind. Implementations must be allocation-free and safe to call without
// mutating the instance.
type Identity interface {
	ID() ID
	Name() string
	Description() string
	Rarity() Rarity
	// BaseCost is the shop price before rarity and voucher adjustments.
	BaseCost() int64
}

// Lifecycle receives run events. Hooks may be called zero or many times per
// round and must not assume ordering relative to other instances beyond the
// acquisition order of the active list.
type Lifecycle interface {
	OnAcquire(ctx *Context)
	OnSell(ctx *Context)
	OnDestroy(ctx *Context)
	OnRoundStart(ctx *Context)
	OnRoundEnd(ctx *Context)
	// OnSiblingChange fires when another joker joins or leaves the run.
	OnSiblingChange(ctx *Context, other ID, added bool)
}

// Gameplay provides the scoring hooks. OnHandPlayed fires once per played
// hand; OnCardScored fires once per scoring card. A hook returning an error
// is treated as contributing the identity effect for that invocation and
// the error is surfaced by the pipeline; it never aborts the pass.
type Gameplay interface {
	OnHandPlayed(ctx *Context) (effect.Effect, error)
	OnCardScored(ctx *Context, card cards.Card, cardIndex int) (effect.Effect, error)
}

// Modifiers are passive rule adjustments that hold without triggering.
// They are queried on game-state recomputation, not per scoring event.
type Modifiers interface {
	HandSizeModifier() int
	DiscardModifier() int
}

// State serializes the instance's persistent data to a self-describing
// payload. DeserializeState must validate its input and reject malformed
// payloads without touching the instance's current in-memory state.
type State interface {
	SerializeState() (json.RawMessage, error)
	DeserializeState(data json.RawMessage) error
}

// Joker is the minimum contract for an attachable behavior. Concrete types
// add Lifecycle, Gameplay, Modifiers, and State as needed.
type Joker interface {
	Identity
}

// SupportsGameplay probes the Gameplay capability.
func SupportsGameplay(j Joker) (Gameplay, bool) {
	g, ok := j.(Gameplay)
	return g, ok
}

// SupportsLifecycle probes the Lifecycle capability.
func SupportsLifecycle(j Joker) (Lifecycle, bool) {
	l, ok := j.(Lifecycle)
	return l, ok
}

// SupportsModifiers probes the Modifiers capability.
func SupportsModifiers(j Joker) (Modifiers, bool) {
	m, ok := j.(Modifiers)
	return m, ok
}

// SupportsState probes the State capability.
func SupportsState(j Joker) (State, bool) {
	s, ok := j.(State)
	return s, ok
}

// Base carries the identity metadata shared by every framework. Embedding
// it satisfies Identity without boilerplate.
type Base struct {
	id          ID
	name        string
	description string
	rarity      Rarity
	cost        int64
}

// NewBase builds identity metadata for a joker kind.
func NewBase(id ID, name, description string, rarity Rarity, cost int64) Base {
	return Base{id: id, name: name, description: description, rarity: rarity, cost: cost}
}

func (b Base) ID() ID              { return b.id }
func (b Base) Name() string        { return b.name }
func (b Base) Description() string { return b.description }
func (b Base) Rarity() Rarity      { return b.rarity }
func (b Base) BaseCost() int64     { return b.cost }

// NoLifecycle provides no-op Lifecycle hooks for embedding.
type NoLifecycle struct{}

func (NoLifecycle) OnAcquire(*Context)                  {}
func (NoLifecycle) OnSell(*Context)                     {}
func (NoLifecycle) OnDestroy(*Context)                  {}
func (NoLifecycle) OnRoundStart(*Context)               {}
func (NoLifecycle) OnRoundEnd(*Context)                 {}
func (NoLifecycle) OnSiblingChange(*Context, ID, bool)  {}
