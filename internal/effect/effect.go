// Package effect defines the value type jokers return from scoring hooks
// and the accumulator that folds a pass of effects into a single aggregate
// under strict numeric bounds.
package effect

import (
	"math"

	"github.com/jokersim/joker-engine-go/internal/cards"
)

// MaxMult is the hard cap on the accumulated additive mult and on the
// product after the multiplier is applied. Scores never exceed
// chips * MaxMult regardless of joker composition.
const MaxMult int64 = 1_000_000

// MaxRetriggersPerEffect bounds how many times a single effect can request
// retriggering; it keeps retrigger loops finite.
const MaxRetriggersPerEffect = 10

// CardTransform asks the engine to transform a card after the pass resolves.
type CardTransform struct {
	CardIndex   int               `json:"card_index"`
	Enhancement cards.Enhancement `json:"enhancement"`
}

// ConsumableKind names a consumable a joker can ask the engine to create.
type ConsumableKind string

const (
	ConsumableTarot     ConsumableKind = "tarot"
	ConsumablePlanet    ConsumableKind = "planet"
	ConsumableSpectral  ConsumableKind = "spectral"
)

// Effect is the net change one hook invocation produces. The zero value is
// the identity effect: no fields set, MultTimes zero meaning "no
// multiplier contribution".
type Effect struct {
	Chips     int64 `json:"chips,omitempty"`
	Mult      int64 `json:"mult,omitempty"`
	Money     int64 `json:"money,omitempty"`
	// MultTimes multiplies the accumulated mult. Zero means no contribution;
	// contributing effects carry values like 1.5 or 2.
	MultTimes float64 `json:"mult_times,omitempty"`

	InterestBonus     int64 `json:"interest_bonus,omitempty"`
	SellValueIncrease int64 `json:"sell_value_increase,omitempty"`
	Retrigger         int   `json:"retrigger,omitempty"`
	HandSizeMod       int   `json:"hand_size_mod,omitempty"`
	DiscardMod        int   `json:"discard_mod,omitempty"`

	DestroySelf bool `json:"destroy_self,omitempty"`

	TransformCards    []CardTransform  `json:"transform_cards,omitempty"`
	CreateConsumables []ConsumableKind `json:"create_consumables,omitempty"`

	// Message is an optional UI callout ("+4 Mult!").
	Message string `json:"message,omitempty"`
}

// Identity returns the no-op effect.
func Identity() Effect { return Effect{} }

// IsIdentity reports whether the effect changes nothing.
func (e Effect) IsIdentity() bool {
	return e.Chips == 0 && e.Mult == 0 && e.Money == 0 && e.MultTimes == 0 &&
		e.InterestBonus == 0 && e.SellValueIncrease == 0 && e.Retrigger == 0 &&
		e.HandSizeMod == 0 && e.DiscardMod == 0 && !e.DestroySelf &&
		len(e.TransformCards) == 0 && len(e.CreateConsumables) == 0 && e.Message == ""
}

// Chip-stacking constructors used heavily by the joker roster.

// AddChips returns an effect contributing additive chips.
func AddChips(n int64) Effect { return Effect{Chips: n} }

// AddMult returns an effect contributing additive mult.
func AddMult(n int64) Effect { return Effect{Mult: n} }

// TimesMult returns an effect contributing a mult multiplier.
func TimesMult(x float64) Effect { return Effect{MultTimes: x} }

// AddMoney returns an effect contributing a money delta.
func AddMoney(n int64) Effect { return Effect{Money: n} }

// WithMessage attaches a UI callout to the effect.
func (e Effect) WithMessage(msg string) Effect {
	e.Message = msg
	return e
}

// satAdd adds two int64 values, saturating at the type bounds instead of
// wrapping.
func satAdd(a, b int64) int64 {
	sum := a + b
	if b > 0 && sum < a {
		return math.MaxInt64
	}
	if b < 0 && sum > a {
		return math.MinInt64
	}
	return sum
}
