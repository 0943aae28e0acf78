package effect

import (
	"errors"
	"math"
)

// ErrNonFinite is reported when an accumulation step would have produced a
// NaN or infinite value. The step is rolled back and scoring continues from
// the prior aggregate.
var ErrNonFinite = errors.New("effect: non-finite accumulation result")

// Aggregate is the running total of a full pass over the joker list.
//
// Accumulation order is fixed: additive fields saturate first, then the
// mult cap is applied after every step. The multiplier is folded into the
// mult only at ApplyTo time, and the product is capped again there, so the
// cap holds whichever side of the multiplication grows.
type Aggregate struct {
	Chips     int64
	Mult      int64
	MultTimes float64
	Money     int64

	InterestBonus     int64
	SellValueIncrease int64
	HandSizeMod       int
	DiscardMod        int

	TransformCards    []CardTransform
	CreateConsumables []ConsumableKind
	Messages          []string

	// NonFiniteRejections counts accumulation steps rolled back because
	// the result was NaN or infinite.
	NonFiniteRejections int
}

// NewAggregate returns the identity aggregate: zero additive fields and a
// 1.0 multiplier.
func NewAggregate() Aggregate {
	return Aggregate{MultTimes: 1.0}
}

// IsIdentity reports whether the aggregate equals the identity aggregate.
func (a *Aggregate) IsIdentity() bool {
	return a.Chips == 0 && a.Mult == 0 && a.MultTimes == 1.0 && a.Money == 0 &&
		a.InterestBonus == 0 && a.SellValueIncrease == 0 &&
		a.HandSizeMod == 0 && a.DiscardMod == 0 &&
		len(a.TransformCards) == 0 && len(a.CreateConsumables) == 0
}

// Accumulate folds one effect into the aggregate. Clamps apply after this
// step, not at the end of the pass. A step that would produce a non-finite
// multiplier is rolled back and reported; the aggregate keeps its prior
// value (ErrNonFinite).
func (a *Aggregate) Accumulate(e Effect) error {
	a.Chips = satAdd(a.Chips, e.Chips)
	if a.Chips < 0 {
		a.Chips = 0
	}

	a.Mult = satAdd(a.Mult, e.Mult)
	if a.Mult > MaxMult {
		a.Mult = MaxMult
	}

	a.Money = satAdd(a.Money, e.Money)
	a.InterestBonus = satAdd(a.InterestBonus, e.InterestBonus)
	a.SellValueIncrease = satAdd(a.SellValueIncrease, e.SellValueIncrease)
	a.HandSizeMod += e.HandSizeMod
	a.DiscardMod += e.DiscardMod

	a.TransformCards = append(a.TransformCards, e.TransformCards...)
	a.CreateConsumables = append(a.CreateConsumables, e.CreateConsumables...)
	if e.Message != "" {
		a.Messages = append(a.Messages, e.Message)
	}

	if e.MultTimes != 0 {
		next := a.MultTimes * e.MultTimes
		if math.IsNaN(next) || math.IsInf(next, 0) {
			a.NonFiniteRejections++
			return ErrNonFinite
		}
		if next < 0 {
			next = 0
		}
		if next > float64(MaxMult) {
			next = float64(MaxMult)
		}
		a.MultTimes = next
	}
	return nil
}

// FinalMult returns (base + accumulated) * multiplier, capped at MaxMult.
func (a *Aggregate) FinalMult(baseMult int64) int64 {
	m := satAdd(baseMult, a.Mult)
	if m > MaxMult {
		m = MaxMult
	}
	if m < 0 {
		m = 0
	}
	product := float64(m) * a.MultTimes
	if math.IsNaN(product) || math.IsInf(product, 0) {
		return m
	}
	if product > float64(MaxMult) {
		return MaxMult
	}
	if product < 0 {
		return 0
	}
	return int64(product)
}

// Score computes the hand score from base accumulators: (baseChips +
// chips) * finalMult, saturating on overflow.
func (a *Aggregate) Score(baseChips, baseMult int64) int64 {
	chips := satAdd(baseChips, a.Chips)
	if chips < 0 {
		chips = 0
	}
	mult := a.FinalMult(baseMult)
	if chips == 0 || mult == 0 {
		return 0
	}
	if chips > math.MaxInt64/mult {
		return math.MaxInt64
	}
	return chips * mult
}

// ApplyMoney returns the wallet after applying the accumulated money delta.
// The accumulated delta may be negative in aggregate, but the wallet never
// drops below zero at application.
func (a *Aggregate) ApplyMoney(wallet int64) int64 {
	next := satAdd(wallet, a.Money)
	if next < 0 {
		return 0
	}
	return next
}
