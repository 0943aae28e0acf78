// Package shop prices jokers and generates purchase offers. All money
// arithmetic runs through decimals so rarity multipliers and half-price
// sell values round the same way everywhere.
package shop

import (
	"github.com/shopspring/decimal"

	"github.com/jokersim/joker-engine-go/internal/joker"
	"github.com/jokersim/joker-engine-go/internal/rng"
)

// rarityMultipliers scale a kind's base cost into its shop price.
var rarityMultipliers = map[joker.Rarity]decimal.Decimal{
	joker.Common:    decimal.NewFromInt(1),
	joker.Uncommon:  decimal.RequireFromString("1.25"),
	joker.Rare:      decimal.RequireFromString("1.5"),
	joker.Legendary: decimal.NewFromInt(2),
}

// rarityWeights bias offer sampling toward common kinds. Legendary kinds
// never roll in the shop.
var rarityWeights = map[joker.Rarity]float64{
	joker.Common:    70,
	joker.Uncommon:  25,
	joker.Rare:      5,
	joker.Legendary: 0,
}

// BuyPrice returns the shop price for a kind: base cost scaled by rarity,
// rounded up to a whole amount.
func BuyPrice(baseCost int64, tier joker.Rarity) int64 {
	mul, ok := rarityMultipliers[tier]
	if !ok {
		mul = decimal.NewFromInt(1)
	}
	return decimal.NewFromInt(baseCost).Mul(mul).Ceil().IntPart()
}

// SellValue returns what selling an instance pays out: half the base cost
// rounded down, never below one, plus any accumulated sell-value bonus.
func SellValue(baseCost, bonus int64) int64 {
	half := decimal.NewFromInt(baseCost).Div(decimal.NewFromInt(2)).Floor().IntPart()
	if half < 1 {
		half = 1
	}
	v := half + bonus
	if v < 0 {
		return 0
	}
	return v
}

// InterestStreamCap caps the payout of a single interest stream.
const InterestStreamCap int64 = 5

// Interest returns round-end interest: one per five held, capped at five.
// Each accumulated interest bonus adds a full extra $1-per-$5 stream with
// the same cap, so a single bonus doubles the payout.
func Interest(wallet, bonus int64) int64 {
	if wallet <= 0 {
		return 0
	}
	earned := decimal.NewFromInt(wallet).Div(decimal.NewFromInt(5)).Floor().IntPart()
	if earned > InterestStreamCap {
		earned = InterestStreamCap
	}
	streams := 1 + bonus
	if streams < 1 {
		streams = 1
	}
	return earned * streams
}

// Offer is one purchasable slot in a shop roll.
type Offer struct {
	Entry joker.Entry
	Price int64
}

// Roll samples n distinct offers from kinds whose unlock condition the
// progress satisfies, weighted by rarity. Fewer than n eligible kinds
// yield a short roll.
func Roll(reg *joker.Registry, prog joker.Progress, src *rng.Source, n int) []Offer {
	pool := reg.EligibleFor(func(e joker.Entry) bool {
		return rarityWeights[e.Rarity] > 0 && e.Unlock.Satisfied(prog)
	})
	offers := make([]Offer, 0, n)
	weights := make([]float64, len(pool))
	for i, e := range pool {
		weights[i] = rarityWeights[e.Rarity]
	}
	for len(offers) < n && len(pool) > 0 {
		i := src.ChooseWeighted(weights)
		if i < 0 {
			break
		}
		e := pool[i]
		offers = append(offers, Offer{Entry: e, Price: BuyPrice(e.Cost, e.Rarity)})
		pool = append(pool[:i], pool[i+1:]...)
		weights = append(weights[:i], weights[i+1:]...)
	}
	return offers
}
