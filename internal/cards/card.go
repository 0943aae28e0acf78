package cards

import "fmt"

// Suit is one of the four card suits.
type Suit uint8

const (
	Spade Suit = iota
	Club
	Heart
	Diamond
)

// Suits returns all four suits in canonical order.
func Suits() [4]Suit {
	return [4]Suit{Spade, Club, Heart, Diamond}
}

func (s Suit) String() string {
	switch s {
	case Spade:
		return "Spades"
	case Club:
		return "Clubs"
	case Heart:
		return "Hearts"
	case Diamond:
		return "Diamonds"
	}
	return "Unknown"
}

// Rank is the face value of a card, Two through Ace.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks returns all thirteen ranks in ascending order.
func Ranks() [13]Rank {
	return [13]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

var rankNames = [13]string{
	"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A",
}

func (r Rank) String() string {
	if int(r) < len(rankNames) {
		return rankNames[r]
	}
	return "?"
}

// Chips returns the base chip value a card of this rank contributes when scored.
func (r Rank) Chips() int64 {
	switch {
	case r == Ace:
		return 11
	case r >= Ten:
		return 10
	default:
		return int64(r) + 2
	}
}

// IsFace reports whether the rank is Jack, Queen, or King.
func (r Rank) IsFace() bool {
	return r == Jack || r == Queen || r == King
}

// IsEven reports whether the rank counts as even (10, 8, 6, 4, 2).
// Face cards and aces are neither even nor odd.
func (r Rank) IsEven() bool {
	switch r {
	case Two, Four, Six, Eight, Ten:
		return true
	}
	return false
}

// IsOdd reports whether the rank counts as odd (A, 9, 7, 5, 3).
func (r Rank) IsOdd() bool {
	switch r {
	case Ace, Three, Five, Seven, Nine:
		return true
	}
	return false
}

// Enhancement is a permanent card modification applied by consumables.
type Enhancement uint8

const (
	NoEnhancement Enhancement = iota
	Bonus
	Mult
	Glass
	Steel
	Stone
	Gold
	Lucky
)

// Card is a single playing card.
type Card struct {
	Rank        Rank        `json:"rank"`
	Suit        Suit        `json:"suit"`
	Enhancement Enhancement `json:"enhancement,omitempty"`
}

// NewCard returns an unenhanced card.
func NewCard(r Rank, s Suit) Card {
	return Card{Rank: r, Suit: s}
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Chips returns the chip contribution of the card, including enhancements.
// Stone cards score a flat 50 and have no rank value.
func (c Card) Chips() int64 {
	switch c.Enhancement {
	case Stone:
		return 50
	case Bonus:
		return c.Rank.Chips() + 30
	default:
		return c.Rank.Chips()
	}
}
