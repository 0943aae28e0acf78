package cards

import "sort"

// HandRank classifies a played hand, in ascending strength order.
// The extended ranks (five of a kind and the flush variants) only occur with
// enhanced or duplicated decks.
type HandRank uint8

const (
	HighCard HandRank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
	FiveOfAKind
	FlushHouse
	FlushFive
)

var handRankNames = [...]string{
	"High Card", "Pair", "Two Pair", "Three of a Kind", "Straight",
	"Flush", "Full House", "Four of a Kind", "Straight Flush",
	"Royal Flush", "Five of a Kind", "Flush House", "Flush Five",
}

func (h HandRank) String() string {
	if int(h) < len(handRankNames) {
		return handRankNames[h]
	}
	return "Unknown"
}

// HandRanks returns every classification in ascending strength order.
func HandRanks() []HandRank {
	out := make([]HandRank, 0, 13)
	for h := HighCard; h <= FlushFive; h++ {
		out = append(out, h)
	}
	return out
}

// Contains reports whether a hand of this rank also satisfies the weaker
// rank. A Full House contains a Pair, a Flush Five contains a Flush, etc.
func (h HandRank) Contains(other HandRank) bool {
	if h == other {
		return true
	}
	switch other {
	case OnePair:
		switch h {
		case TwoPair, ThreeOfAKind, FullHouse, FourOfAKind, FiveOfAKind, FlushHouse, FlushFive:
			return true
		}
	case TwoPair:
		switch h {
		case FullHouse, FlushHouse:
			return true
		}
	case ThreeOfAKind:
		switch h {
		case FullHouse, FourOfAKind, FiveOfAKind, FlushHouse, FlushFive:
			return true
		}
	case Straight:
		switch h {
		case StraightFlush, RoyalFlush:
			return true
		}
	case Flush:
		switch h {
		case StraightFlush, RoyalFlush, FlushHouse, FlushFive:
			return true
		}
	case FourOfAKind:
		switch h {
		case FiveOfAKind, FlushFive:
			return true
		}
	}
	return false
}

// BaseScore returns the base chips and mult awarded for a hand of this rank
// at level one.
func (h HandRank) BaseScore() (chips int64, mult int64) {
	switch h {
	case HighCard:
		return 5, 1
	case OnePair:
		return 10, 2
	case TwoPair:
		return 20, 2
	case ThreeOfAKind:
		return 30, 3
	case Straight:
		return 30, 4
	case Flush:
		return 35, 4
	case FullHouse:
		return 40, 4
	case FourOfAKind:
		return 60, 7
	case StraightFlush:
		return 100, 8
	case RoyalFlush:
		return 100, 8
	case FiveOfAKind:
		return 120, 12
	case FlushHouse:
		return 140, 14
	case FlushFive:
		return 160, 16
	}
	return 0, 0
}

// Hand is an ordered set of played cards. Order is the player's selection
// order and is preserved through scoring.
type Hand struct {
	Cards []Card `json:"cards"`
}

// NewHand copies the given cards into a hand.
func NewHand(cs ...Card) Hand {
	out := make([]Card, len(cs))
	copy(out, cs)
	return Hand{Cards: out}
}

// Len returns the number of played cards.
func (h Hand) Len() int { return len(h.Cards) }

// CountSuit returns how many cards of the suit the hand contains. Stone
// cards have no suit and never match.
func (h Hand) CountSuit(s Suit) int {
	n := 0
	for _, c := range h.Cards {
		if c.Enhancement != Stone && c.Suit == s {
			n++
		}
	}
	return n
}

// CountRank returns how many cards of the rank the hand contains.
func (h Hand) CountRank(r Rank) int {
	n := 0
	for _, c := range h.Cards {
		if c.Enhancement != Stone && c.Rank == r {
			n++
		}
	}
	return n
}

// CountFaces returns how many face cards the hand contains.
func (h Hand) CountFaces() int {
	n := 0
	for _, c := range h.Cards {
		if c.Enhancement != Stone && c.Rank.IsFace() {
			n++
		}
	}
	return n
}

// Classify determines the best rank the played cards form. Stone cards are
// excluded from classification but still score.
func (h Hand) Classify() HandRank {
	ranked := make([]Card, 0, len(h.Cards))
	for _, c := range h.Cards {
		if c.Enhancement != Stone {
			ranked = append(ranked, c)
		}
	}
	if len(ranked) == 0 {
		return HighCard
	}

	rankCounts := map[Rank]int{}
	suitCounts := map[Suit]int{}
	for _, c := range ranked {
		rankCounts[c.Rank]++
		suitCounts[c.Suit]++
	}

	counts := make([]int, 0, len(rankCounts))
	for _, n := range rankCounts {
		counts = append(counts, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	flush := false
	for _, n := range suitCounts {
		if n >= 5 {
			flush = true
		}
	}
	straight, royal := isStraight(rankCounts)

	switch {
	case counts[0] >= 5 && flush:
		return FlushFive
	case counts[0] >= 5:
		return FiveOfAKind
	case counts[0] >= 3 && len(counts) > 1 && counts[1] >= 2 && flush:
		return FlushHouse
	case straight && flush && royal:
		return RoyalFlush
	case straight && flush:
		return StraightFlush
	case counts[0] == 4:
		return FourOfAKind
	case counts[0] == 3 && len(counts) > 1 && counts[1] >= 2:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case counts[0] == 3:
		return ThreeOfAKind
	case counts[0] == 2 && len(counts) > 1 && counts[1] == 2:
		return TwoPair
	case counts[0] == 2:
		return OnePair
	}
	return HighCard
}

// isStraight reports whether the distinct ranks form a five-card run.
// The ace plays low in A-2-3-4-5 and high in 10-J-Q-K-A.
func isStraight(rankCounts map[Rank]int) (straight, royal bool) {
	if len(rankCounts) < 5 {
		return false, false
	}
	distinct := make([]int, 0, len(rankCounts))
	for r := range rankCounts {
		distinct = append(distinct, int(r))
	}
	sort.Ints(distinct)

	run := 1
	for i := 1; i < len(distinct); i++ {
		if distinct[i] == distinct[i-1]+1 {
			run++
			if run >= 5 {
				return true, distinct[i] == int(Ace) && distinct[i-4] == int(Ten)
			}
		} else {
			run = 1
		}
	}
	// Wheel: A-2-3-4-5.
	if _, ok := rankCounts[Ace]; ok {
		wheel := true
		for r := Two; r <= Five; r++ {
			if _, ok := rankCounts[r]; !ok {
				wheel = false
				break
			}
		}
		if wheel {
			return true, false
		}
	}
	return false, false
}
