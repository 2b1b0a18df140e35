// Package cards implements the Cards bitset: an O(1) unordered set over the
// 32-card Skat deck, encoded as a 32-bit word so every set operation is a
// handful of bit instructions.
//
// Bit layout: card c occupies bit position suit(c)*8+rank(c), suit in
// encoding order (Diamonds, Hearts, Spades, Clubs) and rank in encoding
// order (7,8,9,Z,U,O,K,A). That makes a suit a contiguous byte of the word
// and a rank a periodic "every 8th bit" pattern, so of_suit/of_rank/of_trump
// are constant mask literals and iteration within a suit ascends by rank.
package cards

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/bran/skat/internal/card"
)

// Cards is an unordered set of Card values.
type Cards struct {
	bits uint32
}

// Empty is the empty set.
var Empty = Cards{}

// All is the full 32-card deck.
var All = Cards{bits: 0xFFFFFFFF}

// Just returns the singleton set containing c.
func Just(c card.Card) Cards {
	return Cards{bits: 1 << uint(c)}
}

func suitMask(s card.Suit) uint32 {
	return 0xFF << (8 * uint(s))
}

func rankMask(r card.Rank) uint32 {
	const perSuit = 0b00000001_00000001_00000001_00000001
	return perSuit << uint(r)
}

// OfSuit returns every card of the given physical suit, trump or not.
func OfSuit(s card.Suit) Cards {
	return Cards{bits: suitMask(s)}
}

// OfRank returns every card of the given rank, one per suit.
func OfRank(r card.Rank) Cards {
	return Cards{bits: rankMask(r)}
}

// OfTrump returns every trump card under the given game type.
func OfTrump(g card.GameType) Cards {
	switch {
	case g.IsNull():
		return Empty
	case g.IsGrand():
		return OfRank(card.RU)
	default:
		return OfSuit(g.Suit()).Or(OfRank(card.RU))
	}
}

// OfCardType returns every card sharing the given CardType under g: all
// trumps for card.Trump, or every non-trump card of that suit otherwise
// (the suit's own jack is excluded whenever it is itself trump).
func OfCardType(ct card.CardType, g card.GameType) Cards {
	if ct.IsTrump() {
		return OfTrump(g)
	}
	return OfSuit(ct.Suit()).Without(OfTrump(g))
}

// IsEmpty reports whether the set has no cards.
func (c Cards) IsEmpty() bool {
	return c.bits == 0
}

// Len returns the number of cards in the set.
func (c Cards) Len() int {
	return bits.OnesCount32(c.bits)
}

// Contains reports whether the set contains card.
func (c Cards) Contains(cd card.Card) bool {
	return c.bits&(1<<uint(cd)) != 0
}

// Or returns the union of c and other.
func (c Cards) Or(other Cards) Cards {
	return Cards{bits: c.bits | other.bits}
}

// And returns the intersection of c and other.
func (c Cards) And(other Cards) Cards {
	return Cards{bits: c.bits & other.bits}
}

// Without returns c with every card of other removed.
func (c Cards) Without(other Cards) Cards {
	return Cards{bits: c.bits &^ other.bits}
}

// Overlaps reports whether c and other share any card.
func (c Cards) Overlaps(other Cards) bool {
	return !c.And(other).IsEmpty()
}

// Equal reports whether c and other contain exactly the same cards.
func (c Cards) Equal(other Cards) bool {
	return c.bits == other.bits
}

// Add returns c with card added. The card must not already be a member.
func (c Cards) Add(cd card.Card) Cards {
	return Cards{bits: c.bits | (1 << uint(cd))}
}

// Remove returns c with card removed. The card must be a member.
func (c Cards) Remove(cd card.Card) Cards {
	return c.Without(Just(cd))
}

// Lowest returns the lowest-encoded card in the set and true, or the zero
// card and false if the set is empty.
func (c Cards) Lowest() (card.Card, bool) {
	if c.bits == 0 {
		return 0, false
	}
	return card.Card(bits.TrailingZeros32(c.bits)), true
}

// Highest returns the highest-encoded card in the set and true, or the
// zero card and false if the set is empty.
func (c Cards) Highest() (card.Card, bool) {
	if c.bits == 0 {
		return 0, false
	}
	return card.Card(31 - bits.LeadingZeros32(c.bits)), true
}

// RemoveLowest removes and returns the lowest-encoded card, or returns
// false if the set was empty.
func (c *Cards) RemoveLowest() (card.Card, bool) {
	lo, ok := c.Lowest()
	if !ok {
		return 0, false
	}
	*c = c.Remove(lo)
	return lo, true
}

// RemoveHighest removes and returns the highest-encoded card, or returns
// false if the set was empty rather than treating that case specially.
func (c *Cards) RemoveHighest() (card.Card, bool) {
	hi, ok := c.Highest()
	if !ok {
		return 0, false
	}
	*c = c.Remove(hi)
	return hi, true
}

// OfZeroPoints is every card worth zero card points (the 7s, 8s, 9s).
var OfZeroPoints = OfRank(card.R7).Or(OfRank(card.R8)).Or(OfRank(card.R9))

// RemoveIfThere removes cd from the set if present, reporting whether it
// was there.
func (c *Cards) RemoveIfThere(cd card.Card) bool {
	if !c.Contains(cd) {
		return false
	}
	*c = c.Remove(cd)
	return true
}

// RemoveLowestOfType removes and returns the lowest-encoded card of the
// given CardType under g, or returns false if the set holds none.
func (c *Cards) RemoveLowestOfType(ct card.CardType, g card.GameType) (card.Card, bool) {
	candidates := c.And(OfCardType(ct, g))
	lo, ok := candidates.Lowest()
	if !ok {
		return 0, false
	}
	*c = c.Remove(lo)
	return lo, true
}

// ToSlice returns the set's cards in ascending encoding order.
func (c Cards) ToSlice() []card.Card {
	result := make([]card.Card, 0, c.Len())
	rest := c
	for {
		cd, ok := rest.RemoveLowest()
		if !ok {
			return result
		}
		result = append(result, cd)
	}
}

// Points returns the total card points held in the set.
func (c Cards) Points() int {
	total := 0
	for _, cd := range c.ToSlice() {
		total += cd.Points()
	}
	return total
}

// PossiblePlays computes the legal-move rule: if a trick is already led
// (maybeLead holds a value), a hand with any card of the lead's CardType
// must play one of those; otherwise (void of the lead's type, or no trick
// in progress) any held card is legal.
func (c Cards) PossiblePlays(maybeLead *card.Card, g card.GameType) Cards {
	if maybeLead == nil {
		return c
	}
	following := c.And(OfCardType(maybeLead.CardType(g), g))
	if following.IsEmpty() {
		return c
	}
	return following
}

// PossiblePlaysForType generalizes PossiblePlays to a hypothetical lead
// CardType rather than a concrete lead card: used by move ordering to ask
// "how many replies would a hand have if forced to follow this type".
func (c Cards) PossiblePlaysForType(ct card.CardType, g card.GameType) Cards {
	following := c.And(OfCardType(ct, g))
	if following.IsEmpty() {
		return c
	}
	return following
}

func (c Cards) String() string {
	parts := make([]string, 0, c.Len())
	for _, cd := range c.ToSlice() {
		parts = append(parts, cd.String())
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, " "))
}
