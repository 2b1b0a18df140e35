// Package card defines the 32-card Skat universe: suits, ranks, the game
// type that determines trumps, and the single-byte Card encoding on which
// the cards package builds its bitset.
package card

import "fmt"

// Suit is one of the four card suits. The numeric order (Diamonds, Hearts,
// Spades, Clubs) is load-bearing: it is the suit-major order used by the
// Card byte encoding in this package and by the Cards bitset layout.
type Suit uint8

const (
	Diamonds Suit = iota
	Hearts
	Spades
	Clubs
)

// Suits lists all four suits in encoding order.
var Suits = [4]Suit{Diamonds, Hearts, Spades, Clubs}

func (s Suit) String() string {
	switch s {
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	case Clubs:
		return "Clubs"
	default:
		return "InvalidSuit"
	}
}

// Symbol returns the one-letter-code prefix used for this suit in the
// JSON wire format (S/H/G/E for Diamonds/Hearts/Spades/Clubs).
func (s Suit) Symbol() byte {
	switch s {
	case Diamonds:
		return 'S'
	case Hearts:
		return 'H'
	case Spades:
		return 'G'
	case Clubs:
		return 'E'
	default:
		return '?'
	}
}

// Rank is one of the eight card ranks within a suit, in ascending
// within-suit order for Null (7<8<9<Z<U<O<K<A).
type Rank uint8

const (
	R7 Rank = iota
	R8
	R9
	RZ
	RU
	RO
	RK
	RA
)

// Ranks lists all eight ranks in encoding order.
var Ranks = [8]Rank{R7, R8, R9, RZ, RU, RO, RK, RA}

// RanksByPoints lists all eight ranks in ascending order of point value,
// used when a hand must give up its cheapest cards first.
var RanksByPoints = [8]Rank{R7, R8, R9, RU, RO, RK, RZ, RA}

func (r Rank) String() string {
	switch r {
	case R7:
		return "7"
	case R8:
		return "8"
	case R9:
		return "9"
	case RZ:
		return "Z"
	case RU:
		return "U"
	case RO:
		return "O"
	case RK:
		return "K"
	case RA:
		return "A"
	default:
		return "?"
	}
}

// Points returns the card points scored by a card of this rank: 7/8/9→0,
// O→3, K→4, Z→10, U→2, A→11 (total across the deck is 120).
func (r Rank) Points() int {
	switch r {
	case RO:
		return 3
	case RK:
		return 4
	case RZ:
		return 10
	case RU:
		return 2
	case RA:
		return 11
	default:
		return 0
	}
}

// CardType classifies a card relative to a GameType: either Trump, or the
// plain suit it belongs to (for non-trump cards).
type CardType struct {
	isTrump bool
	suit    Suit
}

// Trump is the CardType shared by every trump card, regardless of suit.
var Trump = CardType{isTrump: true}

// OfSuit returns the CardType for a non-trump card of the given suit.
func OfSuit(s Suit) CardType {
	return CardType{suit: s}
}

// IsTrump reports whether this CardType is the trump type.
func (c CardType) IsTrump() bool {
	return c.isTrump
}

// Suit returns the underlying suit; only meaningful when !IsTrump().
func (c CardType) Suit() Suit {
	return c.suit
}

func (c CardType) String() string {
	if c.isTrump {
		return "Trump"
	}
	return c.suit.String()
}

// GameType determines which cards count as trump.
type GameType struct {
	null bool
	grand bool
	suit  Suit
}

// Null is the Null contract: no trumps at all.
var Null = GameType{null: true}

// Grand is the Grand contract: only the four Jacks are trump.
var Grand = GameType{grand: true}

// TrumpSuit returns the Trump(suit) contract for a non-Grand trump suit.
func TrumpSuit(s Suit) GameType {
	return GameType{suit: s}
}

// IsNull reports whether this is the Null contract.
func (g GameType) IsNull() bool {
	return g.null
}

// IsGrand reports whether this is the Grand contract (trump = Jacks only).
func (g GameType) IsGrand() bool {
	return g.grand
}

// Suit returns the trump suit; only meaningful when neither IsNull() nor
// IsGrand() holds.
func (g GameType) Suit() Suit {
	return g.suit
}

func (g GameType) String() string {
	switch {
	case g.null:
		return "Null"
	case g.grand:
		return "Grand"
	default:
		return "Trump(" + g.suit.String() + ")"
	}
}

// Card is one of the 32 atoms of the deck, encoded as a single byte whose
// low 5 bits place it at bit position suit*8+rank in a Cards bitset. This
// keeps of_suit/of_rank/of_trump O(1) constant masks (see the cards
// package) and makes iteration within a suit ascend by rank.
type Card uint8

// New builds the Card for a given suit and rank.
func New(s Suit, r Rank) Card {
	return Card(uint8(s)*8 + uint8(r))
}

// Suit returns the card's physical suit (not its effective CardType, which
// depends on the game type for trump jacks).
func (c Card) Suit() Suit {
	return Suit(uint8(c) / 8)
}

// Rank returns the card's rank.
func (c Card) Rank() Rank {
	return Rank(uint8(c) % 8)
}

// Points returns the card's point value.
func (c Card) Points() int {
	return c.Rank().Points()
}

// CardType returns the card's type (Trump or its suit) under a game type.
func (c Card) CardType(g GameType) CardType {
	if IsTrump(c, g) {
		return Trump
	}
	return OfSuit(c.Suit())
}

// IsTrump reports whether card c is trump under game type g.
func IsTrump(c Card, g GameType) bool {
	switch {
	case g.null:
		return false
	case g.grand:
		return c.Rank() == RU
	default:
		return c.Rank() == RU || c.Suit() == g.suit
	}
}

func (c Card) String() string {
	return fmt.Sprintf("%c%s", c.Suit().Symbol(), c.Rank().String())
}

// ParseSymbol parses a two-letter wire-format card code, e.g. "EU" for the
// club jack. Returns false if sym is not a valid card symbol.
func ParseSymbol(sym string) (Card, bool) {
	if len(sym) != 2 {
		return 0, false
	}
	var s Suit
	switch sym[0] {
	case 'S':
		s = Diamonds
	case 'H':
		s = Hearts
	case 'G':
		s = Spades
	case 'E':
		s = Clubs
	default:
		return 0, false
	}
	var r Rank
	switch sym[1] {
	case '7':
		r = R7
	case '8':
		r = R8
	case '9':
		r = R9
	case 'Z':
		r = RZ
	case 'U':
		r = RU
	case 'O':
		r = RO
	case 'K':
		r = RK
	case 'A':
		r = RA
	default:
		return 0, false
	}
	return New(s, r), true
}
