package engine

import (
	"github.com/bran/skat/internal/card"
	"github.com/bran/skat/internal/cards"
)

// Trick is three played cards, in play order: forehand, middlehand,
// rearhand.
type Trick struct {
	first, second, third card.Card
}

// NewTrick builds a completed trick from its three cards.
func NewTrick(first, second, third card.Card) Trick {
	return Trick{first: first, second: second, third: third}
}

// First returns the card played by the forehand position.
func (t Trick) First() card.Card { return t.first }

// Second returns the card played by the middlehand position.
func (t Trick) Second() card.Card { return t.second }

// Third returns the card played by the rearhand position.
func (t Trick) Third() card.Card { return t.third }

// TrickType returns the CardType the trick is contested in: whatever the
// led card's type is.
func (t Trick) TrickType(g card.GameType) card.CardType {
	return t.first.CardType(g)
}

// WinnerPosition returns which of the three positions wins the trick.
func (t Trick) WinnerPosition(g card.GameType) Position {
	trickType := t.TrickType(g)

	powerForehand := PowerOf(t.first, t.first, g)
	powerMiddlehand := PowerOf(t.second, t.first, g)
	powerRearhand := PowerOf(t.third, t.first, g)
	_ = trickType

	if powerForehand <= powerMiddlehand {
		if powerMiddlehand <= powerRearhand {
			return Rearhand
		}
		return Middlehand
	}
	if powerForehand <= powerRearhand {
		return Rearhand
	}
	return Forehand
}

// Cards returns the trick's three cards as a set.
func (t Trick) Cards() cards.Cards {
	return cards.Just(t.first).Or(cards.Just(t.second)).Or(cards.Just(t.third))
}

// Points returns the card points won by whoever takes this trick.
func (t Trick) Points() int {
	return t.Cards().Points()
}

// PartialTrick is an in-progress trick: zero, one, or two cards played so
// far. A Go struct with an explicit card count stands in for the Rust
// enum's Empty/OneCard/TwoCards variants.
type PartialTrick struct {
	cards [2]card.Card
	n     int
}

// EmptyTrick is a trick with no cards played yet.
var EmptyTrick = PartialTrick{}

// First returns the first card played, if any.
func (pt PartialTrick) First() (card.Card, bool) {
	if pt.n < 1 {
		return 0, false
	}
	return pt.cards[0], true
}

// Second returns the second card played, if any.
func (pt PartialTrick) Second() (card.Card, bool) {
	if pt.n < 2 {
		return 0, false
	}
	return pt.cards[1], true
}

// IsInProgress reports whether any cards have been played to this trick.
func (pt PartialTrick) IsInProgress() bool {
	return pt.n > 0
}

// Add plays a card to the partial trick. Once the third card is added, the
// trick completes: Add returns it and resets pt to empty.
func (pt *PartialTrick) Add(c card.Card) (Trick, bool) {
	switch pt.n {
	case 0:
		pt.cards[0] = c
		pt.n = 1
		return Trick{}, false
	case 1:
		pt.cards[1] = c
		pt.n = 2
		return Trick{}, false
	default:
		trick := NewTrick(pt.cards[0], pt.cards[1], c)
		*pt = EmptyTrick
		return trick, true
	}
}

// Cards returns the set of cards played to the trick so far.
func (pt PartialTrick) Cards() cards.Cards {
	switch pt.n {
	case 0:
		return cards.Empty
	case 1:
		return cards.Just(pt.cards[0])
	default:
		return cards.Just(pt.cards[0]).Or(cards.Just(pt.cards[1]))
	}
}

// NumberOfCards returns how many cards have been played to the trick.
func (pt PartialTrick) NumberOfCards() int {
	return pt.n
}
