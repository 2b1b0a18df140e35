package engine

import (
	"github.com/bran/skat/internal/card"
	"github.com/bran/skat/internal/cards"
)

// CardPower orders cards within a single trick: the highest power wins.
// Cards that neither are trump nor follow the led suit are Deactivated,
// always the lowest possible power, since they can never win the trick.
type CardPower int8

// Deactivated is the power assigned to a card that cannot win its trick.
const Deactivated CardPower = -1

// ComesFromDeactivatedCard reports whether p is the Deactivated sentinel.
func (p CardPower) ComesFromDeactivatedCard() bool {
	return p == Deactivated
}

// PowerOf computes c's power within a trick led by firstCardInTrick, under
// game type g. Non-Null games rank the jacks as a contiguous top block
// (ordered Diamonds<Hearts<Spades<Clubs among themselves), then the ten and
// the ace above the plain ranks, with trump cards shifted ten points
// higher than any plain-suit card.
func PowerOf(c, firstCardInTrick card.Card, g card.GameType) CardPower {
	cardIsTrump := card.IsTrump(c, g)
	leadType := firstCardInTrick.CardType(g)
	cardFollowsTrickType := cards.OfCardType(leadType, g).Contains(c)

	if !cardIsTrump && !cardFollowsTrickType {
		return Deactivated
	}

	rank := c.Rank()

	var result int8
	if g.IsNull() {
		result = int8(rank)
	} else {
		switch rank {
		case card.RZ:
			result = 7
		case card.RA:
			result = 8
		case card.RU:
			result = 9 + int8(c.Suit())
		default:
			result = int8(rank)
		}
		if cardIsTrump {
			result += 10
		}
	}

	return CardPower(result)
}
