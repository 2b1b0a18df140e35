package solver

import (
	"sort"

	"github.com/bran/skat/internal/card"
	"github.com/bran/skat/internal/cards"
	"github.com/bran/skat/internal/engine"
)

// ownPower orders cards within a single CardType by treating the card as
// its own trick lead: PowerOf never deactivates a card relative to
// itself, so the result is exactly the card's relative strength among
// cards sharing its type, without needing a real trick in progress.
func ownPower(c card.Card, g card.GameType) engine.CardPower {
	return engine.PowerOf(c, c, g)
}

// QuasiEquivalentWithMaxDelta finds every other still-considered card that
// is interchangeable with c up to maxDelta card points: same CardType,
// adjacent to c (no gap from a card held by another player) within the
// cards of that type present in inHandOrYielded, and within maxDelta
// points of c. It returns the banned set and the largest point difference
// actually used, which the caller must fold into its fallback bound.
func QuasiEquivalentWithMaxDelta(c card.Card, inHandOrYielded cards.Cards, g card.GameType, maxDelta int, stillConsidered cards.Cards) (banned cards.Cards, delta int) {
	ct := c.CardType(g)
	block := cards.OfCardType(ct, g).And(inHandOrYielded).ToSlice()
	sort.Slice(block, func(i, j int) bool {
		return ownPower(block[i], g) < ownPower(block[j], g)
	})

	idx := -1
	for i, bc := range block {
		if bc == c {
			idx = i
			break
		}
	}
	if idx < 0 {
		return cards.Empty, 0
	}

	banned = cards.Empty
	cPoints := c.Points()

	for i := idx - 1; i >= 0; i-- {
		diff := absInt(block[i].Points() - cPoints)
		if diff > maxDelta {
			break
		}
		if stillConsidered.Contains(block[i]) {
			banned = banned.Add(block[i])
			if diff > delta {
				delta = diff
			}
		}
	}
	for i := idx + 1; i < len(block); i++ {
		diff := absInt(block[i].Points() - cPoints)
		if diff > maxDelta {
			break
		}
		if stillConsidered.Contains(block[i]) {
			banned = banned.Add(block[i])
			if diff > delta {
				delta = diff
			}
		}
	}

	return banned, delta
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
