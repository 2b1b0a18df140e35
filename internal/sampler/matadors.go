package sampler

import (
	"sort"

	"github.com/bran/skat/internal/card"
	"github.com/bran/skat/internal/cards"
	"github.com/bran/skat/internal/engine"
)

// CountMatadors walks the trump cards from the top down and counts how
// many of them agree, one after another without a break, with whether
// the declarer holds the very top trump: "with N" if the declarer holds
// the top N trumps, "without N" if every one of the top N trumps is held
// by a defender. The glossary defines both; the contract scorer's
// multiplier only needs the count, not the sign, so this returns just N.
// Reports false for Null contracts, which have no trump.
func CountMatadors(deal Deal, biddingWinner engine.BiddingRole, g card.GameType) (count int, ok bool) {
	if g.IsNull() {
		return 0, false
	}

	trumps := cards.OfTrump(g).ToSlice()
	sort.Slice(trumps, func(i, j int) bool {
		return engine.PowerOf(trumps[i], trumps[i], g) > engine.PowerOf(trumps[j], trumps[j], g)
	})

	declarerHand := deal.Hand(biddingWinner)
	if len(trumps) == 0 {
		return 0, true
	}

	declarerHasTop := declarerHand.Contains(trumps[0])
	for _, t := range trumps {
		if declarerHand.Contains(t) != declarerHasTop {
			break
		}
		count++
	}
	return count, true
}
