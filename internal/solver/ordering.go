package solver

import (
	"sort"

	"github.com/bran/skat/internal/card"
	"github.com/bran/skat/internal/cards"
	"github.com/bran/skat/internal/engine"
)

// OrderedCandidates lists the active role's legal plays in the order the
// solver should try them in, to favor early cutoffs: if a trick is
// already in progress, strongest-first by actual power against the led
// card; otherwise grouped by CardType in ascending branching-product order
// (the type that leaves the two following hands the fewest replies goes
// first, since that subtree is tightest), with each group internally
// sorted strongest-first.
func OrderedCandidates(pos engine.OpenSituation, g card.GameType) []card.Card {
	candidates := pos.NextPossiblePlays(g)

	if lead, ok := pos.MaybeFirstTrickCard(); ok {
		ordered := candidates.ToSlice()
		sort.Slice(ordered, func(i, j int) bool {
			return engine.PowerOf(ordered[i], lead, g) > engine.PowerOf(ordered[j], lead, g)
		})
		return ordered
	}

	next := pos.ActiveRole().Next()
	nextNext := next.Next()
	handNext := pos.HandCardsOf(next)
	handNextNext := pos.HandCardsOf(nextNext)

	types := []card.CardType{
		card.Trump,
		card.OfSuit(card.Clubs),
		card.OfSuit(card.Diamonds),
		card.OfSuit(card.Hearts),
		card.OfSuit(card.Spades),
	}

	type group struct {
		product int
		cards   []card.Card
	}
	groups := make([]group, 0, len(types))
	for _, t := range types {
		ofType := candidates.And(cards.OfCardType(t, g))
		if ofType.IsEmpty() {
			continue
		}
		product := handNext.PossiblePlaysForType(t, g).Len() * handNextNext.PossiblePlaysForType(t, g).Len()
		cardsOfType := ofType.ToSlice()
		sort.Slice(cardsOfType, func(i, j int) bool {
			return engine.PowerOf(cardsOfType[i], cardsOfType[i], g) > engine.PowerOf(cardsOfType[j], cardsOfType[j], g)
		})
		groups = append(groups, group{product: product, cards: cardsOfType})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].product < groups[j].product
	})

	ordered := make([]card.Card, 0, candidates.Len())
	for _, grp := range groups {
		ordered = append(ordered, grp.cards...)
	}
	return ordered
}
