// Package analyzer builds on internal/solver to answer higher-level
// questions about an open situation: is the declarer's contract still
// won, which game-conclusion category will it land in, and what is the
// exact achievable yield. It also carries the per-card result map
// (AnalyzedPossiblePlays) the Monte Carlo driver fans every legal next
// move out into.
package analyzer

import (
	"github.com/bran/skat/internal/card"
	"github.com/bran/skat/internal/cards"
	"github.com/bran/skat/internal/engine"
)

// AnalyzedPossiblePlays maps each of an open situation's legal next cards
// to a per-card result of type R, mirroring the source's
// `AnalyzedPossiblePlays<R>` (a HashMap<Card, R> there; a plain map here,
// since Go has no HashMap/BTreeMap distinction worth making for 10 keys).
type AnalyzedPossiblePlays[R any] struct {
	values map[card.Card]R
}

// New returns an empty AnalyzedPossiblePlays.
func New[R any]() *AnalyzedPossiblePlays[R] {
	return &AnalyzedPossiblePlays[R]{values: make(map[card.Card]R)}
}

// AddNew records the result for card c. c must not already be present.
func (a *AnalyzedPossiblePlays[R]) AddNew(c card.Card, value R) {
	a.values[c] = value
}

// Get returns the recorded result for c.
func (a *AnalyzedPossiblePlays[R]) Get(c card.Card) R {
	return a.values[c]
}

// Cards returns the set of cards this result covers.
func (a *AnalyzedPossiblePlays[R]) Cards() cards.Cards {
	result := cards.Empty
	for c := range a.values {
		result = result.Add(c)
	}
	return result
}

// AreAll reports whether every recorded value equals val.
func (a *AnalyzedPossiblePlays[R]) AreAll(val R, eq func(R, R) bool) bool {
	for _, v := range a.values {
		if !eq(v, val) {
			return false
		}
	}
	return true
}

// MapAnalyzed transforms every value via f, producing a new result map
// over the same cards (a free function rather than a method: Go forbids
// a method from introducing its own type parameter).
func MapAnalyzed[R, Q any](a *AnalyzedPossiblePlays[R], f func(R) Q) *AnalyzedPossiblePlays[Q] {
	result := New[Q]()
	for c, v := range a.values {
		result.AddNew(c, f(v))
	}
	return result
}

// AnalyzeAllPossiblePlays plays every legal next card from pos in turn,
// calling analyzer on the resulting child situation and running yield,
// and collects one result per card. This is the fan-out point every
// analyzer strategy below, and the Monte Carlo driver, builds on.
func AnalyzeAllPossiblePlays[R any](
	pos engine.OpenSituation,
	g card.GameType,
	yieldSoFar engine.YieldSoFar,
	analyzer func(engine.OpenSituation, engine.YieldSoFar) R,
) *AnalyzedPossiblePlays[R] {
	result := New[R]()

	possiblePlays := pos.NextPossiblePlays(g)
	for {
		c, ok := possiblePlays.RemoveLowest()
		if !ok {
			break
		}

		child := pos
		gained := child.PlayCard(c, g)
		childYieldSoFar := yieldSoFar.Add(gained)

		result.AddNew(c, analyzer(child, childYieldSoFar))
	}

	return result
}
