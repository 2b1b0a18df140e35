package analyzer

import (
	"testing"

	"github.com/bran/skat/internal/card"
	"github.com/bran/skat/internal/cards"
	"github.com/bran/skat/internal/engine"
)

// fakeSolver stands in for a real solver.Solver: it reports the declarer's
// actual (already fully determined) future yield, so StillMakesAtLeast
// answers exactly, letting these tests isolate the floor-walking and
// binary-search logic in this package from the minimax search itself
// (which internal/solver's own tests already cover).
type fakeSolver struct {
	actualFutureYield engine.TrickYield
}

func (f fakeSolver) StillMakesAtLeast(_ engine.OpenSituation, threshold engine.TrickYield) bool {
	return threshold.LessOrEqual(f.actualFutureYield)
}

func TestFromFinalDeclarerYieldClassifiesEveryCategory(t *testing.T) {
	cases := []struct {
		final engine.YieldSoFar
		want  GameConclusion
	}{
		{engine.YieldSoFar{Points: 0, Tricks: 0}, DeclarerIsSchwarz},
		{engine.YieldSoFar{Points: 20, Tricks: 3}, DeclarerIsSchneider},
		{engine.YieldSoFar{Points: 45, Tricks: 4}, DeclarerIsDominated},
		{engine.YieldSoFar{Points: 75, Tricks: 5}, DefendersAreDominated},
		{engine.YieldSoFar{Points: 100, Tricks: 7}, DefendersAreSchneider},
		{engine.YieldSoFar{Points: 120, Tricks: 10}, DefendersAreSchwarz},
	}
	for _, c := range cases {
		if got := FromFinalDeclarerYield(c.final); got != c.want {
			t.Errorf("FromFinalDeclarerYield(%+v) = %v, want %v", c.final, got, c.want)
		}
	}
}

func TestConclusionAgreesWithFromFinalDeclarerYieldAtGameEnd(t *testing.T) {
	// Once the actual final yield is known (no more cards to play), the
	// solver-query-based Conclusion must land on the same category as the
	// direct classification from the final yield.
	final := engine.YieldSoFar{Points: 75, Tricks: 5}
	s := fakeSolver{actualFutureYield: engine.TrickYield{}}
	pos := engine.Leaf(engine.Declarer)

	got := Conclusion(pos, final, s)
	want := FromFinalDeclarerYield(final)
	if got != want {
		t.Errorf("Conclusion at game end = %v, want %v (FromFinalDeclarerYield)", got, want)
	}
}

func TestIsWonMatchesConclusionThreshold(t *testing.T) {
	s := fakeSolver{actualFutureYield: engine.TrickYield{Points: 40, Tricks: 3}}
	pos := engine.Leaf(engine.Declarer)
	yieldSoFar := engine.YieldSoFar{Points: 25, Tricks: 2}

	won := IsWon(pos, yieldSoFar, s)
	conclusionIsWon := Conclusion(pos, yieldSoFar, s).IsWon()
	if won != conclusionIsWon {
		t.Errorf("IsWon = %v, Conclusion(...).IsWon() = %v, want agreement", won, conclusionIsWon)
	}
}

func TestYieldRecoversTheExactFutureYield(t *testing.T) {
	actual := engine.TrickYield{Points: 47, Tricks: 4}
	s := fakeSolver{actualFutureYield: actual}
	pos := engine.Leaf(engine.Declarer)
	yieldSoFar := engine.YieldSoFar{Points: 10, Tricks: 1}

	got := Yield(pos, yieldSoFar, s)
	want := yieldSoFar.Add(actual)
	if got != want {
		t.Errorf("Yield(...) = %+v, want %+v", got, want)
	}
}

func TestAnalyzeAllPossiblePlaysCoversEveryLegalCard(t *testing.T) {
	g := card.Grand
	hand := cards.Just(card.New(card.Clubs, card.RU)).
		Add(card.New(card.Hearts, card.RA)).
		Add(card.New(card.Diamonds, card.R7))

	pos := engine.InitialSituation(hand, cards.Empty, cards.Empty, engine.FirstReceiver)
	legal := pos.NextPossiblePlays(g)

	result := AnalyzeAllPossiblePlays(pos, g, engine.YieldSoFar{}, func(child engine.OpenSituation, yieldSoFar engine.YieldSoFar) int {
		return yieldSoFar.Points
	})

	if result.Cards() != legal {
		t.Errorf("AnalyzeAllPossiblePlays covered %v, want exactly the legal plays %v", result.Cards(), legal)
	}
}
