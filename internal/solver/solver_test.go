package solver

import (
	"testing"

	"github.com/bran/skat/internal/card"
	"github.com/bran/skat/internal/cards"
	"github.com/bran/skat/internal/engine"
)

func tenTenTenTwo() (declarer, firstDefender, secondDefender, skat cards.Cards) {
	all := cards.All.ToSlice()
	for i, c := range all {
		switch {
		case i < 10:
			declarer = declarer.Add(c)
		case i < 20:
			firstDefender = firstDefender.Add(c)
		case i < 30:
			secondDefender = secondDefender.Add(c)
		default:
			skat = skat.Add(c)
		}
	}
	return
}

func TestStillMakesAtLeastWhenDeclarerHoldsEveryPlayableCard(t *testing.T) {
	g := card.Grand
	all := cards.All.ToSlice()
	skat := cards.Just(all[0]).Add(all[1])
	declarer := cards.All.Without(skat)

	pos := engine.InitialSituation(declarer, cards.Empty, cards.Empty, engine.FirstReceiver)

	s := NewSolver(NewCache(NewKeyFunc(pos), false, true), g, DefaultConfig())

	// The 2 cards left in the cellar never get played, so the maximum
	// achievable yield is MaxYield minus their points, not the full 120/10.
	want := engine.TrickYield{Points: engine.MaxYield.Points - skat.Points(), Tricks: 10}
	if !s.StillMakesAtLeast(pos, want) {
		t.Errorf("a declarer holding every playable card should be guaranteed the maximum achievable yield %+v", want)
	}
}

func TestStillMakesAtLeastIsMonotoneInThreshold(t *testing.T) {
	d, f, sec, _ := tenTenTenTwo()
	pos := engine.InitialSituation(d, f, sec, engine.FirstReceiver)
	g := card.Grand

	s := NewSolver(NewCache(NewKeyFunc(pos), false, true), g, DefaultConfig())

	// Property: if StillMakesAtLeast holds for T, it must hold for
	// every T' <= T too.
	highThreshold := engine.TrickYield{Points: 100, Tricks: 8}
	if s.StillMakesAtLeast(pos, highThreshold) {
		lowThreshold := engine.TrickYield{Points: 40, Tricks: 2}
		if !s.StillMakesAtLeast(pos, lowThreshold) {
			t.Errorf("StillMakesAtLeast(%v) = true but StillMakesAtLeast(%v) = false, want monotone", highThreshold, lowThreshold)
		}
	}
}

func TestCacheSeedsFromQuickBoundsOnFirstLookup(t *testing.T) {
	d, f, sec, _ := tenTenTenTwo()
	pos := engine.InitialSituation(d, f, sec, engine.FirstReceiver)
	g := card.Grand

	cache := NewCache(NewKeyFunc(pos), false, true)
	got := cache.GetCurrentKnowledge(pos, g)
	want := pos.QuickBounds(g, true)

	if got.Bounds.Lower() != want.Lower() || got.Bounds.Upper() != want.Upper() {
		t.Errorf("GetCurrentKnowledge on an unseen position = %+v, want freshly seeded QuickBounds %+v", got.Bounds, want)
	}
}

func TestQuasiEquivalentWithMaxDeltaBansAdjacentCardsWithinDelta(t *testing.T) {
	g := card.Grand
	// Grand: Diamonds is a plain suit. DZ (10, 10 pts) and DK (4, 4 pts)
	// are adjacent in card strength within Diamonds with no card of a
	// third player's hand between them, since both hands here are empty
	// of Diamonds aside from these two cards.
	dz := card.New(card.Diamonds, card.RZ)
	dk := card.New(card.Diamonds, card.RK)
	inHandOrYielded := cards.Just(dz).Add(dk)
	stillConsidered := inHandOrYielded

	banned, delta := QuasiEquivalentWithMaxDelta(dz, inHandOrYielded, g, 10, stillConsidered)
	if !banned.Contains(dk) {
		t.Errorf("QuasiEquivalentWithMaxDelta: want DK banned as quasi-equivalent to DZ, got %v", banned)
	}
	if delta <= 0 {
		t.Errorf("QuasiEquivalentWithMaxDelta: delta = %d, want positive", delta)
	}
}

func TestQuasiEquivalentWithMaxDeltaRespectsDeltaCap(t *testing.T) {
	g := card.Grand
	dz := card.New(card.Diamonds, card.RZ)
	dk := card.New(card.Diamonds, card.RK)
	inHandOrYielded := cards.Just(dz).Add(dk)
	stillConsidered := inHandOrYielded

	banned, _ := QuasiEquivalentWithMaxDelta(dz, inHandOrYielded, g, 0, stillConsidered)
	if banned.Len() != 0 {
		t.Errorf("QuasiEquivalentWithMaxDelta with maxDelta=0: want nothing banned when point gap exceeds it, got %v", banned)
	}
}

func TestOrderedCandidatesPutsTrumpFirstWhenOpeningATrick(t *testing.T) {
	g := card.TrumpSuit(card.Clubs)

	declarer := cards.Just(card.New(card.Clubs, card.RU)).Add(card.New(card.Hearts, card.RA))
	pos := engine.InitialSituation(declarer, cards.Empty, cards.Empty, engine.FirstReceiver)

	ordered := OrderedCandidates(pos, g)
	if len(ordered) == 0 {
		t.Fatalf("OrderedCandidates: got no candidates")
	}
	if ordered[0].CardType(g) != card.Trump {
		t.Errorf("OrderedCandidates[0] = %v (type %v), want a trump card first", ordered[0], ordered[0].CardType(g))
	}
}
