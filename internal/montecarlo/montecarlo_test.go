package montecarlo

import (
	"context"
	"math/rand"
	"testing"

	"github.com/bran/skat/internal/analyzer"
	"github.com/bran/skat/internal/card"
	"github.com/bran/skat/internal/cards"
	"github.com/bran/skat/internal/engine"
	"github.com/bran/skat/internal/sampler"
)

func TestWeightedAverageAcrossPossibleWorlds(t *testing.T) {
	c1, c2 := card.New(card.Clubs, card.RU), card.New(card.Hearts, card.RU)

	worldA := analyzer.New[CardOutcome]()
	worldA.AddNew(c1, CardOutcome{Conclusion: analyzer.DefendersAreDominated})
	worldA.AddNew(c2, CardOutcome{Conclusion: analyzer.DeclarerIsSchwarz})

	worldB := analyzer.New[CardOutcome]()
	worldB.AddNew(c1, CardOutcome{Conclusion: analyzer.DeclarerIsSchwarz})
	worldB.AddNew(c2, CardOutcome{Conclusion: analyzer.DeclarerIsSchwarz})

	data := SampledWorldsData{Results: []PossibleWorldResult{
		{Plays: worldA, Weight: 3},
		{Plays: worldB, Weight: 1},
	}}

	wonProbability := data.WeightedProbabilityOf(func(o CardOutcome, _ int, _ bool) bool {
		return o.Conclusion.IsWon()
	})

	// c1 is won in world A (weight 3) and lost in world B (weight 1): 3/4.
	if got, want := wonProbability[c1], 0.75; got != want {
		t.Errorf("wonProbability[c1] = %v, want %v", got, want)
	}
	// c2 is lost in both worlds: 0.
	if got, want := wonProbability[c2], 0.0; got != want {
		t.Errorf("wonProbability[c2] = %v, want %v", got, want)
	}
}

// TestRunSolvesDownToTheLastTrick plays a full 32-card deal down to the
// last card in every hand, then runs the driver from whichever seat is
// next to move: with at most one unplayed card per hand, the compatible
// set collapses to (at most) a single possible world, so this exercises
// the whole sampler -> worker pool -> solver pipeline without requiring
// an expensive full-depth solve.
func TestRunSolvesDownToTheLastTrick(t *testing.T) {
	all := cards.All.ToSlice()
	var d, f, s, skat cards.Cards
	for i, c := range all {
		switch {
		case i < 10:
			d = d.Add(c)
		case i < 20:
			f = f.Add(c)
		case i < 30:
			s = s.Add(c)
		default:
			skat = skat.Add(c)
		}
	}

	deal := sampler.Deal{FirstReceiver: d, FirstCaller: f, SecondCaller: s, Skat: skat}
	g := card.Grand
	biddingWinner := engine.FirstReceiver

	real := deal.InitialSituation(biddingWinner)
	observed := sampler.InitialObservedPlayedCards()

	for i := 0; i < 27; i++ {
		plays := real.NextPossiblePlays(g)
		c, ok := plays.Lowest()
		if !ok {
			t.Fatalf("play %d: no legal card available", i)
		}
		real.PlayCard(c, g)
		observed.ObservePlay(c, g)
	}

	observerBiddingRole := observed.ActiveRole()
	observerHand := deal.Hand(observerBiddingRole)

	initial := sampler.ObservedInitialGameState{
		StartHand:     observerHand,
		SkatIfKnown:   skat,
		HasSkat:       observerBiddingRole == biddingWinner,
		GameType:      g,
		BiddingRole:   observerBiddingRole,
		BiddingWinner: biddingWinner,
	}

	cfg := DefaultConfig()
	cfg.Workers = 2
	cfg.SampleSize = 10
	cfg.AllSamplesThreshold = 10

	data, err := Run(context.Background(), initial, observed, cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(data.Results) == 0 {
		t.Fatalf("Run: want at least one possible world, got 0")
	}
	if data.Cards().Len() == 0 {
		t.Errorf("Cards() = empty, want the observer's one remaining legal play")
	}
}
