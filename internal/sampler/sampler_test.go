package sampler

import (
	"math/rand"
	"testing"

	"github.com/bran/skat/internal/card"
	"github.com/bran/skat/internal/cards"
	"github.com/bran/skat/internal/engine"
)

func TestNewSamplerCountsEveryConsistentDeal(t *testing.T) {
	// Fully observed: nothing left unknown, so there is exactly one
	// possible world.
	hand := cards.All.ToSlice()
	k := CardKnowledge{}
	for i, c := range hand {
		holder := holderID(i / 8 % 4)
		k.observedCards[holder] = k.observedCards[holder].Add(c)
	}
	// unknownCards defaults to the zero UnknownCards (Number: 0) for every
	// holder, matching "nothing left to learn".

	s := New(k, card.Grand)
	if got := s.NumberOfPossibilities(); got != 1 {
		t.Errorf("NumberOfPossibilities() = %d, want 1 for a fully observed deal", got)
	}

	deals := s.GetAllPossibilities()
	if len(deals) != 1 {
		t.Fatalf("GetAllPossibilities() returned %d deals, want 1", len(deals))
	}
}

func TestSampleProducesADealConsistentWithObservedCards(t *testing.T) {
	hand := cards.Empty
	for _, c := range cards.All.ToSlice()[:10] {
		hand = hand.Add(c)
	}
	k := FromObservation(ObservedInitialGameState{
		StartHand:   hand,
		GameType:    card.Grand,
		BiddingRole: engine.FirstReceiver,
	}, InitialObservedPlayedCards())

	s := New(k, card.Grand)
	rng := rand.New(rand.NewSource(1))
	deal := s.Sample(rng)

	if deal.FirstReceiver != hand {
		t.Errorf("Sample()'s FirstReceiver hand = %v, want the observer's known hand %v", deal.FirstReceiver, hand)
	}

	total := deal.FirstReceiver.Or(deal.FirstCaller).Or(deal.SecondCaller).Or(deal.Skat)
	if total != cards.All {
		t.Errorf("Sample() didn't assign every card exactly once: got %v, want all 32 cards", total)
	}
	overlap := deal.FirstReceiver.And(deal.FirstCaller).
		Or(deal.FirstReceiver.And(deal.SecondCaller)).
		Or(deal.FirstReceiver.And(deal.Skat)).
		Or(deal.FirstCaller.And(deal.SecondCaller)).
		Or(deal.FirstCaller.And(deal.Skat)).
		Or(deal.SecondCaller.And(deal.Skat))
	if overlap != cards.Empty {
		t.Errorf("Sample() assigned some card to more than one holder: overlap %v", overlap)
	}
}

func TestSampleManyReturnsExactlyNDeals(t *testing.T) {
	hand := cards.Empty
	for _, c := range cards.All.ToSlice()[:10] {
		hand = hand.Add(c)
	}
	k := FromObservation(ObservedInitialGameState{
		StartHand:   hand,
		GameType:    card.Grand,
		BiddingRole: engine.FirstReceiver,
	}, InitialObservedPlayedCards())

	s := New(k, card.Grand)
	rng := rand.New(rand.NewSource(1))
	deals := s.SampleMany(rng, 5)
	if len(deals) != 5 {
		t.Errorf("SampleMany(_, 5) returned %d deals, want 5", len(deals))
	}
}
