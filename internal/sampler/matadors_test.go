package sampler

import (
	"testing"

	"github.com/bran/skat/internal/card"
	"github.com/bran/skat/internal/cards"
	"github.com/bran/skat/internal/engine"
)

func TestCountMatadorsIsFalseForNull(t *testing.T) {
	deal := Deal{FirstReceiver: cards.All}
	_, ok := CountMatadors(deal, engine.FirstReceiver, card.Null)
	if ok {
		t.Errorf("CountMatadors: want ok=false for Null, got true")
	}
}

func TestCountMatadorsWithNCountsDeclarersTopTrumpRun(t *testing.T) {
	// Grand's only trumps are the four jacks, top to bottom Clubs, Spades,
	// Hearts, Diamonds. The declarer holds the top two and not the third:
	// "with 2".
	g := card.Grand
	declarer := cards.Just(card.New(card.Clubs, card.RU)).Add(card.New(card.Spades, card.RU))
	deal := Deal{FirstReceiver: declarer}

	count, ok := CountMatadors(deal, engine.FirstReceiver, g)
	if !ok {
		t.Fatalf("CountMatadors: want ok=true for Grand")
	}
	if count != 2 {
		t.Errorf("CountMatadors = %d, want 2", count)
	}
}

func TestCountMatadorsWithoutNCountsDeclarersMissingTopTrumpRun(t *testing.T) {
	// Declarer holds no jacks at all: "without 4" (every trump is missing).
	g := card.Grand
	declarer := cards.Just(card.New(card.Clubs, card.R7))
	deal := Deal{FirstReceiver: declarer}

	count, ok := CountMatadors(deal, engine.FirstReceiver, g)
	if !ok {
		t.Fatalf("CountMatadors: want ok=true for Grand")
	}
	if count != 4 {
		t.Errorf("CountMatadors = %d, want 4 (declarer holds none of the 4 jacks)", count)
	}
}
