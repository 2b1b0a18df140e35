package engine

import (
	"testing"

	"github.com/bran/skat/internal/card"
)

func TestWinnerPositionFollowSuit(t *testing.T) {
	g := card.TrumpSuit(card.Clubs)
	// Forehand leads the heart ace, middlehand follows low, rearhand trumps.
	trick := NewTrick(
		card.New(card.Hearts, card.RA),
		card.New(card.Hearts, card.R7),
		card.New(card.Clubs, card.R7),
	)
	if got := trick.WinnerPosition(g); got != Rearhand {
		t.Errorf("WinnerPosition() = %s, want Rearhand (trump beats plain ace)", got)
	}
}

func TestWinnerPositionRegressionHAH7SZ(t *testing.T) {
	g := card.TrumpSuit(card.Clubs)
	trick := NewTrick(
		card.New(card.Hearts, card.RA),
		card.New(card.Hearts, card.R7),
		card.New(card.Diamonds, card.RZ),
	)
	if got := trick.WinnerPosition(g); got != Forehand {
		t.Errorf("WinnerPosition() = %s, want Forehand (ace of led suit beats a deactivated off-suit ten)", got)
	}
}

func TestWinnerPositionAllFollowHighestWins(t *testing.T) {
	g := card.Grand
	trick := NewTrick(
		card.New(card.Diamonds, card.R9),
		card.New(card.Diamonds, card.RA),
		card.New(card.Diamonds, card.RK),
	)
	if got := trick.WinnerPosition(g); got != Middlehand {
		t.Errorf("WinnerPosition() = %s, want Middlehand (ace is highest)", got)
	}
}

func TestPartialTrickAdd(t *testing.T) {
	var pt PartialTrick
	if pt.IsInProgress() {
		t.Fatalf("empty partial trick should not be in progress")
	}

	a := card.New(card.Diamonds, card.R7)
	b := card.New(card.Hearts, card.R7)
	c := card.New(card.Spades, card.R7)

	if _, complete := pt.Add(a); complete {
		t.Fatalf("first card should not complete the trick")
	}
	if first, ok := pt.First(); !ok || first != a {
		t.Fatalf("First() = %s, %v; want %s, true", first, ok, a)
	}
	if !pt.IsInProgress() {
		t.Fatalf("one-card partial trick should be in progress")
	}

	if _, complete := pt.Add(b); complete {
		t.Fatalf("second card should not complete the trick")
	}

	trick, complete := pt.Add(c)
	if !complete {
		t.Fatalf("third card should complete the trick")
	}
	if trick.First() != a || trick.Second() != b || trick.Third() != c {
		t.Fatalf("completed trick cards = %s/%s/%s, want %s/%s/%s", trick.First(), trick.Second(), trick.Third(), a, b, c)
	}
	if pt.IsInProgress() {
		t.Fatalf("partial trick should reset to empty after completing")
	}
}

func TestTrickPoints(t *testing.T) {
	trick := NewTrick(
		card.New(card.Diamonds, card.RA),
		card.New(card.Hearts, card.RZ),
		card.New(card.Spades, card.R7),
	)
	if got := trick.Points(); got != 21 {
		t.Errorf("trick.Points() = %d, want 21", got)
	}
}
