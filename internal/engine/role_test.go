package engine

import (
	"testing"

	"github.com/bran/skat/internal/card"
)

func TestRoleNext(t *testing.T) {
	if Declarer.Next() != FirstDefender {
		t.Errorf("Declarer.Next() != FirstDefender")
	}
	if FirstDefender.Next() != SecondDefender {
		t.Errorf("FirstDefender.Next() != SecondDefender")
	}
	if SecondDefender.Next() != Declarer {
		t.Errorf("SecondDefender.Next() != Declarer")
	}
}

func TestFirstActive(t *testing.T) {
	tests := []struct {
		winner BiddingRole
		want   Role
	}{
		{FirstReceiver, Declarer},
		{FirstCaller, SecondDefender},
		{SecondCaller, FirstDefender},
	}
	for _, tt := range tests {
		if got := FirstActive(tt.winner); got != tt.want {
			t.Errorf("FirstActive(%s) = %s, want %s", tt.winner, got, tt.want)
		}
	}
}

func TestBiddingRoleToRole(t *testing.T) {
	winner := FirstCaller
	firstActive := FirstActive(winner)
	if got := FirstReceiver.ToRole(winner); got != firstActive {
		t.Errorf("FirstReceiver.ToRole(winner) = %s, want %s", got, firstActive)
	}
	if got := FirstReceiver.Next().ToRole(winner); got != firstActive.Next() {
		t.Errorf("next seat ToRole = %s, want %s", got, firstActive.Next())
	}
}

func TestPositionRole(t *testing.T) {
	first := SecondCaller
	if got := Forehand.Role(first); got != first {
		t.Errorf("Forehand.Role() = %s, want %s", got, first)
	}
	if got := Middlehand.Role(first); got != first.Next() {
		t.Errorf("Middlehand.Role() = %s, want %s", got, first.Next())
	}
	if got := Rearhand.Role(first); got != first.Next().Next() {
		t.Errorf("Rearhand.Role() = %s, want %s", got, first.Next().Next())
	}
}

func TestMinimaxRoleOf(t *testing.T) {
	if MinimaxRoleOf(Declarer, card.Grand) != Max {
		t.Errorf("declarer in Grand should be Max")
	}
	if MinimaxRoleOf(FirstDefender, card.Grand) != Min {
		t.Errorf("defender in Grand should be Min")
	}
	if MinimaxRoleOf(Declarer, card.Null) != Min {
		t.Errorf("declarer in Null should be Min (wants to avoid tricks)")
	}
	if MinimaxRoleOf(FirstDefender, card.Null) != Max {
		t.Errorf("defender in Null should be Max")
	}
}
