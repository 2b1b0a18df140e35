package cards

import (
	"testing"

	"github.com/bran/skat/internal/card"
)

func TestOfSuitAndOfRank(t *testing.T) {
	diamonds := OfSuit(card.Diamonds)
	if diamonds.Len() != 8 {
		t.Fatalf("OfSuit(Diamonds).Len() = %d, want 8", diamonds.Len())
	}
	for _, r := range card.Ranks {
		if !diamonds.Contains(card.New(card.Diamonds, r)) {
			t.Errorf("OfSuit(Diamonds) missing %s", card.New(card.Diamonds, r))
		}
	}

	jacks := OfRank(card.RU)
	if jacks.Len() != 4 {
		t.Fatalf("OfRank(RU).Len() = %d, want 4", jacks.Len())
	}
	for _, s := range card.Suits {
		if !jacks.Contains(card.New(s, card.RU)) {
			t.Errorf("OfRank(RU) missing jack of %s", s)
		}
	}
}

func TestOfTrump(t *testing.T) {
	tests := []struct {
		name string
		g    card.GameType
		want int
	}{
		{"null", card.Null, 0},
		{"grand", card.Grand, 4},
		{"trump suit", card.TrumpSuit(card.Hearts), 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OfTrump(tt.g).Len()
			if got != tt.want {
				t.Errorf("OfTrump(%s).Len() = %d, want %d", tt.g, got, tt.want)
			}
		})
	}

	trump := OfTrump(card.TrumpSuit(card.Hearts))
	heartSeven := card.New(card.Hearts, card.R7)
	clubJack := card.New(card.Clubs, card.RU)
	if !trump.Contains(heartSeven) {
		t.Errorf("Trump(Hearts) should contain %s", heartSeven)
	}
	if !trump.Contains(clubJack) {
		t.Errorf("Trump(Hearts) should contain %s (all jacks are trump)", clubJack)
	}
}

func TestOfCardTypeExcludesJackFromPlainSuit(t *testing.T) {
	g := card.TrumpSuit(card.Hearts)
	plainHearts := OfCardType(card.OfSuit(card.Hearts), card.Grand)
	if plainHearts.Len() != 7 {
		t.Fatalf("plain Hearts under Grand = %d cards, want 7", plainHearts.Len())
	}
	if plainHearts.Contains(card.New(card.Hearts, card.RU)) {
		t.Errorf("plain Hearts should not contain the heart jack under Grand")
	}

	plainClubs := OfCardType(card.OfSuit(card.Clubs), g)
	if plainClubs.Len() != 7 {
		t.Fatalf("plain Clubs under Trump(Hearts) = %d cards, want 7", plainClubs.Len())
	}
	if plainClubs.Contains(card.New(card.Clubs, card.RU)) {
		t.Errorf("plain Clubs should not contain the club jack under Trump(Hearts), it is trump")
	}
}

func TestSetOperations(t *testing.T) {
	a := Just(card.New(card.Diamonds, card.RA)).Or(Just(card.New(card.Hearts, card.RA)))
	b := Just(card.New(card.Hearts, card.RA)).Or(Just(card.New(card.Spades, card.RA)))

	union := a.Or(b)
	if union.Len() != 3 {
		t.Errorf("union.Len() = %d, want 3", union.Len())
	}
	inter := a.And(b)
	if inter.Len() != 1 || !inter.Contains(card.New(card.Hearts, card.RA)) {
		t.Errorf("intersection = %v, want just the heart ace", inter)
	}
	diff := a.Without(b)
	if diff.Len() != 1 || !diff.Contains(card.New(card.Diamonds, card.RA)) {
		t.Errorf("difference = %v, want just the diamond ace", diff)
	}
	if !a.Overlaps(b) {
		t.Errorf("a and b should overlap on the heart ace")
	}
}

func TestRemoveLowestAndHighest(t *testing.T) {
	set := OfSuit(card.Diamonds)
	lo, ok := set.RemoveLowest()
	if !ok || lo != card.New(card.Diamonds, card.R7) {
		t.Fatalf("RemoveLowest() = %s, %v; want S7, true", lo, ok)
	}
	if set.Len() != 7 {
		t.Fatalf("after RemoveLowest, Len() = %d, want 7", set.Len())
	}

	hi, ok := set.RemoveHighest()
	if !ok || hi != card.New(card.Diamonds, card.RA) {
		t.Fatalf("RemoveHighest() = %s, %v; want SA, true", hi, ok)
	}
	if set.Len() != 6 {
		t.Fatalf("after RemoveHighest, Len() = %d, want 6", set.Len())
	}

	empty := Empty
	if _, ok := empty.RemoveLowest(); ok {
		t.Errorf("RemoveLowest() on empty set should return false")
	}
	if _, ok := empty.RemoveHighest(); ok {
		t.Errorf("RemoveHighest() on empty set should return false")
	}
}

func TestPoints(t *testing.T) {
	if All.Points() != 120 {
		t.Errorf("All.Points() = %d, want 120", All.Points())
	}
	if Empty.Points() != 0 {
		t.Errorf("Empty.Points() = %d, want 0", Empty.Points())
	}
}

func TestPossiblePlaysFollowSuit(t *testing.T) {
	g := card.TrumpSuit(card.Clubs)
	hand := Empty.
		Or(Just(card.New(card.Diamonds, card.R7))).
		Or(Just(card.New(card.Diamonds, card.RA))).
		Or(Just(card.New(card.Hearts, card.RK)))

	lead := card.New(card.Diamonds, card.R8)
	plays := hand.PossiblePlays(&lead, g)
	want := Empty.Or(Just(card.New(card.Diamonds, card.R7))).Or(Just(card.New(card.Diamonds, card.RA)))
	if !plays.Equal(want) {
		t.Errorf("PossiblePlays() = %v, want %v", plays, want)
	}
}

func TestPossiblePlaysVoidOfLeadAnythingGoes(t *testing.T) {
	g := card.TrumpSuit(card.Clubs)
	hand := Empty.Or(Just(card.New(card.Hearts, card.RK))).Or(Just(card.New(card.Spades, card.R9)))

	lead := card.New(card.Diamonds, card.R8)
	plays := hand.PossiblePlays(&lead, g)
	if !plays.Equal(hand) {
		t.Errorf("PossiblePlays() = %v, want full hand %v (void of lead suit)", plays, hand)
	}
}

func TestPossiblePlaysNoLeadAnythingGoes(t *testing.T) {
	hand := Empty.Or(Just(card.New(card.Hearts, card.RK))).Or(Just(card.New(card.Spades, card.R9)))
	plays := hand.PossiblePlays(nil, card.Grand)
	if !plays.Equal(hand) {
		t.Errorf("PossiblePlays(nil) = %v, want full hand %v", plays, hand)
	}
}
