// Package sampler turns an observer's partial view of a deal — their own
// hand, the skat if known, and the cards played so far — into the
// possible-worlds distribution of fully observable deals consistent with
// that view, for the Monte Carlo driver to run the solver over.
package sampler

import (
	"github.com/bran/skat/internal/card"
	"github.com/bran/skat/internal/cards"
	"github.com/bran/skat/internal/engine"
)

// holderID indexes the four places an unobserved card can be: the three
// bidding seats' hands, and the skat. Matches the source's
// UnknownCardPosition::id, used as an array index rather than a map key.
type holderID int

const (
	holderFirstReceiver holderID = iota
	holderFirstCaller
	holderSecondCaller
	holderSkat
)

func handHolder(b engine.BiddingRole) holderID {
	switch b {
	case engine.FirstReceiver:
		return holderFirstReceiver
	case engine.FirstCaller:
		return holderFirstCaller
	default:
		return holderSecondCaller
	}
}

// UnknownCards tracks, for one holder, how many of their cards remain
// unobserved and which CardTypes they could still possibly be (narrowed
// whenever the holder is observed failing to follow a trick's led type).
type UnknownCards struct {
	Number int

	HeartsPossible   bool
	SpadesPossible   bool
	DiamondsPossible bool
	ClubsPossible    bool
	TrumpPossible    bool
}

// Unrestricted returns an UnknownCards of n cards with no CardType ruled
// out yet.
func Unrestricted(n int) UnknownCards {
	return UnknownCards{
		Number:           n,
		HeartsPossible:   true,
		SpadesPossible:   true,
		DiamondsPossible: true,
		ClubsPossible:    true,
		TrumpPossible:    true,
	}
}

// UnknownHand is the unrestricted state of a full unseen 10-card hand.
var UnknownHand = Unrestricted(10)

// UnknownSkat is the unrestricted state of the 2-card skat.
var UnknownSkat = Unrestricted(2)

// AllKnown is the state of a holder with nothing left to learn.
var AllKnown = UnknownCards{}

func (u UnknownCards) possible(ct card.CardType) bool {
	if ct.IsTrump() {
		return u.TrumpPossible
	}
	switch ct.Suit() {
	case card.Hearts:
		return u.HeartsPossible
	case card.Spades:
		return u.SpadesPossible
	case card.Diamonds:
		return u.DiamondsPossible
	default:
		return u.ClubsPossible
	}
}

// MaxPossible returns how many of this holder's still-unknown cards could
// possibly be of CardType ct: all of them if ct hasn't been ruled out,
// zero otherwise.
func (u UnknownCards) MaxPossible(ct card.CardType) int {
	if u.possible(ct) {
		return u.Number
	}
	return 0
}

// Remove decrements the unknown-card count by n (one card has been
// observed, or n cards have been assigned in a possible-worlds sample).
func (u *UnknownCards) Remove(n int) {
	u.Number -= n
}

// IsEmpty reports whether every card of this holder is now known.
func (u UnknownCards) IsEmpty() bool {
	return u.Number == 0
}

// Restrict rules out CardType ct for this holder: they were observed
// failing to follow a trick of that type, so none of their remaining
// unknown cards can be of it.
func (u *UnknownCards) Restrict(ct card.CardType) {
	if ct.IsTrump() {
		u.TrumpPossible = false
		return
	}
	switch ct.Suit() {
	case card.Hearts:
		u.HeartsPossible = false
	case card.Spades:
		u.SpadesPossible = false
	case card.Diamonds:
		u.DiamondsPossible = false
	default:
		u.ClubsPossible = false
	}
}

// CardKnowledge is everything the solver's possible-worlds sampler knows
// about where the cards it can't see might be: a per-holder UnknownCards
// budget (narrowed by follow-suit inference) and the cards actually
// observed for each holder so far.
type CardKnowledge struct {
	unknownCards [4]UnknownCards
	observedCards [4]cards.Cards
}

// ObservedCards returns every card whose holder is already known (the
// observer's own hand, the skat if it was revealed, and every card played
// so far).
func (k CardKnowledge) ObservedCards() cards.Cards {
	return k.observedCards[0].Or(k.observedCards[1]).Or(k.observedCards[2]).Or(k.observedCards[3])
}

// UnknownCardsSlice returns the four holders' remaining UnknownCards
// budgets, in (FirstReceiver, FirstCaller, SecondCaller, Skat) order —
// the order distributeColors consumes them in.
func (k CardKnowledge) UnknownCardsSlice() [4]UnknownCards {
	return k.unknownCards
}

func (k *CardKnowledge) learnWithoutInference(c card.Card, holder holderID) {
	k.observedCards[holder] = k.observedCards[holder].Add(c)
	k.unknownCards[holder].Remove(1)
}

// LearnAbout records that player holder played card c to a trick led by
// trickType, and — if c doesn't match trickType — infers holder is void
// of that CardType from here on.
func (k *CardKnowledge) LearnAbout(c card.Card, holder engine.BiddingRole, trickType card.CardType, g card.GameType) {
	id := handHolder(holder)
	k.learnWithoutInference(c, id)

	if c.CardType(g) != trickType {
		k.unknownCards[id].Restrict(trickType)
	}
}

// initial seeds a CardKnowledge from the observer's own starting hand (10
// cards, fully known) and the skat if it was revealed to them.
func initial(hand cards.Cards, skatIfKnown cards.Cards, hasSkat bool, biddingRole engine.BiddingRole) CardKnowledge {
	result := CardKnowledge{
		unknownCards: [4]UnknownCards{UnknownHand, UnknownHand, UnknownHand, UnknownSkat},
	}

	handHolderID := handHolder(biddingRole)
	for _, c := range hand.ToSlice() {
		result.learnWithoutInference(c, handHolderID)
	}

	if hasSkat {
		for _, c := range skatIfKnown.ToSlice() {
			result.learnWithoutInference(c, holderSkat)
		}
	}

	return result
}

// ObservedInitialGameState is the observer's view of the deal before any
// card has been played: their own hand, the skat if revealed to them
// (Hand contracts reveal it; normal contracts reveal it only to the
// declarer, and only once they've picked it up), the game type, which
// bidding seat the observer sits in, and which seat won the bidding.
type ObservedInitialGameState struct {
	StartHand     cards.Cards
	SkatIfKnown   cards.Cards
	HasSkat       bool
	GameType      card.GameType
	BiddingRole   engine.BiddingRole
	BiddingWinner engine.BiddingRole
}

// ObservedPlayedCards replays the cards played so far from the observer's
// point of view, tracking completed tricks, the in-progress trick, and
// whose turn (by bidding seat) it is now.
type ObservedPlayedCards struct {
	doneTricks   []engine.Trick
	currentTrick engine.PartialTrick
	activeRole   engine.BiddingRole
}

// InitialObservedPlayedCards is the state before any card has been
// played: forehand (FirstReceiver, fixed by the rules of bidding order)
// leads the first trick.
func InitialObservedPlayedCards() ObservedPlayedCards {
	return ObservedPlayedCards{activeRole: engine.FirstReceiver}
}

// ActiveRole returns the bidding seat whose turn it is next.
func (o ObservedPlayedCards) ActiveRole() engine.BiddingRole {
	return o.activeRole
}

// ObservePlay records that the active seat played c, advancing the active
// seat (to the trick winner, once a trick completes).
func (o *ObservedPlayedCards) ObservePlay(c card.Card, g card.GameType) {
	o.activeRole = o.activeRole.Next()

	trick, completed := o.currentTrick.Add(c)
	if !completed {
		return
	}
	o.doneTricks = append(o.doneTricks, trick)

	switch trick.WinnerPosition(g) {
	case engine.Forehand:
	case engine.Middlehand:
		o.activeRole = o.activeRole.Next()
	default:
		o.activeRole = o.activeRole.Next().Next()
	}
}

// Apply folds every card played so far into k, from the perspective of
// the player sitting in observer (who learns nothing new about their own
// cards, only about the other two seats').
func (k *CardKnowledge) Apply(o ObservedPlayedCards, observer engine.BiddingRole, g card.GameType) {
	firstPlayer := engine.FirstReceiver

	applyTrickCard := func(c card.Card, player engine.BiddingRole, trickType card.CardType) {
		if observer != player {
			k.LearnAbout(c, player, trickType, g)
		}
	}

	for _, trick := range o.doneTricks {
		second := firstPlayer.Next()
		third := second.Next()
		trickType := trick.First().CardType(g)

		applyTrickCard(trick.First(), firstPlayer, trickType)
		applyTrickCard(trick.Second(), second, trickType)
		applyTrickCard(trick.Third(), third, trickType)

		switch trick.WinnerPosition(g) {
		case engine.Forehand:
		case engine.Middlehand:
			firstPlayer = firstPlayer.Next()
		default:
			firstPlayer = firstPlayer.Next().Next()
		}
	}

	if firstCard, ok := o.currentTrick.First(); ok {
		trickType := firstCard.CardType(g)
		applyTrickCard(firstCard, firstPlayer, trickType)

		if secondCard, ok := o.currentTrick.Second(); ok {
			applyTrickCard(secondCard, firstPlayer.Next(), trickType)
		}
	}
}

// FromObservation builds the CardKnowledge an observer has accrued: their
// starting hand and skat knowledge, folded with every card played so far.
func FromObservation(initial_ ObservedInitialGameState, played ObservedPlayedCards) CardKnowledge {
	k := initial(initial_.StartHand, initial_.SkatIfKnown, initial_.HasSkat, initial_.BiddingRole)
	k.Apply(played, initial_.BiddingRole, initial_.GameType)
	return k
}

// Deal is a fully observable assignment of every card to one of the three
// hands or the skat — one "possible world" the Monte Carlo driver runs
// the solver over.
type Deal struct {
	FirstReceiver cards.Cards
	FirstCaller   cards.Cards
	SecondCaller  cards.Cards
	Skat          cards.Cards
}

// Hand returns the cards dealt to bidding seat b.
func (d Deal) Hand(b engine.BiddingRole) cards.Cards {
	switch b {
	case engine.FirstReceiver:
		return d.FirstReceiver
	case engine.FirstCaller:
		return d.FirstCaller
	default:
		return d.SecondCaller
	}
}

// InitialYield returns the skat's card points as the declarer's starting
// YieldSoFar, valid before any trick has been played.
func (d Deal) InitialYield() engine.YieldSoFar {
	return engine.YieldSoFar{Points: d.Skat.Points()}
}

// OpenGameState is a Deal replayed forward through the observed tricks:
// the resulting OpenSituation, the declarer's accumulated YieldSoFar
// (skat plus every completed trick won), and, for Trump contracts, the
// declarer's matador count.
type OpenGameState struct {
	OpenSituation engine.OpenSituation
	YieldSoFar    engine.YieldSoFar
	Matadors      int
	HasMatadors   bool
}

// InitialSituation returns the OpenSituation at the very start of card
// play for this deal, before any trick has been played — exactly what
// solver.NewKeyFunc needs to recover the fixed skat pair for its
// transposition-cache key.
func (d Deal) InitialSituation(biddingWinner engine.BiddingRole) engine.OpenSituation {
	firstDefenderRole, secondDefenderRole := otherTwoInOrder(biddingWinner)
	return engine.InitialSituation(d.Hand(biddingWinner), d.Hand(firstDefenderRole), d.Hand(secondDefenderRole), biddingWinner)
}

// ToOpenGameState replays o's tricks against deal, producing the open
// situation a solver should be instantiated for.
func (o ObservedPlayedCards) ToOpenGameState(deal Deal, biddingWinner engine.BiddingRole, g card.GameType) OpenGameState {
	matadors, hasMatadors := CountMatadors(deal, biddingWinner, g)

	openSituation := deal.InitialSituation(biddingWinner)

	yieldSoFar := deal.InitialYield()

	for _, trick := range o.doneTricks {
		yieldSoFar = yieldSoFar.Add(openSituation.PlayCard(trick.First(), g))
		yieldSoFar = yieldSoFar.Add(openSituation.PlayCard(trick.Second(), g))
		yieldSoFar = yieldSoFar.Add(openSituation.PlayCard(trick.Third(), g))
	}

	if firstCard, ok := o.currentTrick.First(); ok {
		yieldSoFar = yieldSoFar.Add(openSituation.PlayCard(firstCard, g))
		if secondCard, ok := o.currentTrick.Second(); ok {
			yieldSoFar = yieldSoFar.Add(openSituation.PlayCard(secondCard, g))
		}
	}

	return OpenGameState{OpenSituation: openSituation, YieldSoFar: yieldSoFar, Matadors: matadors, HasMatadors: hasMatadors}
}

// otherTwoInOrder returns the two non-declarer bidding seats, in the
// (FirstDefender, SecondDefender) role order play proceeds in.
func otherTwoInOrder(biddingWinner engine.BiddingRole) (engine.BiddingRole, engine.BiddingRole) {
	first := biddingWinner.Next()
	return first, first.Next()
}
