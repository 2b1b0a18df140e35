package engine

import (
	"github.com/bran/skat/internal/card"
	"github.com/bran/skat/internal/cards"
)

// OpenSituation is the state the solver recurses over: the three hands (as
// seen from an omniscient, perfect-information viewpoint), the trick in
// progress, and whose turn it is. It deliberately omits anything the
// solver doesn't need to choose a card — bidding history, yield already
// banked, even the game type — so it stays cheap to copy and to play a
// card into.
type OpenSituation struct {
	handDeclarer      cards.Cards
	handFirstDefender cards.Cards
	handSecondDefender cards.Cards
	partialTrick      PartialTrick
	activeRole        Role
}

// InitialSituation builds the OpenSituation at the start of card play: the
// three dealt hands and whichever role leads the first trick.
func InitialSituation(handDeclarer, handFirstDefender, handSecondDefender cards.Cards, biddingWinner BiddingRole) OpenSituation {
	return OpenSituation{
		handDeclarer:       handDeclarer,
		handFirstDefender:  handFirstDefender,
		handSecondDefender: handSecondDefender,
		partialTrick:       EmptyTrick,
		activeRole:         FirstActive(biddingWinner),
	}
}

// Leaf builds a fully empty situation (no cards left anywhere) with a
// given active role, used by tests to construct edge-of-game positions
// directly.
func Leaf(activeRole Role) OpenSituation {
	return OpenSituation{activeRole: activeRole}
}

// IsTrickInProgress reports whether any cards have been played to the
// current trick.
func (s OpenSituation) IsTrickInProgress() bool {
	return s.partialTrick.IsInProgress()
}

// IsInitialSituation reports whether no card has been played at all: the
// cellar holds exactly the two skat cards and no trick is in progress.
func (s OpenSituation) IsInitialSituation() bool {
	return s.Cellar().Len() == 2 && !s.partialTrick.IsInProgress()
}

// MaybeFirstTrickCard returns the led card of the current trick, if any.
func (s OpenSituation) MaybeFirstTrickCard() (card.Card, bool) {
	return s.partialTrick.First()
}

// ActiveRole returns whose turn it is to play.
func (s OpenSituation) ActiveRole() Role {
	return s.activeRole
}

// ActiveMinimaxRole returns the minimax side of whoever is active.
func (s OpenSituation) ActiveMinimaxRole(g card.GameType) MinimaxRole {
	return MinimaxRoleOf(s.ActiveRole(), g)
}

// HandCardsOf returns the cards still held by a given role.
func (s OpenSituation) HandCardsOf(role Role) cards.Cards {
	switch role {
	case Declarer:
		return s.handDeclarer
	case FirstDefender:
		return s.handFirstDefender
	default:
		return s.handSecondDefender
	}
}

func (s OpenSituation) activeHandCards() cards.Cards {
	return s.HandCardsOf(s.activeRole)
}

func (s *OpenSituation) activeHandCardsPtr() *cards.Cards {
	switch s.activeRole {
	case Declarer:
		return &s.handDeclarer
	case FirstDefender:
		return &s.handFirstDefender
	default:
		return &s.handSecondDefender
	}
}

// NextPossiblePlays returns the legal cards the active role may play. Must
// not be called when the active hand is empty; it is guaranteed to return
// at least one card otherwise.
func (s OpenSituation) NextPossiblePlays(g card.GameType) cards.Cards {
	hand := s.activeHandCards()
	lead, hasLead := s.partialTrick.First()
	if !hasLead {
		return hand.PossiblePlays(nil, g)
	}
	return hand.PossiblePlays(&lead, g)
}

// PlayCard plays card c for the active role, advances to the next active
// role (skipping past a trick winner as needed), and returns the yield the
// declarer gained from this move: the full trick's yield if this move
// completed a trick the declarer won, zero otherwise.
func (s *OpenSituation) PlayCard(c card.Card, g card.GameType) TrickYield {
	debugAssert(s.NextPossiblePlays(g).Contains(c), "PlayCard: card is not a legal play")

	hand := s.activeHandCardsPtr()
	*hand = hand.Remove(c)

	s.activeRole = s.activeRole.Next()

	trick, completed := s.partialTrick.Add(c)
	if !completed {
		s.assertInvariants()
		return ZeroTricks
	}

	switch trick.WinnerPosition(g) {
	case Forehand:
		// activeRole already sits at the position that led, i.e. forehand.
	case Middlehand:
		s.activeRole = s.activeRole.Next()
	default: // Rearhand
		s.activeRole = s.activeRole.Next().Next()
	}

	s.assertInvariants()

	if s.activeRole == Declarer {
		return YieldFromTrick(trick)
	}
	return ZeroTricks
}

// assertInvariants checks that every card appears exactly once across the
// three hands, the trick in progress, and the cellar, and that all three
// roles own the same number of not-yet-consumed cards once each card in
// the trick in progress is counted for the role that played it. A no-op
// unless the skatdebug build tag is set.
func (s OpenSituation) assertInvariants() {
	numberOfAppearingCards := s.handDeclarer.Len() + s.handFirstDefender.Len() +
		s.handSecondDefender.Len() + s.partialTrick.NumberOfCards()
	debugAssert(numberOfAppearingCards+s.Cellar().Len() == 32, "card does not appear exactly once across hands, trick and cellar")

	numberCardsBelongingToActive := s.HandCardsOf(s.activeRole).Len()

	numberCardsBelongingToNext := s.HandCardsOf(s.activeRole.Next()).Len()
	if _, ok := s.partialTrick.Second(); ok {
		numberCardsBelongingToNext++
	}

	numberCardsBelongingToNextNext := s.HandCardsOf(s.activeRole.Next().Next()).Len()
	if _, ok := s.partialTrick.First(); ok {
		numberCardsBelongingToNextNext++
	}

	debugAssert(numberCardsBelongingToActive == numberCardsBelongingToNext, "hand sizes desynchronized across the active and next role")
	debugAssert(numberCardsBelongingToActive == numberCardsBelongingToNextNext, "hand sizes desynchronized across the active and next-next role")
}

// RemainingCardsInHands returns every card still held by any of the three
// hands (excluding the trick in progress and the skat).
func (s OpenSituation) RemainingCardsInHands() cards.Cards {
	return s.handDeclarer.Or(s.handFirstDefender).Or(s.handSecondDefender)
}

// Cellar returns every card already face down: the skat plus every
// completed trick's cards.
func (s OpenSituation) Cellar() cards.Cards {
	return cards.All.Without(s.RemainingCardsInHands()).Without(s.partialTrick.Cards())
}

// YieldFromSkat returns the yield represented by the skat alone, valid
// only at the very start of card play.
func (s OpenSituation) YieldFromSkat() YieldSoFar {
	return YieldSoFar{Points: s.Cellar().Points(), Tricks: 0}
}

// InHandOrYielded returns the active role's remaining hand plus everything
// already banked to the cellar — used by the solver's quasi-equivalence
// pruning, where a card outside this set separates two cards of a type.
func (s OpenSituation) InHandOrYielded() cards.Cards {
	return s.activeHandCards().Or(s.Cellar())
}

// QuickBounds computes cheap, sound bounds on the final yield without any
// recursive search: a perfect-information lower bound from counting
// matadors when the declarer leads a Trump(suit) contract, and an upper
// bound from how many points are already unrecoverable in the cellar,
// further tightened when a defender leads a Trump(suit) contract and
// includeDefenderUpperBound is set. Grand and Null get neither heuristic:
// their lower bound is ZeroTricks and their upper bound is the cellar-based
// one.
func (s OpenSituation) QuickBounds(g card.GameType, includeDefenderUpperBound bool) Bounds {
	lower := ZeroTricks
	if !s.IsTrickInProgress() && s.activeRole == Declarer && !g.IsNull() && !g.IsGrand() {
		lower = s.LowerBoundNonNullDeclarerForehand(card.OfSuit(g.Suit()))
	}

	cellar := s.Cellar()
	goneTricks := cellar.Len() / 3
	cellarScore := YieldSoFar{Points: cellar.Points(), Tricks: goneTricks}
	upper := MaxYield.SaturatingSub(cellarScore)

	if includeDefenderUpperBound && !s.IsTrickInProgress() && s.activeRole != Declarer && !g.IsNull() && !g.IsGrand() {
		forcedAgainstDeclarer := s.ForcedDefenderYieldNonNullDefenderForehand(card.OfSuit(g.Suit()))
		upper = upper.SaturatingSub(forcedAgainstDeclarer)
	}

	return NewBounds(lower, upper)
}

// LowerBoundNonNullDeclarerForehand computes a sound lower bound on the
// declarer's final yield by walking the matador chain: as long as the
// declarer holds the next-highest remaining trump, that trick is
// guaranteed won (the defenders cannot beat a card higher than every trump
// they hold), so its points count toward the bound; once the chain breaks,
// the same greedy argument extends to plain suits the declarer can run
// from the top down as long as neither defender could ruff (each one
// either still holds the suit or holds no trump). Only
// valid for a Trump(suit) contract with the declarer on lead and no trick
// in progress.
func (s OpenSituation) LowerBoundNonNullDeclarerForehand(trump card.CardType) TrickYield {
	g := card.TrumpSuit(trump.Suit())
	trumpCards := cards.OfCardType(card.Trump, g)

	declarer := s.handDeclarer
	handF := s.handFirstDefender
	handS := s.handSecondDefender

	countF, countS := 0, 0
	points := 0
	tricks := 0

	remainingCards := declarer.Or(handF).Or(handS)
	remainingTrump := remainingCards.And(trumpCards)

	countFTrump, countSTrump := 0, 0

	// scratchF/scratchS are disposable copies used only to count how many
	// times each defender can still follow with trump during this run;
	// handF/handS themselves stay untouched so the dump loop below picks
	// the actual cheapest trumps out of the real hand, not a hand already
	// depleted by the counting pass.
	scratchF := handF
	scratchS := handS

	for {
		matador, ok := remainingTrump.Highest()
		if !ok {
			break
		}
		if !declarer.Contains(matador) {
			break
		}
		remainingTrump = remainingTrump.Remove(matador)
		declarer = declarer.Remove(matador)

		tricks++
		points += matador.Points()

		if lowTrump, ok := scratchF.RemoveLowestOfType(card.Trump, g); ok {
			remainingTrump = remainingTrump.Remove(lowTrump)
			countFTrump++
		} else {
			countF++
		}

		if lowTrump, ok := scratchS.RemoveLowestOfType(card.Trump, g); ok {
			remainingTrump = remainingTrump.Remove(lowTrump)
			countSTrump++
		} else {
			countS++
		}
	}

	for i := 0; i < countFTrump; i++ {
		c := dumpOneTrumpCard(&handF, g)
		points += c.Points()
	}
	for i := 0; i < countSTrump; i++ {
		c := dumpOneTrumpCard(&handS, g)
		points += c.Points()
	}

	for _, suit := range []card.Suit{card.Clubs, card.Diamonds, card.Hearts, card.Spades} {
		cardType := card.OfSuit(suit)
		cardsOfType := cards.OfCardType(cardType, g)
		remainingSuit := remainingCards.And(cardsOfType)

		for {
			fCanFollowOrVoidOfTrump := !handF.And(cardsOfType).IsEmpty() || handF.And(trumpCards).IsEmpty()
			sCanFollowOrVoidOfTrump := !handS.And(cardsOfType).IsEmpty() || handS.And(trumpCards).IsEmpty()
			if !fCanFollowOrVoidOfTrump || !sCanFollowOrVoidOfTrump {
				break
			}
			highest, ok := remainingSuit.Highest()
			if !ok || !declarer.Contains(highest) {
				break
			}
			remainingSuit = remainingSuit.Remove(highest)
			declarer = declarer.Remove(highest)

			tricks++
			points += highest.Points()

			if lowest, ok := handF.RemoveLowestOfType(cardType, g); ok {
				remainingSuit = remainingSuit.Remove(lowest)
				points += lowest.Points()
			} else {
				countF++
			}
			if lowest, ok := handS.RemoveLowestOfType(cardType, g); ok {
				remainingSuit = remainingSuit.Remove(lowest)
				points += lowest.Points()
			} else {
				countS++
			}
		}
	}

	for i := 0; i < countF; i++ {
		points += dumpCheapestCard(&handF)
	}
	for i := 0; i < countS; i++ {
		points += dumpCheapestCard(&handS)
	}

	return TrickYield{Points: points, Tricks: tricks}
}

// ForcedDefenderYieldNonNullDefenderForehand computes a sound lower bound
// on how many points and tricks the active defender's side is guaranteed
// to take, implementing one rule of a defender-forehand upper-bound
// procedure: as long as the active defender holds the currently-highest
// outstanding trump, leading it wins the trick outright regardless of
// what the partner and declarer do, so that trick's points are forced
// against the declarer. Partner and declarer are assumed to respond with
// their cheapest legal card (a safe minimum: any richer response only
// increases the forced yield further). Two further rules of the full
// procedure are deliberately not implemented here, since their depth
// interactions have unresolved soundness concerns (see DESIGN.md), so
// this stays a conservative subset rather than risk an unsound upper
// bound. Only valid for a Trump(suit) contract with a defender on lead
// and no trick in progress.
func (s OpenSituation) ForcedDefenderYieldNonNullDefenderForehand(trump card.CardType) TrickYield {
	g := card.TrumpSuit(trump.Suit())
	trumpCards := cards.OfCardType(card.Trump, g)

	partnerRole := FirstDefender
	if s.activeRole == FirstDefender {
		partnerRole = SecondDefender
	}

	leader := s.activeHandCards()
	partner := s.HandCardsOf(partnerRole)
	declarer := s.handDeclarer

	points := 0
	tricks := 0

	remainingCards := leader.Or(partner).Or(declarer)
	remainingTrump := remainingCards.And(trumpCards)

	for {
		matador, ok := remainingTrump.Highest()
		if !ok || !leader.Contains(matador) {
			break
		}
		remainingTrump = remainingTrump.Remove(matador)
		leader = leader.Remove(matador)

		tricks++
		points += matador.Points()

		if lowTrump, ok := partner.RemoveLowestOfType(card.Trump, g); ok {
			// Partner's forced trump is deliberately not credited as a
			// point against the declarer here: the result is a lower
			// bound on what the defenders are forced to take, so leaving
			// out the points of a card they win anyway can only make the
			// declarer's upper bound looser, never unsound.
			remainingTrump = remainingTrump.Remove(lowTrump)
		} else {
			points += dumpCheapestCard(&partner)
		}

		if lowTrump, ok := declarer.RemoveLowestOfType(card.Trump, g); ok {
			remainingTrump = remainingTrump.Remove(lowTrump)
		} else {
			points += dumpCheapestCard(&declarer)
		}
	}

	return TrickYield{Points: points, Tricks: tricks}
}

// dumpOneTrumpCard removes the cheapest trump card from hand (a zero-point
// trump first, else the jack, else whatever trump remains) and returns it:
// the value a defender hands over when forced to follow trump they cannot
// win with.
func dumpOneTrumpCard(hand *cards.Cards, g card.GameType) card.Card {
	available := hand.And(cards.OfTrump(g))
	if c, ok := available.And(cards.OfZeroPoints).Lowest(); ok {
		*hand = hand.Remove(c)
		return c
	}
	if c, ok := available.And(cards.OfRank(card.RU)).Lowest(); ok {
		*hand = hand.Remove(c)
		return c
	}
	c, _ := available.Lowest()
	*hand = hand.Remove(c)
	return c
}

// dumpCheapestCard removes and returns the points of the single cheapest
// card remaining in hand, scanning ranks in ascending point order.
func dumpCheapestCard(hand *cards.Cards) int {
	for _, r := range card.RanksByPoints {
		if c, ok := hand.And(cards.OfRank(r)).Lowest(); ok {
			*hand = hand.Remove(c)
			return c.Points()
		}
	}
	return 0
}
