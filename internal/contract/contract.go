// Package contract turns a bidding value, an announcement, and a finished
// (or hypothetically finished) game's conclusion into the signed score
// delta the declarer books — the last of the three thinner layers around
// the open-situation solver.
package contract

import (
	"github.com/bran/skat/internal/analyzer"
	"github.com/bran/skat/internal/card"
)

// AnnouncementError reports a malformed announcement, caught once at
// construction so the rest of the package can assume well-formedness.
type AnnouncementError string

func (e AnnouncementError) Error() string {
	return string(e)
}

const (
	ErrSchneiderRequiresHand    AnnouncementError = "schneider announced without hand"
	ErrSchwarzRequiresSchneider AnnouncementError = "schwarz announced without schneider"
	ErrOuvertFlagsOnNull        AnnouncementError = "schneider or schwarz announced on a null contract"
)

// nullBaseValues are Null's four fixed values, indexed by (hand, ouvert):
// plain, hand, ouvert, hand+ouvert.
var nullBaseValues = map[[2]bool]int{
	{false, false}: 23,
	{true, false}:  35,
	{false, true}:  46,
	{true, true}:   59,
}

// baseValues are the Trump(suit)/Grand per-matador-point multiplier bases.
var baseValues = map[card.Suit]int{
	card.Diamonds: 9,
	card.Hearts:   10,
	card.Spades:   11,
	card.Clubs:    12,
}

const grandBaseValue = 24

// Announcement is the declarer's bid: either a Null contract (won iff the
// declarer takes zero tricks) or a Trump(suit-or-Grand) contract with an
// escalating level of self-imposed difficulty that raises its value.
type Announcement struct {
	gameType         card.GameType
	isNull           bool
	hand             bool
	ouvert           bool
	schneiderCalled  bool
	schwarzCalled    bool
}

// NewNull builds a Null announcement. ouvert implies the declarer's hand
// is exposed; hand implies they played without picking up the skat.
func NewNull(hand, ouvert bool) Announcement {
	return Announcement{gameType: card.Null, isNull: true, hand: hand, ouvert: ouvert}
}

// NewTrump builds a Trump(suit)-or-Grand announcement at the given level.
// Schneider/Schwarz may only be called together with Hand (and Schwarz
// only together with Schneider); calling them without is an error rather
// than silently upgrading the contract.
func NewTrump(g card.GameType, hand, schneiderCalled, schwarzCalled, ouvert bool) (Announcement, error) {
	if g.IsNull() {
		return Announcement{}, ErrOuvertFlagsOnNull
	}
	if schneiderCalled && !hand {
		return Announcement{}, ErrSchneiderRequiresHand
	}
	if schwarzCalled && !schneiderCalled {
		return Announcement{}, ErrSchwarzRequiresSchneider
	}
	return Announcement{
		gameType:        g,
		hand:            hand,
		ouvert:          ouvert,
		schneiderCalled: schneiderCalled,
		schwarzCalled:   schwarzCalled,
	}, nil
}

// GameType returns the underlying game type (Null, Grand, or Trump(suit)).
func (a Announcement) GameType() card.GameType {
	return a.gameType
}

// requiredConclusion is the weakest GameConclusion this announcement needs
// to be won: a plain win needs only DefendersAreDominated (61+ points);
// Schneider called needs DefendersAreSchneider; Schwarz called needs
// DefendersAreSchwarz. Null contracts are not classified here: isWon
// checks them on its own (won iff DeclarerIsSchwarz, zero tricks), since
// Null's win condition runs the opposite direction of Trump's.
func (a Announcement) requiredConclusion() analyzer.GameConclusion {
	switch {
	case a.schwarzCalled:
		return analyzer.DefendersAreSchwarz
	case a.schneiderCalled:
		return analyzer.DefendersAreSchneider
	default:
		return analyzer.DefendersAreDominated
	}
}

// value computes the announcement's base value times its multiplier,
// independent of whether it was actually won: matadors only matters for
// Trump/Grand, taken as 0 for Null.
func (a Announcement) value(matadors int, hasMatadors bool, conclusion analyzer.GameConclusion) int {
	if a.isNull {
		return nullBaseValues[[2]bool{a.hand, a.ouvert}]
	}

	base := grandBaseValue
	if !a.gameType.IsGrand() {
		base = baseValues[a.gameType.Suit()]
	}

	m := 0
	if hasMatadors {
		m = matadors
	}

	multiplier := m + 1
	if a.hand {
		multiplier++
	}
	if reachedOrCalled(conclusion, analyzer.DefendersAreSchneider) {
		multiplier++
	}
	if a.schneiderCalled {
		multiplier++
	}
	if reachedOrCalled(conclusion, analyzer.DefendersAreSchwarz) {
		multiplier++
	}
	if a.schwarzCalled {
		multiplier++
	}
	if a.ouvert {
		multiplier++
	}

	return base * multiplier
}

func reachedOrCalled(conclusion, floor analyzer.GameConclusion) bool {
	return conclusion >= floor
}

// isWon reports whether conclusion satisfies this announcement's level.
func (a Announcement) isWon(conclusion analyzer.GameConclusion) bool {
	if a.isNull {
		return conclusion == analyzer.DeclarerIsSchwarz
	}
	return conclusion >= a.requiredConclusion()
}

// Contract pairs a bidding value (the minimum value the declarer
// committed to during bidding) with the Announcement actually played.
type Contract struct {
	BiddingValue int
	Announcement Announcement
}

// ScoreDelta computes the declarer's signed score delta: won iff the announcement's required conclusion was reached AND its
// value is at least the bidding value; otherwise lost, in which case an
// overbid contract's value is bumped up to the smallest multiple of its
// base value at least as large as the bidding value before being negated.
func (c Contract) ScoreDelta(conclusion analyzer.GameConclusion, matadors int, hasMatadors bool) int {
	value := c.Announcement.value(matadors, hasMatadors, conclusion)
	won := c.Announcement.isWon(conclusion) && value >= c.BiddingValue

	if won {
		return value
	}

	overbidValue := value
	if value < c.BiddingValue {
		base := grandBaseValue
		if !c.Announcement.isNull && !c.Announcement.gameType.IsGrand() {
			base = baseValues[c.Announcement.gameType.Suit()]
		}
		if !c.Announcement.isNull {
			overbidValue = ceilToMultiple(c.BiddingValue, base)
		}
	}

	return -2 * overbidValue
}

func ceilToMultiple(value, base int) int {
	if base == 0 {
		return value
	}
	quotient := value / base
	if value%base != 0 {
		quotient++
	}
	return quotient * base
}
