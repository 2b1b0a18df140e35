package analyzer

import "github.com/bran/skat/internal/engine"

// GameConclusion classifies a finished (or hypothetically finished) game
// by the declarer's final YieldSoFar (card points plus skat, tricks won)
// into six named categories, from the defenders taking every trick to
// the declarer taking every trick.
type GameConclusion uint8

const (
	DeclarerIsSchwarz GameConclusion = iota
	DeclarerIsSchneider
	DeclarerIsDominated
	DefendersAreDominated
	DefendersAreSchneider
	DefendersAreSchwarz
)

func (g GameConclusion) String() string {
	switch g {
	case DeclarerIsSchwarz:
		return "DeclarerIsSchwarz"
	case DeclarerIsSchneider:
		return "DeclarerIsSchneider"
	case DeclarerIsDominated:
		return "DeclarerIsDominated"
	case DefendersAreDominated:
		return "DefendersAreDominated"
	case DefendersAreSchneider:
		return "DefendersAreSchneider"
	default:
		return "DefendersAreSchwarz"
	}
}

// IsWon reports whether the declarer won under this conclusion: reached
// at least 61 points (DefendersAreDominated or better, in the naming
// above, where "Defenders are dominated" is the basic win for declarer).
func (g GameConclusion) IsWon() bool {
	return g >= DefendersAreDominated
}

// floor is a (category, lower-bound YieldSoFar) pair used to walk down
// from the best conclusion to the worst, stopping at the first the
// declarer still provably reaches.
type floor struct {
	conclusion GameConclusion
	atLeast    engine.TrickYield
}

// descendingFloors lists, from best to worst, every conclusion floor
// except DeclarerIsSchwarz, which has no floor: it is simply what's left
// once every other floor has failed.
var descendingFloors = []floor{
	{DefendersAreSchwarz, engine.TrickYield{Points: 120, Tricks: 10}},
	{DefendersAreSchneider, engine.TrickYield{Points: 90, Tricks: 1}},
	{DefendersAreDominated, engine.TrickYield{Points: 61, Tricks: 1}},
	{DeclarerIsDominated, engine.TrickYield{Points: 31, Tricks: 1}},
	{DeclarerIsSchneider, engine.TrickYield{Points: 1, Tricks: 1}},
}

// FromFinalDeclarerYield classifies an already-known final yield (used
// once a deal has been fully replayed, without needing the solver).
func FromFinalDeclarerYield(final engine.YieldSoFar) GameConclusion {
	if final.Tricks == 0 {
		return DeclarerIsSchwarz
	}
	if final.Tricks == 10 {
		return DefendersAreSchwarz
	}
	switch {
	case final.Points <= 30:
		return DeclarerIsSchneider
	case final.Points <= 60:
		return DeclarerIsDominated
	case final.Points <= 89:
		return DefendersAreDominated
	default:
		return DefendersAreSchneider
	}
}

// solverQuery is the one method every analyzer strategy below needs from
// a solver: does the declarer still reach threshold card points/tricks
// under optimal play by everyone from here on.
type solverQuery interface {
	StillMakesAtLeast(pos engine.OpenSituation, threshold engine.TrickYield) bool
}

// IsWon runs a single solver query to answer whether the declarer's
// contract is still won (reaches the 61-point "DefendersAreDominated"
// floor) from pos, given yieldSoFar already banked.
func IsWon(pos engine.OpenSituation, yieldSoFar engine.YieldSoFar, s solverQuery) bool {
	threshold := engine.TrickYield{Points: 61}.SaturatingSub(yieldSoFar)
	return s.StillMakesAtLeast(pos, threshold)
}

// Conclusion runs at most five solver queries, descending through the
// conclusion floors above, and returns the first (best) one the declarer
// still provably reaches; if none do, the declarer is held to
// DeclarerIsSchwarz.
func Conclusion(pos engine.OpenSituation, yieldSoFar engine.YieldSoFar, s solverQuery) GameConclusion {
	for _, f := range descendingFloors {
		threshold := f.atLeast.SaturatingSub(yieldSoFar)
		if s.StillMakesAtLeast(pos, threshold) {
			return f.conclusion
		}
	}
	return DeclarerIsSchwarz
}
