package analyzer

import "github.com/bran/skat/internal/engine"

// Yield finds the exact achievable future TrickYield from pos under
// optimal play by binary search: StillMakesAtLeast(pos, {P, 0}) is true
// iff the actual future points are at least P, so bisecting on points
// alone (ignoring tricks) pins down the exact point total; a second
// bisection on tricks at that fixed point total then pins down the exact
// trick count (the tie-break the lexicographic order needs once points
// agree). Returns yieldSoFar plus that future yield.
func Yield(pos engine.OpenSituation, yieldSoFar engine.YieldSoFar, s solverQuery) engine.YieldSoFar {
	loPoints, hiPoints := 0, engine.MaxYield.Points
	for loPoints < hiPoints {
		mid := (loPoints + hiPoints + 1) / 2
		if s.StillMakesAtLeast(pos, engine.TrickYield{Points: mid}) {
			loPoints = mid
		} else {
			hiPoints = mid - 1
		}
	}
	points := loPoints

	loTricks, hiTricks := 0, engine.MaxYield.Tricks
	for loTricks < hiTricks {
		mid := (loTricks + hiTricks + 1) / 2
		if s.StillMakesAtLeast(pos, engine.TrickYield{Points: points, Tricks: mid}) {
			loTricks = mid
		} else {
			hiTricks = mid - 1
		}
	}

	return yieldSoFar.Add(engine.TrickYield{Points: points, Tricks: loTricks})
}
