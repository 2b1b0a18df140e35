package engine

// TrickYield is the lexicographically-ordered pair (card points, number of
// tricks) a side has taken: more card points always outweighs fewer
// tricks, so 28 points in 2 tricks beats 24 points in 3 tricks.
type TrickYield struct {
	Points int
	Tricks int
}

// YieldSoFar is the same pair used to describe an accumulated running
// total rather than a single trick's contribution; the two share one
// representation since both are just (points, tricks).
type YieldSoFar = TrickYield

// ZeroTricks is the yield of a trick that has not yet completed.
var ZeroTricks = TrickYield{}

// MaxYield is the best possible yield: every point, every trick.
var MaxYield = TrickYield{Points: 120, Tricks: 10}

// Worst returns the minimax-worst yield for a side: maximal for Min (since
// the minimizer wants to push the yield down from there), zero for Max.
func Worst(role MinimaxRole) TrickYield {
	if role == Min {
		return MaxYield
	}
	return ZeroTricks
}

// YieldFromTrick returns the one-trick yield of taking t.
func YieldFromTrick(t Trick) TrickYield {
	return TrickYield{Points: t.Points(), Tricks: 1}
}

// Less reports whether y is strictly lexicographically less than other.
func (y TrickYield) Less(other TrickYield) bool {
	if y.Points != other.Points {
		return y.Points < other.Points
	}
	return y.Tricks < other.Tricks
}

// LessOrEqual reports whether y is lexicographically at most other.
func (y TrickYield) LessOrEqual(other TrickYield) bool {
	return !other.Less(y)
}

// Add returns the sum of y and other.
func (y TrickYield) Add(other TrickYield) TrickYield {
	return TrickYield{Points: y.Points + other.Points, Tricks: y.Tricks + other.Tricks}
}

// SaturatingSub returns y minus other, clamped at zero in each component.
func (y TrickYield) SaturatingSub(other TrickYield) TrickYield {
	return TrickYield{Points: saturatingSub(y.Points, other.Points), Tricks: saturatingSub(y.Tricks, other.Tricks)}
}

func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}

// Max returns the lexicographically larger of y and other.
func (y TrickYield) Max(other TrickYield) TrickYield {
	if y.Less(other) {
		return other
	}
	return y
}

// Min returns the lexicographically smaller of y and other.
func (y TrickYield) Min(other TrickYield) TrickYield {
	if other.Less(y) {
		return other
	}
	return y
}
