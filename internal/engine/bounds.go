package engine

// Bounds says that, with perfect play from here, the final TrickYield will
// be at least Lower and at most Upper.
type Bounds struct {
	lower, upper TrickYield
}

// NewBounds builds a Bounds. lower must not exceed upper.
func NewBounds(lower, upper TrickYield) Bounds {
	return Bounds{lower: lower, upper: upper}
}

// Lower returns the bounds' lower edge.
func (b Bounds) Lower() TrickYield { return b.lower }

// Upper returns the bounds' upper edge.
func (b Bounds) Upper() TrickYield { return b.upper }

// DecidesThreshold reports whether these bounds alone are enough to know
// whether the final yield will reach threshold, without further search.
func (b Bounds) DecidesThreshold(threshold TrickYield) bool {
	return threshold.LessOrEqual(b.lower) || b.upper.Less(threshold)
}

// DistanceToThreshold returns how many card points the bounds could widen
// by, in both directions at once, and still decide threshold. Requires
// that b already decides threshold.
func (b Bounds) DistanceToThreshold(threshold TrickYield) int {
	th := threshold.Points
	if upperPlusOne := b.upper.Points + 1; th >= upperPlusOne {
		return th - upperPlusOne
	}
	return saturatingSub(b.lower.Points, th)
}

// MinimizeUpper tightens the upper bound to at most upperBound.
func (b *Bounds) MinimizeUpper(upperBound TrickYield) {
	b.upper = b.upper.Min(upperBound)
}

// MaximizeLower tightens the lower bound to at least lowerBound.
func (b *Bounds) MaximizeLower(lowerBound TrickYield) {
	b.lower = b.lower.Max(lowerBound)
}

// UpdateLower replaces the lower bound outright. lowerBound must exceed
// the current lower bound.
func (b *Bounds) UpdateLower(lowerBound TrickYield) {
	b.lower = lowerBound
}

// UpdateUpper replaces the upper bound outright. upperBound must be below
// the current upper bound.
func (b *Bounds) UpdateUpper(upperBound TrickYield) {
	b.upper = upperBound
}
