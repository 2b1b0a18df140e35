// Package solver implements the open-situation minimax engine: move
// ordering, quasi-equivalence pruning, a transposition cache, and the
// recursive bound-tightening search described by the core solver design.
package solver

import (
	"time"

	"github.com/bran/skat/internal/card"
	"github.com/bran/skat/internal/engine"
)

// Config tunes the solver's heuristics, both of which are flagged as
// candidates for soundness review on adversarial positions and so are
// exposed rather than hardcoded.
type Config struct {
	// MaxQuasiDelta caps, in card points, how far quasi-equivalence
	// pruning may widen a child's bounds before banning siblings.
	// Kupferschmid 2007 uses 1; that is the default.
	MaxQuasiDelta int

	// DefenderUpperBound enables the defender-forehand upper-bound quick
	// bounds heuristic. When false, defender-to-move positions fall back
	// to the trivial naive upper bound.
	DefenderUpperBound bool
}

// DefaultConfig returns the recommended configuration.
func DefaultConfig() Config {
	return Config{MaxQuasiDelta: 1, DefenderUpperBound: true}
}

// Solver is a single-threaded recursive open-situation solver bound to
// one game type and one transposition cache. It keeps no synchronization
// of its own: running several solvers concurrently, each with its own
// Solver and Cache, requires no coordination, which is how the Monte
// Carlo driver parallelizes across sampled deals.
type Solver struct {
	cache    *Cache
	gameType card.GameType
	config   Config

	timeSpentCalculatingBounds time.Duration
	nodesAnalyzed              int
}

// NewSolver builds a solver for gameType using cache for memoization.
func NewSolver(cache *Cache, gameType card.GameType, config Config) *Solver {
	return &Solver{cache: cache, gameType: gameType, config: config}
}

// GameType returns the game type this solver was built for.
func (s *Solver) GameType() card.GameType { return s.gameType }

// NodesAnalyzed returns how many bounds_deciding_threshold calls this
// solver has made so far.
func (s *Solver) NodesAnalyzed() int { return s.nodesAnalyzed }

// TimeSpent returns the cumulative wall-clock time spent inside
// StillMakesAtLeast.
func (s *Solver) TimeSpent() time.Duration { return s.timeSpentCalculatingBounds }

// StillMakesAtLeast is the solver's public entry point: does the declarer
// still reach threshold (in card points and tricks) under optimal play by
// everyone from this position onward?
func (s *Solver) StillMakesAtLeast(pos engine.OpenSituation, threshold engine.TrickYield) bool {
	start := time.Now()
	bounds := s.boundsDecidingThreshold(pos, threshold)
	s.timeSpentCalculatingBounds += time.Since(start)
	return threshold.LessOrEqual(bounds.Lower())
}

// boundsDecidingThreshold and improveBoundsToDecideThreshold are mutually
// recursive and form the hot loop of the solver.
func (s *Solver) boundsDecidingThreshold(pos engine.OpenSituation, threshold engine.TrickYield) engine.Bounds {
	s.nodesAnalyzed++

	if !pos.IsTrickInProgress() {
		bp := s.cache.GetCurrentKnowledge(pos, s.gameType)
		if !bp.Bounds.DecidesThreshold(threshold) {
			bp = s.improveBoundsToDecideThreshold(bp.Bounds, bp.Preference, pos, threshold)
			s.cache.UpdateExisting(pos, bp, s.gameType)
		}
		return bp.Bounds
	}

	bounds := s.quickBounds(pos)
	if !bounds.DecidesThreshold(threshold) {
		bounds = s.improveBoundsToDecideThreshold(bounds, nil, pos, threshold).Bounds
	}
	return bounds
}

func (s *Solver) quickBounds(pos engine.OpenSituation) engine.Bounds {
	return pos.QuickBounds(s.gameType, s.config.DefenderUpperBound)
}

func (s *Solver) improveBoundsToDecideThreshold(bounds engine.Bounds, preference *card.Card, pos engine.OpenSituation, threshold engine.TrickYield) BoundsAndPreference {
	activeMinimaxRole := pos.ActiveMinimaxRole(s.gameType)
	bestAccum := engine.Worst(activeMinimaxRole)

	stillConsidered := pos.NextPossiblePlays(s.gameType)
	inHandOrYielded := pos.InHandOrYielded()

	var decidingCard *card.Card

	tryCard := func(c card.Card) bool {
		stillConsidered = stillConsidered.Remove(c)

		child := pos
		additional := child.PlayCard(c, s.gameType)
		thresholdChild := threshold.SaturatingSub(additional)
		childBounds := s.boundsDecidingThreshold(child, thresholdChild)

		lowerViaChild := childBounds.Lower().Add(additional)
		upperViaChild := childBounds.Upper().Add(additional)

		switch activeMinimaxRole {
		case engine.Min:
			bounds.MinimizeUpper(upperViaChild)
		case engine.Max:
			bounds.MaximizeLower(lowerViaChild)
		}

		if bounds.DecidesThreshold(threshold) {
			cc := c
			decidingCard = &cc
			return true
		}

		maxDelta := engine.NewBounds(lowerViaChild, upperViaChild).DistanceToThreshold(threshold)
		if maxDelta > s.config.MaxQuasiDelta {
			maxDelta = s.config.MaxQuasiDelta
		}

		banned, delta := QuasiEquivalentWithMaxDelta(c, inHandOrYielded, s.gameType, maxDelta, stillConsidered)
		stillConsidered = stillConsidered.Without(banned)

		deltaYield := engine.TrickYield{Points: delta}
		switch activeMinimaxRole {
		case engine.Min:
			bestAccum = bestAccum.Min(lowerViaChild.SaturatingSub(deltaYield))
		case engine.Max:
			bestAccum = bestAccum.Max(upperViaChild.Add(deltaYield))
		}
		return false
	}

	order := OrderedCandidates(pos, s.gameType)
	candidates := make([]card.Card, 0, len(order)+1)
	if preference != nil {
		candidates = append(candidates, *preference)
	}
	candidates = append(candidates, order...)

	for _, c := range candidates {
		if !stillConsidered.Contains(c) {
			continue
		}
		if tryCard(c) {
			break
		}
	}

	if decidingCard == nil {
		switch activeMinimaxRole {
		case engine.Min:
			bounds.UpdateLower(bestAccum)
		case engine.Max:
			bounds.UpdateUpper(bestAccum)
		}
	}

	return BoundsAndPreference{Bounds: bounds, Preference: decidingCard}
}
