// Package montecarlo is the parallel driver around internal/solver: for
// one decision point, it asks internal/sampler for the deals consistent
// with what's been observed, solves each one on its own worker with an
// independent solver and transposition cache, and aggregates the
// per-card results into weighted statistics a caller can report.
package montecarlo

import (
	"context"
	"errors"
	mathrand "math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bran/skat/internal/analyzer"
	"github.com/bran/skat/internal/card"
	"github.com/bran/skat/internal/cards"
	"github.com/bran/skat/internal/engine"
	"github.com/bran/skat/internal/sampler"
	"github.com/bran/skat/internal/solver"
)

// Config tunes the driver: how many deals to sample when the compatible
// set is too large to enumerate exhaustively, how many workers to fan
// solving out across, and which solver heuristics those workers use.
type Config struct {
	// SampleSize is how many deals to sample when the compatible set is
	// larger than AllSamplesThreshold.
	SampleSize int

	// AllSamplesThreshold is compared against max(AllSamplesThreshold,
	// SampleSize): at or below that many compatible deals, every one is
	// enumerated and solved instead of sampling.
	AllSamplesThreshold int

	// Workers is how many goroutines solve deals concurrently. Zero (the
	// default) picks runtime.NumCPU(), one worker per core, since each
	// worker owns an independent solver and cache and needs no
	// synchronization with the others.
	Workers int

	// Solver configures every worker's per-deal solver instance.
	Solver solver.Config
}

// DefaultConfig returns the recommended configuration.
func DefaultConfig() Config {
	return Config{
		SampleSize:          2000,
		AllSamplesThreshold: 10000,
		Workers:             runtime.NumCPU(),
		Solver:              solver.DefaultConfig(),
	}
}

// CardOutcome is one legal next card's solved outcome in one possible
// world: the GameConclusion category it falls into (feeds the nlb/nls/w/
// ws/wb probability columns) and the exact achievable YieldSoFar under
// optimal play from there (feeds the avg. card-point column), computed
// together from the same per-deal solver so a card's two numbers are
// always consistent with each other.
type CardOutcome struct {
	Conclusion analyzer.GameConclusion
	Yield      engine.YieldSoFar
}

// PossibleWorldResult is one sampled deal's solved outcome: the
// CardOutcome reachable from each currently-legal next card, plus that
// world's matador count (Trump/Grand only) and its sampling weight.
type PossibleWorldResult struct {
	Plays       *analyzer.AnalyzedPossiblePlays[CardOutcome]
	Matadors    int
	HasMatadors bool
	Weight      float64
}

// SampledWorldsData is never empty on success: Run always returns at
// least one possible world, since a decision point with zero compatible
// deals indicates a contradiction in what was observed.
type SampledWorldsData struct {
	Results []PossibleWorldResult
}

// Cards returns the set of currently-legal next cards every possible
// world's result is indexed by (the same set for every world, since they
// all share the same hand-in-progress at this decision point).
func (d SampledWorldsData) Cards() cards.Cards {
	if len(d.Results) == 0 {
		return cards.Empty
	}
	return d.Results[0].Plays.Cards()
}

// WeightedAverage folds f over every possible world's per-card
// CardOutcome (and that world's matador count), weights by sampling
// weight, and averages across worlds — the Go analogue of
// SampledWorldsData::weighted_average.
func (d SampledWorldsData) WeightedAverage(f func(CardOutcome, int, bool) float64) map[card.Card]float64 {
	sums := make(map[card.Card]float64)
	totalWeight := 0.0

	for _, r := range d.Results {
		totalWeight += r.Weight
		for _, c := range r.Plays.Cards().ToSlice() {
			sums[c] += f(r.Plays.Get(c), r.Matadors, r.HasMatadors) * r.Weight
		}
	}

	if totalWeight == 0 {
		return sums
	}
	for c := range sums {
		sums[c] /= totalWeight
	}
	return sums
}

// WeightedProbabilityOf is WeightedAverage specialized to a 0/1
// predicate, the Go analogue of weighted_probability_of.
func (d SampledWorldsData) WeightedProbabilityOf(f func(CardOutcome, int, bool) bool) map[card.Card]float64 {
	return d.WeightedAverage(func(o CardOutcome, matadors int, hasMatadors bool) float64 {
		if f(o, matadors, hasMatadors) {
			return 1
		}
		return 0
	})
}

// Run samples (or, below threshold, exhaustively enumerates) the deals
// consistent with initial and observed, solves each on an independent
// worker, and returns every possible world's per-card CardOutcome
// (GameConclusion and exact yield). rng is only consulted when sampling is required.
func Run(ctx context.Context, initial sampler.ObservedInitialGameState, observed sampler.ObservedPlayedCards, cfg Config, rng *mathrand.Rand) (SampledWorldsData, error) {
	knowledge := sampler.FromObservation(initial, observed)
	worlds := sampler.New(knowledge, initial.GameType)

	allSamplesThreshold := cfg.AllSamplesThreshold
	if cfg.SampleSize > allSamplesThreshold {
		allSamplesThreshold = cfg.SampleSize
	}

	var deals []sampler.Deal
	if worlds.NumberOfPossibilities() <= allSamplesThreshold {
		deals = worlds.GetAllPossibilities()
	} else {
		deals = worlds.SampleMany(rng, cfg.SampleSize)
	}

	results := make([]PossibleWorldResult, len(deals))

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(deals) {
		workers = len(deals)
	}
	if workers == 0 {
		return SampledWorldsData{}, errors.New("montecarlo: no deal is compatible with the observations")
	}

	g, gctx := errgroup.WithContext(ctx)
	indices := make(chan int)
	go func() {
		defer close(indices)
		for i := range deals {
			select {
			case indices <- i:
			case <-gctx.Done():
				return
			}
		}
	}()

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range indices {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				results[i] = solveOneWorld(deals[i], initial, observed, cfg.Solver)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return SampledWorldsData{}, err
	}
	return SampledWorldsData{Results: results}, nil
}

// solveOneWorld replays observed against one fully-resolved deal, builds
// a fresh solver and transposition cache bound to that deal alone, and
// computes every currently-legal next card's resulting CardOutcome. This
// is the Go analogue of the source's TODO'd "final_declarer_yield_for_
// possible_plays analogue for game conclusions" — answered here by
// running both analyzer strategies (Conclusion and Yield) against the
// same per-deal solver for each card, rather than picking just one.
func solveOneWorld(deal sampler.Deal, initial sampler.ObservedInitialGameState, observed sampler.ObservedPlayedCards, cfg solver.Config) PossibleWorldResult {
	state := observed.ToOpenGameState(deal, initial.BiddingWinner, initial.GameType)

	keyFunc := solver.NewKeyFunc(deal.InitialSituation(initial.BiddingWinner))
	cache := solver.NewCache(keyFunc, false, cfg.DefenderUpperBound)
	s := solver.NewSolver(cache, initial.GameType, cfg)

	plays := analyzer.AnalyzeAllPossiblePlays(state.OpenSituation, initial.GameType, state.YieldSoFar,
		func(pos engine.OpenSituation, yieldSoFar engine.YieldSoFar) CardOutcome {
			return CardOutcome{
				Conclusion: analyzer.Conclusion(pos, yieldSoFar, s),
				Yield:      analyzer.Yield(pos, yieldSoFar, s),
			}
		})

	return PossibleWorldResult{
		Plays:       plays,
		Matadors:    state.Matadors,
		HasMatadors: state.HasMatadors,
		Weight:      1.0,
	}
}
