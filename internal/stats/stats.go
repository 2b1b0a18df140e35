// Package stats holds the small numeric summaries behind the CLI's
// optional --timing report: mean, median, and max over a batch of
// per-deal solver measurements.
package stats

import (
	"fmt"
	"io"
	"sort"
	"time"
)

// WriteNodeTimingStats reports, in order, the distribution of nodes
// analyzed per deal (in thousands) and time spent per deal (in
// milliseconds), followed by the mean duration per node across the
// whole batch.
func WriteNodeTimingStats(nodes []int, times []time.Duration, w io.Writer) error {
	if len(nodes) != len(times) {
		return fmt.Errorf("stats: %d node counts but %d durations", len(nodes), len(times))
	}

	nodesOf1000 := make([]float64, len(nodes))
	for i, n := range nodes {
		nodesOf1000[i] = float64(n) / 1000
	}

	timesOfMS := make([]float64, len(times))
	for i, t := range times {
		timesOfMS[i] = float64(t.Microseconds()) / 1000
	}

	if err := writeStats("Number of 1000 nodes", nodesOf1000, w); err != nil {
		return err
	}
	if err := writeStats("Time spent in ms", timesOfMS, w); err != nil {
		return err
	}

	meanTimeOfS := mean(timesOfMS) / 1000
	meanNodes := mean(nodesOf1000) * 1000

	var meanDurationPerNode time.Duration
	if meanNodes != 0 {
		meanDurationPerNode = time.Duration(meanTimeOfS / meanNodes * float64(time.Second))
	}

	_, err := fmt.Fprintf(w, "Mean duration per node: %s\n", meanDurationPerNode)
	return err
}

func mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2] + sorted[n/2-1]) / 2
	}
	return sorted[n/2]
}

func writeStats(name string, data []float64, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s:\n", name); err != nil {
		return err
	}
	if len(data) == 0 {
		_, err := fmt.Fprintln(w, "\t(no samples)")
		return err
	}

	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	if _, err := fmt.Fprintf(w, "\tmean: %.0f\n", mean(sorted)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\tmedian: %.0f\n", median(sorted)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\tmax: %.0f\n", sorted[len(sorted)-1])
	return err
}
