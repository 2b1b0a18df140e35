// Command skat replays an observed deal from a JSON input file and, at
// every decision point where it is the observer's turn to play, reports
// Monte Carlo statistics for each of their legal next cards.
//
// Its urfave/cli/v2 wiring follows the same shape as a single-command CLI
// app: step through the observed plays one card at a time, only invoking
// the Monte Carlo driver when the active seat is the one this observation
// was taken from.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"

	"github.com/bran/skat/internal/analyzer"
	"github.com/bran/skat/internal/contract"
	"github.com/bran/skat/internal/dto"
	"github.com/bran/skat/internal/montecarlo"
	"github.com/bran/skat/internal/sampler"
	"github.com/bran/skat/internal/stats"
	"github.com/bran/skat/internal/ui"
)

func main() {
	app := &cli.App{
		Name:  "skat",
		Usage: "Solve three-player open-situation Skat decisions by Monte Carlo sampling",
		Commands: []*cli.Command{
			{
				Name:      "file",
				Usage:     "Replay an observed deal from a JSON file",
				ArgsUsage: "<path> <iterations>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "output"},
					&cli.StringFlag{Name: "timing"},
					&cli.BoolFlag{Name: "interactive"},
				},
				Action: runFile,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runFile(c *cli.Context) error {
	path := c.Args().Get(0)
	iterationsArg := c.Args().Get(1)
	if path == "" || iterationsArg == "" {
		return cli.Exit("usage: skat file <path> <iterations>", 1)
	}

	var iterations int
	if _, err := fmt.Sscanf(iterationsArg, "%d", &iterations); err != nil || iterations <= 0 {
		return cli.Exit(fmt.Sprintf("invalid iteration count %q", iterationsArg), 1)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading %s: %v", path, err), 1)
	}

	observation, err := dto.Decode(data)
	if err != nil {
		return cli.Exit(fmt.Sprintf("parsing %s: %v", path, err), 1)
	}

	out := os.Stdout
	if outputPath := c.String("output"); outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return cli.Exit(fmt.Sprintf("creating %s: %v", outputPath, err), 1)
		}
		defer f.Close()
		out = f
	}

	cfg := montecarlo.DefaultConfig()
	cfg.SampleSize = iterations

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var nodeCounts []int
	var timings []time.Duration

	runDecision := func(initial sampler.ObservedInitialGameState, contractTerms contract.Contract, observed sampler.ObservedPlayedCards) error {
		start := time.Now()
		data, err := montecarlo.Run(c.Context, initial, observed, cfg, rng)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("solving decision: %w", err)
		}

		timings = append(timings, elapsed)
		nodeCounts = append(nodeCounts, len(data.Results))

		rows := tableRows(data, contractTerms)
		if c.Bool("interactive") {
			return runInteractive(rows)
		}

		fmt.Fprintln(out, ui.RenderTable(rows))
		return nil
	}

	if err := replay(observation, runDecision); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	fmt.Fprintln(out, "Analysis done.")

	if timingPath := c.String("timing"); timingPath != "" {
		f, err := os.Create(timingPath)
		if err != nil {
			return cli.Exit(fmt.Sprintf("creating %s: %v", timingPath, err), 1)
		}
		defer f.Close()
		if err := stats.WriteNodeTimingStats(nodeCounts, timings, f); err != nil {
			return cli.Exit(fmt.Sprintf("writing timing stats: %v", err), 1)
		}
	}

	return nil
}

// replay steps through the observed deal one played card at a time,
// invoking onDecision whenever it's the observer's turn to move, exactly
// as analyze_observations walks its turns iterator.
func replay(observation dto.Dto, onDecision func(sampler.ObservedInitialGameState, contract.Contract, sampler.ObservedPlayedCards) error) error {
	initial, contractTerms := observation.PreGameObservations()
	observed := sampler.InitialObservedPlayedCards()

	for _, next := range observation.PlayedCards() {
		if observed.ActiveRole() == initial.BiddingRole {
			if err := onDecision(initial, contractTerms, observed); err != nil {
				return err
			}
		}
		observed.ObservePlay(next, initial.GameType)
	}

	if observed.ActiveRole() == initial.BiddingRole {
		if err := onDecision(initial, contractTerms, observed); err != nil {
			return err
		}
	}

	return nil
}

// tableRows turns one decision point's SampledWorldsData into the
// output table rows: avg. card points, the five conclusion-probability
// columns (RenderTable itself drops whichever are non-informative), and
// the average contract score delta.
func tableRows(data montecarlo.SampledWorldsData, contractTerms contract.Contract) []ui.Row {
	avg := data.WeightedAverage(func(o montecarlo.CardOutcome, _ int, _ bool) float64 {
		return float64(o.Yield.Points)
	})
	notLostSchwarz := data.WeightedProbabilityOf(func(o montecarlo.CardOutcome, _ int, _ bool) bool {
		return o.Conclusion > analyzer.DeclarerIsSchwarz
	})
	notLostSchneider := data.WeightedProbabilityOf(func(o montecarlo.CardOutcome, _ int, _ bool) bool {
		return o.Conclusion > analyzer.DeclarerIsSchneider
	})
	won := data.WeightedProbabilityOf(func(o montecarlo.CardOutcome, _ int, _ bool) bool {
		return o.Conclusion.IsWon()
	})
	wonSchneider := data.WeightedProbabilityOf(func(o montecarlo.CardOutcome, _ int, _ bool) bool {
		return o.Conclusion >= analyzer.DefendersAreSchneider
	})
	wonSchwarz := data.WeightedProbabilityOf(func(o montecarlo.CardOutcome, _ int, _ bool) bool {
		return o.Conclusion >= analyzer.DefendersAreSchwarz
	})
	game := data.WeightedAverage(func(o montecarlo.CardOutcome, matadors int, hasMatadors bool) float64 {
		return float64(contractTerms.ScoreDelta(o.Conclusion, matadors, hasMatadors))
	})

	cardSlice := data.Cards().ToSlice()
	rows := make([]ui.Row, 0, len(cardSlice))
	for _, card := range cardSlice {
		rows = append(rows, ui.Row{
			Card:             card,
			Avg:              avg[card],
			NotLostSchwarz:   notLostSchwarz[card] * 100,
			NotLostSchneider: notLostSchneider[card] * 100,
			Won:              won[card] * 100,
			WonSchneider:     wonSchneider[card] * 100,
			WonSchwarz:       wonSchwarz[card] * 100,
			Game:             game[card],
		})
	}
	return rows
}

func runInteractive(rows []ui.Row) error {
	model := ui.NewModel()
	model.Update(ui.ResultMsg{Rows: rows})
	model.Update(ui.DoneMsg{})
	p := tea.NewProgram(model)
	_, err := p.Run()
	return err
}
