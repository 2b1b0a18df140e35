// Package ui renders the Monte Carlo driver's per-card output table as a
// lipgloss-styled grid, and optionally drives a live-updating bubbletea
// view of it while sampling is still in progress. Uses the same bordered-
// box, JoinHorizontal/PlaceHorizontal layout idiom as a card-table
// visualization, generalized to a plain data grid.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bran/skat/internal/card"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3498DB"))
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C3E50"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#95A5A6"))
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3498DB")).
			Padding(0, 1)
)

// Row is one line of the output table: a legal next card, its average
// final card-point total for the declarer, the five optional
// probability-of-outcome percentages, and its average classical score
// delta.
type Row struct {
	Card card.Card
	Avg  float64

	// NotLostSchwarz, NotLostSchneider, Won, WonSchneider, and WonSchwarz
	// are the nlb/nls/w/ws/wb percentage columns.
	NotLostSchwarz   float64
	NotLostSchneider float64
	Won              float64
	WonSchneider     float64
	WonSchwarz       float64

	Game float64
}

const probabilityEpsilon = 0.005

// probabilityColumn names one of the five optional percentage columns
// and how to read it off a Row.
type probabilityColumn struct {
	header string
	value  func(Row) float64
}

var probabilityColumns = []probabilityColumn{
	{"nlb", func(r Row) float64 { return r.NotLostSchwarz }},
	{"nls", func(r Row) float64 { return r.NotLostSchneider }},
	{"w", func(r Row) float64 { return r.Won }},
	{"ws", func(r Row) float64 { return r.WonSchneider }},
	{"wb", func(r Row) float64 { return r.WonSchwarz }},
}

// isTrivial reports whether every row agrees on this column to within
// probabilityEpsilon: a column that never varies across the candidate
// cards carries no information about which card to prefer, so it is
// dropped.
func (pc probabilityColumn) isTrivial(rows []Row) bool {
	if len(rows) == 0 {
		return true
	}
	first := pc.value(rows[0])
	for _, r := range rows[1:] {
		if diff := pc.value(r) - first; diff > probabilityEpsilon || diff < -probabilityEpsilon {
			return false
		}
	}
	return true
}

// RenderTable renders rows as a bordered grid: one row per legal next
// card, sorted in the order given.
func RenderTable(rows []Row) string {
	var activeColumns []probabilityColumn
	for _, pc := range probabilityColumns {
		if !pc.isTrivial(rows) {
			activeColumns = append(activeColumns, pc)
		}
	}

	headers := make([]string, 0, 3+len(activeColumns))
	headers = append(headers, "card", "avg.")
	for _, pc := range activeColumns {
		headers = append(headers, pc.header)
	}
	headers = append(headers, "game")

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatRow(headerStyle, headers))

	if len(rows) == 0 {
		lines = append(lines, mutedStyle.Render("(no legal plays)"))
	}

	for _, r := range rows {
		cells := make([]string, 0, 3+len(activeColumns))
		cells = append(cells, r.Card.String(), fmt.Sprintf("%.2f", r.Avg))
		for _, pc := range activeColumns {
			cells = append(cells, fmt.Sprintf("%.1f%%", pc.value(r)))
		}
		cells = append(cells, fmt.Sprintf("%+.2f", r.Game))
		lines = append(lines, formatRow(cellStyle, cells))
	}

	return borderStyle.Render(strings.Join(lines, "\n"))
}

func formatRow(style lipgloss.Style, cells []string) string {
	rendered := make([]string, len(cells))
	for i, c := range cells {
		width := 6
		if i == 0 {
			width = 4
		}
		rendered[i] = style.Width(width).Align(lipgloss.Right).Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
