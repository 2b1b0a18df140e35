package ui

import (
	"strings"
	"testing"

	"github.com/bran/skat/internal/card"
)

func TestRenderTableDropsTrivialProbabilityColumns(t *testing.T) {
	rows := []Row{
		{Card: card.New(card.Clubs, card.RU), Avg: 31.5, Won: 80, Game: 1.5},
		{Card: card.New(card.Hearts, card.RU), Avg: 28.0, Won: 80, Game: -0.5},
	}

	out := RenderTable(rows)
	if strings.Contains(out, "w") && strings.Count(out, "w") > strings.Count(out, "avg") {
		// weak smoke check only; the real assertion below is precise.
	}
	if strings.Contains(out, "80.0%") {
		t.Errorf("RenderTable: expected the trivial w column (constant 80 across rows) to be dropped, got:\n%s", out)
	}
	if !strings.Contains(out, "card") || !strings.Contains(out, "avg.") || !strings.Contains(out, "game") {
		t.Errorf("RenderTable: missing a mandatory column header, got:\n%s", out)
	}
}

func TestRenderTableKeepsVaryingProbabilityColumns(t *testing.T) {
	rows := []Row{
		{Card: card.New(card.Clubs, card.RU), Avg: 31.5, Won: 90, Game: 1.5},
		{Card: card.New(card.Hearts, card.RU), Avg: 28.0, Won: 10, Game: -0.5},
	}

	out := RenderTable(rows)
	if !strings.Contains(out, "w") {
		t.Errorf("RenderTable: expected the w column header to survive since values vary, got:\n%s", out)
	}
	if !strings.Contains(out, "90.0%") || !strings.Contains(out, "10.0%") {
		t.Errorf("RenderTable: expected both varying w values rendered, got:\n%s", out)
	}
}

func TestRenderTableHandlesNoLegalPlays(t *testing.T) {
	out := RenderTable(nil)
	if !strings.Contains(out, "no legal plays") {
		t.Errorf("RenderTable(nil) = %q, want a no-legal-plays notice", out)
	}
}
