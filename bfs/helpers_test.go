package bfs_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/fxroute/core"
)

// synth maps i in [0, 26³) to a distinct three-letter code: 0→AAA, 1→AAB, …
func synth(i int) core.Code {
	b := []byte{'A' + byte(i/676%26), 'A' + byte(i/26%26), 'A' + byte(i%26)}
	return core.Code(b)
}

// graphOf builds a graph from pair keys in the given order, every rate 1.
func graphOf(tb testing.TB, pairs ...string) *core.Graph {
	tb.Helper()
	quotes := make([]core.Quote, 0, len(pairs))
	for _, p := range pairs {
		q, err := core.ParseQuote(p, decimal.NewFromInt(1))
		if err != nil {
			tb.Fatalf("bad pair %q: %v", p, err)
		}
		quotes = append(quotes, q)
	}
	g, err := core.FromQuotes(quotes)
	if err != nil {
		tb.Fatalf("FromQuotes: %v", err)
	}

	return g
}

// chain builds synth(0)→synth(1)→…→synth(n).
func chain(tb testing.TB, n int) *core.Graph {
	tb.Helper()
	pairs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, string(synth(i))+string(synth(i+1)))
	}

	return graphOf(tb, pairs...)
}

// sampleGraph builds the sixteen-pair reference table.
func sampleGraph(tb testing.TB) *core.Graph {
	tb.Helper()
	g, err := core.Build(map[string]decimal.Decimal{
		"EGPGMD": decimal.RequireFromString("3.3421"),
		"EGPSVC": decimal.RequireFromString("0.5566"),
		"SEKGHS": decimal.RequireFromString("0.6644"),
		"SEKHKD": decimal.RequireFromString("0.8307"),
		"IDREGP": decimal.RequireFromString("0.0011"),
		"GHSHKD": decimal.RequireFromString("1.2504"),
		"GMDJMD": decimal.RequireFromString("2.9725"),
		"GMDCRC": decimal.RequireFromString("12.1763"),
		"GELEGP": decimal.RequireFromString("5.1432"),
		"GELIDR": decimal.RequireFromString("4692.8022"),
		"CRCTOP": decimal.RequireFromString("0.0036"),
		"CRCSEK": decimal.RequireFromString("0.0146"),
		"SVCGMD": decimal.RequireFromString("6.005"),
		"RUBSEK": decimal.RequireFromString("0.1207"),
		"TOPRUB": decimal.RequireFromString("34.1588"),
		"JMDCRC": decimal.RequireFromString("4.0963"),
	})
	if err != nil {
		tb.Fatalf("Build: %v", err)
	}

	return g
}
