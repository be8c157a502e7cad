package core_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fxroute/core"
)

// sampleRates is the sixteen-pair table used across the package tests.
func sampleRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
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
	}
}

// quote builds a Quote from a pair key and a decimal literal, failing the test on bad input.
func quote(t *testing.T, pair, rate string) core.Quote {
	t.Helper()
	q, err := core.ParseQuote(pair, decimal.RequireFromString(rate))
	require.NoError(t, err)

	return q
}

// mustBuild builds the sample graph.
func mustBuild(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.Build(sampleRates())
	require.NoError(t, err)

	return g
}
