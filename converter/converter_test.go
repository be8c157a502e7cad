package converter_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fxroute/config"
	"github.com/katalvlaran/fxroute/converter"
	"github.com/katalvlaran/fxroute/core"
	"github.com/katalvlaran/fxroute/route"
)

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

func TestFindRateAndRoute_GELHKD(t *testing.T) {
	rate, path, err := converter.FindRateAndRoute("GELHKD", sampleRates())
	require.NoError(t, err)
	require.Equal(t, "GEL EGP GMD CRC SEK HKD", path)
	require.Equal(t, "2.53843039379185890192", rate.String())
	require.Equal(t, "2.54", rate.StringFixed(2))
}

func TestFindRateAndRoute_Identity(t *testing.T) {
	rate, path, err := converter.FindRateAndRoute("SEKSEK", sampleRates())
	require.NoError(t, err)
	require.Equal(t, "SEK", path)
	require.True(t, rate.Equal(decimal.NewFromInt(1)))
}

func TestFindRateAndRoute_Errors(t *testing.T) {
	rates := sampleRates()

	_, _, err := converter.FindRateAndRoute("GELHK", rates)
	require.ErrorIs(t, err, core.ErrInvalidPairFormat)

	_, _, err = converter.FindRateAndRoute("USDHKD", rates)
	require.ErrorIs(t, err, core.ErrUnknownCurrency)

	_, _, err = converter.FindRateAndRoute("GELUSD", rates)
	require.ErrorIs(t, err, core.ErrUnknownCurrency)

	rate, path, err := converter.FindRateAndRoute("HKDGEL", rates)
	require.ErrorIs(t, err, route.ErrNoRouteFound)
	require.Empty(t, path)
	require.True(t, rate.IsZero())

	bad := sampleRates()
	bad["GELUSD"] = decimal.Zero
	_, _, err = converter.FindRateAndRoute("GELHKD", bad)
	require.ErrorIs(t, err, core.ErrNonPositiveRate)
}

// TestFindRateAndRoute_Deterministic expects byte-identical output across runs.
func TestFindRateAndRoute_Deterministic(t *testing.T) {
	rate0, path0, err := converter.FindRateAndRoute("GELRUB", sampleRates())
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		rate, path, err := converter.FindRateAndRoute("GELRUB", sampleRates())
		require.NoError(t, err)
		require.Equal(t, path0, path)
		require.Equal(t, rate0.String(), rate.String())
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := converter.New(nil)
	require.Error(t, err)

	g, err := core.Build(sampleRates())
	require.NoError(t, err)

	_, err = converter.New(g, converter.WithCache(0))
	require.ErrorIs(t, err, converter.ErrOptionViolation)

	_, err = converter.New(g, converter.WithMaxHops(-1))
	require.ErrorIs(t, err, converter.ErrOptionViolation)
}

func TestConverter_MaxHops(t *testing.T) {
	c, err := converter.NewFromTable(sampleRates(), converter.WithMaxHops(4))
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Convert(context.Background(), "GELHKD")
	require.ErrorIs(t, err, route.ErrNoRouteFound)

	r, err := c.Convert(context.Background(), "GELSEK")
	require.NoError(t, err)
	require.Equal(t, 4, r.Hops())
}

func TestConverter_Cancelled(t *testing.T) {
	c, err := converter.NewFromTable(sampleRates())
	require.NoError(t, err)
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Convert(ctx, "GELHKD")
	require.ErrorIs(t, err, context.Canceled)
}

func TestConverter_ConvertAll(t *testing.T) {
	c, err := converter.NewFromTable(sampleRates())
	require.NoError(t, err)
	defer c.Close()

	pairs := []string{"GELHKD", "EGPCRC", "TOPHKD", "IDRIDR", "GELRUB"}
	routes, err := c.ConvertAll(context.Background(), pairs)
	require.NoError(t, err)
	require.Len(t, routes, len(pairs))
	for i, p := range pairs {
		require.Equal(t, p, string(routes[i].Source)+string(routes[i].Destination), "order of %s", p)
	}
	require.Equal(t, "GEL EGP GMD CRC SEK HKD", routes[0].String())

	_, err = c.ConvertAll(context.Background(), []string{"GELHKD", "HKDGEL"})
	require.ErrorIs(t, err, route.ErrNoRouteFound)
	require.Contains(t, err.Error(), "HKDGEL")
}

// TestConverter_ConvertAllReportsLowestIndex expects the same error on every run
// when several pairs fail.
func TestConverter_ConvertAllReportsLowestIndex(t *testing.T) {
	c, err := converter.NewFromTable(sampleRates())
	require.NoError(t, err)
	defer c.Close()

	for i := 0; i < 20; i++ {
		_, err = c.ConvertAll(context.Background(), []string{"GELHKD", "USDEUR", "HKDGEL", "GELHK"})
		require.ErrorIs(t, err, core.ErrUnknownCurrency)
		require.Contains(t, err.Error(), "USDEUR")

		_, err = c.ConvertAll(context.Background(), []string{"GELHK", "HKDGEL", "USDEUR"})
		require.ErrorIs(t, err, core.ErrInvalidPairFormat)
		require.Contains(t, err.Error(), "GELHK")
	}
}

// TestConverter_ConcurrentLookups checks that parallel lookups on one graph
// agree with a sequential baseline.
func TestConverter_ConcurrentLookups(t *testing.T) {
	c, err := converter.NewFromTable(sampleRates(), converter.WithCache(64))
	require.NoError(t, err)
	defer c.Close()

	codes := c.Graph().Codes()
	want := make(map[string]string)
	for _, from := range codes {
		for _, to := range codes {
			r, err := c.Lookup(context.Background(), from, to)
			if err != nil {
				want[string(from)+string(to)] = "error"
				continue
			}
			want[string(from)+string(to)] = r.String() + "@" + r.Rate.String()
		}
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var mismatches []string
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pair, expected := range want {
				r, err := c.Convert(context.Background(), pair)
				got := "error"
				if err == nil {
					got = r.String() + "@" + r.Rate.String()
				}
				if got != expected {
					mu.Lock()
					mismatches = append(mismatches, fmt.Sprintf("%s: %s != %s", pair, got, expected))
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()
	require.Empty(t, mismatches)
}

// TestConverter_TraceLogging verifies the frontier is traced at trace level only.
func TestConverter_TraceLogging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)

	c, err := converter.NewFromTable(sampleRates(), converter.WithLogger(logger))
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Convert(context.Background(), "GELEGP")
	require.NoError(t, err)

	var enqueues int
	var resolved *logrus.Entry
	for _, e := range hook.AllEntries() {
		switch e.Message {
		case "frontier enqueue":
			enqueues++
		case "route resolved":
			resolved = e
		}
	}
	require.Positive(t, enqueues)
	require.NotNil(t, resolved)
	require.Equal(t, "GEL EGP", resolved.Data["route"])
	require.Equal(t, "5.1432", resolved.Data["rate"])

	hook.Reset()
	logger.SetLevel(logrus.DebugLevel)
	_, err = c.Convert(context.Background(), "GELEGP")
	require.NoError(t, err)
	for _, e := range hook.AllEntries() {
		require.NotEqual(t, "frontier enqueue", e.Message)
	}
}

func TestConverter_FailureLogged(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	c, err := converter.NewFromTable(sampleRates(), converter.WithLogger(logger))
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Convert(context.Background(), "HKDGEL")
	require.ErrorIs(t, err, route.ErrNoRouteFound)

	last := hook.LastEntry()
	require.NotNil(t, last)
	require.Equal(t, "route not resolved", last.Message)
	require.True(t, errors.Is(last.Data[logrus.ErrorKey].(error), route.ErrNoRouteFound))
}

func TestNewFromConfig(t *testing.T) {
	_, err := converter.NewFromConfig(&config.Config{})
	require.ErrorIs(t, err, converter.ErrNoRates)

	dir := t.TempDir()
	rates := filepath.Join(dir, "rates.yaml")
	require.NoError(t, os.WriteFile(rates, []byte("rates:\n  USDEUR: 0.92\n  EURGBP: 0.85\n"), 0o600))

	cfg := config.Default()
	cfg.Rates.File = rates
	cfg.Log.Level = "error"
	cfg.Cache = config.Cache{Enabled: true, MaxItems: 16}

	c, err := converter.NewFromConfig(&cfg)
	require.NoError(t, err)
	defer c.Close()

	r, err := c.Convert(context.Background(), "USDGBP")
	require.NoError(t, err)
	require.Equal(t, "USD EUR GBP", r.String())
	require.Equal(t, "0.782", r.Rate.String())
}
