// Package ratetable reads rate tables from YAML into ordered quotes.
//
// A table is a mapping of 6-letter pairs to positive rates, either at the
// document root or under a top-level "rates" key:
//
//	rates:
//	  GELEGP: 5.1432
//	  EGPGMD: 3.3421
//
// The document is walked as a yaml.Node tree rather than decoded into a Go
// map, so the quotes come back in file order and a repeated key is passed on
// to core.FromQuotes, which rejects it with core.ErrDuplicateRate.
// Rates are parsed from the scalar text, never through float64.
package ratetable

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fxroute/core"
)

// ErrMalformedTable is returned when the document is not a pair → rate mapping.
var ErrMalformedTable = errors.New("ratetable: malformed rate table")

// ratesKey is the optional wrapper key around the mapping.
const ratesKey = "rates"

// Parse reads one YAML document from r and returns its quotes in file order.
//
// Errors:
//   - ErrMalformedTable for syntax errors, non-mapping documents or non-scalar entries.
//   - core.ErrInvalidPairFormat, core.ErrNonPositiveRate for bad rows (wrapped, with line number).
func Parse(r io.Reader) ([]core.Quote, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}

	table, err := tableNode(&doc)
	if err != nil {
		return nil, err
	}

	quotes := make([]core.Quote, 0, len(table.Content)/2)
	for i := 0; i+1 < len(table.Content); i += 2 {
		k, v := table.Content[i], table.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: entries must be scalar pair: rate", ErrMalformedTable, k.Line)
		}
		rate, err := decimal.NewFromString(v.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: rate %q for %s: %v", ErrMalformedTable, v.Line, v.Value, k.Value, err)
		}
		q, err := core.ParseQuote(k.Value, rate)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", k.Line, err)
		}
		quotes = append(quotes, q)
	}

	return quotes, nil
}

// LoadFile opens path and parses it with Parse.
func LoadFile(path string) ([]core.Quote, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ratetable: open %s: %w", path, err)
	}
	defer f.Close()

	quotes, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("ratetable: %s: %w", path, err)
	}

	return quotes, nil
}

// LoadGraph loads path and builds a graph with edges in file order.
func LoadGraph(path string) (*core.Graph, error) {
	quotes, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return core.FromQuotes(quotes)
}

// tableNode unwraps the document and an optional "rates" key down to the pair mapping.
func tableNode(doc *yaml.Node) (*yaml.Node, error) {
	n := doc
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return &yaml.Node{Kind: yaml.MappingNode}, nil
		}
		n = n.Content[0]
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: want a mapping of pair: rate", ErrMalformedTable, n.Line)
	}
	if len(n.Content) == 2 && n.Content[0].Value == ratesKey {
		inner := n.Content[1]
		if inner.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: line %d: %q must be a mapping", ErrMalformedTable, inner.Line, ratesKey)
		}
		return inner, nil
	}

	return n, nil
}
