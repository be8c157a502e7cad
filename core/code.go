// File: code.go
// Role: Parsing and validation of currency codes, pair keys and quotes.
// Policy:
//   - Codes are exactly CodeLen ASCII uppercase letters; no trimming, no case folding.
//   - Every failure wraps a sentinel and names the offending input.

package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseCode validates s as a currency code.
// Returns ErrInvalidCode (wrapped) if s is not 3 uppercase ASCII letters.
func ParseCode(s string) (Code, error) {
	if !isCode(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCode, s)
	}

	return Code(s), nil
}

// ParsePair splits a 6-letter pair key such as "GELHKD" into its two codes.
//
// Errors:
//   - ErrInvalidPairFormat if len(pair) != 6 or either half is not a valid code.
//
// Complexity: O(1).
func ParsePair(pair string) (from, to Code, err error) {
	if len(pair) != 2*CodeLen {
		return "", "", fmt.Errorf("%w: %q has length %d, want %d", ErrInvalidPairFormat, pair, len(pair), 2*CodeLen)
	}
	f, t := pair[:CodeLen], pair[CodeLen:]
	if !isCode(f) || !isCode(t) {
		return "", "", fmt.Errorf("%w: %q is not two 3-letter uppercase codes", ErrInvalidPairFormat, pair)
	}

	return Code(f), Code(t), nil
}

// ParseQuote validates one rate-table row.
// Returns ErrInvalidPairFormat or ErrNonPositiveRate (wrapped).
func ParseQuote(pair string, rate decimal.Decimal) (Quote, error) {
	from, to, err := ParsePair(pair)
	if err != nil {
		return Quote{}, err
	}
	if !rate.IsPositive() {
		return Quote{}, fmt.Errorf("%w: %s = %s", ErrNonPositiveRate, pair, rate)
	}

	return Quote{From: from, To: to, Rate: rate}, nil
}

// isCode reports whether s is exactly CodeLen bytes in 'A'..'Z'.
func isCode(s string) bool {
	if len(s) != CodeLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}

	return true
}
