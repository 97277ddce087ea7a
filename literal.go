package main

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// literalPrefixes are checked in order; the first match selects the base.
var literalPrefixes = []struct {
	prefix string
	base   int
}{
	{"0x", 16}, {"x", 16},
	{"0o", 8}, {"o", 8},
	{"0b", 2}, {"b", 2},
}

// parseLiteral parses a numeric token:
//
//	[sign] [prefix] digits
//
// The sign is an optional '-' or '+'. Prefixes are lowercase only, while hex
// digits may be in either case. Signs after the prefix and '_' digit
// separators are rejected.
func parseLiteral(token string) (int64, error) {
	digits, neg := token, false
	if len(digits) > 0 {
		switch digits[0] {
		case '-':
			digits, neg = digits[1:], true
		case '+':
			digits = digits[1:]
		}
	}

	base := 10
	for _, lp := range literalPrefixes {
		if strings.HasPrefix(digits, lp.prefix) {
			digits, base = digits[len(lp.prefix):], lp.base
			break
		}
	}

	mag, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &NumberFormatError{token, base, err}
	}

	if neg {
		if mag > -math.MinInt64 {
			return 0, &NumberFormatError{token, base, strconv.ErrRange}
		}
		return -int64(mag), nil
	}
	if mag > math.MaxInt64 {
		return 0, &NumberFormatError{token, base, strconv.ErrRange}
	}
	return int64(mag), nil
}
