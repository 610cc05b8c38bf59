package types

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

var (
	whitespaceRun   = regexp.MustCompile(`\s+`)
	disallowedChars = regexp.MustCompile(`[^a-zA-Z0-9\s\-\[\]()]`)
)

// SanitizeName trims s, collapses internal whitespace to single spaces, and
// strips every character outside letters, digits, spaces, '-', '[', ']', '('
// and ')'. Case is preserved.
func SanitizeName(s string) string {
	s = strings.TrimSpace(s)
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = disallowedChars.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// NormalizeToken sanitizes s like SanitizeName and then case-folds it. IDs,
// menu choices and search fragments all pass through here.
func NormalizeToken(s string) string {
	return Fold(SanitizeName(s))
}

// Fold returns the case-folded form of s used for case-insensitive matching.
// A Caser holds state, so each call gets its own.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// ParsePrice parses a plain decimal string and rounds it to two places,
// half away from zero. Negative values return ErrNegativePrice.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrInvalidPrice
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegativePrice
	}
	return RoundPrice(d), nil
}

// RoundPrice rounds d to two decimal places, half away from zero.
func RoundPrice(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatPrice renders d in plain notation with exactly two decimals.
func FormatPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}
