package ens

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/ensagent/domain"
)

const (
	SecondsPerDay   = 24 * 60 * 60
	SecondsPerMonth = 30 * SecondsPerDay
	SecondsPerYear  = 365 * SecondsPerDay
)

var (
	durationRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)([ymd])$`)

	unitSeconds = map[string]int64{
		"y": SecondsPerYear,
		"m": SecondsPerMonth,
		"d": SecondsPerDay,
	}
)

// DefaultDuration is one year in seconds
func DefaultDuration() *big.Int {
	return big.NewInt(SecondsPerYear)
}

// ParseDuration accepts "1y", "6m", "30d", fractional amounts or raw seconds
func ParseDuration(input string) (*big.Int, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return nil, false
	}

	if m := durationRe.FindStringSubmatch(s); m != nil {
		amount, err := decimal.NewFromString(m[1])
		if err != nil {
			return nil, false
		}
		secs := amount.Mul(decimal.NewFromInt(unitSeconds[m[2]])).Floor()
		if !secs.IsPositive() {
			return nil, false
		}
		return secs.BigInt(), true
	}

	raw, err := decimal.NewFromString(s)
	if err != nil || !raw.IsPositive() {
		return nil, false
	}
	secs := raw.Floor()
	if !secs.IsPositive() {
		return nil, false
	}
	return secs.BigInt(), true
}

// ParseDurationOrDefault falls back to DefaultDuration when input is empty or invalid
func ParseDurationOrDefault(input string) *big.Int {
	if d, ok := ParseDuration(input); ok {
		return d
	}
	return DefaultDuration()
}

// DurationParam is the duration of a request, empty means DefaultDuration and anything unparsable is INVALID_PARAM
func DurationParam(input string) (*big.Int, error) {
	if strings.TrimSpace(input) == "" {
		return DefaultDuration(), nil
	}
	d, ok := ParseDuration(input)
	if !ok {
		return nil, domain.NewError(domain.KindInvalidParam, "invalid duration %q, use e.g. 1y, 6m, 30d or seconds", input)
	}
	return d, nil
}
