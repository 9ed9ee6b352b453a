package model

import (
	"fmt"
	"strconv"
	"strings"
)

// UnratedBand is the reserved band value matching only movies without an
// aggregate rating.
const UnratedBand = "unrated"

// RatingBand filters movies by aggregate rating. A numeric band is the
// inclusive range [Min,Max]; the unrated band matches absent aggregates
// only. The zero value is not meaningful, use ParseRatingBand.
type RatingBand struct {
	Min     float64
	Max     float64
	Unrated bool
}

// ParseRatingBand parses a band expression: "" means no filter (nil band),
// "unrated" is the reserved unrated band, anything else must be a
// hyphenated numeric range such as "8-10" or "5-7.9".
func ParseRatingBand(s string) (*RatingBand, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if s == UnratedBand {
		return &RatingBand{Unrated: true}, nil
	}
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return nil, fmt.Errorf("invalid rating band %q: expected min-max", s)
	}
	min, err := strconv.ParseFloat(lo, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid rating band %q: %w", s, err)
	}
	max, err := strconv.ParseFloat(hi, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid rating band %q: %w", s, err)
	}
	if min > max {
		return nil, fmt.Errorf("invalid rating band %q: min above max", s)
	}
	return &RatingBand{Min: min, Max: max}, nil
}

// Matches reports whether an aggregate rating falls inside the band.
// An absent aggregate never matches a numeric band, even one covering 0.
func (b *RatingBand) Matches(rating *float64) bool {
	if b.Unrated {
		return rating == nil
	}
	return rating != nil && *rating >= b.Min && *rating <= b.Max
}

// Query renders the band as the averagerating search parameter. The
// unrated band has no server-side form and renders empty.
func (b *RatingBand) Query() string {
	if b == nil || b.Unrated {
		return ""
	}
	return fmt.Sprintf("%s-%s",
		strconv.FormatFloat(b.Min, 'f', -1, 64),
		strconv.FormatFloat(b.Max, 'f', -1, 64))
}
