package enums

import "fmt"

// Season captures a product's availability window.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
	// SeasonAll is the wildcard value that satisfies any season filter.
	SeasonAll Season = "all"
)

var validSeasons = []Season{
	SeasonSpring,
	SeasonSummer,
	SeasonAutumn,
	SeasonWinter,
	SeasonAll,
}

// String implements fmt.Stringer.
func (s Season) String() string {
	return string(s)
}

// IsValid reports whether the value is a known Season.
func (s Season) IsValid() bool {
	for _, candidate := range validSeasons {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSeason converts raw input into a Season.
func ParseSeason(value string) (Season, error) {
	for _, candidate := range validSeasons {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid season %q", value)
}
