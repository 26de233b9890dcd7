package catalog

import (
	"strings"

	"github.com/KSunShin4/EcoMart/pkg/enums"
)

// Filter returns the subset of products matching every constrained dimension
// of f. Dimensions combine with AND; set-valued dimensions (Types, Seasons)
// match with OR within the set. The input slice is never mutated.
func Filter(products []Product, f Filters) []Product {
	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if Matches(p, f) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Matches reports whether a single product satisfies every constrained
// dimension of f.
func Matches(p Product, f Filters) bool {
	if f.CategoryID != nil && p.CategoryID != *f.CategoryID {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	// An empty set means the dimension is unconstrained, checked explicitly
	// so membership over an empty set cannot reject everything.
	if len(f.Types) > 0 && !containsType(f.Types, p.Type) {
		return false
	}
	if len(f.Seasons) > 0 && !matchesSeason(f.Seasons, p.Season) {
		return false
	}
	if f.Search != "" && !matchesSearch(p, f.Search) {
		return false
	}
	return true
}

func containsType(set []enums.ProductType, t enums.ProductType) bool {
	for _, candidate := range set {
		if candidate == t {
			return true
		}
	}
	return false
}

// matchesSeason treats SeasonAll as a wildcard that satisfies any season
// constraint.
func matchesSeason(set []enums.Season, s enums.Season) bool {
	if s == enums.SeasonAll {
		return true
	}
	for _, candidate := range set {
		if candidate == s {
			return true
		}
	}
	return false
}

// matchesSearch is a case-insensitive substring match over name, nameEn and
// tags. Not tokenized, not fuzzy.
func matchesSearch(p Product, query string) bool {
	needle := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.NameEn), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
