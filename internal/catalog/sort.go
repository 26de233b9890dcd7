package catalog

import (
	"sort"

	"github.com/KSunShin4/EcoMart/pkg/enums"
)

// SortProducts returns a new slice ordered by the requested field and
// direction. The sort is stable: products that compare equal keep their
// relative input order. The input slice is never mutated.
//
// Timestamps that failed to parse upstream arrive as the zero time.Time;
// they compare equal to each other and order before every valid timestamp
// in ascending order.
func SortProducts(products []Product, s Sort) []Product {
	ordered := make([]Product, len(products))
	copy(ordered, products)

	less := lessFunc(s.Field)
	if less == nil {
		return ordered
	}

	if s.Order == enums.SortOrderDesc {
		inner := less
		less = func(a, b Product) bool { return inner(b, a) }
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return less(ordered[i], ordered[j])
	})
	return ordered
}

func lessFunc(field enums.SortField) func(a, b Product) bool {
	switch field {
	case enums.SortFieldPrice:
		return func(a, b Product) bool { return a.Price < b.Price }
	case enums.SortFieldCreatedAt:
		return func(a, b Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case enums.SortFieldSold:
		return func(a, b Product) bool { return a.Sold < b.Sold }
	case enums.SortFieldRating:
		return func(a, b Product) bool { return a.Rating < b.Rating }
	default:
		return nil
	}
}
