package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/KSunShin4/EcoMart/internal/catalog"
	"github.com/KSunShin4/EcoMart/pkg/enums"
	pkgerrors "github.com/KSunShin4/EcoMart/pkg/errors"
	"github.com/KSunShin4/EcoMart/pkg/pagination"
)

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min, "max": max})
	}
	return value, nil
}

func ParseQueryFloat(r *http.Request, key string) (*float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	return &value, nil
}

// ParsePagination reads page and limit, leaving zero values for the service
// layer to normalize.
func ParsePagination(r *http.Request) (pagination.Params, error) {
	page, err := ParseQueryInt(r, "page", 0, 0, 1_000_000)
	if err != nil {
		return pagination.Params{}, err
	}
	limit, err := ParseQueryInt(r, "limit", 0, 0, pagination.MaxLimit)
	if err != nil {
		return pagination.Params{}, err
	}
	return pagination.Params{Page: page, Limit: limit}, nil
}

// ParseProductFilters builds engine filters from storefront query parameters.
// Repeated or comma separated values widen the type and season dimensions.
func ParseProductFilters(r *http.Request) (catalog.Filters, error) {
	var filters catalog.Filters

	if raw := strings.TrimSpace(r.URL.Query().Get("categoryId")); raw != "" {
		filters.CategoryID = &raw
	}

	minPrice, err := ParseQueryFloat(r, "minPrice")
	if err != nil {
		return catalog.Filters{}, err
	}
	maxPrice, err := ParseQueryFloat(r, "maxPrice")
	if err != nil {
		return catalog.Filters{}, err
	}
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		return catalog.Filters{}, pkgerrors.New(pkgerrors.CodeValidation, "minPrice cannot exceed maxPrice")
	}
	filters.MinPrice = minPrice
	filters.MaxPrice = maxPrice

	for _, raw := range splitMulti(r.URL.Query()["type"]) {
		parsed, err := enums.ParseProductType(raw)
		if err != nil {
			return catalog.Filters{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product type").WithDetails(map[string]any{"field": "type"})
		}
		filters.Types = append(filters.Types, parsed)
	}

	for _, raw := range splitMulti(r.URL.Query()["season"]) {
		parsed, err := enums.ParseSeason(raw)
		if err != nil {
			return catalog.Filters{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid season").WithDetails(map[string]any{"field": "season"})
		}
		filters.Seasons = append(filters.Seasons, parsed)
	}

	filters.Search = SanitizeString(r.URL.Query().Get("search"), 120)

	return filters, nil
}

// ParseSort reads the sortBy and order parameters. Absent values fall back
// to newest first.
func ParseSort(r *http.Request) (catalog.Sort, error) {
	sort := catalog.Sort{Field: enums.SortFieldCreatedAt, Order: enums.SortOrderDesc}

	if raw := strings.TrimSpace(r.URL.Query().Get("sortBy")); raw != "" {
		field, err := enums.ParseSortField(raw)
		if err != nil {
			return catalog.Sort{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort field").WithDetails(map[string]any{"field": "sortBy"})
		}
		sort.Field = field
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("order")); raw != "" {
		order, err := enums.ParseSortOrder(raw)
		if err != nil {
			return catalog.Sort{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort order").WithDetails(map[string]any{"field": "order"})
		}
		sort.Order = order
	}
	return sort, nil
}

func splitMulti(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
