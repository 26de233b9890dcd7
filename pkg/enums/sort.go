package enums

import "fmt"

// SortField names the product attributes the catalog can order by.
type SortField string

const (
	SortFieldPrice     SortField = "price"
	SortFieldCreatedAt SortField = "createdAt"
	SortFieldSold      SortField = "sold"
	SortFieldRating    SortField = "rating"
)

var validSortFields = []SortField{
	SortFieldPrice,
	SortFieldCreatedAt,
	SortFieldSold,
	SortFieldRating,
}

// String implements fmt.Stringer.
func (f SortField) String() string {
	return string(f)
}

// IsValid reports whether the value is a known SortField.
func (f SortField) IsValid() bool {
	for _, candidate := range validSortFields {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseSortField converts raw input into a SortField.
func ParseSortField(value string) (SortField, error) {
	for _, candidate := range validSortFields {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort field %q", value)
}

// SortOrder is the direction of a catalog sort.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

var validSortOrders = []SortOrder{SortOrderAsc, SortOrderDesc}

// String implements fmt.Stringer.
func (o SortOrder) String() string {
	return string(o)
}

// IsValid reports whether the value is a known SortOrder.
func (o SortOrder) IsValid() bool {
	for _, candidate := range validSortOrders {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseSortOrder converts raw input into a SortOrder.
func ParseSortOrder(value string) (SortOrder, error) {
	for _, candidate := range validSortOrders {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort order %q", value)
}
