package enums

import "fmt"

// ProductType describes how a catalog item is preserved or handled.
type ProductType string

const (
	ProductTypeFresh  ProductType = "fresh"
	ProductTypeFrozen ProductType = "frozen"
	ProductTypeDried  ProductType = "dried"
	ProductTypeCanned ProductType = "canned"
	ProductTypeOther  ProductType = "other"
)

var validProductTypes = []ProductType{
	ProductTypeFresh,
	ProductTypeFrozen,
	ProductTypeDried,
	ProductTypeCanned,
	ProductTypeOther,
}

// String implements fmt.Stringer.
func (t ProductType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known ProductType.
func (t ProductType) IsValid() bool {
	for _, candidate := range validProductTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseProductType converts raw input into a ProductType.
func ParseProductType(value string) (ProductType, error) {
	for _, candidate := range validProductTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product type %q", value)
}
