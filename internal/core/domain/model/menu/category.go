package menu

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Category classifies a menu item. The routing policy maps each category
// to exactly one preparation station.
type Category int

const (
	UnknownCategory Category = iota
	Food
	GeneralBeverage
	AlcoholicBeverage
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		UnknownCategory:   "unknown",
		Food:              "food",
		GeneralBeverage:   "general-beverage",
		AlcoholicBeverage: "alcoholic-beverage",
	}
}

func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // UnknownCategory is not a valid category
	return map[Category]string{
		Food:              "food",
		GeneralBeverage:   "general-beverage",
		AlcoholicBeverage: "alcoholic-beverage",
	}
}

// ParseCategory maps the wire name of a category back to its value.
func ParseCategory(s string) (Category, error) {
	for c, name := range getValidCategoryStrings() {
		if name == s {
			return c, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a known category", s))
}

func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

func (c Category) String() string {
	if s, ok := getCategoryStrings()[c]; ok {
		return s
	}
	return "unknown"
}
