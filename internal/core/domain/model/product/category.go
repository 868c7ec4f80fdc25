package product

import (
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"

	"golang.org/x/text/unicode/norm"
)

// Category groups menu items on the storefront. The empty Category means
// "uncategorized".
type Category string

const (
	NoCategory Category = ""
	Burger     Category = "バーガー"
	Side       Category = "サイド"
	Drink      Category = "飲み物"
)

// Categories lists the valid categories in menu order.
func Categories() []Category {
	return []Category{Burger, Side, Drink}
}

// ParseCategory maps raw input onto a Category. Half-width katakana and
// surrounding spaces are tolerated.
func ParseCategory(raw string) (Category, error) {
	normalized := norm.NFKC.String(strings.TrimSpace(raw))
	if normalized == "" {
		return NoCategory, nil
	}
	for _, c := range Categories() {
		if string(c) == normalized {
			return c, nil
		}
	}

	names := make([]string, 0, len(Categories()))
	for _, c := range Categories() {
		names = append(names, string(c))
	}
	return NoCategory, errs.NewValueIsInvalidErrorWithCause(
		"category",
		fmt.Errorf("%q is not one of %s", raw, strings.Join(names, ", ")),
	)
}

// String returns the category label.
func (c Category) String() string {
	return string(c)
}

// IsSet reports whether the product is categorized.
func (c Category) IsSet() bool {
	return c != NoCategory
}
