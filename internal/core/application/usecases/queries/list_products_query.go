package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/product"
	"foodorder/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListMenuProductsQuery or NewListAllProductsQuery",
)

// ListProductsQuery lists products, optionally of one category.
//
// The menu variant returns only active products, oldest first, the order in
// which the shop arranged its menu. The back-office variant returns every
// product, newest first.
type ListProductsQuery struct {
	category        product.Category
	includeInactive bool

	guard guard.ConstructorGuard
}

// NewListMenuProductsQuery accepts an empty category for "all categories".
// Unknown categories are rejected.
func NewListMenuProductsQuery(rawCategory string) (ListProductsQuery, error) {
	return newListProductsQuery(rawCategory, false)
}

func NewListAllProductsQuery(rawCategory string) (ListProductsQuery, error) {
	return newListProductsQuery(rawCategory, true)
}

func newListProductsQuery(rawCategory string, includeInactive bool) (ListProductsQuery, error) {
	category, err := product.ParseCategory(rawCategory)
	if err != nil {
		return ListProductsQuery{}, err
	}
	return ListProductsQuery{
		category:        category,
		includeInactive: includeInactive,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

func (q ListProductsQuery) Category() product.Category { return q.category }
func (q ListProductsQuery) IncludeInactive() bool       { return q.includeInactive }
