package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetProductQueryHandler struct {
	db *gorm.DB
}

func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle returns the product whether or not it is on sale.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductView, error) {
	if err := query.Validate(); err != nil {
		return ProductView{}, err
	}

	row := h.db.WithContext(ctx).Raw(
		"SELECT"+productColumns+" FROM products WHERE id = ?",
		query.ProductID().Bytes(),
	).Row()

	view, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ProductView{}, errs.NewObjectNotFoundError("product", query.ProductID().String())
	}
	return view, err
}
