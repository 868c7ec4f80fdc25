package queries

import (
	"context"
	"strings"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const productColumns = `
	id,
	name,
	description,
	price,
	image_url,
	category,
	is_active,
	created_at,
	updated_at`

// ListProductsQueryHandler reads products for the menu and the back office.
//
// Example:
//
//	query, err := NewListMenuProductsQuery(c.QueryParam("category"))
//	if err != nil {
//	    return err // 400: unknown category
//	}
//	products, err := handler.Handle(ctx, query)
type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if !query.IncludeInactive() {
		where = append(where, "is_active = TRUE")
	}
	if query.Category().IsSet() {
		where = append(where, "category = ?")
		args = append(args, query.Category().String())
	}

	sql := "SELECT" + productColumns + " FROM products"
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	if query.IncludeInactive() {
		sql += " ORDER BY created_at DESC, id"
	} else {
		sql += " ORDER BY created_at ASC, id"
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductView, 0)
	for rows.Next() {
		view, scanErr := scanProduct(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		products = append(products, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (ProductView, error) {
	var (
		view                            ProductView
		id                              uuid.UUID
		description, imageURL, category *string
	)
	err := row.Scan(
		&id,
		&view.Name,
		&description,
		&view.Price,
		&imageURL,
		&category,
		&view.IsActive,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return ProductView{}, err
	}

	productID, err := kernel.UUIDFrom(id)
	if err != nil {
		return ProductView{}, err
	}
	view.ID = productID
	view.Description = deref(description)
	view.ImageURL = deref(imageURL)
	view.Category = deref(category)
	return view, nil
}
