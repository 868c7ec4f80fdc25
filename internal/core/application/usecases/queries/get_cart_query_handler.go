package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler prices the cart at current product prices. Lines whose
// quantity dropped to zero are not shown.
type GetCartQueryHandler struct {
	db *gorm.DB
}

func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartView, error) {
	if err := query.Validate(); err != nil {
		return CartView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ci.id,
			p.id,
			p.name,
			p.description,
			p.image_url,
			p.category,
			p.price,
			ci.quantity,
			ci.created_at,
			ci.updated_at
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.customer_id = ? AND ci.quantity > 0
		ORDER BY ci.created_at DESC, ci.id DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return CartView{}, err
	}
	defer rows.Close()

	cart := CartView{Items: make([]CartLineView, 0)}
	for rows.Next() {
		var (
			line                            CartLineView
			lineID, productID               uuid.UUID
			description, imageURL, category *string
		)
		err = rows.Scan(
			&lineID,
			&productID,
			&line.ProductName,
			&description,
			&imageURL,
			&category,
			&line.Price,
			&line.Quantity,
			&line.CreatedAt,
			&line.UpdatedAt,
		)
		if err != nil {
			return CartView{}, err
		}

		if line.ID, err = kernel.UUIDFrom(lineID); err != nil {
			return CartView{}, err
		}
		if line.ProductID, err = kernel.UUIDFrom(productID); err != nil {
			return CartView{}, err
		}
		line.ProductDescription = deref(description)
		line.ProductImageURL = deref(imageURL)
		line.ProductCategory = deref(category)
		line.Subtotal = line.Price * int64(line.Quantity)

		cart.TotalAmount += line.Subtotal
		cart.Items = append(cart.Items, line)
	}

	if err = rows.Err(); err != nil {
		return CartView{}, err
	}

	cart.ItemCount = len(cart.Items)
	return cart, nil
}
