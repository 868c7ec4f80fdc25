package queries

import (
	"context"
	"database/sql"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const orderSelect = `
	SELECT
		o.id,
		o.order_number,
		o.status,
		o.total_amount,
		o.payment_status,
		o.payment_method,
		o.created_at,
		o.updated_at,
		o.completed_at,
		c.id,
		c.display_name,
		c.picture_url
	FROM orders o
	JOIN customers c ON c.id = o.customer_id`

// loadOrders runs an orderSelect based query and attaches the items of every
// returned order with a second query.
func loadOrders(ctx context.Context, db *gorm.DB, query string, args ...any) ([]OrderView, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		view, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachItems(ctx, db, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func scanOrder(row scanner) (OrderView, error) {
	var (
		view                      OrderView
		orderID, customerID       uuid.UUID
		paymentMethod, pictureURL *string
	)
	err := row.Scan(
		&orderID,
		&view.OrderNumber,
		&view.Status,
		&view.TotalAmount,
		&view.PaymentStatus,
		&paymentMethod,
		&view.CreatedAt,
		&view.UpdatedAt,
		&view.CompletedAt,
		&customerID,
		&view.Customer.DisplayName,
		&pictureURL,
	)
	if err != nil {
		return OrderView{}, err
	}

	if view.ID, err = kernel.UUIDFrom(orderID); err != nil {
		return OrderView{}, err
	}
	if view.Customer.ID, err = kernel.UUIDFrom(customerID); err != nil {
		return OrderView{}, err
	}
	view.PaymentMethod = deref(paymentMethod)
	view.Customer.PictureURL = deref(pictureURL)
	view.Items = make([]OrderItemView, 0)
	return view, nil
}

func attachItems(ctx context.Context, db *gorm.DB, orders []OrderView) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	index := make(map[uuid.UUID]int, len(orders))
	for i, o := range orders {
		raw := o.ID.Bytes()
		ids = append(ids, raw)
		index[raw] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			oi.order_id,
			oi.id,
			oi.product_id,
			oi.product_name,
			oi.product_price,
			p.image_url,
			oi.quantity,
			oi.subtotal
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id IN ?
		ORDER BY oi.order_id, oi.position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item                     OrderItemView
			orderID, itemID, product uuid.UUID
			imageURL                 sql.NullString
		)
		err = rows.Scan(
			&orderID,
			&itemID,
			&product,
			&item.ProductName,
			&item.ProductPrice,
			&imageURL,
			&item.Quantity,
			&item.Subtotal,
		)
		if err != nil {
			return err
		}

		if item.ID, err = kernel.UUIDFrom(itemID); err != nil {
			return err
		}
		if item.ProductID, err = kernel.UUIDFrom(product); err != nil {
			return err
		}
		item.ProductImageURL = imageURL.String

		i := index[orderID]
		orders[i].Items = append(orders[i].Items, item)
	}

	return rows.Err()
}
