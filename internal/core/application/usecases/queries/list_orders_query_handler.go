package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler serves the back-office order board.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (OrderPage, error) {
	if err := query.Validate(); err != nil {
		return OrderPage{}, err
	}

	where := ""
	var args []any
	if query.Status() != "" {
		where = " WHERE o.status = ?"
		args = append(args, string(query.Status()))
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders o"+where, args...).
		Scan(&total).Error; err != nil {
		return OrderPage{}, err
	}

	orders, err := loadOrders(ctx, h.db,
		orderSelect+where+" ORDER BY o.created_at DESC, o.id LIMIT ? OFFSET ?",
		append(args, query.Limit(), query.Offset())...,
	)
	if err != nil {
		return OrderPage{}, err
	}

	return OrderPage{
		Orders: orders,
		Total:  total,
		Limit:  query.Limit(),
		Offset: query.Offset(),
	}, nil
}
