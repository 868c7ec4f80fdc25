// Package orderrepo maps the order aggregate onto the orders and order_items
// tables.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is one row of orders. Items are written together with the order
// and never updated afterwards.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber   string    `gorm:"uniqueIndex;not null"`
	CustomerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Status        string    `gorm:"not null"`
	TotalAmount   int64     `gorm:"not null"`
	PaymentStatus string    `gorm:"not null"`
	PaymentMethod *string
	CreatedAt     time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false"`
	CompletedAt   *time.Time
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO snapshots a product at checkout. ProductID deliberately has no
// foreign key.
type OrderItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Position     int       `gorm:"not null"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null"`
	ProductName  string    `gorm:"not null"`
	ProductPrice int64     `gorm:"not null"`
	Quantity     int       `gorm:"not null"`
	Subtotal     int64     `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var method *string
	if m := o.PaymentMethod(); m != "" {
		method = &m
	}

	items := o.Items()
	dtos := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		dtos = append(dtos, OrderItemDTO{
			ID:           item.ID().Bytes(),
			OrderID:      o.ID().Bytes(),
			Position:     i,
			ProductID:    item.ProductID().Bytes(),
			ProductName:  item.ProductName(),
			ProductPrice: item.UnitPrice().Yen(),
			Quantity:     item.Quantity(),
			Subtotal:     item.Subtotal().Yen(),
		})
	}

	return OrderDTO{
		ID:            o.ID().Bytes(),
		OrderNumber:   o.Number().String(),
		CustomerID:    o.CustomerID().Bytes(),
		Status:        string(o.Status()),
		TotalAmount:   o.TotalAmount().Yen(),
		PaymentStatus: string(o.PaymentStatus()),
		PaymentMethod: method,
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		CompletedAt:   o.CompletedAt(),
		Items:         dtos,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFrom(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var method string
	if dto.PaymentMethod != nil {
		method = *dto.PaymentMethod
	}

	return order.RestoreOrder(
		id,
		order.Number(dto.OrderNumber),
		customerID,
		order.Status(dto.Status),
		total,
		order.PaymentStatus(dto.PaymentStatus),
		method,
		items,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.CompletedAt,
	)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return order.Item{}, err
	}
	productID, err := kernel.UUIDFrom(dto.ProductID)
	if err != nil {
		return order.Item{}, err
	}
	price, err := kernel.NewMoney(dto.ProductPrice)
	if err != nil {
		return order.Item{}, err
	}
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(id, productID, dto.ProductName, price, dto.Quantity, subtotal)
}
