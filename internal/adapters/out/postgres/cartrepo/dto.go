// Package cartrepo persists cart lines with GORM, including the
// insert-or-increment upsert on (customer_id, product_id).
package cartrepo

import (
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CartItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_cart_items_customer_product"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_cart_items_customer_product"`
	Quantity   int       `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime:false"`
}

func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(item *cart.Item) CartItemDTO {
	return CartItemDTO{
		ID:         item.ID().Bytes(),
		CustomerID: item.CustomerID().Bytes(),
		ProductID:  item.ProductID().Bytes(),
		Quantity:   item.Quantity(),
		CreatedAt:  item.CreatedAt(),
		UpdatedAt:  item.UpdatedAt(),
	}
}

func toDomain(dto CartItemDTO) (*cart.Item, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFrom(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFrom(dto.ProductID)
	if err != nil {
		return nil, err
	}

	return cart.RestoreItem(id, customerID, productID, dto.Quantity, dto.CreatedAt, dto.UpdatedAt)
}

func toDomainList(dtos []CartItemDTO) ([]*cart.Item, error) {
	items := make([]*cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
