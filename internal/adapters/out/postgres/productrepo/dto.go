// Package productrepo persists the product aggregate with GORM.
package productrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO mirrors the products table. Optional attributes are NULL when unset.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:255;not null"`
	Description *string
	Price       int64 `gorm:"not null"`
	ImageURL    *string
	Category    *string
	IsActive    bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID().Bytes(),
		Name:        p.Name(),
		Description: nullable(p.Description()),
		Price:       p.Price().Yen(),
		ImageURL:    nullable(p.ImageURL()),
		Category:    nullable(p.Category().String()),
		IsActive:    p.IsActive(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, product.Details{
		Name:        dto.Name,
		Description: value(dto.Description),
		Price:       dto.Price,
		ImageURL:    value(dto.ImageURL),
		Category:    product.Category(value(dto.Category)),
		IsActive:    dto.IsActive,
	}, dto.CreatedAt, dto.UpdatedAt)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
