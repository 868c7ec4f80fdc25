// Package customerrepo persists storefront customers with GORM.
package customerrepo

import (
	"time"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CustomerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineUserID  string    `gorm:"uniqueIndex;not null"`
	DisplayName string    `gorm:"not null"`
	PictureURL  *string
	Nickname    *string
	IsActive    bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
	LastLoginAt *time.Time
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          c.ID().Bytes(),
		LineUserID:  c.LineUserID(),
		DisplayName: c.DisplayName(),
		PictureURL:  nullable(c.PictureURL()),
		Nickname:    nullable(c.Nickname()),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
		LastLoginAt: c.LastLoginAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id,
		customer.Profile{
			LineUserID:  dto.LineUserID,
			DisplayName: dto.DisplayName,
			PictureURL:  value(dto.PictureURL),
		},
		value(dto.Nickname),
		dto.IsActive,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.LastLoginAt,
	)
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
