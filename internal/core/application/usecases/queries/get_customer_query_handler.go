package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetCustomerQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle returns the customer's profile. Deactivated customers get
// customer.ErrCustomerIsInactive.
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerView, error) {
	if err := query.Validate(); err != nil {
		return CustomerView{}, err
	}

	var (
		view                 CustomerView
		id                   uuid.UUID
		pictureURL, nickname *string
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			line_user_id,
			display_name,
			picture_url,
			nickname,
			is_active,
			created_at,
			updated_at,
			last_login_at
		FROM customers
		WHERE id = ?
	`, query.CustomerID().Bytes()).Row().Scan(
		&id,
		&view.LineUserID,
		&view.DisplayName,
		&pictureURL,
		&nickname,
		&view.IsActive,
		&view.CreatedAt,
		&view.UpdatedAt,
		&view.LastLoginAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return CustomerView{}, errs.NewObjectNotFoundError("customer", query.CustomerID().String())
	}
	if err != nil {
		return CustomerView{}, err
	}

	if !view.IsActive {
		return CustomerView{}, customer.ErrCustomerIsInactive
	}

	if view.ID, err = kernel.UUIDFrom(id); err != nil {
		return CustomerView{}, err
	}
	view.PictureURL = deref(pictureURL)
	view.Nickname = deref(nickname)
	return view, nil
}
