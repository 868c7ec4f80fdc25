package cartrepo

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/adapters/out/postgres/pgerrs"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const upsertSQL = `
INSERT INTO cart_items (id, customer_id, product_id, quantity, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (customer_id, product_id) DO UPDATE
SET quantity   = cart_items.quantity + EXCLUDED.quantity,
    updated_at = EXCLUDED.updated_at
RETURNING id, customer_id, product_id, quantity, created_at, updated_at`

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert inserts the line or, when the customer already has this product in
// the cart, adds the quantity to it. The returned item is the row as stored,
// so its id may differ from the one passed in.
func (r *GormCartRepository) Upsert(ctx context.Context, item *cart.Item) (*cart.Item, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	in := fromDomain(item)
	var out CartItemDTO
	err := r.db.WithContext(ctx).
		Raw(upsertSQL, in.ID, in.CustomerID, in.ProductID, in.Quantity, in.CreatedAt, in.UpdatedAt).
		Scan(&out).Error
	if err != nil {
		if pgerrs.IsForeignKeyViolation(err) {
			return nil, errs.NewObjectNotFoundErrorWithCause("cart item", pgerrs.ConstraintName(err), err)
		}
		if pgerrs.IsNumericOutOfRange(err) {
			return nil, errs.NewValueIsOutOfRangeErrorWithCause("quantity", in.Quantity, 1, cart.MaxQuantity, err)
		}
		return nil, err
	}

	stored, err := toDomain(out)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(stored.ID(), stored)
	return stored, nil
}

func (r *GormCartRepository) Update(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&CartItemDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"quantity":   dto.Quantity,
		"updated_at": dto.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cart item", item.ID().String())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

func (r *GormCartRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CartItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cart item", id.String())
	}
	return nil
}

func (r *GormCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CartItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindForUpdate takes a row lock on the line so that concurrent adds of the
// same product serialize on it.
func (r *GormCartRepository) FindForUpdate(ctx context.Context, customerID, productID kernel.UUID) (*cart.Item, error) {
	if err := errors.Join(customerID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	var dto CartItemDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("customer_id = ? AND product_id = ?", customerID.Bytes(), productID.Bytes()).
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart item", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormCartRepository) ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*cart.Item, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartItemDTO
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Order("created_at DESC").
		Order("id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormCartRepository) DeleteByCustomer(ctx context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&CartItemDTO{}, "customer_id = ?", customerID.Bytes()).Error
}

func (r *GormCartRepository) DeleteUpdatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&CartItemDTO{}, "updated_at < ?", cutoff)
	return result.RowsAffected, result.Error
}
