package customerrepo

import (
	"context"
	"errors"
	"fmt"

	"foodorder/internal/adapters/out/postgres/pgerrs"
	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a customer. A second customer for the same LINE account is
// reported as errs.ConflictError, which happens when two first logins race.
// The conflict is resolved with ON CONFLICT DO NOTHING so the surrounding
// transaction stays usable and the caller can read the winning row.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "line_user_id"}}, DoNothing: true}).
		Create(&dto)
	if result.Error != nil {
		if pgerrs.IsUniqueViolation(result.Error) {
			return errs.NewConflictError("lineUserId", result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("lineUserId", fmt.Errorf("line user %s already registered", aggregate.LineUserID()))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"display_name":  dto.DisplayName,
		"picture_url":   dto.PictureURL,
		"nickname":      dto.Nickname,
		"is_active":     dto.IsActive,
		"updated_at":    dto.UpdatedAt,
		"last_login_at": dto.LastLoginAt,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormCustomerRepository) FindByLineUserID(ctx context.Context, lineUserID string) (*customer.Customer, error) {
	if lineUserID == "" {
		return nil, errs.NewValueIsRequiredError("lineUserId")
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "line_user_id = ?", lineUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lineUserId", lineUserID)
		}
		return nil, err
	}

	return toDomain(dto)
}
