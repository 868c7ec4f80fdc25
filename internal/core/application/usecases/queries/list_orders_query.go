package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	DefaultOrderPageSize = 50
	MaxOrderPageSize     = 200
)

var ErrListOrdersQueryIsNotConstructed = errors.New("ListOrdersQuery must be created via NewListOrdersQuery")

// ListOrdersQuery pages through all orders, newest first, optionally
// filtered by status.
type ListOrdersQuery struct {
	status order.Status
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery builds a page request. An empty status lists every
// order and a zero limit means DefaultOrderPageSize.
func NewListOrdersQuery(rawStatus string, limit, offset int) (ListOrdersQuery, error) {
	var status order.Status
	if rawStatus != "" {
		parsed, err := order.ParseStatus(rawStatus)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		status = parsed
	}

	if limit == 0 {
		limit = DefaultOrderPageSize
	}
	if limit < 1 || limit > MaxOrderPageSize {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxOrderPageSize)
	}
	if offset < 0 {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}

	return ListOrdersQuery{
		status: status,
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Status() order.Status { return q.status }
func (q ListOrdersQuery) Limit() int           { return q.limit }
func (q ListOrdersQuery) Offset() int          { return q.offset }
