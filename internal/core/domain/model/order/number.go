package order

import (
	"fmt"
	"regexp"
	"time"

	"foodorder/internal/pkg/errs"

	"github.com/oklog/ulid/v2"
)

var numberPattern = regexp.MustCompile(`^ORD-\d{8}-[0-9A-Z]{6}$`)

// Number is the human readable order reference printed on receipts,
// formatted as ORD-YYYYMMDD-XXXXXX.
type Number string

// NewNumber builds a number for an order placed at now. The suffix is the
// random tail of a ULID, so it is uppercase Crockford base32.
func NewNumber(now time.Time) Number {
	id := ulid.Make().String()
	return Number(fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), id[len(id)-6:]))
}

// ParseNumber accepts raw only when it has the ORD-YYYYMMDD-XXXXXX shape.
//
// Returns:
//   - Number: the parsed order number
//   - error: errs.ValueIsInvalidError when raw does not match the shape
func ParseNumber(raw string) (Number, error) {
	if !numberPattern.MatchString(raw) {
		return "", errs.NewValueIsInvalidErrorWithCause("orderNumber", fmt.Errorf("%q does not match ORD-YYYYMMDD-XXXXXX", raw))
	}
	return Number(raw), nil
}

func (n Number) String() string {
	return string(n)
}
