package order

import (
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"
)

// Status is the kitchen lifecycle of an order.
//
//	pending ──> confirmed ──> preparing ──> ready ──> completed
//	   │            │             │           │
//	   └────────────┴─────────────┴───────────┴──────> cancelled
type Status string

const (
	Unknown   Status = ""
	Pending   Status = "pending"
	Confirmed Status = "confirmed"
	Preparing Status = "preparing"
	Ready     Status = "ready"
	Completed Status = "completed"
	Cancelled Status = "cancelled"
)

// flow is the normal progression of an order, used by Next.
var flow = []Status{Pending, Confirmed, Preparing, Ready, Completed}

var transitions = map[Status][]Status{
	Pending:   {Confirmed, Cancelled},
	Confirmed: {Preparing, Cancelled},
	Preparing: {Ready, Cancelled},
	Ready:     {Completed, Cancelled},
	Completed: {},
	Cancelled: {},
}

// Statuses returns every valid status in workflow order.
func Statuses() []Status {
	return []Status{Pending, Confirmed, Preparing, Ready, Completed, Cancelled}
}

// ParseStatus converts external input into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return s, nil
}

// Validate checks that s is one of the known statuses.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	if s == Unknown {
		return "unknown"
	}
	return string(s)
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether moving from s to target is allowed.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target if the move is allowed.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot change status from %s to %s", s, target),
		)
	}
	return target, nil
}

// Next returns the successor of s in the normal flow. The second result is
// false for cancelled, completed and unknown statuses.
func (s Status) Next() (Status, bool) {
	for i, st := range flow {
		if st == s && i+1 < len(flow) {
			return flow[i+1], true
		}
	}
	return Unknown, false
}
