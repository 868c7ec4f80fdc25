package commands

import (
	"errors"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrPurgeStaleCartItemsCommandIsNotConstructed = errors.New(
	"PurgeStaleCartItemsCommand must be created via NewPurgeStaleCartItemsCommand constructor",
)

// PurgeStaleCartItemsCommand drops cart lines untouched for the retention.
type PurgeStaleCartItemsCommand struct {
	retention time.Duration

	guard guard.ConstructorGuard
}

func NewPurgeStaleCartItemsCommand(retention time.Duration) (PurgeStaleCartItemsCommand, error) {
	if retention <= 0 {
		return PurgeStaleCartItemsCommand{}, errs.NewValueIsOutOfRangeError("retention", retention, "1ns", "unbounded")
	}
	return PurgeStaleCartItemsCommand{retention: retention, guard: guard.NewConstructorGuard()}, nil
}

func (c *PurgeStaleCartItemsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeStaleCartItemsCommandIsNotConstructed)
}

func (c *PurgeStaleCartItemsCommand) Retention() time.Duration { return c.retention }
