package commands

import (
	"errors"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// DefaultExpireBatchSize bounds how many orders one run cancels.
const DefaultExpireBatchSize = 100

var ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
	"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
)

// ExpirePendingOrdersCommand cancels orders nobody confirmed within olderThan.
type ExpirePendingOrdersCommand struct {
	olderThan time.Duration
	batchSize int

	guard guard.ConstructorGuard
}

func NewExpirePendingOrdersCommand(olderThan time.Duration, batchSize int) (ExpirePendingOrdersCommand, error) {
	if olderThan <= 0 {
		return ExpirePendingOrdersCommand{}, errs.NewValueIsOutOfRangeError("olderThan", olderThan, "1ns", "unbounded")
	}
	if batchSize <= 0 {
		batchSize = DefaultExpireBatchSize
	}
	return ExpirePendingOrdersCommand{
		olderThan: olderThan,
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c *ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}

func (c *ExpirePendingOrdersCommand) OlderThan() time.Duration { return c.olderThan }
func (c *ExpirePendingOrdersCommand) BatchSize() int           { return c.batchSize }
