package jobs

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Config carries the job intervals from the service configuration.
type Config struct {
	PendingOrderTTL time.Duration
	CartRetention   time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	expirePendingOrdersJob *ExpirePendingOrdersJob
	purgeStaleCartItemsJob *PurgeStaleCartItemsJob
}

func NewJobManager(
	expireHandler expirePendingOrdersHandler,
	purgeHandler purgeStaleCartItemsHandler,
	cfg Config,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		expirePendingOrdersJob: NewExpirePendingOrdersJob(expireHandler, cfg.PendingOrderTTL, logger),
		purgeStaleCartItemsJob: NewPurgeStaleCartItemsJob(purgeHandler, cfg.CartRetention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.expirePendingOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start expire pending orders job: %w", err)
	}

	if err := jm.purgeStaleCartItemsJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.expirePendingOrdersJob.Stop()
		return fmt.Errorf("failed to start purge stale cart items job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.purgeStaleCartItemsJob.Stop()
	jm.expirePendingOrdersJob.Stop()
}
