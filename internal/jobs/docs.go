// Package jobs provides scheduled background tasks for the food ordering
// service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds precision) and call
// application command handlers, so each run is one unit of work.
//
// # Available Jobs
//
//  1. ExpirePendingOrdersJob - every minute, cancels pending orders nobody
//     confirmed within PENDING_ORDER_TTL. Disabled when the TTL is 0.
//  2. PurgeStaleCartItemsJob - every hour, deletes cart lines untouched for
//     CART_RETENTION.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(expireHandler, purgeHandler, jobs.Config{
//		PendingOrderTTL: cfg.PendingOrderTTL,
//		CartRetention:   cfg.CartRetention,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and counted in metrics; the next tick retries.
// Overlapping runs are skipped. A failed start stops the jobs already running.
package jobs
