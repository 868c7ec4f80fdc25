package jobs

import (
	"context"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	purgeStaleCartItemsJobName  = "purge_stale_cart_items"
	purgeStaleCartItemsSchedule = "0 0 * * * *"
)

type purgeStaleCartItemsHandler interface {
	Handle(ctx context.Context, cmd commands.PurgeStaleCartItemsCommand) (int64, error)
}

// PurgeStaleCartItemsJob deletes abandoned cart lines.
type PurgeStaleCartItemsJob struct {
	handler   purgeStaleCartItemsHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *zap.Logger
}

func NewPurgeStaleCartItemsJob(
	handler purgeStaleCartItemsHandler,
	retention time.Duration,
	logger *zap.Logger,
) *PurgeStaleCartItemsJob {
	logger = logger.With(zap.String("component", purgeStaleCartItemsJobName))
	return &PurgeStaleCartItemsJob{
		handler:   handler,
		retention: retention,
		cron:      newCron(logger),
		logger:    logger,
	}
}

// Start schedules the job at the top of every hour.
func (j *PurgeStaleCartItemsJob) Start() error {
	if j.retention <= 0 {
		j.logger.Info("cart purge disabled")
		return nil
	}

	_, err := j.cron.AddFunc(purgeStaleCartItemsSchedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("job started", zap.String("schedule", purgeStaleCartItemsSchedule), zap.Duration("retention", j.retention))
	return nil
}

func (j *PurgeStaleCartItemsJob) Run(ctx context.Context) {
	started := time.Now()

	cmd, err := commands.NewPurgeStaleCartItemsCommand(j.retention)
	if err != nil {
		j.logger.Error("build command", zap.Error(err))
		metrics.JobRun(purgeStaleCartItemsJobName, false, time.Since(started))
		return
	}

	deleted, err := j.handler.Handle(ctx, cmd)
	metrics.JobRun(purgeStaleCartItemsJobName, err == nil, time.Since(started))
	if err != nil {
		j.logger.Error("purge stale cart items", zap.Error(err))
		return
	}
	if deleted > 0 {
		j.logger.Info("purged stale cart items", zap.Int64("deleted", deleted))
	}
}

func (j *PurgeStaleCartItemsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("job stopped")
}
