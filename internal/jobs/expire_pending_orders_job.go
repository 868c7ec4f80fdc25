package jobs

import (
	"context"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/pkg/logging"
	"foodorder/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	expirePendingOrdersJobName  = "expire_pending_orders"
	expirePendingOrdersSchedule = "0 * * * * *"
)

type expirePendingOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.ExpirePendingOrdersCommand) (int, error)
}

// ExpirePendingOrdersJob cancels pending orders older than the configured TTL.
type ExpirePendingOrdersJob struct {
	handler expirePendingOrdersHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *zap.Logger
}

func NewExpirePendingOrdersJob(
	handler expirePendingOrdersHandler,
	ttl time.Duration,
	logger *zap.Logger,
) *ExpirePendingOrdersJob {
	logger = logger.With(zap.String("component", expirePendingOrdersJobName))
	return &ExpirePendingOrdersJob{
		handler: handler,
		ttl:     ttl,
		cron:    newCron(logger),
		logger:  logger,
	}
}

// Start schedules the job every minute. A zero TTL leaves it unscheduled.
func (j *ExpirePendingOrdersJob) Start() error {
	if j.ttl <= 0 {
		j.logger.Info("pending order expiry disabled")
		return nil
	}

	_, err := j.cron.AddFunc(expirePendingOrdersSchedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("job started", zap.String("schedule", expirePendingOrdersSchedule), zap.Duration("ttl", j.ttl))
	return nil
}

// Run executes one pass.
func (j *ExpirePendingOrdersJob) Run(ctx context.Context) {
	started := time.Now()

	cmd, err := commands.NewExpirePendingOrdersCommand(j.ttl, commands.DefaultExpireBatchSize)
	if err != nil {
		j.logger.Error("build command", zap.Error(err))
		metrics.JobRun(expirePendingOrdersJobName, false, time.Since(started))
		return
	}

	cancelled, err := j.handler.Handle(ctx, cmd)
	metrics.JobRun(expirePendingOrdersJobName, err == nil, time.Since(started))
	if err != nil {
		j.logger.Error("expire pending orders", zap.Error(err))
		return
	}
	if cancelled > 0 {
		j.logger.Info("expired pending orders", zap.Int("cancelled", cancelled))
	}
}

func (j *ExpirePendingOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("job stopped")
}

func newCron(logger *zap.Logger) *cron.Cron {
	cronLogger := cron.PrintfLogger(logging.NewPrintfAdapter(logger))
	return cron.New(
		cron.WithSeconds(),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)
}
