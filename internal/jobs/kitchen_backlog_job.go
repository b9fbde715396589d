package jobs

import (
	"context"
	"log/slog"

	"myfood/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultKitchenBacklogSchedule runs the report every minute, on the minute.
const DefaultKitchenBacklogSchedule = "0 * * * * *"

type kitchenOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetKitchenOrdersQuery) ([]queries.OrderProjection, error)
}

// KitchenBacklogJob periodically logs how many confirmed orders the kitchen
// still has to prepare.
type KitchenBacklogJob struct {
	handler  kitchenOrdersHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewKitchenBacklogJob creates the job. schedule is a six-field cron
// expression (with seconds); an empty schedule uses DefaultKitchenBacklogSchedule.
func NewKitchenBacklogJob(handler kitchenOrdersHandler, schedule string, logger *slog.Logger) *KitchenBacklogJob {
	if schedule == "" {
		schedule = DefaultKitchenBacklogSchedule
	}
	return &KitchenBacklogJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "kitchen_backlog_job"),
	}
}

// Start registers the report with the scheduler and starts it.
func (j *KitchenBacklogJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.report(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen backlog job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *KitchenBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Kitchen backlog job stopped")
}

func (j *KitchenBacklogJob) report(ctx context.Context) {
	orders, err := j.handler.Handle(ctx, queries.NewGetKitchenOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Kitchen backlog job failed", "error", err)
		return
	}

	pending := 0
	for _, o := range orders {
		if !o.Maked {
			pending++
		}
	}
	j.logger.InfoContext(ctx, "Kitchen backlog", "confirmed", len(orders), "pending", pending)
}
