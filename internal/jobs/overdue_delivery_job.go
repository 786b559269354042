package jobs

import (
	"context"
	"log/slog"
	"time"

	"purchasing/internal/core/application/usecases/queries"
	"purchasing/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// OverdueDeliveryJob watches for orders whose expected delivery date has
// passed while they are still open. Runs every minute and logs each overdue
// order so operations can chase the supplier.
type OverdueDeliveryJob struct {
	listOrders queries.ListOrdersQueryHandler
	cron       *cron.Cron
	logger     *slog.Logger
	now        func() time.Time
}

// NewOverdueDeliveryJob creates a job watching open orders past their
// delivery date.
func NewOverdueDeliveryJob(listOrders queries.ListOrdersQueryHandler, logger *slog.Logger) *OverdueDeliveryJob {
	return &OverdueDeliveryJob{
		listOrders: listOrders,
		cron:       cron.New(),
		logger:     logger.With("component", "overdue_delivery_job"),
		now:        time.Now,
	}
}

// Start begins the watch job, running once per minute.
func (j *OverdueDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Overdue delivery check failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue delivery job started (running every minute)")
	return nil
}

// Stop stops the watch job.
func (j *OverdueDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue delivery job stopped")
}

func (j *OverdueDeliveryJob) run(ctx context.Context) error {
	now := j.now()

	for _, status := range []order.Status{order.Pending, order.InProgress} {
		query, err := queries.NewListOrdersQuery().WithStatus(status)
		if err != nil {
			return err
		}

		orders, err := j.listOrders.Handle(ctx, query)
		if err != nil {
			return err
		}

		for _, o := range orders {
			if o.DeliveredAt == nil || o.DeliveredAt.After(now) {
				continue
			}
			j.logger.WarnContext(ctx, "Order past its delivery date",
				"order_id", o.ID,
				"supplier_id", o.SupplierID,
				"invoice_number", o.InvoiceNumber,
				"status", o.Status,
				"delivered_at", o.DeliveredAt,
			)
		}
	}

	return nil
}
