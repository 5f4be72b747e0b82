package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OversellReportJob periodically scans inventory for negative stock counters
// and notifies admins about every oversold product. Oversold stock only
// exists when the oversell policy is enabled, so a quiet run is the norm.
type OversellReportJob struct {
	products ports.ProductRepository
	notifier ports.Notifier
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOversellReportJob creates a job reporting oversold products to admins.
func NewOversellReportJob(
	products ports.ProductRepository,
	notifier ports.Notifier,
	logger *slog.Logger,
) *OversellReportJob {
	return &OversellReportJob{
		products: products,
		notifier: notifier,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "oversell_report_job"),
	}
}

// Start begins the oversell report job to run every minute.
func (j *OversellReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		oversold, err := j.products.GetAllOversold(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Oversell report job failed", "error", err)
			return
		}

		if len(oversold) == 0 {
			return
		}

		lines := make([]string, 0, len(oversold))
		for _, p := range oversold {
			lines = append(lines, fmt.Sprintf("%s is oversold by %d units", p.Name(), -p.CurrentStock()))
		}

		j.notifier.NotifyAdmins(ctx, fmt.Sprintf(
			"Oversell report: %d product(s) need restocking. %s",
			len(oversold), strings.Join(lines, "; ")))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Oversell report job started (running every minute)")
	return nil
}

// Stop stops the oversell report job.
func (j *OversellReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Oversell report job stopped")
}
