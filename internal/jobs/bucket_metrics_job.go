package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"freshcart/internal/core/application/usecases/queries"
	"freshcart/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// DefaultBucketMetricsSpec refreshes the gauge every thirty seconds.
const DefaultBucketMetricsSpec = "*/30 * * * * *"

type BucketCounter interface {
	Handle(ctx context.Context, query queries.GetBucketCountsQuery) ([]queries.BucketCount, error)
}

type BucketGauge interface {
	SetBucketCount(bucket order.Bucket, count int64)
}

// BucketMetricsJob periodically recounts stored orders per display bucket and
// publishes the result on the bucket gauge.
type BucketMetricsJob struct {
	counter BucketCounter
	gauge   BucketGauge
	spec    string
	timeout time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBucketMetricsJob uses a six field cron spec (with seconds). An empty spec
// falls back to DefaultBucketMetricsSpec.
func NewBucketMetricsJob(counter BucketCounter, gauge BucketGauge, spec string, logger *slog.Logger) *BucketMetricsJob {
	if spec == "" {
		spec = DefaultBucketMetricsSpec
	}
	return &BucketMetricsJob{
		counter: counter,
		gauge:   gauge,
		spec:    spec,
		timeout: 10 * time.Second,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "bucket_metrics_job"),
	}
}

// Start refreshes once immediately and then on every tick of the schedule.
func (j *BucketMetricsJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()

		if err := j.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Bucket metrics refresh failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.spec, err)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		if refreshErr := j.Refresh(ctx); refreshErr != nil {
			j.logger.WarnContext(ctx, "Initial bucket metrics refresh failed", "error", refreshErr)
		}
	}()

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Bucket metrics job started", "spec", j.spec)
	return nil
}

// Refresh runs one recount.
func (j *BucketMetricsJob) Refresh(ctx context.Context) error {
	counts, err := j.counter.Handle(ctx, queries.NewGetBucketCountsQuery())
	if err != nil {
		return err
	}

	for _, c := range counts {
		j.gauge.SetBucketCount(c.Bucket, c.Count)
	}
	return nil
}

// Stop waits for a running refresh to finish.
func (j *BucketMetricsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Bucket metrics job stopped")
}
