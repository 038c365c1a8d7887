// Package jobs provides scheduled background tasks for the order service.
//
// Jobs use github.com/robfig/cron/v3 with seconds enabled.
//
// # Available Jobs
//
// BucketMetricsJob recounts stored orders per display bucket (processing,
// under_delivery, completed, cancelled) and sets the freshcart_orders_by_bucket
// gauge. Its schedule comes from METRICS_CRON and defaults to every thirty
// seconds.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewBucketMetricsJob(bucketCountsHandler, appMetrics, cfg.MetricsCron, logger),
//	)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and the gauge keeps its previous values. A job
// that fails to start stops the jobs started before it.
package jobs
