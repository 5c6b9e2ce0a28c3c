package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transactionsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transactions_created_total",
			Help: "Total number of transactions created, by category",
		},
		[]string{"category"},
	)

	csvExportsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "csv_exports_total",
			Help: "Total number of CSV exports generated",
		},
	)

	csvExportRows = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "csv_export_rows",
			Help:    "Number of rows per CSV export",
			Buckets: prometheus.ExponentialBuckets(1, 10, 6),
		},
	)

	analyticsRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_requests_total",
			Help: "Total number of analytics computations",
		},
	)

	analyticsDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analytics_duration_seconds",
			Help:    "Analytics aggregation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
