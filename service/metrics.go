package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	caseUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "minutasi_case_updates_total",
		Help: "Case record updates by resulting minutation status.",
	}, []string{"status"})

	summaryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "minutasi_summary_requests_total",
		Help: "Summary generation requests by result.",
	}, []string{"result"})

	summaryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "minutasi_summary_duration_seconds",
		Help:    "Latency of calls to the text-generation service.",
		Buckets: prometheus.DefBuckets,
	})

	scansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "minutasi_scans_total",
		Help: "Scans by outcome: completed, cancelled, failed.",
	}, []string{"outcome"})

	attachmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "minutasi_attachments_total",
		Help: "Uploaded decision documents by storage driver.",
	}, []string{"driver"})
)
