package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Purchase Metrics
var (
	PurchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchasesTotal,
			Help: HelpTextPurchasesTotal,
		},
		[]string{LabelOutcome},
	)

	PurchaseDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNamePurchaseDuration,
			Help:    HelpTextPurchaseDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelOutcome},
	)

	PointsDeductionAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePointsDeductionAttempts,
			Help: HelpTextPointsDeductionAttempts,
		},
		[]string{LabelResult},
	)

	ReconciliationGaps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReconciliationGaps,
			Help: HelpTextReconciliationGaps,
		},
		[]string{LabelReason},
	)

	StaleClaimsFlagged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStaleClaimsFlagged,
			Help: HelpTextStaleClaimsFlagged,
		},
	)
)

// Inventory Metrics
var (
	ItemsEquipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsEquipped,
			Help: HelpTextItemsEquipped,
		},
	)

	InventoryGrants = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInventoryGrantsTotal,
			Help: HelpTextInventoryGrantsTotal,
		},
		[]string{LabelResult},
	)
)

// Auth Metrics
var (
	TokenCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTokenCacheLookups,
			Help: HelpTextTokenCacheLookups,
		},
		[]string{LabelResult},
	)
)
