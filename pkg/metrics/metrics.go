package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	covidEstimator = "covid19_estimator"

	// Estimation metrics
	estimationsTotal       = "estimations_total"
	validationFailureTotal = "validation_failures_total"

	// Access log metrics
	accessLogWriteErrorsTotal = "access_log_write_errors_total"
	accessLogSizeBytes        = "access_log_size_bytes"

	// Labels
	formatLabel = "format"
)

var estimationsTotalLabels = []string{
	formatLabel,
}

/**
* Metrics definition
**/
var estimationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: covidEstimator,
		Name:      estimationsTotal,
		Help:      "number of estimations served, partitioned by response format",
	},
	estimationsTotalLabels,
)

var validationFailuresTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: covidEstimator,
		Name:      validationFailureTotal,
		Help:      "number of estimation requests rejected as invalid input",
	},
)

var accessLogWriteErrorsTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: covidEstimator,
		Name:      accessLogWriteErrorsTotal,
		Help:      "number of access log lines that could not be written",
	},
)

var accessLogSizeBytesMetric = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Subsystem: covidEstimator,
		Name:      accessLogSizeBytes,
		Help:      "size of the access log file in bytes",
	},
)

func IncreaseEstimationsTotalMetric(format string) {
	labels := prometheus.Labels{
		formatLabel: format,
	}
	estimationsTotalMetric.With(labels).Inc()
}

func IncreaseValidationFailuresTotalMetric() {
	validationFailuresTotalMetric.Inc()
}

func IncreaseAccessLogWriteErrorsTotalMetric() {
	accessLogWriteErrorsTotalMetric.Inc()
}

func UpdateAccessLogSizeMetric(size int64) {
	accessLogSizeBytesMetric.Set(float64(size))
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(estimationsTotalMetric)
	prometheus.MustRegister(validationFailuresTotalMetric)
	prometheus.MustRegister(accessLogWriteErrorsTotalMetric)
	prometheus.MustRegister(accessLogSizeBytesMetric)
}
