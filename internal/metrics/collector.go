package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds all Prometheus metrics for the core operations.
type Collector struct {
	operationsTotal  *prometheus.CounterVec
	operationErrors  *prometheus.CounterVec
	operationLatency prometheus.Histogram
	scheduledOnDay   prometheus.Gauge
}

// NewCollector creates and registers all core operation metrics.
func NewCollector() *Collector {
	return &Collector{
		operationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "capstone_operations_total",
				Help: "Total number of core operations, by operation name",
			},
			[]string{"operation"},
		),
		operationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "capstone_operation_errors_total",
				Help: "Total number of failed core operations, by operation name",
			},
			[]string{"operation"},
		),
		operationLatency: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "capstone_operation_latency_ms",
				Help:    "Latency of core operations in milliseconds",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
			},
		),
		scheduledOnDay: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "capstone_last_checked_day_defense_count",
				Help: "Defense count observed by the most recent day-capacity check",
			},
		),
	}
}

// ObserveOperation records one completed operation with its outcome and
// latency.
func (c *Collector) ObserveOperation(operation string, start time.Time, err error) {
	c.operationsTotal.WithLabelValues(operation).Inc()
	if err != nil {
		c.operationErrors.WithLabelValues(operation).Inc()
	}
	c.operationLatency.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
}

// SetDayDefenseCount records the defense count seen by a capacity check.
func (c *Collector) SetDayDefenseCount(count int) {
	c.scheduledOnDay.Set(float64(count))
}
