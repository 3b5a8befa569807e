package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricListRequest    = "list_request"
	MetricListDuration   = "list_duration"
	MetricListMatched    = "list_matched"
	MetricExport         = "export"
	MetricActiveVehicles = "active_vehicles"
)

type PrometheusMetrics struct {
	listRequests   *prometheus.CounterVec
	listDuration   *prometheus.HistogramVec
	listMatched    *prometheus.GaugeVec
	exportsTotal   *prometheus.CounterVec
	activeVehicles prometheus.Gauge
}

// NewPrometheusMetrics registers the fleet metrics with registerer.
// A nil registerer uses the default registry.
func NewPrometheusMetrics(registerer prometheus.Registerer) MetricsRecorderInterface {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		listRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fleet_list_requests_total",
				Help: "Total number of entity list requests",
			},
			[]string{"entity", "status"},
		),
		listDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fleet_list_duration_seconds",
				Help:    "Entity list duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"entity"},
		),
		listMatched: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fleet_list_matched_records",
				Help: "Number of records matched by the last list request",
			},
			[]string{"entity"},
		),
		exportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fleet_export_total",
				Help: "Total number of list exports",
			},
			[]string{"entity", "format"},
		),
		activeVehicles: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "fleet_active_vehicles",
				Help: "Number of vehicles currently in active status",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	entity := tags["entity"]

	switch name {
	case MetricListRequest:
		if status := tags["status"]; status != "" {
			m.listRequests.WithLabelValues(entity, status).Inc()
		}
	case MetricExport:
		if format := tags["format"]; format != "" {
			m.exportsTotal.WithLabelValues(entity, format).Inc()
		}
	}
}

// RecordProcessingTime expects names of the form "list_duration:<entity>"
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	metric, entity := splitMetricName(name)
	if metric == MetricListDuration {
		m.listDuration.WithLabelValues(entity).Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricListMatched:
		m.listMatched.WithLabelValues(tags["entity"]).Set(value)
	case MetricActiveVehicles:
		m.activeVehicles.Set(value)
	}
}

func splitMetricName(name string) (string, string) {
	metric, entity, _ := strings.Cut(name, ":")
	return metric, entity
}

// durationMetric names the per-entity duration series
func durationMetric(entity string) string {
	return MetricListDuration + ":" + entity
}
