package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	Namespace = "titan"
	Subsystem = "api"
)

type Manager struct {
	// counters
	CounterRequests       *prometheus.CounterVec
	CounterPlanSource     *prometheus.CounterVec
	CounterEstimateSource *prometheus.CounterVec
	CounterCoachFailures  prometheus.Counter

	// gauges
	GaugeRequests prometheus.Gauge

	// histograms
	HistRequestDuration prometheus.Histogram
}

// NewRegistry returns a registry with Go runtime and process collectors
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewTestManager() *Manager {
	return NewManager(Namespace, "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager(Namespace, "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterPlanSource := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "plans_generated",
		Help:      "Generated plans by source (ai or fallback)",
	}, []string{"source"})
	counterEstimateSource := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "food_estimates",
		Help:      "Food macro estimates by source (cache, ai or heuristic)",
	}, []string{"source"})
	counterCoachFailures := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "coach_failures",
		Help:      "Coach replies that could not be produced",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})

	histReqDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
			Name:      "request_duration_seconds",
			Help:      "Total duration of requests in seconds",
		},
	)

	return &Manager{
		CounterRequests:       counterRequests,
		CounterPlanSource:     counterPlanSource,
		CounterEstimateSource: counterEstimateSource,
		CounterCoachFailures:  counterCoachFailures,
		GaugeRequests:         gaugeRequests,
		HistRequestDuration:   histReqDuration,
	}
}
