package metric

import "github.com/prometheus/client_golang/prometheus"

const (
	HTTPRequestTotal           = "http_requests_total"
	HTTPRequestDurationSeconds = "http_request_duration_seconds"
	BadgeAwardTotal            = "badge_awards_total"
)

var (
	PromCounters = map[string]*prometheus.CounterVec{
		HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: HTTPRequestTotal,
			Help: "Count of all HTTP requests",
		}, []string{"method", "path"}),
		BadgeAwardTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: BadgeAwardTotal,
			Help: "Count of badge awards granted",
		}, []string{"badge"}),
	}

	PromHistograms = map[string]*prometheus.HistogramVec{
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: HTTPRequestDurationSeconds,
			Help: "Duration of all HTTP requests",
		}, []string{"method", "path"}),
	}
)

func Register(registerer prometheus.Registerer) {
	for _, counter := range PromCounters {
		registerer.MustRegister(counter)
	}

	for _, histogram := range PromHistograms {
		registerer.MustRegister(histogram)
	}
}
