package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTP - request duration by route, method and status code.
type HTTP struct {
	duration *prometheus.HistogramVec
}

func NewHTTP(reg prometheus.Registerer) *HTTP {
	that := &HTTP{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Time spent serving HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "code"}),
	}

	reg.MustRegister(that.duration)

	return that
}

func (that *HTTP) Observe(route, method string, code int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}

	that.duration.WithLabelValues(route, method, strconv.Itoa(code)).Observe(elapsed.Seconds())
}
