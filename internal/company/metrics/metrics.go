package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the incorporation path.
type Metrics struct {
	IncorporationsSucceeded prometheus.Counter
	IncorporationsRejected  *prometheus.CounterVec
}

// New creates a Metrics instance registered on the default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates a Metrics instance registered on the given registerer.
// Tests pass a fresh registry to avoid duplicate-registration panics.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		IncorporationsSucceeded: factory.NewCounter(prometheus.CounterOpts{
			Name: "kaisha_incorporations_total",
			Help: "Total number of companies incorporated",
		}),
		IncorporationsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kaisha_incorporations_rejected_total",
			Help: "Total number of incorporation requests rejected, by error code",
		}, []string{"code"}),
	}
}

// IncrementIncorporated records a successful incorporation.
func (m *Metrics) IncrementIncorporated() {
	m.IncorporationsSucceeded.Inc()
}

// IncrementRejected records a rejected incorporation request by error code.
func (m *Metrics) IncrementRejected(code string) {
	m.IncorporationsRejected.WithLabelValues(code).Inc()
}
