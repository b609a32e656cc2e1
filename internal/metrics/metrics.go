package metrics

import (
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "numroute"

type Outcome string

const (
	OutcomeFresh       Outcome = "fresh"
	OutcomeCache       Outcome = "cache"
	OutcomeFallback    Outcome = "fallback"
	OutcomeUnavailable Outcome = "unavailable"
)

// Recorder holds the service collectors. A nil *Recorder records nothing.
type Recorder struct {
	responses *prometheus.CounterVec
	picks     *prometheus.CounterVec
	attempts  *prometheus.HistogramVec
}

func NewRecorder(registerer prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "phone_responses_total",
			Help:      "Phone responses by fallback tier",
		}, []string{"outcome"}),
		picks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "phone_picks_total",
			Help:      "Fresh numbers by upstream, agency and source",
		}, []string{"upstream", "agency_id", "source"}),
		attempts: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_attempt_duration_seconds",
			Help:      "Duration of single upstream attempts",
			Buckets:   []float64{.05, .1, .25, .5, 1, 1.5, 2, 2.5, 5},
		}, []string{"host", "result"}),
	}

	for _, c := range []prometheus.Collector{r.responses, r.picks, r.attempts} {
		if err := registerer.Register(c); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	return r, nil
}

func (r *Recorder) Response(outcome Outcome) {
	if r == nil {
		return
	}

	r.responses.WithLabelValues(string(outcome)).Inc()
}

func (r *Recorder) Pick(upstream, agencyID, source string) {
	if r == nil {
		return
	}

	r.picks.WithLabelValues(upstream, agencyID, source).Inc()
}

// ObserveAttempt labels by host so per-agency URLs do not explode cardinality.
func (r *Recorder) ObserveAttempt(apiURL string, elapsed time.Duration, err error) {
	if r == nil {
		return
	}

	host := "unknown"
	if u, parseErr := url.Parse(apiURL); parseErr == nil && u.Host != "" {
		host = u.Host
	}

	result := "ok"
	if err != nil {
		result = "error"
	}

	r.attempts.WithLabelValues(host, result).Observe(elapsed.Seconds())
}
