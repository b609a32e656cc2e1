package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"numroute/internal/metrics"
)

func TestRecorder(t *testing.T) {
	rq := require.New(t)

	registry := prometheus.NewRegistry()

	recorder, err := metrics.NewRecorder(registry)
	rq.NoError(err)

	recorder.Response(metrics.OutcomeFresh)
	recorder.Response(metrics.OutcomeFresh)
	recorder.Response(metrics.OutcomeCache)
	recorder.Pick("ases", "28", "static")
	recorder.ObserveAttempt("https://api.asesadmin.com/api/v1/agency/28/random-contact", 120*time.Millisecond, nil)
	recorder.ObserveAttempt("https://api.asesadmin.com/api/v1/agency/28/random-contact", time.Second, errors.New("HTTP 500"))

	families, err := registry.Gather()
	rq.NoError(err)

	counts := map[string]int{}
	for _, f := range families {
		counts[f.GetName()] = len(f.GetMetric())
	}

	rq.Equal(2, counts["numroute_phone_responses_total"])
	rq.Equal(1, counts["numroute_phone_picks_total"])
	rq.Equal(2, counts["numroute_upstream_attempt_duration_seconds"])


	for _, f := range families {
		if f.GetName() != "numroute_phone_responses_total" {
			continue
		}

		for _, m := range f.GetMetric() {
			if m.GetLabel()[0].GetValue() == string(metrics.OutcomeFresh) {
				rq.InDelta(2, m.GetCounter().GetValue(), 0)
			}
		}
	}
}

func TestRecorderDuplicateRegistration(t *testing.T) {
	rq := require.New(t)

	registry := prometheus.NewRegistry()

	_, err := metrics.NewRecorder(registry)
	rq.NoError(err)

	_, err = metrics.NewRecorder(registry)
	rq.Error(err)
}

func TestNilRecorder(t *testing.T) {
	rq := require.New(t)

	var recorder *metrics.Recorder

	rq.NotPanics(func() {
		recorder.Response(metrics.OutcomeUnavailable)
		recorder.Pick("ases", "28", "ads.whatsapp")
		recorder.ObserveAttempt("::", time.Second, nil)
	})
}
