package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"uptimemonitor/internal/domain"
)

var (
	mProbes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uptimemonitor_probes_total", Help: "Probes executed",
	})
	mUp = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uptimemonitor_probes_up_total", Help: "Probes classified up",
	})
	mDown = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uptimemonitor_probes_down_total", Help: "Probes classified down",
	})
	mLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "uptimemonitor_probe_latency_ms",
		Help:    "Probe round-trip latency in milliseconds",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})
)

func observeProbe(cr domain.CheckResult) {
	mProbes.Inc()
	if cr.Up() {
		mUp.Inc()
	} else {
		mDown.Inc()
	}
	mLatency.Observe(cr.ResponseTimeMS)
}
