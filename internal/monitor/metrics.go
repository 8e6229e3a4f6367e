// Package monitor exposes the service's operational counters.
package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Loads        prometheus.Counter
	LoadFailures *prometheus.CounterVec
	Exports      *prometheus.CounterVec
	Records      prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Loads: f.NewCounter(prometheus.CounterOpts{
			Name: "funnel_dataset_loads_total",
			Help: "Successful dataset loads.",
		}),
		LoadFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "funnel_dataset_load_failures_total",
			Help: "Rejected dataset loads by reason.",
		}, []string{"reason"}),
		Exports: f.NewCounterVec(prometheus.CounterOpts{
			Name: "funnel_exports_total",
			Help: "CSV exports served, by kind.",
		}, []string{"kind"}),
		Records: f.NewGauge(prometheus.GaugeOpts{
			Name: "funnel_dataset_records",
			Help: "Records in the currently loaded dataset.",
		}),
	}
}
