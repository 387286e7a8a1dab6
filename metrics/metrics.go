package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

type (
	Collector   = prometheus.Collector
	Counter     = prometheus.Counter
	CounterOpts = prometheus.CounterOpts
	CounterVec  = prometheus.CounterVec
	Gatherer    = prometheus.Gatherer
	Gauge       = prometheus.Gauge
	GaugeOpts   = prometheus.GaugeOpts
	Labels      = prometheus.Labels
	Registerer  = prometheus.Registerer
	Registry    = prometheus.Registry
)

var (
	Default = prometheus.NewRegistry()

	NewCounter    = prometheus.NewCounter
	NewCounterVec = prometheus.NewCounterVec
	NewGauge      = prometheus.NewGauge
	NewRegistry   = prometheus.NewRegistry
)

func MustRegister(cs ...Collector) { Default.MustRegister(cs...) }

// Write renders everything gathered from g in the text exposition format.
func Write(w io.Writer, g Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		_, err = expfmt.MetricFamilyToText(w, family)
		if err != nil {
			return err
		}
	}
	return nil
}
