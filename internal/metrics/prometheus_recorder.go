package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	buildDuration     prom.Histogram
	buildOutcome      *prom.CounterVec
	descriptionTiers  *prom.CounterVec
	generatorDuration *prom.HistogramVec
}

// NewPrometheusRecorder constructs and registers catalog metrics.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "toolindex",
			Name:      "build_duration_seconds",
			Help:      "Total catalog build duration",
			Buckets:   prom.DefBuckets,
		}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "toolindex",
			Name:      "build_outcomes_total",
			Help:      "Catalog build outcomes by final status",
		}, []string{"outcome"}),
		descriptionTiers: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "toolindex",
			Name:      "description_tiers_total",
			Help:      "Description resolutions by winning tier",
		}, []string{"tier"}),
		generatorDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "toolindex",
			Name:      "generator_call_duration_seconds",
			Help:      "Duration of text-generation service calls",
			Buckets:   prom.DefBuckets,
		}, []string{"result"}),
	}
	reg.MustRegister(pr.buildDuration, pr.buildOutcome, pr.descriptionTiers, pr.generatorDuration)
	return pr
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome string) {
	p.buildOutcome.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) IncDescriptionTier(tier string) {
	p.descriptionTiers.WithLabelValues(tier).Inc()
}

func (p *PrometheusRecorder) ObserveGeneratorDuration(d time.Duration, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	p.generatorDuration.WithLabelValues(result).Observe(d.Seconds())
}
