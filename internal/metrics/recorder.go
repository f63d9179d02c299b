package metrics

import "time"

// Recorder defines observability hooks for catalog builds. Implementations
// may forward to Prometheus; the NoopRecorder is the default when metrics
// are not configured.
type Recorder interface {
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome string) // outcome: success|failed
	IncDescriptionTier(tier string) // tier: explicit|generated|default
	ObserveGeneratorDuration(d time.Duration, success bool)
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) ObserveBuildDuration(time.Duration)           {}
func (NoopRecorder) IncBuildOutcome(string)                       {}
func (NoopRecorder) IncDescriptionTier(string)                    {}
func (NoopRecorder) ObserveGeneratorDuration(time.Duration, bool) {}
