package describe

import (
	"context"
	"time"

	"git.home.luguber.info/inful/toolindex/internal/metrics"
)

type instrumentedGenerator struct {
	gen Generator
	rec metrics.Recorder
}

// Instrumented wraps a generator with call-duration metrics. Disabled
// generators are returned unchanged; they never make calls worth timing.
func Instrumented(gen Generator, rec metrics.Recorder) Generator {
	if !gen.Enabled() || rec == nil {
		return gen
	}
	return instrumentedGenerator{gen: gen, rec: rec}
}

func (g instrumentedGenerator) Enabled() bool { return g.gen.Enabled() }

func (g instrumentedGenerator) Describe(ctx context.Context, title, excerpt string) (string, error) {
	start := time.Now()
	desc, err := g.gen.Describe(ctx, title, excerpt)
	g.rec.ObserveGeneratorDuration(time.Since(start), err == nil)
	return desc, err
}
