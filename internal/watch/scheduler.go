package watch

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// newScheduler creates a gocron scheduler that pokes the trigger channel at
// a fixed interval. The watch loop coalesces triggers with file events.
func newScheduler(interval time.Duration, trigger chan<- struct{}) (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			select {
			case trigger <- struct{}{}:
			default:
			}
		}),
		gocron.WithName("catalog-rebuild"),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return nil, fmt.Errorf("schedule periodic rebuild: %w", err)
	}
	return scheduler, nil
}
