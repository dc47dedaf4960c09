package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-posts/internal/logger"
)

// PeriodicWorker calls task every interval until the context passed to Run
// is done. A non-positive interval disables it.
type PeriodicWorker struct {
	name     string
	interval time.Duration
	task     func(ctx context.Context)

	logger *logger.Logger
}

func NewPeriodicWorker(name string, interval time.Duration, task func(ctx context.Context), logger *logger.Logger) *PeriodicWorker {
	return &PeriodicWorker{
		name:     name,
		interval: interval,
		task:     task,
		logger:   logger,
	}
}

func (p *PeriodicWorker) Run(ctx context.Context) {
	if p.interval <= 0 || p.task == nil {
		return
	}

	p.logger.Debug().Str("worker", p.name).Dur("interval", p.interval).Msg("starting periodic worker")

	ticker := time.NewTicker(p.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				p.logger.Debug().Str("worker", p.name).Msg("periodic worker stopped")
				return
			case <-ticker.C:
				p.task(ctx)
			}
		}
	}()
}
