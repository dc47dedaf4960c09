package workers

import "context"

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in registration order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Len returns the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
