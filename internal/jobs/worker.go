package jobs

import (
	"context"
	"log"
	"time"
)

// Refresher defines the interface for periodic refresh work
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Worker runs a refresher on a fixed interval in the background
type Worker struct {
	refresher    Refresher
	pollInterval time.Duration
	stopChan     chan struct{}
	doneChan     chan struct{}
}

// NewWorker creates a new Worker instance
func NewWorker(refresher Refresher, pollInterval time.Duration) *Worker {
	return &Worker{
		refresher:    refresher,
		pollInterval: pollInterval,
		stopChan:     make(chan struct{}),
		doneChan:     make(chan struct{}),
	}
}

// Start begins the worker's polling loop
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()
	defer close(w.doneChan)

	log.Printf("Worker started with poll interval: %v", w.pollInterval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Worker stopped: context cancelled")
			return
		case <-w.stopChan:
			log.Println("Worker stopped: stop signal received")
			return
		case <-ticker.C:
			if err := w.refresher.Refresh(ctx); err != nil {
				log.Printf("Error refreshing: %v", err)
			}
		}
	}
}

// Stop gracefully stops the worker
func (w *Worker) Stop() {
	close(w.stopChan)
	<-w.doneChan
	log.Println("Worker shutdown complete")
}
