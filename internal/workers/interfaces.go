// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: long-running work is started in goroutines that stop
// when ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    go w.loop(ctx)
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Pinger checks that a database connection is alive. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthReporter receives the outcome of each health probe.
type HealthReporter interface {
	SetServing(serving bool)
}
