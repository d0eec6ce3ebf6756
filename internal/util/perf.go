// Package util provides logging, timing and CLI helpers
package util

import (
	"time"

	"github.com/charmbracelet/log"
)

// Timer represents an active timing operation
type Timer struct {
	name   string
	start  time.Time
	logger *log.Logger
}

// StartTimer starts a new timer for the given operation name.
// The duration is reported at debug level when the timer stops.
func StartTimer(logger *log.Logger, name string) *Timer {
	return &Timer{
		name:   name,
		start:  time.Now(),
		logger: logger,
	}
}

// Stop returns the elapsed time without logging it
func (t *Timer) Stop() time.Duration {
	if t == nil {
		return 0
	}
	return time.Since(t.start)
}

// StopAndLog stops the timer and logs the duration
func (t *Timer) StopAndLog() time.Duration {
	if t == nil {
		return 0
	}
	duration := t.Stop()
	if t.logger != nil {
		t.logger.Debug("[PERF] "+t.name, "took", duration)
	}
	return duration
}
