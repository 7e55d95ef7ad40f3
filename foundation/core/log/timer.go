// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and logs it on completion.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Reduced to Stop and StopWithError

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
	}
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time at debug level.
// Subsequent calls return 0 and log nothing.
func (t *Timer) Stop() time.Duration {
	return t.finish(nil)
}

// StopWithError stops the timer and logs the failure with the elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(err)
}

func (t *Timer) finish(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger == nil {
		return elapsed
	}

	fields := t.fields.Merge(Fields{"operation": t.operation})
	entryLevel := LevelDebug
	message := t.operation + " completed"
	if err != nil {
		entryLevel = LevelError
		message = t.operation + " failed"
	}

	l := t.logger
	l.mutex.RLock()
	if !entryLevel.ShouldLog(l.level) {
		l.mutex.RUnlock()
		return elapsed
	}
	entry := NewEntry(entryLevel, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err
	entry.Duration = elapsed
	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	formatter, output := l.formatter, l.output
	l.mutex.RUnlock()

	for k, v := range fields {
		entry.Fields[k] = v
	}
	l.write(formatter, output, entry)

	return elapsed
}
