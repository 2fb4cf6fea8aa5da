package gdbscan

import (
	"log"
	"time"
)

// StageLogger receives a wall-clock duration for a named pipeline stage.
// These timings have no effect on the clustering result; the interface
// exists so a caller can redirect, aggregate, or silence them without
// this package depending on any particular logging library. The one
// built-in implementation below is backed by the standard library's log
// package.
type StageLogger interface {
	Stage(name string, d time.Duration)
}

// StdLogger adapts a *log.Logger into a StageLogger. A nil *log.Logger
// means use log.Default().
type StdLogger struct {
	L *log.Logger
}

// Stage logs the stage name and duration via the underlying *log.Logger.
func (s StdLogger) Stage(name string, d time.Duration) {
	l := s.L
	if l == nil {
		l = log.Default()
	}
	l.Printf("gdbscan: %s took %s", name, d)
}

// timeStage runs fn, reporting its duration to logger if non-nil.
func timeStage(logger StageLogger, name string, fn func()) {
	if logger == nil {
		fn()
		return
	}
	start := time.Now()
	fn()
	logger.Stage(name, time.Since(start))
}
