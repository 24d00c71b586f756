// File: logger.go
// Title: Logger Handle
// Description: Implements the named handle in the dotted-namespace tree.
//              A handle resolves its effective level by walking ancestors,
//              gates emission against it, and fans accepted records out to
//              its own sinks and every ancestor's sinks.
// Author: voyager-mc
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

package log

import (
	"fmt"
	"sync"
)

// Logger is a named node in the hierarchical namespace tree. Handles are
// created by a Registry and live for the process lifetime. The parent
// back-reference exists for level inheritance and sink fan-out only,
// never for ownership.
type Logger struct {
	name   string
	parent *Logger

	mu       sync.RWMutex
	level    Level
	hasLevel bool
	sinks    []Sink
}

// Name returns the handle's dotted namespace.
func (l *Logger) Name() string {
	return l.name
}

// SetLevel sets the handle's explicit level. The change is observed by
// descendants on their next emission; effective levels are never cached.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.hasLevel = true
}

// ClearLevel removes the handle's explicit level so it inherits again.
func (l *Logger) ClearLevel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hasLevel = false
}

// Level returns the handle's explicit level and whether one is set.
func (l *Logger) Level() (Level, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level, l.hasLevel
}

// EffectiveLevel resolves the level that gates this handle's emission:
// its own explicit level if set, otherwise the nearest ancestor's. A tree
// with no explicit level anywhere resolves to the default level.
func (l *Logger) EffectiveLevel() Level {
	for h := l; h != nil; h = h.parent {
		h.mu.RLock()
		if h.hasLevel {
			level := h.level
			h.mu.RUnlock()
			return level
		}
		h.mu.RUnlock()
	}
	return DefaultLevel()
}

// Enabled reports whether a record at the given level would be emitted.
func (l *Logger) Enabled(level Level) bool {
	return level.ShouldLog(l.EffectiveLevel())
}

// AddSink attaches a sink to this handle. Records emitted by this handle
// and its descendants reach the sink.
func (l *Logger) AddSink(sink Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks = append(l.sinks, sink)
}

// Sinks returns a snapshot of the handle's attached sinks.
func (l *Logger) Sinks() []Sink {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Sink, len(l.sinks))
	copy(out, l.sinks)
	return out
}

// Debug emits a record at DEBUG level.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, format, args)
}

// Info emits a record at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, format, args)
}

// Warning emits a record at WARNING level.
func (l *Logger) Warning(format string, args ...interface{}) {
	l.log(LevelWarning, format, args)
}

// Error emits a record at ERROR level.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, format, args)
}

// Critical emits a record at CRITICAL level.
func (l *Logger) Critical(format string, args ...interface{}) {
	l.log(LevelCritical, format, args)
}

// Log emits a record at an arbitrary level.
func (l *Logger) Log(level Level, format string, args ...interface{}) {
	l.log(level, format, args)
}

// log builds the record once and fans it out to every sink reachable
// from this handle's position in the hierarchy. Emission is synchronous
// on the caller's goroutine.
func (l *Logger) log(level Level, format string, args []interface{}) {
	if !level.ShouldLog(l.EffectiveLevel()) {
		return
	}

	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}
	record := NewRecord(l.name, level, message)
	// Frames: runtime.Caller, callerInfo, log, exported method, emitter.
	if function, line, ok := callerInfo(3); ok {
		record.WithCaller(function, line)
	}

	for h := l; h != nil; h = h.parent {
		for _, sink := range h.Sinks() {
			sink.Emit(record)
		}
	}
}
