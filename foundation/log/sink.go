// File: sink.go
// Title: Output Sinks
// Description: Defines the sink abstraction (an output destination with
//              its own minimum-severity filter, formatter, and write lock)
//              and the console sink implementation.
// Author: voyager-mc
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation with console sink

package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Sink is an output destination for log records. Every sink filters by
// its own minimum level, formats with its own formatter, and serializes
// its writes with its own lock. Emit never returns an error: steady-state
// write failures are absorbed, escalated once, then suppressed.
type Sink interface {
	Emit(record *Record)
	MinLevel() Level
	SetMinLevel(level Level)
	Close() error
}

// ConsoleSink writes compact colorized lines to a console writer.
type ConsoleSink struct {
	mu        sync.Mutex
	out       io.Writer
	level     Level
	formatter Formatter
	writeWarn sync.Once
}

// NewConsoleSink creates a console sink on out with the given minimum
// level. Output is colorized when out is an interactive terminal.
func NewConsoleSink(out io.Writer, minLevel Level) *ConsoleSink {
	return &ConsoleSink{
		out:       out,
		level:     minLevel,
		formatter: NewConsoleFormatter(out),
	}
}

// Emit writes the record if it passes the sink's minimum level.
func (s *ConsoleSink) Emit(record *Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !record.Level.ShouldLog(s.level) {
		return
	}
	line, err := s.formatter.Format(record)
	if err != nil {
		return
	}
	if _, err := s.out.Write(line); err != nil {
		// Escalate once, then suppress to avoid log-storming.
		s.writeWarn.Do(func() {
			fmt.Fprintf(os.Stderr, "log: console write failed: %v\n", err)
		})
	}
}

// MinLevel returns the sink's minimum level.
func (s *ConsoleSink) MinLevel() Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// SetMinLevel changes the sink's minimum level.
func (s *ConsoleSink) SetMinLevel(level Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = level
}

// SetFormatter replaces the sink's formatter.
func (s *ConsoleSink) SetFormatter(f Formatter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.formatter = f
}

// Close is a no-op; the console writer is not owned by the sink.
func (s *ConsoleSink) Close() error {
	return nil
}
