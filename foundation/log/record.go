// File: record.go
// Title: Log Record Structure
// Description: Defines the immutable record that carries one log message
//              through the sink fan-out, including its timestamp, namespace,
//              severity, optional caller information, and the identity of
//              the emitting goroutine.
// Author: voyager-mc
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

package log

import (
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Record represents a single log record. A record is constructed once at
// emission and must not be mutated after it has been handed to a sink.
type Record struct {
	// Time is the wall-clock emission time.
	Time time.Time

	// Name is the dotted namespace of the emitting handle.
	Name string

	// Level is the severity of the record.
	Level Level

	// Message is the fully rendered message text.
	Message string

	// Caller holds the emitting function and line when available.
	Caller *Caller

	// Goroutine identifies the emitting goroutine.
	Goroutine uint64
}

// Caller identifies the source location a record was emitted from.
type Caller struct {
	Function string
	Line     int
}

// NewRecord creates a record for the given namespace, level, and message,
// stamping the current time and the emitting goroutine.
func NewRecord(name string, level Level, message string) *Record {
	return &Record{
		Time:      time.Now(),
		Name:      name,
		Level:     level,
		Message:   message,
		Goroutine: goroutineID(),
	}
}

// WithCaller attaches caller information to the record. Only valid before
// the record is handed to a sink.
func (r *Record) WithCaller(function string, line int) *Record {
	r.Caller = &Caller{Function: function, Line: line}
	return r
}

// callerInfo returns the bare function name and line of the frame skip
// levels above the caller.
func callerInfo(skip int) (function string, line int, ok bool) {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return "", 0, false
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "", 0, false
	}
	function = fn.Name()
	if idx := strings.LastIndex(function, "."); idx != -1 {
		function = function[idx+1:]
	}
	return function, line, true
}

// goroutineID parses the numeric id from the runtime.Stack header line
// ("goroutine N [running]:"). The runtime exposes no direct accessor.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	if idx := strings.IndexByte(header, ' '); idx > 0 {
		if id, err := strconv.ParseUint(header[:idx], 10, 64); err == nil {
			return id
		}
	}
	return 0
}
