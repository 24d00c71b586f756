// File: level.go
// Title: Severity Level Definitions
// Description: Defines the ordered severity levels used to filter and
//              control log output, their canonical names and ANSI colors,
//              and the fail-closed parser for configuration values.
// Author: voyager-mc
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation with five ordered levels

package log

import (
	"strconv"
	"strings"
)

// Level represents the severity of a log record. Levels are totally
// ordered: LevelDebug < LevelInfo < LevelWarning < LevelError < LevelCritical.
type Level int

const (
	// LevelDebug provides detailed information for debugging purposes.
	// Typically disabled in production.
	LevelDebug Level = iota

	// LevelInfo represents general informational messages.
	// Standard level for normal operation logging.
	LevelInfo

	// LevelWarning indicates potentially harmful situations.
	// Operations continue but attention may be required.
	LevelWarning

	// LevelError represents error conditions that need attention.
	// Operations may fail but the system continues.
	LevelError

	// LevelCritical represents severe errors that endanger the process.
	LevelCritical
)

// String returns the canonical upper-case name of the level, as rendered
// in both the console and file line formats.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ANSI escape codes used by the console formatter. One color per level;
// namespaces render magenta.
const (
	colorReset     = "\033[0m"
	colorNamespace = "\033[35m"
)

// levelColors is the fixed severity-to-color mapping.
var levelColors = map[Level]string{
	LevelDebug:    "\033[36m", // cyan
	LevelInfo:     "\033[32m", // green
	LevelWarning:  "\033[33m", // yellow
	LevelError:    "\033[31m", // red
	LevelCritical: "\033[41m", // red background
}

// Color returns the ANSI color code for the level.
func (l Level) Color() string {
	if c, ok := levelColors[l]; ok {
		return c
	}
	return colorReset
}

// ShouldLog returns true if a record at this level passes the given
// minimum level.
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a configuration string into a level. Matching is
// case-insensitive against the five canonical names. An unrecognized
// value never fails the caller: it resolves to LevelInfo alongside a
// *ParseError so the caller can emit its one-time warning.
func ParseLevel(value string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARNING":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	case "CRITICAL":
		return LevelCritical, nil
	default:
		return DefaultLevel(), &ParseError{Input: value}
	}
}

// ParseError reports an unrecognized level string in configuration.
type ParseError struct {
	Input string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return "unrecognized log level " + strconv.Quote(e.Input)
}

// AllLevels returns all levels in ascending severity order.
func AllLevels() []Level {
	return []Level{
		LevelDebug,
		LevelInfo,
		LevelWarning,
		LevelError,
		LevelCritical,
	}
}

// DefaultLevel returns the level used when no configuration applies.
func DefaultLevel() Level {
	return LevelInfo
}
