// File: env.go
// Title: Environment Level Resolution
// Description: Resolves the configured severity level from the process
//              environment with documented precedence: VOYAGER_LOG_LEVEL
//              first, LOG_LEVEL as fallback, INFO as the built-in default.
//              Unrecognized values resolve to INFO with a one-time warning.
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
	"os"
	"sync"
)

const (
	// EnvLevel is the primary level variable.
	EnvLevel = "VOYAGER_LOG_LEVEL"

	// EnvLevelFallback is consulted only when EnvLevel is unset.
	EnvLevelFallback = "LOG_LEVEL"
)

var envWarnOnce sync.Once

// LookupEnvLevel resolves the level from the environment and reports
// whether either variable was set. A set-but-unrecognized value counts as
// set: it resolves to INFO and emits a one-time warning, never an error.
func LookupEnvLevel() (Level, bool) {
	raw := os.Getenv(EnvLevel)
	if raw == "" {
		raw = os.Getenv(EnvLevelFallback)
	}
	if raw == "" {
		return DefaultLevel(), false
	}
	level, err := ParseLevel(raw)
	if err != nil {
		envWarnOnce.Do(func() {
			fmt.Fprintf(os.Stderr, "log: %v, defaulting to %s\n", err, DefaultLevel())
		})
	}
	return level, true
}

// LevelFromEnv resolves the level from the environment, falling back to
// the built-in default when neither variable is set.
func LevelFromEnv() Level {
	level, _ := LookupEnvLevel()
	return level
}
