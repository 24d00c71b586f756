// Package log provides the shared logging facility for the Voyager platform.
//
// Package: log
// Title: Voyager Logging Facility
// Description: This package implements the leveled, multi-destination logging
//              facility shared by the Voyager controller, the agent modules,
//              and the game-bridge process. It provides namespace-based logger
//              resolution over a dotted hierarchy, runtime-configurable
//              severity levels with ancestor inheritance, size-based file
//              rotation with bounded backup retention, dual formatting for
//              interactive and durable output, and suppression of noisy
//              dependency namespaces.
// Author: voyager-mc
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation
//
// Features:
// - Five ordered severity levels (DEBUG < INFO < WARNING < ERROR < CRITICAL)
// - Hierarchical dotted namespaces with effective-level inheritance
// - Console sink with per-level ANSI colors on interactive terminals
// - Rotating file sinks with numbered backups and bounded disk usage
// - Environment-driven level configuration with a fail-closed parser
// - Noise suppression for verbose third-party namespaces
//
// Usage:
//   import "github.com/voyager-mc/voyager/foundation/log"
//
//   // Establish the root sinks once at process start.
//   if err := log.ConfigureRoot("logs", log.LevelFromEnv()); err != nil {
//       // no baseline output channel could be established
//   }
//   log.SilenceNoisyLoggers()
//   defer log.Close()
//
//   // Components obtain handles by namespace and just emit.
//   logger := log.GetLogger("voyager.agents.action")
//   logger.Info("iteration %d started", n)
//
//   // Components that want their own file in addition to the aggregate:
//   logger, err := log.SetupLogger("voyager.bridge", log.SetupOptions{})
//
// Emission is synchronous. Every sink serializes its own writes with its
// own lock; sinks on different handles proceed independently. Steady-state
// logging failures are absorbed and never returned to emitters; the only
// fatal configuration error is a log directory that cannot be created.
//
// The facility assumes one writer process per log file. Processes sharing
// a log directory must use distinct namespaces (and therefore distinct
// file basenames); cross-process contention on one file is undefined.
package log
