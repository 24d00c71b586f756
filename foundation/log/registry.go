// File: registry.go
// Title: Logger Registry
// Description: Implements the process-wide namespace-to-handle table with
//              lookup-or-create semantics, root configuration (console plus
//              rotating aggregate file), per-component file setup, and
//              flush-and-close teardown. A package-level default registry
//              mirrors the instance API for ordinary use; the type itself
//              stays constructible for injection and tests.
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
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultLogDir is the log directory used when none is configured.
	DefaultLogDir = "logs"

	// rootBasename names the root aggregate log file.
	rootBasename = "voyager"

	// rootName is the display namespace of the root handle.
	rootName = "root"
)

// Registry is the process-wide table mapping namespace strings to logger
// handles. At most one handle exists per namespace. A registry is created
// once at process start and torn down only at process exit; Close flushes
// the open file sinks.
type Registry struct {
	mu             sync.RWMutex
	loggers        map[string]*Logger
	root           *Logger
	logDir         string
	configured     bool
	fileNamespaces map[string]bool
	sinks          []Sink
	closeOnce      sync.Once

	// consoleOut is the root console destination, overridable in tests.
	consoleOut io.Writer
}

// NewRegistry creates an empty registry whose root handle has no sinks
// and no explicit level until ConfigureRoot is called.
func NewRegistry() *Registry {
	return &Registry{
		loggers:        make(map[string]*Logger),
		root:           &Logger{name: rootName},
		fileNamespaces: make(map[string]bool),
		consoleOut:     os.Stdout,
	}
}

// Root returns the root handle.
func (r *Registry) Root() *Logger {
	return r.root
}

// GetLogger returns the handle for the given dotted namespace, creating
// it (and any missing ancestors) on first use. Created handles carry no
// explicit level and no sinks. Concurrent callers for the same namespace
// observe exactly one handle. The empty namespace resolves to the root.
func (r *Registry) GetLogger(name string) *Logger {
	if name == "" {
		return r.root
	}
	r.mu.RLock()
	logger, ok := r.loggers[name]
	r.mu.RUnlock()
	if ok {
		return logger
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getLocked(name)
}

// getLocked is GetLogger under an already-held write lock. Ancestors are
// materialized from the dotted prefix chain so inheritance walks work
// regardless of creation order.
func (r *Registry) getLocked(name string) *Logger {
	if name == "" {
		return r.root
	}
	if logger, ok := r.loggers[name]; ok {
		return logger
	}
	parent := r.root
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		parent = r.getLocked(name[:idx])
	}
	logger := &Logger{name: name, parent: parent}
	r.loggers[name] = logger
	return logger
}

// ConfigureRoot establishes the root handle: it creates the log directory
// (the one fatal configuration error), attaches a console sink and a
// rotating aggregate file sink, and sets the root's explicit level.
// Reconfiguring an already-configured registry only updates the root
// level; sinks are not duplicated.
func (r *Registry) ConfigureRoot(dir string, level Level) error {
	if dir == "" {
		dir = DefaultLogDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log directory %q: %w", dir, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.configured {
		r.root.SetLevel(level)
		return nil
	}

	path := filepath.Join(dir, logFileName(rootBasename, time.Now()))
	fileSink, err := NewRotatingFileSink(path, DefaultMaxBytes, DefaultBackupCount, LevelDebug)
	if err != nil {
		return err
	}
	console := NewConsoleSink(r.consoleOut, LevelDebug)

	r.root.AddSink(console)
	r.root.AddSink(fileSink)
	r.root.SetLevel(level)
	r.sinks = append(r.sinks, console, fileSink)
	r.logDir = dir
	r.configured = true
	return nil
}

// SetupOptions configures a component's dedicated file sink. Zero values
// resolve to the registry's directory and the rotation defaults. A
// negative MaxBytes disables rotation; a negative BackupCount keeps no
// backups (the active file is truncated in place on overflow). Level,
// when non-nil, becomes the handle's explicit level. SinkLevel is the
// file sink's own minimum level (zero value DEBUG passes everything the
// handle accepts).
type SetupOptions struct {
	Dir         string
	MaxBytes    int64
	BackupCount int
	Level       *Level
	SinkLevel   Level
}

// SetupLogger locates or creates the handle for the namespace, applies
// the optional explicit level, and attaches a dedicated rotating file
// sink separate from the root aggregate file. Records from the component
// then appear both in its own file and, via inheritance, in the root
// aggregate file and console. Idempotent per namespace: a second call
// returns the existing handle without attaching another file sink.
func (r *Registry) SetupLogger(name string, opts SetupOptions) (*Logger, error) {
	if name == "" {
		return nil, fmt.Errorf("setup logger: namespace must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	logger := r.getLocked(name)
	if opts.Level != nil {
		logger.SetLevel(*opts.Level)
	}
	if r.fileNamespaces[name] {
		return logger, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = r.logDir
	}
	if dir == "" {
		dir = DefaultLogDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory %q: %w", dir, err)
	}

	maxBytes := opts.MaxBytes
	if maxBytes == 0 {
		maxBytes = DefaultMaxBytes
	}
	backups := opts.BackupCount
	if backups == 0 {
		backups = DefaultBackupCount
	}

	path := filepath.Join(dir, logFileName(namespaceBase(name), time.Now()))
	sink, err := NewRotatingFileSink(path, maxBytes, backups, opts.SinkLevel)
	if err != nil {
		return nil, err
	}
	logger.AddSink(sink)
	r.sinks = append(r.sinks, sink)
	r.fileNamespaces[name] = true
	return logger, nil
}

// SilenceNoisyLoggers applies the fixed noise-suppression table; see
// noise.go. Call after ConfigureRoot so the affected namespaces never
// transiently inherit a verbose root level.
func (r *Registry) SilenceNoisyLoggers() {
	for _, name := range noisyNamespaces {
		r.GetLogger(name).SetLevel(noiseFloor)
	}
}

// LogDir returns the directory established by ConfigureRoot.
func (r *Registry) LogDir() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.logDir
}

// Close flushes and closes every sink the registry attached. Subsequent
// calls are no-ops.
func (r *Registry) Close() error {
	var firstErr error
	r.closeOnce.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for _, sink := range r.sinks {
			if err := sink.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	})
	return firstErr
}

// logFileName builds the dated file name for a basename:
// <basename>_<YYYYMMDD>.log.
func logFileName(basename string, now time.Time) string {
	return fmt.Sprintf("%s_%s.log", basename, now.Format("20060102"))
}

// namespaceBase converts a dotted namespace into a filesystem-safe file
// basename.
func namespaceBase(name string) string {
	return strings.ReplaceAll(name, ".", "_")
}

// std is the process-wide default registry used by the package-level API.
var std = NewRegistry()

// Default returns the package-level registry.
func Default() *Registry {
	return std
}

// GetLogger returns a handle from the default registry.
func GetLogger(name string) *Logger {
	return std.GetLogger(name)
}

// ConfigureRoot configures the default registry's root handle.
func ConfigureRoot(dir string, level Level) error {
	return std.ConfigureRoot(dir, level)
}

// SetupLogger sets up a component logger on the default registry.
func SetupLogger(name string, opts SetupOptions) (*Logger, error) {
	return std.SetupLogger(name, opts)
}

// SilenceNoisyLoggers applies noise suppression on the default registry.
func SilenceNoisyLoggers() {
	std.SilenceNoisyLoggers()
}

// Close flushes and closes the default registry's file sinks.
func Close() error {
	return std.Close()
}
