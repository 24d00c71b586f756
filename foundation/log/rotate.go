// File: rotate.go
// Title: Rotating File Sink
// Description: Implements the size-bounded rotating file sink. The active
//              file is rotated into numbered backups once its size reaches
//              the configured limit; retention is bounded by the backup
//              count and the oldest backup is discarded first. Rotation
//              failures degrade, they never lose the triggering write.
// Author: voyager-mc
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation with numbered backups

package log

import (
	"fmt"
	"os"
	"sync"
)

const (
	// DefaultMaxBytes is the default active-file size limit (10 MiB).
	DefaultMaxBytes int64 = 10 * 1024 * 1024

	// DefaultBackupCount is the default number of retained backups.
	DefaultBackupCount = 5
)

// RotatingFileSink writes durable log lines to an active file and keeps
// up to backupCount numbered backups (<path>.1 is the most recent,
// <path>.backupCount the oldest). The whole write-then-maybe-rotate
// sequence runs under the sink's lock.
type RotatingFileSink struct {
	mu          sync.Mutex
	path        string
	maxBytes    int64
	backupCount int
	level       Level
	formatter   Formatter
	file        *os.File
	size        int64
	writeWarn   sync.Once
	rotateWarn  sync.Once
}

// NewRotatingFileSink opens (or creates) the active file at path in
// append mode. A maxBytes <= 0 disables rotation; a backupCount <= 0
// keeps no backups and truncates the active file in place on overflow.
// The size counter starts from the existing file's size.
func NewRotatingFileSink(path string, maxBytes int64, backupCount int, minLevel Level) (*RotatingFileSink, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", path, err)
	}
	var size int64
	if info, err := file.Stat(); err == nil {
		size = info.Size()
	}
	if backupCount < 0 {
		backupCount = 0
	}
	return &RotatingFileSink{
		path:        path,
		maxBytes:    maxBytes,
		backupCount: backupCount,
		level:       minLevel,
		formatter:   NewTextFormatter(),
		file:        file,
		size:        size,
	}, nil
}

// Path returns the active file path.
func (s *RotatingFileSink) Path() string {
	return s.path
}

// Emit appends the formatted record to the active file and rotates if the
// size limit has been reached. The record that triggers a failed rotation
// stands; subsequent writes continue against the over-sized file.
func (s *RotatingFileSink) Emit(record *Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !record.Level.ShouldLog(s.level) {
		return
	}
	line, err := s.formatter.Format(record)
	if err != nil {
		return
	}
	if s.file == nil {
		// A previous rotation failed to reopen; try again.
		if !s.reopen() {
			return
		}
	}
	n, err := s.file.Write(line)
	s.size += int64(n)
	if err != nil {
		s.writeWarn.Do(func() {
			fmt.Fprintf(os.Stderr, "log: write to %s failed: %v\n", s.path, err)
		})
		return
	}
	if s.maxBytes > 0 && s.size >= s.maxBytes {
		s.rotate()
	}
}

// rotate shuffles backups up by one index, moves the active file to
// backup 1, and opens a fresh active file. Caller holds the lock.
func (s *RotatingFileSink) rotate() {
	if err := s.file.Close(); err != nil {
		s.degrade(err)
		return
	}
	s.file = nil

	if s.backupCount > 0 {
		oldest := s.backupPath(s.backupCount)
		if _, err := os.Stat(oldest); err == nil {
			if err := os.Remove(oldest); err != nil {
				s.degrade(err)
				return
			}
		}
		for i := s.backupCount - 1; i >= 1; i-- {
			src := s.backupPath(i)
			if _, err := os.Stat(src); err != nil {
				continue
			}
			if err := os.Rename(src, s.backupPath(i+1)); err != nil {
				s.degrade(err)
				return
			}
		}
		if err := os.Rename(s.path, s.backupPath(1)); err != nil {
			s.degrade(err)
			return
		}
	}

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		s.degrade(err)
		return
	}
	s.file = file
	s.size = 0
}

// degrade records a failed rotation: one warning, then the sink keeps
// appending to the (possibly over-sized) active file. Rotation is retried
// on the next size-exceeding write.
func (s *RotatingFileSink) degrade(err error) {
	s.rotateWarn.Do(func() {
		fmt.Fprintf(os.Stderr, "log: rotation of %s failed: %v; continuing on over-sized file\n", s.path, err)
	})
	s.reopen()
}

// reopen restores an append handle on the active file after a failed
// rotation step. Caller holds the lock.
func (s *RotatingFileSink) reopen() bool {
	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		s.writeWarn.Do(func() {
			fmt.Fprintf(os.Stderr, "log: reopen of %s failed: %v\n", s.path, err)
		})
		return false
	}
	s.file = file
	if info, err := file.Stat(); err == nil {
		s.size = info.Size()
	}
	return true
}

func (s *RotatingFileSink) backupPath(index int) string {
	return fmt.Sprintf("%s.%d", s.path, index)
}

// MinLevel returns the sink's minimum level.
func (s *RotatingFileSink) MinLevel() Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// SetMinLevel changes the sink's minimum level.
func (s *RotatingFileSink) SetMinLevel(level Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = level
}

// SetFormatter replaces the sink's formatter.
func (s *RotatingFileSink) SetFormatter(f Formatter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.formatter = f
}

// Close flushes and closes the active file. Safe to call more than once.
func (s *RotatingFileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	syncErr := s.file.Sync()
	closeErr := s.file.Close()
	s.file = nil
	if closeErr != nil {
		return closeErr
	}
	return syncErr
}
