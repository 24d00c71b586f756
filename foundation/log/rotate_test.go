// File: rotate_test.go
// Title: Rotating File Sink Tests
// Description: Tests for the rotation algorithm: backup shuffling, bounded
//              retention, counter reset, truncate-in-place mode, disabled
//              rotation, and degraded continuation after rotation failure.
// Author: voyager-mc
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawFormatter writes the bare message so tests control byte counts.
type rawFormatter struct{}

func (rawFormatter) Format(r *Record) ([]byte, error) {
	return []byte(r.Message + "\n"), nil
}

func newTestFileSink(t *testing.T, maxBytes int64, backupCount int) (*RotatingFileSink, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "component.log")
	sink, err := NewRotatingFileSink(path, maxBytes, backupCount, LevelDebug)
	require.NoError(t, err)
	sink.SetFormatter(rawFormatter{})
	t.Cleanup(func() { sink.Close() })
	return sink, path
}

// payload builds a message that formats to exactly size bytes on disk.
func payload(marker string, size int) string {
	return marker + strings.Repeat("x", size-len(marker)-1)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRotatingFileSinkAppends(t *testing.T) {
	sink, path := newTestFileSink(t, 0, 0)

	sink.Emit(NewRecord("voyager", LevelInfo, "first"))
	sink.Emit(NewRecord("voyager", LevelInfo, "second"))
	require.NoError(t, sink.Close())

	assert.Equal(t, "first\nsecond\n", readFile(t, path))
}

func TestRotatingFileSinkFiltersBelowMinLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "component.log")
	sink, err := NewRotatingFileSink(path, 0, 0, LevelWarning)
	require.NoError(t, err)
	sink.SetFormatter(rawFormatter{})

	sink.Emit(NewRecord("voyager", LevelInfo, "filtered"))
	sink.Emit(NewRecord("voyager", LevelError, "kept"))
	require.NoError(t, sink.Close())

	assert.Equal(t, "kept\n", readFile(t, path))
}

// TestRotationBackupSequence is the 1024-byte/2-backup scenario: the first
// overflow produces backup .1, the second shifts it to .2, and no .3 is
// ever created.
func TestRotationBackupSequence(t *testing.T) {
	sink, path := newTestFileSink(t, 1024, 2)

	// Three 400-byte lines total 1200 bytes and trigger one rotation.
	for i := 0; i < 3; i++ {
		sink.Emit(NewRecord("voyager", LevelInfo, payload("batch-A", 400)))
	}
	require.FileExists(t, path+".1")
	assert.Contains(t, readFile(t, path+".1"), "batch-A")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(1024), "active file must reset below max_bytes")

	for i := 0; i < 3; i++ {
		sink.Emit(NewRecord("voyager", LevelInfo, payload("batch-B", 400)))
	}
	assert.Contains(t, readFile(t, path+".1"), "batch-B", "backup 1 holds the most recently rotated-out file")
	assert.Contains(t, readFile(t, path+".2"), "batch-A", "backup 2 holds the older file")
	assert.NoFileExists(t, path+".3")
}

func TestRotationBoundedRetention(t *testing.T) {
	sink, path := newTestFileSink(t, 100, 2)

	markers := []string{"one", "two", "three", "four"}
	for _, marker := range markers {
		// Each 120-byte line overflows immediately and rotates.
		sink.Emit(NewRecord("voyager", LevelInfo, payload(marker, 120)))
	}

	assert.Contains(t, readFile(t, path+".1"), "four")
	assert.Contains(t, readFile(t, path+".2"), "three")
	assert.NoFileExists(t, path+".3")
	assert.NoFileExists(t, path+".4")
}

func TestRotationTruncateInPlaceWithoutBackups(t *testing.T) {
	sink, path := newTestFileSink(t, 100, -1)

	sink.Emit(NewRecord("voyager", LevelInfo, payload("overflow", 120)))
	sink.Emit(NewRecord("voyager", LevelInfo, "after"))
	require.NoError(t, sink.Close())

	assert.NoFileExists(t, path+".1")
	content := readFile(t, path)
	assert.NotContains(t, content, "overflow", "active file is truncated in place")
	assert.Contains(t, content, "after")
}

func TestRotationDisabled(t *testing.T) {
	sink, path := newTestFileSink(t, -1, 3)

	for i := 0; i < 50; i++ {
		sink.Emit(NewRecord("voyager", LevelInfo, payload("steady", 100)))
	}
	require.NoError(t, sink.Close())

	assert.NoFileExists(t, path+".1")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(50*100), info.Size())
}

func TestCounterInitializedFromExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "component.log")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("y", 90)), 0o644))

	sink, err := NewRotatingFileSink(path, 100, 1, LevelDebug)
	require.NoError(t, err)
	sink.SetFormatter(rawFormatter{})
	t.Cleanup(func() { sink.Close() })

	sink.Emit(NewRecord("voyager", LevelInfo, payload("tip", 20)))
	require.FileExists(t, path+".1", "pre-existing bytes count toward the limit")
}

// TestRotationFailureDegrades blocks the backup slot with a directory so
// the rename fails; the triggering write must stand and subsequent writes
// continue against the over-sized active file.
func TestRotationFailureDegrades(t *testing.T) {
	sink, path := newTestFileSink(t, 100, 1)
	require.NoError(t, os.Mkdir(path+".1", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path+".1", "blocker"), []byte("x"), 0o644))

	sink.Emit(NewRecord("voyager", LevelInfo, payload("trigger", 120)))
	sink.Emit(NewRecord("voyager", LevelInfo, "survivor"))
	require.NoError(t, sink.Close())

	content := readFile(t, path)
	assert.Contains(t, content, "trigger", "the write that triggered rotation stands")
	assert.Contains(t, content, "survivor", "writes continue after a failed rotation")
}

func TestRotatingFileSinkCloseIdempotent(t *testing.T) {
	sink, _ := newTestFileSink(t, 0, 0)
	require.NoError(t, sink.Close())
	require.NoError(t, sink.Close())
}
