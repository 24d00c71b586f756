// File: sink_test.go
// Title: Console Sink Tests
// Description: Tests for per-sink level filtering and serialized writes
//              on the console sink.
// Author: voyager-mc
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

package log

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// syncBuffer makes bytes.Buffer safe for the concurrency tests.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestConsoleSinkFiltersBelowMinLevel(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, LevelWarning)

	sink.Emit(NewRecord("voyager", LevelInfo, "filtered"))
	assert.Empty(t, buf.String())

	sink.Emit(NewRecord("voyager", LevelWarning, "passes"))
	assert.Contains(t, buf.String(), "passes")
}

func TestConsoleSinkSetMinLevel(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, LevelError)
	assert.Equal(t, LevelError, sink.MinLevel())

	sink.SetMinLevel(LevelDebug)
	assert.Equal(t, LevelDebug, sink.MinLevel())

	sink.Emit(NewRecord("voyager", LevelDebug, "now visible"))
	assert.Contains(t, buf.String(), "now visible")
}

func TestConsoleSinkCloseIsNoop(t *testing.T) {
	sink := NewConsoleSink(&bytes.Buffer{}, LevelDebug)
	assert.NoError(t, sink.Close())
	assert.NoError(t, sink.Close())
}

func TestConsoleSinkConcurrentEmission(t *testing.T) {
	buf := &syncBuffer{}
	sink := NewConsoleSink(buf, LevelDebug)

	const emitters = 16
	const perEmitter = 25

	var wg sync.WaitGroup
	for i := 0; i < emitters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perEmitter; j++ {
				sink.Emit(NewRecord("voyager", LevelInfo, "concurrent record"))
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, emitters*perEmitter)
	for _, line := range lines {
		assert.Contains(t, line, "concurrent record", "no record may interleave mid-line")
	}
}
