// File: noise_test.go
// Title: Noise Suppression Tests
// Description: Tests that suppressed namespaces never emit below their
//              forced minimum, regardless of how verbose the root is.
// Author: voyager-mc
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSilenceNoisyLoggersForcesWarningFloor(t *testing.T) {
	reg := NewRegistry()
	reg.Root().SetLevel(LevelDebug)
	reg.SilenceNoisyLoggers()

	for _, name := range noisyNamespaces {
		assert.Equal(t, LevelWarning, reg.GetLogger(name).EffectiveLevel(),
			"%s must not inherit the DEBUG root level", name)
	}
}

func TestSuppressedNamespaceNeverEmitsBelowFloor(t *testing.T) {
	reg := NewRegistry()
	sink := &captureSink{}
	reg.Root().AddSink(sink)
	reg.Root().SetLevel(LevelDebug)
	reg.SilenceNoisyLoggers()

	noisy := reg.GetLogger("openai")
	noisy.Debug("chatter")
	noisy.Info("chatter")
	assert.Empty(t, sink.all())

	noisy.Warning("worth hearing")
	records := sink.all()
	require.Len(t, records, 1)
	assert.Equal(t, "worth hearing", records[0].Message)
}

func TestSuppressionInheritedByChildren(t *testing.T) {
	reg := NewRegistry()
	reg.Root().SetLevel(LevelDebug)
	reg.SilenceNoisyLoggers()

	child := reg.GetLogger("langchain.client.retry")
	assert.Equal(t, LevelWarning, child.EffectiveLevel())
}

func TestUnsuppressedNamespacesUnaffected(t *testing.T) {
	reg := NewRegistry()
	reg.Root().SetLevel(LevelDebug)
	reg.SilenceNoisyLoggers()

	assert.Equal(t, LevelDebug, reg.GetLogger("voyager.agents.action").EffectiveLevel())
}
