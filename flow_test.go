package revet_test

import (
	"testing"

	"github.com/revetio/revet"
	"github.com/stretchr/testify/assert"
)

func TestFlow(t *testing.T) {
	t.Parallel()

	t.Run("starts idle with control enabled", func(t *testing.T) {
		t.Parallel()

		var f revet.Flow
		assert.Equal(t, revet.FlowIdle, f.State())
		assert.True(t, f.ControlEnabled())
		assert.Empty(t, f.Err())
	})

	t.Run("submit enters submitting and disables the control", func(t *testing.T) {
		t.Parallel()

		var f revet.Flow
		assert.True(t, f.Submit())
		assert.Equal(t, revet.FlowSubmitting, f.State())
		assert.True(t, f.Submitting())
		assert.False(t, f.ControlEnabled())
	})

	t.Run("refuses a second submit while in flight", func(t *testing.T) {
		t.Parallel()

		var f revet.Flow
		assert.True(t, f.Submit())
		assert.False(t, f.Submit())
		assert.Equal(t, revet.FlowSubmitting, f.State())
	})

	t.Run("succeed finishes the flight", func(t *testing.T) {
		t.Parallel()

		var f revet.Flow
		f.Submit()
		f.Succeed()
		assert.Equal(t, revet.FlowSucceeded, f.State())
		assert.True(t, f.ControlEnabled())
		assert.Empty(t, f.Err())
	})

	t.Run("fail records the message", func(t *testing.T) {
		t.Parallel()

		var f revet.Flow
		f.Submit()
		f.Fail("engine unavailable")
		assert.Equal(t, revet.FlowFailed, f.State())
		assert.Equal(t, "engine unavailable", f.Err())
	})

	t.Run("resubmit after failure clears the error", func(t *testing.T) {
		t.Parallel()

		var f revet.Flow
		f.Submit()
		f.Fail("engine unavailable")
		assert.True(t, f.Submit())
		assert.Equal(t, revet.FlowSubmitting, f.State())
		assert.Empty(t, f.Err())
	})

	t.Run("resubmit after success supersedes the old result", func(t *testing.T) {
		t.Parallel()

		var f revet.Flow
		f.Submit()
		f.Succeed()
		assert.True(t, f.Submit())
		assert.Equal(t, revet.FlowSubmitting, f.State())
	})

	t.Run("succeed and fail are ignored unless submitting", func(t *testing.T) {
		t.Parallel()

		var f revet.Flow
		f.Succeed()
		assert.Equal(t, revet.FlowIdle, f.State())
		f.Fail("stale")
		assert.Equal(t, revet.FlowIdle, f.State())
		assert.Empty(t, f.Err())
	})

	t.Run("reset returns to idle", func(t *testing.T) {
		t.Parallel()

		var f revet.Flow
		f.Submit()
		f.Fail("engine unavailable")
		f.Reset()
		assert.Equal(t, revet.FlowIdle, f.State())
		assert.Empty(t, f.Err())
	})

	t.Run("caption follows the submitting state", func(t *testing.T) {
		t.Parallel()

		var f revet.Flow
		assert.Equal(t, "Analyze", f.Caption("Analyze", "Analyzing..."))
		f.Submit()
		assert.Equal(t, "Analyzing...", f.Caption("Analyze", "Analyzing..."))
		f.Succeed()
		assert.Equal(t, "Analyze", f.Caption("Analyze", "Analyzing..."))
	})
}

func TestFlowState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", revet.FlowIdle.String())
	assert.Equal(t, "submitting", revet.FlowSubmitting.String())
	assert.Equal(t, "succeeded", revet.FlowSucceeded.String())
	assert.Equal(t, "failed", revet.FlowFailed.String())
	assert.Equal(t, "unknown", revet.FlowState(42).String())
}
