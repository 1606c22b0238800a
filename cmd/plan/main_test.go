package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mansoorceksport/titan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("weekly", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run([]string{"-split", "PPL", "-frequency", "5 days"}, &out))

		var schedule domain.WeeklySchedule
		require.NoError(t, json.Unmarshal(out.Bytes(), &schedule))
		assert.Equal(t, []domain.Focus{"Push", "Pull", "Legs", "Rest", "Push", "Pull", "Rest"}, schedule.Foci())
	})

	t.Run("targets", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run([]string{"-mode", "targets", "-sex", "male"}, &out))

		var targets domain.EnergyTargets
		require.NoError(t, json.Unmarshal(out.Bytes(), &targets))
		assert.Equal(t, 1674, targets.BMR)
	})

	t.Run("session", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run([]string{"-mode", "session", "-focus", "Legs"}, &out))
		assert.Contains(t, out.String(), `"title": "Legs Session"`)
	})

	t.Run("errors", func(t *testing.T) {
		assert.Error(t, run([]string{"-frequency", "9"}, &bytes.Buffer{}))
		assert.Error(t, run([]string{"-mode", "nope"}, &bytes.Buffer{}))
	})
}
