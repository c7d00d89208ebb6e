package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    Stage
		to      Stage
		allowed bool
	}{
		{"new to assigned", StageNew, StageAssigned, true},
		{"new to in progress", StageNew, StageInProgress, true},
		{"new to scrapped", StageNew, StageScrapped, true},
		{"new to repaired is a skip", StageNew, StageRepaired, false},
		{"assigned back to new", StageAssigned, StageNew, true},
		{"assigned to repaired is a skip", StageAssigned, StageRepaired, false},
		{"in progress to repaired", StageInProgress, StageRepaired, true},
		{"in progress to assigned", StageInProgress, StageAssigned, true},
		{"in progress back to new", StageInProgress, StageNew, false},
		{"repaired is terminal", StageRepaired, StageInProgress, false},
		{"scrapped is terminal", StageScrapped, StageNew, false},
		{"same stage is a no-op", StageRepaired, StageRepaired, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Transition(tc.from, tc.to)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				var rejection *RejectionError
				require.ErrorAs(t, err, &rejection)
			}
		})
	}
}

func TestTransitionRejectsUnknownStage(t *testing.T) {
	err := Transition(StageNew, Stage("BROKEN"))
	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
}

func TestGuardPreventiveRequiresSchedule(t *testing.T) {
	guard := Guard{Type: TypePreventive, Stage: StageNew}
	err := guard.Check()
	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Contains(t, rejection.Reason, "Scheduled date")

	guard.HasScheduled = true
	assert.NoError(t, guard.Check())
}

func TestGuardRepairedRequiresDuration(t *testing.T) {
	guard := Guard{Type: TypeCorrective, Stage: StageRepaired}
	err := guard.Check()
	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Contains(t, rejection.Reason, "Duration")

	guard.HasDuration = true
	assert.NoError(t, guard.Check())
}

func TestGuardCorrectiveNeedsNoSchedule(t *testing.T) {
	guard := Guard{Type: TypeCorrective, Stage: StageNew}
	assert.NoError(t, guard.Check())
}

func TestTerminal(t *testing.T) {
	assert.True(t, StageRepaired.Terminal())
	assert.True(t, StageScrapped.Terminal())
	assert.False(t, StageNew.Terminal())
	assert.False(t, StageAssigned.Terminal())
	assert.False(t, StageInProgress.Terminal())
}
