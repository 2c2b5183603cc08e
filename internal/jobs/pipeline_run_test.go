package jobs

import (
	"testing"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
)

func TestPipelineRunArgs_Kind(t *testing.T) {
	require.Equal(t, "pipeline_run_execute", PipelineRunArgs{}.Kind())
}

func TestPipelineRunArgs_InsertOpts(t *testing.T) {
	opts := PipelineRunArgs{RunID: "run-1"}.InsertOpts()

	require.Equal(t, river.QueueDefault, opts.Queue)
	require.Equal(t, 3, opts.MaxAttempts)
	// Uniqueness by args and queue keeps redundant fan-out inserts idempotent
	// while a run's job is still pending.
	require.True(t, opts.UniqueOpts.ByArgs)
	require.True(t, opts.UniqueOpts.ByQueue)
}
