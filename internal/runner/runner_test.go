package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netai-lab/timetravel-eval/internal/suite"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRunner_Run(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "outputs", "video1_claude.json"),
		`{"chunk_responses": [{"content": "[{\"00:00:28\": [1, 4]}, {\"00:00:30\": [2]}]"}]}`)
	writeFile(t, filepath.Join(dir, "outputs", "video1_gpt.json"),
		`{"chunk_responses": [{"content": "no structured output here"}]}`)
	writeFile(t, filepath.Join(dir, "outputs", "video1_broken.json"), `{not json`)

	loaded := &suite.Loaded{
		Suite: &suite.Suite{
			Name: "smoke",
			Scenarios: []suite.Scenario{
				{
					ID:              "video-1",
					GroundTruth:     "00:00:28 1,4\n00:00:30 2,4",
					PredictionsGlob: "outputs/video1_*.json",
				},
			},
		},
		Dir: dir,
	}

	br, err := New().Run(context.Background(), loaded)
	require.NoError(t, err)

	assert.Equal(t, "smoke", br.SuiteName)
	require.Len(t, br.Results, 3)
	assert.Equal(t, 1, br.Errored())

	assert.Equal(t, "video1_broken.json", br.Results[0].Source)
	assert.Equal(t, "video1_claude.json", br.Results[1].Source)
	assert.Equal(t, "video1_gpt.json", br.Results[2].Source)

	assert.Error(t, br.Results[0].Err)
	assert.Nil(t, br.Results[0].Evaluation)

	claude := br.Results[1]
	require.NotNil(t, claude.Evaluation)
	assert.Equal(t, "video-1", claude.Scenario)
	assert.Equal(t, 3, claude.Evaluation.Aggregate.TruePositives)
	assert.Equal(t, 1, claude.Evaluation.Aggregate.FalseNegatives)
	assert.InDelta(t, 1.0, claude.Evaluation.Aggregate.Precision, 1e-9)
	assert.InDelta(t, 0.75, claude.Evaluation.Aggregate.Recall, 1e-9)

	gpt := br.Results[2]
	require.NotNil(t, gpt.Evaluation)
	assert.Equal(t, 4, gpt.Evaluation.Aggregate.FalseNegatives)
	assert.InDelta(t, 0.0, gpt.Evaluation.Aggregate.Recall, 1e-9)
}

func TestRunner_Run_GroundTruthFileMissing(t *testing.T) {
	loaded := &suite.Loaded{
		Suite: &suite.Suite{
			Name: "smoke",
			Scenarios: []suite.Scenario{
				{
					ID:              "video-1",
					GroundTruthFile: "annotations/missing.txt",
					PredictionsGlob: "*.json",
				},
			},
		},
		Dir: t.TempDir(),
	}

	br, err := New().Run(context.Background(), loaded)
	require.NoError(t, err)

	require.Len(t, br.Results, 1)
	assert.Equal(t, "video-1", br.Results[0].Scenario)
	require.Error(t, br.Results[0].Err)
	assert.Contains(t, br.Results[0].Err.Error(), "resolve ground truth")
}

func TestRunner_Run_NoMatchingSources(t *testing.T) {
	loaded := &suite.Loaded{
		Suite: &suite.Suite{
			Name: "smoke",
			Scenarios: []suite.Scenario{
				{
					ID:              "video-1",
					GroundTruth:     "00:00:28 1",
					PredictionsGlob: "outputs/*.json",
				},
			},
		},
		Dir: t.TempDir(),
	}

	br, err := New().Run(context.Background(), loaded)
	require.NoError(t, err)
	assert.Empty(t, br.Results)
}

func TestRunner_Run_CancelledContext(t *testing.T) {
	loaded := &suite.Loaded{
		Suite: &suite.Suite{
			Name: "smoke",
			Scenarios: []suite.Scenario{
				{
					ID:              "video-1",
					GroundTruth:     "00:00:28 1",
					PredictionsGlob: "*.json",
				},
			},
		},
		Dir: t.TempDir(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Run(ctx, loaded)
	assert.ErrorIs(t, err, context.Canceled)
}
