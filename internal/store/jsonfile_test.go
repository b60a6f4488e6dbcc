package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netai-lab/timetravel-eval/internal/report"
)

func sampleRecord(source string) *report.Record {
	return &report.Record{
		Source:  source,
		Metrics: report.Metrics{Precision: 1.0, Recall: 0.75, F1: 6.0 / 7.0},
		Details: report.Details{
			Correct:           []report.ExactEntry{{Timestamp: "00:00:28", Objects: []int{1, 4}}},
			IncorrectObjects:  []report.MismatchEntry{},
			MissingTimestamps: []report.MissingEntry{},
			ExtraTimestamps:   []report.ExtraEntry{},
		},
	}
}

func TestJSONFile_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "compare_outputs")

	s, err := NewJSONFile(dir)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save(context.Background(), "video-1", sampleRecord("claude_1.json")))

	data, err := os.ReadFile(filepath.Join(dir, "claude_1__comparison_result.json"))
	require.NoError(t, err)

	var got report.Record
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "claude_1.json", got.Source)
	assert.InDelta(t, 0.75, got.Metrics.Recall, 1e-9)
	require.Len(t, got.Details.Correct, 1)
	assert.Equal(t, []int{1, 4}, got.Details.Correct[0].Objects)
}

func TestJSONFile_SaveOverwrites(t *testing.T) {
	dir := t.TempDir()

	s, err := NewJSONFile(dir)
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), "video-1", sampleRecord("claude_1.json")))

	second := sampleRecord("claude_1.json")
	second.Metrics.Precision = 0.5
	require.NoError(t, s.Save(context.Background(), "video-2", second))

	data, err := os.ReadFile(filepath.Join(dir, "claude_1__comparison_result.json"))
	require.NoError(t, err)

	var got report.Record
	require.NoError(t, json.Unmarshal(data, &got))
	assert.InDelta(t, 0.5, got.Metrics.Precision, 1e-9)
}

type failingStore struct {
	err error
}

func (f *failingStore) Save(context.Context, string, *report.Record) error { return f.err }
func (f *failingStore) Close() error                                       { return f.err }

func TestMulti(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	a, err := NewJSONFile(dirA)
	require.NoError(t, err)
	b, err := NewJSONFile(dirB)
	require.NoError(t, err)

	m := NewMulti(a, b)
	require.NoError(t, m.Save(context.Background(), "video-1", sampleRecord("claude_1.json")))

	_, errA := os.Stat(filepath.Join(dirA, "claude_1__comparison_result.json"))
	_, errB := os.Stat(filepath.Join(dirB, "claude_1__comparison_result.json"))
	assert.NoError(t, errA)
	assert.NoError(t, errB)

	assert.NoError(t, m.Close())
}

func TestMulti_PropagatesSaveError(t *testing.T) {
	boom := errors.New("disk full")
	m := NewMulti(&failingStore{err: boom})

	assert.ErrorIs(t, m.Save(context.Background(), "video-1", sampleRecord("claude_1.json")), boom)
	assert.ErrorIs(t, m.Close(), boom)
}
