package eventgen

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	cfg := DefaultConfig()
	ds := New(cfg, rand.New(rand.NewSource(42))).Generate()

	assert.Equal(t, 9, ds.Metadata.TotalEvents)
	assert.Len(t, ds.Events, 9)
	assert.Equal(t, map[string]int{"collision": 3, "cluster": 3, "pass_out": 3}, ds.Metadata.EventTypes)
	assert.Equal(t, Range{213, 3671}, ds.Metadata.BuildingBounds.XRange)
	assert.Equal(t, "2025-01-01T00:00:00", ds.Metadata.TimeRange.Start)
	assert.Equal(t, "2025-01-01T00:01:00", ds.Metadata.TimeRange.End)

	timestamps := make([]string, 0, len(ds.Events))
	counts := make(map[string]int)
	for _, ev := range ds.Events {
		counts[ev.Type]++
		timestamps = append(timestamps, ev.Timestamp)

		ts, err := time.Parse("2006-01-02T15:04:05", ev.Timestamp)
		require.NoError(t, err)
		assert.False(t, ts.Before(cfg.Start))
		assert.False(t, ts.After(cfg.End))

		assert.GreaterOrEqual(t, ev.Location.X, cfg.XRange[0]-0.05)
		assert.LessOrEqual(t, ev.Location.X, cfg.XRange[1]+0.05)
		assert.GreaterOrEqual(t, ev.Location.Y, cfg.YRange[0]-0.05)
		assert.LessOrEqual(t, ev.Location.Y, cfg.YRange[1]+0.05)
		assert.GreaterOrEqual(t, ev.Location.Z, cfg.ZRange[0]-0.05)
		assert.LessOrEqual(t, ev.Location.Z, cfg.ZRange[1]+0.05)
	}

	assert.Equal(t, map[string]int{"collision": 3, "cluster": 3, "pass_out": 3}, counts)
	assert.True(t, sort.StringsAreSorted(timestamps))
}

func TestGenerator_SameSeedSameDataset(t *testing.T) {
	cfg := DefaultConfig()

	first := New(cfg, rand.New(rand.NewSource(7))).Generate()
	second := New(cfg, rand.New(rand.NewSource(7))).Generate()

	assert.Equal(t, first, second)
}

func TestGenerator_DifferentSeeds(t *testing.T) {
	cfg := DefaultConfig()

	first := New(cfg, rand.New(rand.NewSource(1))).Generate()
	second := New(cfg, rand.New(rand.NewSource(2))).Generate()

	assert.NotEqual(t, first.Events, second.Events)
}

func TestGenerator_ZeroEventsPerType(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EventsPerType = 0

	ds := New(cfg, rand.New(rand.NewSource(1))).Generate()

	assert.Empty(t, ds.Events)
	assert.Equal(t, 0, ds.Metadata.TotalEvents)
}

func TestGenerator_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key_events.json")

	written, err := New(DefaultConfig(), rand.New(rand.NewSource(42))).WriteFile(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Dataset
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *written, got)
}
