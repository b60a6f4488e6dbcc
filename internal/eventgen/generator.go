package eventgen

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/netai-lab/timetravel-eval/pkg/utils"
)

// TimeLayout is ISO 8601 at second precision, matching the timestamp
// format of the annotation tooling.
const TimeLayout = "2006-01-02T15:04:05"

// EventTypes are generated in this order before sorting by timestamp.
var EventTypes = []string{"collision", "cluster", "pass_out"}

type Range [2]float64

type Config struct {
	XRange        Range
	YRange        Range
	ZRange        Range
	Start         time.Time
	End           time.Time
	EventsPerType int
}

// DefaultConfig bounds events to the reference building volume over a
// one minute window.
func DefaultConfig() Config {
	return Config{
		XRange:        Range{213, 3671},
		YRange:        Range{89.5, 200},
		ZRange:        Range{-2879, -358},
		Start:         time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2025, 1, 1, 0, 1, 0, 0, time.UTC),
		EventsPerType: 3,
	}
}

type Location struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Event struct {
	Type      string   `json:"type"`
	Timestamp string   `json:"timestamp"`
	Location  Location `json:"location"`
}

type BuildingBounds struct {
	XRange Range `json:"x_range"`
	YRange Range `json:"y_range"`
	ZRange Range `json:"z_range"`
}

type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Metadata struct {
	BuildingBounds BuildingBounds `json:"building_bounds"`
	TimeRange      TimeRange      `json:"time_range"`
	TotalEvents    int            `json:"total_events"`
	EventTypes     map[string]int `json:"event_types"`
}

type Dataset struct {
	Metadata Metadata `json:"metadata"`
	Events   []Event  `json:"events"`
}

// Generator produces randomized key events inside the configured
// bounds. The random source is explicit so a fixed seed reproduces a
// dataset exactly.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

func New(cfg Config, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// Generate fills every event type's quota and sorts the result by
// timestamp.
func (g *Generator) Generate() *Dataset {
	events := make([]Event, 0, len(EventTypes)*g.cfg.EventsPerType)

	for _, et := range EventTypes {
		for i := 0; i < g.cfg.EventsPerType; i++ {
			events = append(events, Event{
				Type:      et,
				Timestamp: g.randomTimestamp(),
				Location:  g.randomLocation(),
			})
		}
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Timestamp < events[j].Timestamp })

	counts := make(map[string]int, len(EventTypes))
	for _, et := range EventTypes {
		counts[et] = g.cfg.EventsPerType
	}

	return &Dataset{
		Metadata: Metadata{
			BuildingBounds: BuildingBounds{
				XRange: g.cfg.XRange,
				YRange: g.cfg.YRange,
				ZRange: g.cfg.ZRange,
			},
			TimeRange: TimeRange{
				Start: g.cfg.Start.Format(TimeLayout),
				End:   g.cfg.End.Format(TimeLayout),
			},
			TotalEvents: len(events),
			EventTypes:  counts,
		},
		Events: events,
	}
}

// WriteFile generates a dataset and saves it as indented JSON.
func (g *Generator) WriteFile(path string) (*Dataset, error) {
	ds := g.Generate()

	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("write dataset: %w", err)
	}
	return ds, nil
}

// randomTimestamp picks a uniform instant in the window and drops the
// sub-second part.
func (g *Generator) randomTimestamp() string {
	window := g.cfg.End.Sub(g.cfg.Start).Seconds()
	offset := g.rng.Float64() * window
	ts := g.cfg.Start.Add(time.Duration(offset * float64(time.Second))).Truncate(time.Second)
	return ts.Format(TimeLayout)
}

func (g *Generator) randomLocation() Location {
	return Location{
		X: utils.RoundDecimal(g.randomIn(g.cfg.XRange), 1),
		Y: utils.RoundDecimal(g.randomIn(g.cfg.YRange), 1),
		Z: utils.RoundDecimal(g.randomIn(g.cfg.ZRange), 1),
	}
}

func (g *Generator) randomIn(r Range) float64 {
	return r[0] + g.rng.Float64()*(r[1]-r[0])
}
