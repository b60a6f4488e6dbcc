package report

import (
	"runtime"
	"time"

	"github.com/google/uuid"
)

// Record is the structured evaluation result for one prediction source.
// Field names and nesting are the stable contract downstream consumers
// rely on.
type Record struct {
	Source  string  `json:"source"`
	Metrics Metrics `json:"metrics"`
	Details Details `json:"details"`
}

type Metrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1_score"`
}

// Details holds the four per-timestamp classification buckets. All four
// lists are serialized even when empty.
type Details struct {
	Correct           []ExactEntry    `json:"correct"`
	IncorrectObjects  []MismatchEntry `json:"incorrect_objects"`
	MissingTimestamps []MissingEntry  `json:"missing_timestamps"`
	ExtraTimestamps   []ExtraEntry    `json:"extra_timestamps"`
}

type ExactEntry struct {
	Timestamp string `json:"timestamp"`
	Objects   []int  `json:"objects"`
}

type MismatchEntry struct {
	Timestamp   string `json:"timestamp"`
	GroundTruth []int  `json:"ground_truth"`
	Predicted   []int  `json:"predicted"`
	Correct     []int  `json:"correct"`
	Extra       []int  `json:"extra"`
	Missing     []int  `json:"missing"`
}

type MissingEntry struct {
	Timestamp   string `json:"timestamp"`
	GroundTruth []int  `json:"ground_truth"`
}

type ExtraEntry struct {
	Timestamp string `json:"timestamp"`
	Predicted []int  `json:"predicted"`
}

// BatchReport collects every result of a suite run together with run
// metadata.
type BatchReport struct {
	Meta    Meta    `json:"meta"`
	Results []Entry `json:"results"`
}

type Meta struct {
	RunID       uuid.UUID       `json:"run_id"`
	Suite       string          `json:"suite"`
	Timestamp   time.Time       `json:"timestamp"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

// Entry pairs one scenario source with either its record or the error
// that prevented evaluation.
type Entry struct {
	Scenario string  `json:"scenario"`
	Source   string  `json:"source"`
	Record   *Record `json:"record,omitempty"`
	Error    string  `json:"error,omitempty"`
}
