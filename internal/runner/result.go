package runner

import (
	"github.com/netai-lab/timetravel-eval/internal/metrics"
)

// SourceResult is the outcome for one prediction source within a
// scenario. Exactly one of Evaluation or Err is set.
type SourceResult struct {
	Scenario   string
	Source     string
	Path       string
	Evaluation *metrics.Evaluation
	Err        error
}

// BatchResult collects the outcomes of one suite run in scenario order,
// with sources sorted by file name within each scenario.
type BatchResult struct {
	SuiteName string
	Results   []SourceResult
}

// Errored counts the results that carry an error.
func (br *BatchResult) Errored() int {
	n := 0
	for _, r := range br.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
