package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/netai-lab/timetravel-eval/internal/runner"
)

// Generate converts a batch result into the serializable report,
// stamping run metadata.
func Generate(br *runner.BatchResult, runID uuid.UUID) *BatchReport {
	r := &BatchReport{
		Meta: Meta{
			RunID:       runID,
			Suite:       br.SuiteName,
			Timestamp:   time.Now().UTC(),
			Environment: NewEnvironmentInfo(),
		},
		Results: make([]Entry, 0, len(br.Results)),
	}

	for _, sr := range br.Results {
		entry := Entry{
			Scenario: sr.Scenario,
			Source:   sr.Source,
		}
		if sr.Err != nil {
			entry.Error = sr.Err.Error()
		} else {
			entry.Record = Structured(sr.Evaluation, sr.Source)
		}
		r.Results = append(r.Results, entry)
	}

	return r
}
