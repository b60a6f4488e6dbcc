package report

import (
	"github.com/netai-lab/timetravel-eval/internal/metrics"
)

// Structured converts an evaluation into the stable record shape for one
// source. Bucket order follows the chronological order of the
// evaluation's records.
func Structured(ev *metrics.Evaluation, source string) *Record {
	rec := &Record{
		Source: source,
		Metrics: Metrics{
			Precision: ev.Aggregate.Precision,
			Recall:    ev.Aggregate.Recall,
			F1:        ev.Aggregate.F1,
		},
		Details: Details{
			Correct:           make([]ExactEntry, 0),
			IncorrectObjects:  make([]MismatchEntry, 0),
			MissingTimestamps: make([]MissingEntry, 0),
			ExtraTimestamps:   make([]ExtraEntry, 0),
		},
	}

	for _, r := range ev.Records {
		switch r.Kind {
		case metrics.KindExactMatch:
			rec.Details.Correct = append(rec.Details.Correct, ExactEntry{
				Timestamp: r.Timestamp,
				Objects:   r.GroundTruth,
			})
		case metrics.KindPartialMatch:
			rec.Details.IncorrectObjects = append(rec.Details.IncorrectObjects, MismatchEntry{
				Timestamp:   r.Timestamp,
				GroundTruth: r.GroundTruth,
				Predicted:   r.Predicted,
				Correct:     r.Correct,
				Extra:       r.Extra,
				Missing:     r.Missing,
			})
		case metrics.KindMissingTimestamp:
			rec.Details.MissingTimestamps = append(rec.Details.MissingTimestamps, MissingEntry{
				Timestamp:   r.Timestamp,
				GroundTruth: r.GroundTruth,
			})
		case metrics.KindExtraTimestamp:
			rec.Details.ExtraTimestamps = append(rec.Details.ExtraTimestamps, ExtraEntry{
				Timestamp: r.Timestamp,
				Predicted: r.Predicted,
			})
		}
	}

	return rec
}
