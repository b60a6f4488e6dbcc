package metrics

// Kind classifies the comparison outcome for a single timestamp.
type Kind string

const (
	KindExactMatch       Kind = "exact_match"
	KindPartialMatch     Kind = "partial_match"
	KindMissingTimestamp Kind = "missing_timestamp"
	KindExtraTimestamp   Kind = "extra_timestamp"
)

// Record is the comparison outcome for one timestamp. Id slices are
// ascending-sorted and only the fields relevant to the Kind are set:
// exact matches carry GroundTruth, partial matches carry every field,
// missing timestamps carry GroundTruth and extra timestamps Predicted.
type Record struct {
	Timestamp   string
	Kind        Kind
	GroundTruth []int
	Predicted   []int
	Correct     []int
	Extra       []int
	Missing     []int
}

// Aggregate holds the accumulated totals and derived scores of one
// evaluation. Totals count object ids, not timestamps.
type Aggregate struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
}

// Evaluation is the full outcome of comparing one prediction mapping
// against ground truth.
type Evaluation struct {
	Aggregate Aggregate
	Records   []Record
}

// ByKind returns the records of one classification, preserving the
// chronological order of Records. The result is never nil.
func (e *Evaluation) ByKind(k Kind) []Record {
	out := make([]Record, 0)
	for _, r := range e.Records {
		if r.Kind == k {
			out = append(out, r)
		}
	}
	return out
}
