package metrics

import (
	"sort"

	"github.com/netai-lab/timetravel-eval/internal/domain"
)

// Evaluate compares a prediction mapping against ground truth. Every
// timestamp present in either mapping yields exactly one Record, emitted
// in ascending timestamp order.
func Evaluate(groundTruth, predictions domain.Mapping) *Evaluation {
	var tp, fp, fn int
	records := make([]Record, 0, len(groundTruth)+len(predictions))

	for _, ts := range unionTimestamps(groundTruth, predictions) {
		gt, inTruth := groundTruth[ts]
		pred, inPred := predictions[ts]

		switch {
		case !inTruth:
			fp += pred.Len()
			records = append(records, Record{
				Timestamp: ts,
				Kind:      KindExtraTimestamp,
				Predicted: pred.Sorted(),
			})
		case !inPred:
			fn += gt.Len()
			records = append(records, Record{
				Timestamp:   ts,
				Kind:        KindMissingTimestamp,
				GroundTruth: gt.Sorted(),
			})
		default:
			correct := gt.Intersect(pred)
			extra := pred.Subtract(gt)
			missing := gt.Subtract(pred)

			tp += correct.Len()
			fp += extra.Len()
			fn += missing.Len()

			if gt.Equal(pred) {
				records = append(records, Record{
					Timestamp:   ts,
					Kind:        KindExactMatch,
					GroundTruth: gt.Sorted(),
				})
			} else {
				records = append(records, Record{
					Timestamp:   ts,
					Kind:        KindPartialMatch,
					GroundTruth: gt.Sorted(),
					Predicted:   pred.Sorted(),
					Correct:     correct.Sorted(),
					Extra:       extra.Sorted(),
					Missing:     missing.Sorted(),
				})
			}
		}
	}

	return &Evaluation{
		Aggregate: derive(tp, fp, fn),
		Records:   records,
	}
}

// derive computes precision, recall and F1 from the raw totals. A zero
// denominator yields a zero score, never NaN.
func derive(tp, fp, fn int) Aggregate {
	agg := Aggregate{
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
	}

	if tp+fp > 0 {
		agg.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		agg.Recall = float64(tp) / float64(tp+fn)
	}
	if agg.Precision+agg.Recall > 0 {
		agg.F1 = 2 * agg.Precision * agg.Recall / (agg.Precision + agg.Recall)
	}

	return agg
}

func unionTimestamps(a, b domain.Mapping) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for ts := range a {
		seen[ts] = struct{}{}
	}
	for ts := range b {
		seen[ts] = struct{}{}
	}

	keys := make([]string, 0, len(seen))
	for ts := range seen {
		keys = append(keys, ts)
	}
	sort.Strings(keys)
	return keys
}
