package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/netai-lab/timetravel-eval/internal/metrics"
)

const barWidth = 80

// WriteSummary renders one evaluation as a human-readable block. The
// exact match section is always present; the remaining sections appear
// only when they have entries.
func WriteSummary(ev *metrics.Evaluation, label string, w io.Writer) {
	bar := strings.Repeat("=", barWidth)

	fmt.Fprintln(w, bar)
	fmt.Fprintf(w, "Object Detection Comparison: %s\n", label)
	fmt.Fprintln(w, bar)

	agg := ev.Aggregate
	fmt.Fprintf(w, "\nMetrics:\n")
	fmt.Fprintf(w, "  Precision: %.4f (%.2f%%)\n", agg.Precision, agg.Precision*100)
	fmt.Fprintf(w, "  Recall:    %.4f (%.2f%%)\n", agg.Recall, agg.Recall*100)
	fmt.Fprintf(w, "  F1 Score:  %.4f (%.2f%%)\n", agg.F1, agg.F1*100)

	exact := ev.ByKind(metrics.KindExactMatch)
	fmt.Fprintf(w, "\nExact matches: %d\n", len(exact))
	for _, r := range exact {
		fmt.Fprintf(w, "  %s: %v\n", r.Timestamp, r.GroundTruth)
	}

	if partial := ev.ByKind(metrics.KindPartialMatch); len(partial) > 0 {
		fmt.Fprintf(w, "\nPartial matches: %d\n", len(partial))
		for _, r := range partial {
			fmt.Fprintf(w, "  %s:\n", r.Timestamp)
			fmt.Fprintf(w, "    ground truth: %v\n", r.GroundTruth)
			fmt.Fprintf(w, "    predicted:    %v\n", r.Predicted)
			if len(r.Extra) > 0 {
				fmt.Fprintf(w, "    extra:        %v\n", r.Extra)
			}
			if len(r.Missing) > 0 {
				fmt.Fprintf(w, "    missing:      %v\n", r.Missing)
			}
		}
	}

	if missing := ev.ByKind(metrics.KindMissingTimestamp); len(missing) > 0 {
		fmt.Fprintf(w, "\nMissing timestamps: %d\n", len(missing))
		for _, r := range missing {
			fmt.Fprintf(w, "  %s: %v (no prediction)\n", r.Timestamp, r.GroundTruth)
		}
	}

	if extra := ev.ByKind(metrics.KindExtraTimestamp); len(extra) > 0 {
		fmt.Fprintf(w, "\nExtra timestamps: %d\n", len(extra))
		for _, r := range extra {
			fmt.Fprintf(w, "  %s: %v (not in ground truth)\n", r.Timestamp, r.Predicted)
		}
	}

	fmt.Fprintf(w, "\n%s\n", bar)
}
