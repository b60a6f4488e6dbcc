package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteTable renders the per-source results of a batch run as an aligned
// table, followed by a mean row across the sources that evaluated.
func WriteTable(r *BatchReport, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Detection Evaluation: %s ===\n\n", r.Meta.Suite)

	header := []string{"Scenario", "Source", "Precision", "Recall", "F1", "Exact", "Partial", "Missing", "Extra", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, e := range r.Results {
		if e.Record == nil {
			row := []string{e.Scenario, e.Source, "-", "-", "-", "-", "-", "-", "-", "ERR"}
			fmt.Fprintln(tw, strings.Join(row, "\t"))
			continue
		}

		d := e.Record.Details
		row := []string{
			e.Scenario,
			e.Source,
			fmt.Sprintf("%.4f", e.Record.Metrics.Precision),
			fmt.Sprintf("%.4f", e.Record.Metrics.Recall),
			fmt.Sprintf("%.4f", e.Record.Metrics.F1),
			fmt.Sprintf("%d", len(d.Correct)),
			fmt.Sprintf("%d", len(d.IncorrectObjects)),
			fmt.Sprintf("%d", len(d.MissingTimestamps)),
			fmt.Sprintf("%d", len(d.ExtraTimestamps)),
			"OK",
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	if mean, n := MeanMetrics(r.Results); n > 0 {
		fmt.Fprintln(tw)
		row := []string{
			fmt.Sprintf("Mean (%d sources)", n),
			"",
			fmt.Sprintf("%.4f", mean.Precision),
			fmt.Sprintf("%.4f", mean.Recall),
			fmt.Sprintf("%.4f", mean.F1),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
	tw.Flush()
}
