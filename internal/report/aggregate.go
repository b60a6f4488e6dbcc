package report

// MeanMetrics averages the metrics of the entries that produced a
// record. The second return value is the number of entries included.
func MeanMetrics(entries []Entry) (Metrics, int) {
	var m Metrics
	n := 0

	for _, e := range entries {
		if e.Record == nil {
			continue
		}
		m.Precision += e.Record.Metrics.Precision
		m.Recall += e.Record.Metrics.Recall
		m.F1 += e.Record.Metrics.F1
		n++
	}

	if n > 0 {
		m.Precision /= float64(n)
		m.Recall /= float64(n)
		m.F1 /= float64(n)
	}

	return m, n
}
