package groundtruth

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/netai-lab/timetravel-eval/internal/domain"
	"github.com/netai-lab/timetravel-eval/pkg/stringsutil"
)

// Parse converts annotation text into a timestamp mapping. Each non-empty
// line carries a timestamp followed by whitespace and a comma-separated
// object id list, e.g. "00:00:28 1,4". Lines with fewer than two fields
// are skipped, as are id tokens that are not integers. A repeated
// timestamp overwrites the earlier entry, matching the last-write-wins
// policy on the prediction side.
func Parse(text string) domain.Mapping {
	mapping := make(domain.Mapping)

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			slog.Warn("Skipping ground truth line with too few fields", "line", line)
			continue
		}

		timestamp := fields[0]
		tokens := stringsutil.RemoveEmptyStrings(stringsutil.TrimEach(strings.Split(fields[1], ",")))

		ids := domain.NewObjectSet()
		for _, tok := range tokens {
			id, err := strconv.Atoi(tok)
			if err != nil {
				slog.Warn("Skipping non-integer object id in ground truth", "timestamp", timestamp, "token", tok)
				continue
			}
			ids.Add(id)
		}

		mapping[timestamp] = ids
	}

	return mapping
}

// LoadFile reads an annotation file and parses its contents.
func LoadFile(path string) (domain.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ground truth file: %w", err)
	}

	return Parse(string(data)), nil
}
