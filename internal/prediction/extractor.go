package prediction

import (
	"encoding/json"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/netai-lab/timetravel-eval/internal/domain"
)

// fencedArrayRe captures a JSON array inside a markdown code fence. The
// language tag is optional since models label fences inconsistently.
var fencedArrayRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\[.*?\\])\\s*```")

// candidateFunc inspects chunk text and either returns a JSON array
// candidate or declines.
type candidateFunc func(content string) (string, bool)

func fencedArray(content string) (string, bool) {
	m := fencedArrayRe.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func bareArray(content string) (string, bool) {
	if strings.HasPrefix(content, "[") && strings.HasSuffix(content, "]") {
		return content, true
	}
	return "", false
}

// candidates are tried in priority order; the first extractor that yields
// a candidate wins for that chunk.
var candidates = []candidateFunc{fencedArray, bareArray}

// Parse extracts a timestamp mapping from a source's chunks. Expected
// chunk payloads are JSON arrays of single-key objects mapping a
// timestamp to a list of object ids. Chunks without extractable JSON are
// skipped; chunks whose candidate fails to decode are logged and skipped,
// never aborting the remaining chunks. A timestamp repeated across chunks
// keeps the last occurrence.
func Parse(src *Source) domain.Mapping {
	mapping := make(domain.Mapping)

	for i, chunk := range src.ChunkResponses {
		content := strings.TrimSpace(chunk.Content)

		var candidate string
		found := false
		for _, extract := range candidates {
			if c, ok := extract(content); ok {
				candidate = c
				found = true
				break
			}
		}
		if !found {
			continue
		}

		var items []any
		if err := json.Unmarshal([]byte(candidate), &items); err != nil {
			slog.Warn("Failed to decode prediction JSON",
				"chunk", i,
				"error", err,
				"content", truncate(content, 200),
			)
			continue
		}

		for _, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				slog.Debug("Skipping non-object prediction entry", "chunk", i)
				continue
			}

			for timestamp, rawIDs := range obj {
				list, ok := rawIDs.([]any)
				if !ok {
					slog.Warn("Skipping prediction entry with non-array id list",
						"chunk", i, "timestamp", timestamp)
					continue
				}

				ids := domain.NewObjectSet()
				for _, raw := range list {
					id, ok := coerceID(raw)
					if !ok {
						slog.Warn("Skipping object id not representable as integer",
							"timestamp", timestamp, "value", raw)
						continue
					}
					ids.Add(id)
				}
				mapping[timestamp] = ids
			}
		}
	}

	return mapping
}

// coerceID converts a decoded JSON value to an object id. Numbers must be
// integral; numeric strings are accepted since models sometimes quote ids.
func coerceID(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case string:
		id, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}

// truncate shortens a string to maxLen characters for logging.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
