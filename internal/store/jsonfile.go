package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/netai-lab/timetravel-eval/internal/report"
)

// JSONFile writes one comparison result per prediction source into a
// flat directory, named "<source stem>__comparison_result.json".
// Sources sharing a stem across scenarios overwrite each other, so keep
// scenario globs disjoint when that matters.
type JSONFile struct {
	dir string
}

func NewJSONFile(dir string) (*JSONFile, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &JSONFile{dir: dir}, nil
}

func (s *JSONFile) Save(ctx context.Context, scenario string, rec *report.Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	stem := strings.TrimSuffix(rec.Source, filepath.Ext(rec.Source))
	path := filepath.Join(s.dir, stem+"__comparison_result.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

func (s *JSONFile) Close() error {
	return nil
}
