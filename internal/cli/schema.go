package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/netai-lab/timetravel-eval/internal/eventgen"
	"github.com/netai-lab/timetravel-eval/internal/prediction"
	"github.com/netai-lab/timetravel-eval/internal/report"
	"github.com/netai-lab/timetravel-eval/pkg/schema"
	"github.com/spf13/cobra"
)

var schemaOutputDir string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write JSON Schemas for the wire formats",
	Long: `Writes JSON Schema documents for the prediction source format, the batch
report and the generated key-event dataset, for tooling that produces or
consumes these files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(schemaOutputDir, 0755); err != nil {
			return fmt.Errorf("create schema dir: %w", err)
		}

		targets := []struct {
			value any
			title string
			file  string
		}{
			{prediction.Source{}, "PredictionSource", "prediction_source.schema.json"},
			{report.BatchReport{}, "BatchReport", "batch_report.schema.json"},
			{eventgen.Dataset{}, "KeyEventDataset", "key_event_dataset.schema.json"},
		}

		for _, tgt := range targets {
			data, err := schema.MarshalIndent(tgt.value, tgt.title)
			if err != nil {
				return fmt.Errorf("generate %s schema: %w", tgt.title, err)
			}

			path := filepath.Join(schemaOutputDir, tgt.file)
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			slog.Info("Schema written", "path", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().StringVarP(&schemaOutputDir, "output", "o", "api", "Output directory for schema files")
}
