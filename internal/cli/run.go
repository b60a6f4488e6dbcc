package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/netai-lab/timetravel-eval/internal/apperr"
	"github.com/netai-lab/timetravel-eval/internal/report"
	"github.com/netai-lab/timetravel-eval/internal/runner"
	"github.com/netai-lab/timetravel-eval/internal/store"
	"github.com/netai-lab/timetravel-eval/internal/suite"
	"github.com/spf13/cobra"
)

var (
	suitePath       string
	groundTruthPath string
	predictionsGlob string
	outputDir       string
	dbPath          string
	reportPath      string
	quiet           bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate prediction sources against ground truth",
	Long: `Runs an evaluation suite: for every scenario the ground truth annotation
is parsed and each prediction file matching the scenario glob is scored
against it. Per source summaries and a suite table are printed, and records
can be persisted as JSON files and into a SQLite run history.

Quick mode skips the suite file: --ground-truth and --predictions evaluate a
single scenario directly.`,
	Example: `  # Run a suite
  timetravel-eval run --suite suites/warehouse.yaml

  # Quick mode: one annotation file against a glob of prediction files
  timetravel-eval run --ground-truth key_table.txt --predictions "outputs/*.json"

  # Persist per source records and run history
  timetravel-eval run --suite suites/warehouse.yaml -o results --db eval.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if suitePath == "" {
			suitePath = os.Getenv("TTE_SUITE")
		}
		if outputDir == "" {
			outputDir = os.Getenv("TTE_OUTPUT_DIR")
		}
		if dbPath == "" {
			dbPath = os.Getenv("TTE_DB_PATH")
		}

		loaded, err := loadSuite()
		if err != nil {
			return err
		}

		result, err := runner.New().Run(ctx, loaded)
		if err != nil {
			return err
		}
		if len(result.Results) == 0 {
			return fmt.Errorf("no prediction sources matched")
		}

		if !quiet {
			for _, sr := range result.Results {
				if sr.Err != nil {
					continue
				}
				report.WriteSummary(sr.Evaluation, sr.Source, os.Stdout)
			}
		}

		runID := uuid.New()
		rpt := report.Generate(result, runID)
		report.WriteTable(rpt, os.Stdout)

		if err := persist(ctx, runID, loaded.Suite.Name, rpt); err != nil {
			return err
		}

		if reportPath != "" {
			if err := report.WriteJSON(rpt, reportPath); err != nil {
				return fmt.Errorf("write JSON report: %w", err)
			}
			slog.Info("Report written", "path", reportPath)
		}

		if n := result.Errored(); n == len(result.Results) {
			return fmt.Errorf("all %d sources failed evaluation", n)
		}
		return nil
	},
}

// loadSuite builds the evaluation input from --suite, or from the quick
// mode pair when no suite file is given.
func loadSuite() (*suite.Loaded, error) {
	quick := groundTruthPath != "" || predictionsGlob != ""
	if suitePath != "" && quick {
		return nil, apperr.NewValidation("cannot combine --suite with --ground-truth/--predictions")
	}
	if suitePath != "" {
		return suite.LoadFromFile(suitePath)
	}
	if groundTruthPath == "" || predictionsGlob == "" {
		return nil, apperr.NewValidation("either --suite or both --ground-truth and --predictions are required")
	}

	return &suite.Loaded{
		Suite: &suite.Suite{
			Name: "quick",
			Scenarios: []suite.Scenario{{
				ID:              "quick",
				GroundTruthFile: groundTruthPath,
				PredictionsGlob: predictionsGlob,
			}},
		},
		Dir: ".",
	}, nil
}

// persist fans successful records out to the configured stores. No
// configured store means console output only.
func persist(ctx context.Context, runID uuid.UUID, suiteName string, rpt *report.BatchReport) error {
	var stores []store.Store
	if outputDir != "" {
		js, err := store.NewJSONFile(outputDir)
		if err != nil {
			return fmt.Errorf("open output dir: %w", err)
		}
		stores = append(stores, js)
	}
	if dbPath != "" {
		db, err := store.OpenSQLite(ctx, dbPath)
		if err != nil {
			return fmt.Errorf("open history database: %w", err)
		}
		if err := db.StartRun(ctx, runID, suiteName); err != nil {
			db.Close()
			return fmt.Errorf("record run: %w", err)
		}
		stores = append(stores, db)
	}
	if len(stores) == 0 {
		return nil
	}

	multi := store.NewMulti(stores...)
	defer func() {
		if err := multi.Close(); err != nil {
			slog.Warn("Failed to close result stores", "error", err)
		}
	}()

	for _, entry := range rpt.Results {
		if entry.Record == nil {
			continue
		}
		if err := multi.Save(ctx, entry.Scenario, entry.Record); err != nil {
			return fmt.Errorf("save result for %s: %w", entry.Source, err)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&suitePath, "suite", "s", "", "Path to a suite YAML file (or TTE_SUITE)")
	runCmd.Flags().StringVar(&groundTruthPath, "ground-truth", "", "Ground truth annotation file (quick mode)")
	runCmd.Flags().StringVar(&predictionsGlob, "predictions", "", "Glob of prediction response files (quick mode)")
	runCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for per source result JSON (or TTE_OUTPUT_DIR)")
	runCmd.Flags().StringVar(&dbPath, "db", "", "SQLite database recording run history (or TTE_DB_PATH)")
	runCmd.Flags().StringVar(&reportPath, "report", "", "Write the batch report as JSON to this path")
	runCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per source summaries")
}
