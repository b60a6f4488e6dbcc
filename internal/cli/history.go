package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/netai-lab/timetravel-eval/internal/apperr"
	"github.com/netai-lab/timetravel-eval/internal/store"
	"github.com/spf13/cobra"
)

var historyDBPath string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded evaluation runs",
	Long: `Lists past evaluation runs from the SQLite history database with their
mean detection metrics, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if historyDBPath == "" {
			historyDBPath = os.Getenv("TTE_DB_PATH")
		}
		if historyDBPath == "" {
			return apperr.NewValidation("--db is required (or set TTE_DB_PATH)")
		}

		st, err := store.OpenSQLite(ctx, historyDBPath)
		if err != nil {
			return fmt.Errorf("open history database: %w", err)
		}
		defer st.Close()

		runs, err := st.Runs(ctx)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded yet.")
			return nil
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "\n=== Evaluation History ===\n\n")

		header := []string{"Run", "Suite", "Created", "Sources", "Precision", "Recall", "F1"}
		fmt.Fprintln(tw, strings.Join(header, "\t"))

		sep := make([]string, len(header))
		for i := range sep {
			sep[i] = "---"
		}
		fmt.Fprintln(tw, strings.Join(sep, "\t"))

		for _, run := range runs {
			row := []string{
				run.ID.String(),
				run.Suite,
				run.CreatedAt.Format("2006-01-02 15:04:05"),
				fmt.Sprintf("%d", run.Sources),
				fmt.Sprintf("%.4f", run.MeanPrecision),
				fmt.Sprintf("%.4f", run.MeanRecall),
				fmt.Sprintf("%.4f", run.MeanF1),
			}
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}

		fmt.Fprintln(tw)
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyDBPath, "db", "", "SQLite database recording run history (or TTE_DB_PATH)")
}
