package cli

import (
	"log/slog"
	"os"

	"github.com/netai-lab/timetravel-eval/pkg/config/env"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	envFile string

	rootCmd = &cobra.Command{
		Use:   "timetravel-eval",
		Short: "Score time-indexed object detections against ground truth",
		Long: `timetravel-eval compares object presence predictions extracted from LLM
responses with hand-authored annotations and reports set based detection
metrics per timestamp. Use 'run --help' for evaluation options.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)
			return env.LoadDotEnv(envFile)
		},
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to a .env file with TTE_* defaults")
}
