package runner

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/netai-lab/timetravel-eval/internal/domain"
	"github.com/netai-lab/timetravel-eval/internal/metrics"
	"github.com/netai-lab/timetravel-eval/internal/prediction"
	"github.com/netai-lab/timetravel-eval/internal/suite"
)

type Runner struct{}

func New() *Runner {
	return &Runner{}
}

// Run evaluates every scenario of a loaded suite. A prediction source
// that fails to load is recorded with its error and never aborts the
// batch; a scenario whose ground truth cannot be resolved contributes a
// single errored result for the scenario itself.
func (r *Runner) Run(ctx context.Context, loaded *suite.Loaded) (*BatchResult, error) {
	br := &BatchResult{SuiteName: loaded.Suite.Name}

	for i := range loaded.Suite.Scenarios {
		sc := &loaded.Suite.Scenarios[i]

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		gt, err := sc.ResolveGroundTruth(loaded.Dir)
		if err != nil {
			slog.Warn("Ground truth unavailable, skipping scenario", "scenario", sc.ID, "error", err)
			br.Results = append(br.Results, SourceResult{
				Scenario: sc.ID,
				Err:      fmt.Errorf("resolve ground truth: %w", err),
			})
			continue
		}

		paths, err := filepath.Glob(sc.ResolvePredictionsGlob(loaded.Dir))
		if err != nil {
			br.Results = append(br.Results, SourceResult{
				Scenario: sc.ID,
				Err:      fmt.Errorf("bad predictions glob: %w", err),
			})
			continue
		}
		if len(paths) == 0 {
			slog.Warn("No prediction files matched", "scenario", sc.ID, "glob", sc.PredictionsGlob)
			continue
		}
		sort.Strings(paths)

		for _, path := range paths {
			br.Results = append(br.Results, evaluateSource(sc.ID, path, gt))
		}
	}

	return br, nil
}

func evaluateSource(scenarioID, path string, gt domain.Mapping) SourceResult {
	res := SourceResult{
		Scenario: scenarioID,
		Source:   filepath.Base(path),
		Path:     path,
	}

	src, err := prediction.LoadFile(path)
	if err != nil {
		slog.Warn("Prediction source failed", "scenario", scenarioID, "source", res.Source, "error", err)
		res.Err = err
		return res
	}

	res.Evaluation = metrics.Evaluate(gt, prediction.Parse(src))
	return res
}
