package suite

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/netai-lab/timetravel-eval/internal/apperr"
)

type Loaded struct {
	Suite *Suite
	Dir   string
}

func LoadFromFile(path string) (*Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	loaded, err := Parse(data)
	if err != nil {
		return nil, err
	}
	loaded.Dir = filepath.Dir(path)
	return loaded, nil
}

func Parse(data []byte) (*Loaded, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, apperr.NewValidationWrap("parse suite YAML", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &Loaded{Suite: &s}, nil
}

func validate(s *Suite) error {
	if s.Name == "" {
		return apperr.NewValidation("suite name is required")
	}
	if len(s.Scenarios) == 0 {
		return apperr.NewValidation("suite has no scenarios")
	}

	seen := make(map[string]struct{}, len(s.Scenarios))
	for i, sc := range s.Scenarios {
		if sc.ID == "" {
			return apperr.NewValidationf("scenario at index %d has no id", i)
		}
		if _, dup := seen[sc.ID]; dup {
			return apperr.NewValidationf("duplicate scenario id %q", sc.ID)
		}
		seen[sc.ID] = struct{}{}

		if sc.GroundTruth == "" && sc.GroundTruthFile == "" {
			return apperr.NewValidationf("scenario %q has no ground truth", sc.ID)
		}
		if sc.GroundTruth != "" && sc.GroundTruthFile != "" {
			return apperr.NewValidationf("scenario %q sets both inline ground truth and a file", sc.ID)
		}
		if sc.PredictionsGlob == "" {
			return apperr.NewValidationf("scenario %q has no predictions glob", sc.ID)
		}
	}

	return nil
}
