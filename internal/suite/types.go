package suite

import (
	"path/filepath"

	"github.com/netai-lab/timetravel-eval/internal/domain"
	"github.com/netai-lab/timetravel-eval/internal/groundtruth"
)

type Suite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Scenarios   []Scenario `yaml:"scenarios"`
}

// Scenario pairs one piece of ground truth with the prediction sources
// to score against it. Ground truth is either inline annotation text or
// a file path resolved relative to the suite file's directory.
type Scenario struct {
	ID              string `yaml:"id"`
	Description     string `yaml:"description"`
	GroundTruth     string `yaml:"ground_truth,omitempty"`
	GroundTruthFile string `yaml:"ground_truth_file,omitempty"`
	PredictionsGlob string `yaml:"predictions_glob"`
}

// ResolveGroundTruth parses the scenario's annotation, reading the
// ground truth file relative to dir when no inline text is set.
func (s *Scenario) ResolveGroundTruth(dir string) (domain.Mapping, error) {
	if s.GroundTruth != "" {
		return groundtruth.Parse(s.GroundTruth), nil
	}

	path := s.GroundTruthFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return groundtruth.LoadFile(path)
}

// ResolvePredictionsGlob anchors a relative glob at the suite directory.
func (s *Scenario) ResolvePredictionsGlob(dir string) string {
	if filepath.IsAbs(s.PredictionsGlob) {
		return s.PredictionsGlob
	}
	return filepath.Join(dir, s.PredictionsGlob)
}
