// Package model ties the fitted preprocessor and forest into the single
// opaque artifact shared by the trainer and the server.
package model

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/salarycast/salarycast/pkg/dataset"
	"github.com/salarycast/salarycast/pkg/eval"
	"github.com/salarycast/salarycast/pkg/forest"
	"github.com/salarycast/salarycast/pkg/pipeline"
)

// FormatVersion guards against loading artifacts written by an
// incompatible build.
const FormatVersion = 1

var (
	// ErrArtifactMissing is returned when the artifact file does not exist.
	ErrArtifactMissing = errors.New("model artifact not found")

	// ErrArtifactMalformed is returned when the artifact cannot be decoded
	// or violates the feature-column contract.
	ErrArtifactMalformed = errors.New("model artifact is malformed")
)

// Predictor is the single operation the serving side needs. The concrete
// Artifact implements it; tests substitute stubs.
type Predictor interface {
	Predict(row dataset.Row) (float64, error)
}

// Artifact is the persisted pipeline: preprocessing state, the fitted
// forest, the feature-column contract it was trained on, and training
// metadata.
type Artifact struct {
	Version   int
	Columns   []string
	Pre       *pipeline.Preprocessor
	Forest    *forest.Regressor
	Metrics   eval.Metrics
	TrainedAt time.Time
}

// New assembles an artifact from fitted components.
func New(pre *pipeline.Preprocessor, f *forest.Regressor, metrics eval.Metrics) *Artifact {
	return &Artifact{
		Version:   FormatVersion,
		Columns:   slices.Clone(dataset.FeatureColumns),
		Pre:       pre,
		Forest:    f,
		Metrics:   metrics,
		TrainedAt: time.Now().UTC(),
	}
}

// Predict runs the full pipeline on one feature row.
func (a *Artifact) Predict(row dataset.Row) (float64, error) {
	vec, err := a.Pre.TransformRow(row)
	if err != nil {
		return 0, fmt.Errorf("preprocess row: %w", err)
	}
	salary, err := a.Forest.Predict(vec)
	if err != nil {
		return 0, fmt.Errorf("predict: %w", err)
	}
	return salary, nil
}

// Save gob-encodes the artifact to path, writing through a temp file so a
// crashed trainer never leaves a truncated artifact behind.
func (a *Artifact) Save(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".model-*")
	if err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint: errcheck

	if err := gob.NewEncoder(tmp).Encode(a); err != nil {
		tmp.Close() //nolint: errcheck
		return fmt.Errorf("encode model: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	return nil
}

// Load reads and validates an artifact. A missing file maps to
// ErrArtifactMissing, anything undecodable or off-contract to
// ErrArtifactMalformed.
func Load(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrArtifactMissing, path)
	}
	if err != nil {
		return nil, fmt.Errorf("open model artifact: %w", err)
	}
	defer f.Close() //nolint: errcheck

	var a Artifact
	if err := gob.NewDecoder(f).Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactMalformed, err)
	}

	if a.Version != FormatVersion {
		return nil, fmt.Errorf("%w: format version %d, want %d", ErrArtifactMalformed, a.Version, FormatVersion)
	}
	if !slices.Equal(a.Columns, dataset.FeatureColumns) {
		return nil, fmt.Errorf("%w: feature columns %v do not match %v", ErrArtifactMalformed, a.Columns, dataset.FeatureColumns)
	}
	if a.Pre == nil || !a.Pre.Fitted || a.Forest == nil || len(a.Forest.Trees) == 0 {
		return nil, fmt.Errorf("%w: artifact is not fitted", ErrArtifactMalformed)
	}
	return &a, nil
}
