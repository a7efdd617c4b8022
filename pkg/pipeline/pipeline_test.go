package pipeline

import (
	"math"
	"testing"

	"github.com/salarycast/salarycast/pkg/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainingRows() []dataset.Row {
	return []dataset.Row{
		{ExperienceLevel: "Senior", JobTitle: "Data Scientist", CompanyLocation: "US", RemoteRatio: 0, WorkYear: 2022},
		{ExperienceLevel: "Senior", JobTitle: "Data Engineer", CompanyLocation: "GB", RemoteRatio: 50, WorkYear: 2023},
		{ExperienceLevel: "Mid-level", JobTitle: "Data Scientist", CompanyLocation: "IN", RemoteRatio: 100, WorkYear: 2024},
	}
}

func TestFitTransformShape(t *testing.T) {
	var p Preprocessor
	require.NoError(t, p.Fit(trainingRows()))

	// 2 numeric + 2 experience + 2 titles + 3 locations
	assert.Equal(t, 9, p.Width())

	vecs, err := p.Transform(trainingRows())
	require.NoError(t, err)
	for _, v := range vecs {
		assert.Len(t, v, p.Width())
	}
}

func TestNumericScaling(t *testing.T) {
	var p Preprocessor
	require.NoError(t, p.Fit(trainingRows()))

	// remote_ratio column is {0, 50, 100}: mean 50, population std ~40.82
	vec, err := p.TransformRow(trainingRows()[1])
	require.NoError(t, err)
	assert.InDelta(t, 0, vec[0], 1e-9, "mean value scales to zero")

	lo, err := p.TransformRow(trainingRows()[0])
	require.NoError(t, err)
	hi, err := p.TransformRow(trainingRows()[2])
	require.NoError(t, err)
	assert.InDelta(t, -hi[0], lo[0], 1e-9, "extremes are symmetric around the mean")
}

func TestNumericImputation(t *testing.T) {
	var p Preprocessor
	require.NoError(t, p.Fit(trainingRows()))

	missing := dataset.Row{ExperienceLevel: "Senior", JobTitle: "Data Scientist", CompanyLocation: "US",
		RemoteRatio: math.NaN(), WorkYear: math.NaN()}
	vec, err := p.TransformRow(missing)
	require.NoError(t, err)

	assert.InDelta(t, 0, vec[0], 1e-9, "NaN imputes to the mean, which scales to zero")
	assert.InDelta(t, 0, vec[1], 1e-9)
}

func TestCategoricalModeImputation(t *testing.T) {
	var p Preprocessor
	require.NoError(t, p.Fit(trainingRows()))

	blank := dataset.Row{JobTitle: "Data Scientist", CompanyLocation: "US", RemoteRatio: 0, WorkYear: 2022}
	vec, err := p.TransformRow(blank)
	require.NoError(t, err)

	// Experience block is [Mid-level, Senior]; blank imputes to the mode "Senior".
	assert.Equal(t, []float64{0, 1}, vec[2:4])
}

func TestUnknownCategoryEncodesToZeros(t *testing.T) {
	var p Preprocessor
	require.NoError(t, p.Fit(trainingRows()))

	unknown := dataset.Row{ExperienceLevel: "Senior", JobTitle: "Quantum Engineer", CompanyLocation: "US",
		RemoteRatio: 0, WorkYear: 2022}
	vec, err := p.TransformRow(unknown)
	require.NoError(t, err)

	// Job-title block [Data Engineer, Data Scientist] is all zeros.
	assert.Equal(t, []float64{0, 0}, vec[4:6])
}

func TestTransformBeforeFit(t *testing.T) {
	var p Preprocessor
	_, err := p.TransformRow(dataset.Row{})
	assert.Error(t, err)
}

func TestFitEmpty(t *testing.T) {
	var p Preprocessor
	assert.Error(t, p.Fit(nil))
}
