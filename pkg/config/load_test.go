package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "salary_prediction_model.gob", cfg.Model.Path)
	assert.Equal(t, "ds_salaries.csv", cfg.Dataset.Path)
	assert.Equal(t, 0.2, cfg.Dataset.TestSize)
	assert.Equal(t, int64(42), cfg.Dataset.Seed)
	assert.Equal(t, 100, cfg.Dataset.TreeCount)
	assert.Equal(t, "1s", cfg.Predict.Delay.String())
	assert.Empty(t, cfg.History.Path)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MODEL_PATH", "/tmp/model.gob")
	t.Setenv("PREDICT_DELAY", "0s")
	t.Setenv("DATASET_TREE_COUNT", "10")

	cfg, err := Load("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/model.gob", cfg.Model.Path)
	assert.Zero(t, cfg.Predict.Delay)
	assert.Equal(t, 10, cfg.Dataset.TreeCount)
}
