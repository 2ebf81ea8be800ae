package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"import": map[string]any{
			"maxBatchSize": 1000,
			"requireAuth":  true,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "IMPORT_MAXBATCHSIZE", want: "import.maxBatchSize"},
		{envKey: "IMPORT_REQUIREAUTH", want: "import.requireAuth"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	require.NotNil(t, cfg.Import)
	require.NotNil(t, cfg.Listing)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultMaxBatchSize, cfg.Import.MaxBatchSize)
	assert.Equal(t, defaultChildInsertBatchSize, cfg.Import.ChildInsertBatchSize)
	assert.Equal(t, defaultPageSize, cfg.Listing.DefaultPageSize)
	assert.Equal(t, defaultMaxPageSize, cfg.Listing.MaxPageSize)
	assert.InDelta(t, defaultMaxNearbyRadiusKm, cfg.Listing.MaxNearbyRadiusKm, 0.0001)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Import:  &ImportConfig{MaxBatchSize: 5, RequireAuth: true},
		Listing: &ListingConfig{DefaultPageSize: 7},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, 5, cfg.Import.MaxBatchSize)
	assert.True(t, cfg.Import.RequireAuth)
	assert.Equal(t, 7, cfg.Listing.DefaultPageSize)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
env:
  env: test
  log:
    level: info
import:
  maxBatchSize: 10
  requireAuth: false
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	t.Chdir(dir)
	t.Setenv("IMPORT_MAXBATCHSIZE", "25")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)
	require.NotNil(t, cfg.Import)
	assert.Equal(t, 25, cfg.Import.MaxBatchSize)
	assert.False(t, cfg.Import.RequireAuth)
	assert.Equal(t, "info", cfg.Env.Log.Level)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}
