package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbon-eel/eel/pkg/config"
)

type cachedConfig struct {
	Value string `env:"EEL_TEST_CACHED" envDefault:"default"`
}

type requiredConfig struct {
	Required string `env:"EEL_TEST_REQUIRED,required"`
}

type parsedConfig struct {
	Dir    string   `env:"DIR" envDefault:"Resources"`
	Size   int      `env:"SIZE" envDefault:"512"`
	Paths  []string `env:"PATHS" envSeparator:","`
	Secret string   `env:"SECRET"`
}

func TestLoad(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	t.Setenv("EEL_TEST_CACHED", "first")

	var cfg cachedConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Value)

	t.Setenv("EEL_TEST_CACHED", "second")

	var again cachedConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Value, "cached value is returned")

	config.ResetCache()
	var reloaded cachedConfig
	require.NoError(t, config.Load(&reloaded))
	assert.Equal(t, "second", reloaded.Value)
}

func TestLoad_Errors(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	assert.ErrorIs(t, config.Load[cachedConfig](nil), config.ErrNilPointer)

	var cfg requiredConfig
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)

	t.Setenv("EEL_TEST_REQUIRED", "set")
	require.NoError(t, config.Load(&cfg), "failed loads can be retried")
	assert.Equal(t, "set", cfg.Required)
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	var cfg requiredConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		var cfg parsedConfig
		require.NoError(t, config.Parse(&cfg, config.WithEnviron(map[string]string{})))
		assert.Equal(t, "Resources", cfg.Dir)
		assert.Equal(t, 512, cfg.Size)
		assert.Empty(t, cfg.Paths)
	})

	t.Run("prefix", func(t *testing.T) {
		t.Parallel()
		var cfg parsedConfig
		err := config.Parse(&cfg,
			config.WithPrefix("EEL_"),
			config.WithEnviron(map[string]string{"EEL_DIR": "Assets", "DIR": "ignored", "EEL_PATHS": "a.js,b.js"}),
		)
		require.NoError(t, err)
		assert.Equal(t, "Assets", cfg.Dir)
		assert.Equal(t, []string{"a.js", "b.js"}, cfg.Paths)
	})

	t.Run("env files are overridden by environment", func(t *testing.T) {
		t.Parallel()
		file := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(file, []byte("DIR=FromFile\nSECRET=\"s3cr3t\"\nSIZE=10\n"), 0o600))

		var cfg parsedConfig
		err := config.Parse(&cfg,
			config.WithEnvFiles(file),
			config.WithEnviron(map[string]string{"SIZE": "20"}),
		)
		require.NoError(t, err)
		assert.Equal(t, "FromFile", cfg.Dir)
		assert.Equal(t, "s3cr3t", cfg.Secret)
		assert.Equal(t, 20, cfg.Size)
	})

	t.Run("missing env file", func(t *testing.T) {
		t.Parallel()
		var cfg parsedConfig
		err := config.Parse(&cfg, config.WithEnvFiles(filepath.Join(t.TempDir(), "nope")))
		assert.ErrorIs(t, err, config.ErrReadingEnvFile)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		var cfg parsedConfig
		err := config.Parse(&cfg, config.WithEnviron(map[string]string{"SIZE": "big"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, config.Parse[parsedConfig](nil), config.ErrNilPointer)
	})
}
