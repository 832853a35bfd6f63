package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/smartform/pkg/config"
)

type defaultsConfig struct {
	Name    string        `env:"CONFIG_TEST_NAME" envDefault:"smartform"`
	Delay   time.Duration `env:"CONFIG_TEST_DELAY" envDefault:"1s"`
	Enabled bool          `env:"CONFIG_TEST_ENABLED" envDefault:"true"`
}

type requiredConfig struct {
	Value string `env:"CONFIG_TEST_REQUIRED,required"`
}

type fileConfig struct {
	Name string `env:"CONFIG_TEST_FILE_NAME"`
	Port int    `env:"CONFIG_TEST_FILE_PORT"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "smartform", cfg.Name)
	assert.Equal(t, time.Second, cfg.Delay)
	assert.True(t, cfg.Enabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CONFIG_TEST_NAME", "demo")
	t.Setenv("CONFIG_TEST_DELAY", "250ms")
	t.Setenv("CONFIG_TEST_ENABLED", "false")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, 250*time.Millisecond, cfg.Delay)
	assert.False(t, cfg.Enabled)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[defaultsConfig](nil), config.ErrNilPointer)
	})

	t.Run("missing required", func(t *testing.T) {
		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_DELAY", "soon")
		var cfg defaultsConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})

	t.Setenv("CONFIG_TEST_REQUIRED", "present")
	var cfg requiredConfig
	assert.NotPanics(t, func() { config.MustLoad(&cfg) })
	assert.Equal(t, "present", cfg.Value)
}

func TestLoadEnv(t *testing.T) {
	t.Cleanup(func() {
		os.Unsetenv("CONFIG_TEST_FILE_NAME")
		os.Unsetenv("CONFIG_TEST_FILE_PORT")
	})

	require.NoError(t, config.LoadEnv("testdata/test.env"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Name)
	assert.Equal(t, 9090, cfg.Port)

	err := config.LoadEnv("testdata/missing.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
