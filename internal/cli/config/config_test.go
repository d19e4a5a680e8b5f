package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfig()
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxInt, cfg.MaxInt)
	assert.Equal(t, DefaultMaxNumbers, cfg.MaxNumbers)
	assert.Equal(t, DefaultTopN, cfg.TopN)
	assert.True(t, cfg.Multiply)
	assert.True(t, cfg.Subtract)
	assert.True(t, cfg.Divide)
	assert.False(t, cfg.Exponent)
	assert.False(t, cfg.Exhaustive)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
}

func TestLoadConfigFile(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	path := filepath.Join(dir, "ncs.yaml")
	content := "max_int: 10\nexclude: [10]\nexponent: true\ntop_n: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.MaxInt)
	assert.Equal(t, []int64{10}, cfg.Exclude)
	assert.True(t, cfg.Exponent)
	assert.Equal(t, 3, cfg.TopN)
	assert.Equal(t, path, GetConfigFileUsed())
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultMaxNumbers, cfg.MaxNumbers)
}

func TestLoadConfigEnv(t *testing.T) {
	ResetConfig()
	t.Setenv("NCS_MAX_INT", "12")
	t.Setenv("NCS_EXHAUSTIVE", "true")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.MaxInt)
	assert.True(t, cfg.Exhaustive)
}

func TestLoadConfigFlagsOverride(t *testing.T) {
	ResetConfig()
	t.Setenv("NCS_MAX_INT", "12")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("max-int", DefaultMaxInt, "")
	flags.Int("top", DefaultTopN, "")
	flags.Bool("multiply", true, "")
	require.NoError(t, flags.Parse([]string{"--max-int", "15", "--top", "7", "--multiply=false"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	// Flags beat env vars; --top maps onto top_n.
	assert.Equal(t, 15, cfg.MaxInt)
	assert.Equal(t, 7, cfg.TopN)
	assert.False(t, cfg.Multiply)
}

func TestLoadConfigUnchangedFlagsIgnored(t *testing.T) {
	ResetConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("max-int", 99, "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxInt, cfg.MaxInt, "unset flags must not override defaults")
}

func TestValidate(t *testing.T) {
	valid := &Config{MaxInt: 25, MaxNumbers: 6, TopN: 5, OutputFormat: "auto"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero max int", func(c *Config) { c.MaxInt = 0 }},
		{"negative max numbers", func(c *Config) { c.MaxNumbers = -1 }},
		{"zero top", func(c *Config) { c.TopN = 0 }},
		{"bad output", func(c *Config) { c.OutputFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestAlphabetEmpty(t *testing.T) {
	cfg := &Config{MaxInt: 3, Exclude: []int64{1, 2, 3}}
	assert.True(t, cfg.AlphabetEmpty())

	cfg.Exclude = []int64{1, 3}
	assert.False(t, cfg.AlphabetEmpty())
}
