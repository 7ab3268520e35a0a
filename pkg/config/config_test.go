package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "ui/src", cfg.Root)
	assert.Equal(t, "@tabler/icons-react", cfg.Package)
	assert.Equal(t, ".mjs", cfg.ModuleSuffix)
	assert.Equal(t, []string{".ts", ".tsx"}, cfg.Extensions)
	assert.Empty(t, cfg.IgnoreGlobs)

	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errContains string
	}{
		{
			name:    "defaults_are_valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:        "missing_root",
			mutate:      func(c *Config) { c.Root = "" },
			wantErr:     true,
			errContains: "root is required",
		},
		{
			name:        "missing_package",
			mutate:      func(c *Config) { c.Package = "" },
			wantErr:     true,
			errContains: "package is required",
		},
		{
			name:        "suffix_without_dot",
			mutate:      func(c *Config) { c.ModuleSuffix = "mjs" },
			wantErr:     true,
			errContains: "must start with a dot",
		},
		{
			name:        "no_extensions",
			mutate:      func(c *Config) { c.Extensions = nil },
			wantErr:     true,
			errContains: "at least one extension",
		},
		{
			name:        "extension_without_dot",
			mutate:      func(c *Config) { c.Extensions = []string{"tsx"} },
			wantErr:     true,
			errContains: "must start with a dot",
		},
		{
			name:        "bad_ignore_glob",
			mutate:      func(c *Config) { c.IgnoreGlobs = []string{"[unclosed"} },
			wantErr:     true,
			errContains: "invalid ignore glob",
		},
		{
			name:    "valid_ignore_glob",
			mutate:  func(c *Config) { c.IgnoreGlobs = []string{"**/generated/**"} },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
