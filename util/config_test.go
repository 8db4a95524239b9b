package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Drolfothesgnir/tagmark/tagmark"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	type tc struct {
		name    string
		file    string
		env     map[string]string
		want    Config
		wantErr bool
	}

	defaults := Config{
		Environment:          "production",
		LogLevel:             "info",
		MaxPlaceholderPasses: tagmark.DefaultMaxPlaceholderPasses,
		MaxNestingDepth:      tagmark.DefaultMaxDepth,
		MaxWarnings:          tagmark.DefaultMaxWarnings,
	}

	tests := []tc{
		{
			name: "missing_file_uses_defaults",
			want: defaults,
		},
		{
			name: "values_from_file",
			file: "ENVIRONMENT=development\nSTRICT_MODE=true\nMAX_NESTING_DEPTH=8\nCOLOR_PROFILE=ascii\n",
			want: Config{
				Environment:          "development",
				LogLevel:             "info",
				StrictMode:           true,
				MaxPlaceholderPasses: tagmark.DefaultMaxPlaceholderPasses,
				MaxNestingDepth:      8,
				MaxWarnings:          tagmark.DefaultMaxWarnings,
				ColorProfile:         "ascii",
			},
		},
		{
			name: "env_overrides_file",
			file: "MAX_WARNINGS=3\nLOG_LEVEL=info\n",
			env:  map[string]string{"MAX_WARNINGS": "5", "LOG_LEVEL": "debug"},
			want: Config{
				Environment:          "production",
				LogLevel:             "debug",
				MaxPlaceholderPasses: tagmark.DefaultMaxPlaceholderPasses,
				MaxNestingDepth:      tagmark.DefaultMaxDepth,
				MaxWarnings:          5,
			},
		},
		{
			name:    "malformed_number",
			file:    "MAX_NESTING_DEPTH=deep\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.file != "" {
				writeFile(t, dir, "app.env", tt.file)
			}

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig(dir)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, cfg)
		})
	}
}

func TestConfigLimits(t *testing.T) {
	cfg := Config{MaxPlaceholderPasses: 2, MaxNestingDepth: 3, MaxWarnings: 4}

	l := cfg.Limits()
	require.Equal(t, tagmark.Limits{MaxPlaceholderPasses: 2, MaxDepth: 3, MaxWarnings: 4}, l)
	require.NoError(t, l.Validate())

	cfg.MaxNestingDepth = -1
	err := cfg.Limits().Validate()

	var cfgErr *tagmark.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, tagmark.IssueNegativeLimit, cfgErr.Issue)
}
