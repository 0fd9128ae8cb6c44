package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/filesort/pkg/config"
	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/output"
	"github.com/arthur-debert/filesort/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.LoadOptions{Dir: t.TempDir()})
	require.NoError(t, err)

	assert.False(t, cfg.Sort.Recursive)
	assert.Equal(t, types.ConflictFail, cfg.Sort.OnConflict)
	assert.False(t, cfg.Sort.KeepGoing)
	assert.True(t, cfg.Sort.Lock)
	assert.Equal(t, output.FormatText, cfg.Output.Format)
	assert.Equal(t, output.ColorAuto, cfg.Output.Color)
	assert.Equal(t, 2*time.Second, cfg.Watch.Debounce)
}

func TestLoad_UserTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", `
[sort]
recursive = true
on_conflict = "rename"

[watch]
debounce = "500ms"
`)

	cfg, err := config.Load(config.LoadOptions{Dir: dir})
	require.NoError(t, err)

	assert.True(t, cfg.Sort.Recursive)
	assert.Equal(t, types.ConflictRename, cfg.Sort.OnConflict)
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce)
	// untouched keys keep their defaults
	assert.True(t, cfg.Sort.Lock)
}

func TestLoad_UserYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.yaml", "output:\n  format: table\n  color: never\n")

	cfg, err := config.Load(config.LoadOptions{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, output.FormatTable, cfg.Output.Format)
	assert.Equal(t, output.ColorNever, cfg.Output.Color)
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	// ignored because an explicit file is given
	writeConfig(t, dir, "config.toml", "[sort]\nkeep_going = true\n")
	explicit := writeConfig(t, t.TempDir(), "custom.yml", "sort:\n  on_conflict: overwrite\n")

	cfg, err := config.Load(config.LoadOptions{Dir: dir, File: explicit})
	require.NoError(t, err)

	assert.Equal(t, types.ConflictOverwrite, cfg.Sort.OnConflict)
	assert.False(t, cfg.Sort.KeepGoing)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("FILESORT_SORT_ON_CONFLICT", "rename")
	t.Setenv("FILESORT_SORT_KEEP_GOING", "true")
	t.Setenv("FILESORT_OUTPUT_FORMAT", "json")
	t.Setenv("FILESORT_WATCH_DEBOUNCE", "5s")

	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", "[sort]\non_conflict = \"overwrite\"\n")

	cfg, err := config.Load(config.LoadOptions{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, types.ConflictRename, cfg.Sort.OnConflict)
	assert.True(t, cfg.Sort.KeepGoing)
	assert.Equal(t, output.FormatJSON, cfg.Output.Format)
	assert.Equal(t, 5*time.Second, cfg.Watch.Debounce)
}

func TestLoad_OverridesWin(t *testing.T) {
	t.Setenv("FILESORT_SORT_RECURSIVE", "false")

	cfg, err := config.Load(config.LoadOptions{
		Dir: t.TempDir(),
		Overrides: map[string]interface{}{
			"sort.recursive":   true,
			"sort.on_conflict": "rename",
			"sort.lock":        false,
		},
	})
	require.NoError(t, err)

	assert.True(t, cfg.Sort.Recursive)
	assert.Equal(t, types.ConflictRename, cfg.Sort.OnConflict)
	assert.False(t, cfg.Sort.Lock)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T) config.LoadOptions
		wantCode errors.ErrorCode
	}{
		{
			name: "missing_explicit_file",
			setup: func(t *testing.T) config.LoadOptions {
				return config.LoadOptions{File: filepath.Join(t.TempDir(), "nope.toml")}
			},
			wantCode: errors.ErrConfigLoad,
		},
		{
			name: "unsupported_extension",
			setup: func(t *testing.T) config.LoadOptions {
				return config.LoadOptions{File: writeConfig(t, t.TempDir(), "config.ini", "x=1")}
			},
			wantCode: errors.ErrConfigLoad,
		},
		{
			name: "malformed_toml",
			setup: func(t *testing.T) config.LoadOptions {
				dir := t.TempDir()
				writeConfig(t, dir, "config.toml", "[sort\nrecursive = ")
				return config.LoadOptions{Dir: dir}
			},
			wantCode: errors.ErrConfigParse,
		},
		{
			name: "bad_policy",
			setup: func(t *testing.T) config.LoadOptions {
				dir := t.TempDir()
				writeConfig(t, dir, "config.toml", "[sort]\non_conflict = \"merge\"\n")
				return config.LoadOptions{Dir: dir}
			},
			wantCode: errors.ErrConfigParse,
		},
		{
			name: "bad_format",
			setup: func(t *testing.T) config.LoadOptions {
				return config.LoadOptions{
					Dir:       t.TempDir(),
					Overrides: map[string]interface{}{"output.format": "xml"},
				}
			},
			wantCode: errors.ErrConfigParse,
		},
		{
			name: "zero_debounce",
			setup: func(t *testing.T) config.LoadOptions {
				return config.LoadOptions{
					Dir:       t.TempDir(),
					Overrides: map[string]interface{}{"watch.debounce": "0s"},
				}
			},
			wantCode: errors.ErrConfigParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(tt.setup(t))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	assert.Equal(t, filepath.Join("/tmp/cfg", "filesort"), config.DefaultDir())
}

func TestGenerateConfigContent(t *testing.T) {
	content := config.GenerateConfigContent()

	assert.Contains(t, content, "[sort]")
	assert.Contains(t, content, `# on_conflict = "fail"`)
	assert.Contains(t, content, `# debounce = "2s"`)

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		t.Errorf("uncommented value line: %q", line)
	}
}
