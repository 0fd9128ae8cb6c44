package sorter

import (
	"testing"

	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/filesystem"
	"github.com/arthur-debert/filesort/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeName(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/d", 0755))
	for _, name := range []string{"report.pdf", "report (1).pdf", ".bashrc", "archive.tar.gz", "README"} {
		require.NoError(t, fs.WriteFile("/d/"+name, nil, 0644))
	}

	tests := []struct {
		target string
		want   string
	}{
		{"/d/report.pdf", "/d/report (2).pdf"},
		{"/d/.bashrc", "/d/.bashrc (1)"},
		{"/d/archive.tar.gz", "/d/archive.tar (1).gz"},
		{"/d/README", "/d/README (1)"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got, err := freeName(fs, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveConflict_NoCollision(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/d", 0755))

	for _, policy := range []types.ConflictPolicy{types.ConflictFail, types.ConflictOverwrite, types.ConflictRename, ""} {
		res, err := resolveConflict(fs, "/d/new.txt", policy)
		require.NoError(t, err)
		assert.Equal(t, resolution{path: "/d/new.txt"}, res, "policy %q", policy)
	}
}

func TestResolveConflict_DefaultPolicyFails(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/d", 0755))
	require.NoError(t, fs.WriteFile("/d/a.txt", nil, 0644))

	_, err := resolveConflict(fs, "/d/a.txt", "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDestinationExists))
	assert.Equal(t, "/d/a.txt", errors.GetErrorDetails(err)["target"])
}
