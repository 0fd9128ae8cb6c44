// Test Type: Unit Test
// Description: Tests for the sorter package - run semantics on an in-memory filesystem

package sorter_test

import (
	"testing"

	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/filesystem"
	"github.com/arthur-debert/filesort/pkg/sorter"
	"github.com/arthur-debert/filesort/pkg/testutil"
	"github.com/arthur-debert/filesort/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rule(pattern, dest string) types.Rule {
	return types.Rule{Pattern: pattern, Destination: dest}
}

func memFS(t *testing.T, dirs ...string) types.FS {
	t.Helper()
	fs := filesystem.NewMemory()
	for _, dir := range dirs {
		require.NoError(t, fs.MkdirAll(dir, 0755))
	}
	return fs
}

func statuses(result *types.SortResult) map[string]types.OutcomeStatus {
	out := make(map[string]types.OutcomeStatus, len(result.Outcomes))
	for _, o := range result.Outcomes {
		out[o.File.Name] = o.Status
	}
	return out
}

func TestRun_MixedRules(t *testing.T) {
	fs := memFS(t, "/docs", "/big", "/reports")
	testutil.CreateMemFile(t, fs, "/src/a.txt", 500)
	testutil.CreateMemFile(t, fs, "/src/report_final.bin", 200)
	testutil.CreateMemFile(t, fs, "/src/video.mp4", 2000000)

	req := types.NewSortRequest("/src", []types.Rule{
		rule(".txt", "/docs"),
		rule("size>1000000", "/big"),
		rule("report", "/reports"),
	}, false)

	result, err := sorter.Run(req, sorter.Options{FileSystem: fs})
	require.NoError(t, err)

	assert.True(t, testutil.MemFileExists(t, fs, "/docs/a.txt"))
	assert.True(t, testutil.MemFileExists(t, fs, "/reports/report_final.bin"))
	assert.True(t, testutil.MemFileExists(t, fs, "/big/video.mp4"))
	assert.False(t, testutil.MemFileExists(t, fs, "/src/a.txt"))

	stats := result.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 3, stats.Moved)
	assert.Equal(t, int64(500+200+2000000), stats.BytesMoved)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, "/src", result.Source)
	assert.False(t, result.FinishedAt.IsZero())
}

func TestRun_FirstMatchWins(t *testing.T) {
	fs := memFS(t, "/first", "/second")
	testutil.CreateMemFile(t, fs, "/src/report.txt", 10)

	req := types.NewSortRequest("/src", []types.Rule{
		rule("report", "/first"),
		rule(".txt", "/second"),
	}, false)

	result, err := sorter.Run(req, sorter.Options{FileSystem: fs})
	require.NoError(t, err)

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, 0, result.Outcomes[0].RuleIndex)
	assert.Equal(t, "/first/report.txt", result.Outcomes[0].Target)
	assert.True(t, testutil.MemFileExists(t, fs, "/first/report.txt"))
}

func TestRun_ExactThresholdStays(t *testing.T) {
	fs := memFS(t, "/small")
	testutil.CreateMemFile(t, fs, "/src/hundred.bin", 100)

	req := types.NewSortRequest("/src", []types.Rule{rule("size<100", "/small")}, false)

	result, err := sorter.Run(req, sorter.Options{FileSystem: fs})
	require.NoError(t, err)

	assert.Equal(t, types.StatusUnmatched, statuses(result)["hundred.bin"])
	assert.Equal(t, -1, result.Outcomes[0].RuleIndex)
	assert.True(t, testutil.MemFileExists(t, fs, "/src/hundred.bin"))
}

func TestRun_MalformedSizeRule(t *testing.T) {
	fs := memFS(t, "/x", "/docs")
	testutil.CreateMemFile(t, fs, "/src/a.txt", 5)
	testutil.CreateMemFile(t, fs, "/src/b.bin", 5)

	// the valid rule comes first, yet nothing may move
	req := types.NewSortRequest("/src", []types.Rule{
		rule(".txt", "/docs"),
		rule("size<abc", "/x"),
	}, false)

	result, err := sorter.Run(req, sorter.Options{FileSystem: fs})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleParse), "got %v", err)
	require.NotNil(t, result)
	assert.Empty(t, result.Outcomes)
	assert.True(t, testutil.MemFileExists(t, fs, "/src/a.txt"))
	assert.True(t, testutil.MemFileExists(t, fs, "/src/b.bin"))
}

func TestRun_InvalidSource(t *testing.T) {
	fs := memFS(t, "/docs")
	testutil.CreateMemFile(t, fs, "/file.txt", 1)

	for _, source := range []string{"/missing", "/file.txt"} {
		t.Run(source, func(t *testing.T) {
			req := types.NewSortRequest(source, []types.Rule{rule(".txt", "/docs")}, true)

			result, err := sorter.Run(req, sorter.Options{FileSystem: fs})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrDirectory), "got %v", err)
			assert.Equal(t, 0, result.Stats().Moved)
			assert.True(t, testutil.MemFileExists(t, fs, "/file.txt"))
		})
	}
}

func TestRun_NonRecursiveIgnoresNested(t *testing.T) {
	fs := memFS(t, "/docs")
	testutil.CreateMemFile(t, fs, "/src/top.txt", 1)
	testutil.CreateMemFile(t, fs, "/src/sub/nested.txt", 1)

	req := types.NewSortRequest("/src", []types.Rule{rule(".txt", "/docs")}, false)

	result, err := sorter.Run(req, sorter.Options{FileSystem: fs})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats().Total)
	assert.True(t, testutil.MemFileExists(t, fs, "/docs/top.txt"))
	assert.True(t, testutil.MemFileExists(t, fs, "/src/sub/nested.txt"))
}

func TestRun_RecursiveDestinationInsideSource(t *testing.T) {
	fs := memFS(t, "/src/sorted")
	testutil.CreateMemFile(t, fs, "/src/a.txt", 1)
	testutil.CreateMemFile(t, fs, "/src/deep/b.txt", 1)
	testutil.CreateMemFile(t, fs, "/src/sorted/c.txt", 1)

	req := types.NewSortRequest("/src", []types.Rule{rule(".txt", "/src/sorted")}, true)

	result, err := sorter.Run(req, sorter.Options{FileSystem: fs})
	require.NoError(t, err)

	got := statuses(result)
	assert.Len(t, got, 3)
	assert.Equal(t, types.StatusMoved, got["a.txt"])
	assert.Equal(t, types.StatusMoved, got["b.txt"])
	assert.Equal(t, types.StatusSkipped, got["c.txt"])

	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		assert.True(t, testutil.MemFileExists(t, fs, "/src/sorted/"+name), name)
	}
}

func TestRun_MissingDestination(t *testing.T) {
	fs := memFS(t)
	testutil.CreateMemFile(t, fs, "/src/a.txt", 1)
	testutil.CreateMemFile(t, fs, "/notdir", 1)

	tests := []struct {
		name string
		dest string
	}{
		{"missing", "/nowhere"},
		{"not_a_directory", "/notdir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := types.NewSortRequest("/src", []types.Rule{rule(".txt", tt.dest)}, false)

			result, err := sorter.Run(req, sorter.Options{FileSystem: fs})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrIO), "got %v", err)
			assert.Equal(t, types.StatusFailed, statuses(result)["a.txt"])
			assert.True(t, testutil.MemFileExists(t, fs, "/src/a.txt"))
		})
	}
}

func TestRun_FailFastStopsAtFirstFailure(t *testing.T) {
	fs := memFS(t, "/docs")
	testutil.CreateMemFile(t, fs, "/src/a.bin", 1)
	testutil.CreateMemFile(t, fs, "/src/b.txt", 1)
	testutil.CreateMemFile(t, fs, "/src/c.txt", 1)

	req := types.NewSortRequest("/src", []types.Rule{
		rule(".bin", "/nowhere"),
		rule(".txt", "/docs"),
	}, false)

	result, err := sorter.Run(req, sorter.Options{FileSystem: fs})
	require.Error(t, err)
	assert.True(t, errors.IsIOError(err))

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, types.StatusFailed, result.Outcomes[0].Status)
	assert.Equal(t, err, result.Outcomes[0].Err)
	assert.True(t, testutil.MemFileExists(t, fs, "/src/b.txt"))
	assert.True(t, testutil.MemFileExists(t, fs, "/src/c.txt"))
}

func TestRun_KeepGoingAttemptsEveryFile(t *testing.T) {
	fs := memFS(t, "/docs")
	testutil.CreateMemFile(t, fs, "/src/a.bin", 1)
	testutil.CreateMemFile(t, fs, "/src/b.txt", 1)
	testutil.CreateMemFile(t, fs, "/src/c.txt", 1)
	testutil.CreateMemFile(t, fs, "/src/d.dat", 1)

	req := types.NewSortRequest("/src", []types.Rule{
		rule(".bin", "/nowhere"),
		rule(".txt", "/docs"),
	}, false)

	result, err := sorter.Run(req, sorter.Options{FileSystem: fs, KeepGoing: true})
	require.NoError(t, err)

	stats := result.Stats()
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Moved)
	assert.Equal(t, 1, stats.Unmatched)
	assert.Equal(t, 1, stats.Failed)

	failures := result.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "a.bin", failures[0].File.Name)
	assert.True(t, errors.IsErrorCode(failures[0].Err, errors.ErrIO))
}

func TestRun_ConflictPolicies(t *testing.T) {
	setup := func(t *testing.T) types.FS {
		fs := memFS(t, "/docs", "/src")
		require.NoError(t, fs.WriteFile("/docs/a.txt", []byte("old"), 0644))
		require.NoError(t, fs.WriteFile("/src/a.txt", []byte("new!"), 0644))
		return fs
	}
	req := types.NewSortRequest("/src", []types.Rule{rule(".txt", "/docs")}, false)

	t.Run("fail", func(t *testing.T) {
		fs := setup(t)
		result, err := sorter.Run(req, sorter.Options{FileSystem: fs})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDestinationExists))
		assert.True(t, errors.IsIOError(err))
		assert.Equal(t, types.StatusFailed, statuses(result)["a.txt"])

		old, _ := fs.ReadFile("/docs/a.txt")
		assert.Equal(t, "old", string(old))
		assert.True(t, testutil.MemFileExists(t, fs, "/src/a.txt"))
	})

	t.Run("overwrite", func(t *testing.T) {
		fs := setup(t)
		result, err := sorter.Run(req, sorter.Options{FileSystem: fs, OnConflict: types.ConflictOverwrite})
		require.NoError(t, err)
		assert.True(t, result.Outcomes[0].Overwrote)

		content, _ := fs.ReadFile("/docs/a.txt")
		assert.Equal(t, "new!", string(content))
		assert.False(t, testutil.MemFileExists(t, fs, "/src/a.txt"))
	})

	t.Run("rename", func(t *testing.T) {
		fs := setup(t)
		require.NoError(t, fs.WriteFile("/docs/a (1).txt", []byte("older"), 0644))

		result, err := sorter.Run(req, sorter.Options{FileSystem: fs, OnConflict: types.ConflictRename})
		require.NoError(t, err)

		o := result.Outcomes[0]
		assert.True(t, o.Renamed)
		assert.Equal(t, "/docs/a (2).txt", o.Target)

		old, _ := fs.ReadFile("/docs/a.txt")
		assert.Equal(t, "old", string(old))
		older, _ := fs.ReadFile("/docs/a (1).txt")
		assert.Equal(t, "older", string(older))
		moved, _ := fs.ReadFile("/docs/a (2).txt")
		assert.Equal(t, "new!", string(moved))
	})
}

func TestRun_OverwriteRefusesDirectory(t *testing.T) {
	fs := memFS(t, "/docs/a.txt")
	testutil.CreateMemFile(t, fs, "/src/a.txt", 1)

	req := types.NewSortRequest("/src", []types.Rule{rule(".txt", "/docs")}, false)

	_, err := sorter.Run(req, sorter.Options{FileSystem: fs, OnConflict: types.ConflictOverwrite})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
	assert.True(t, testutil.MemFileExists(t, fs, "/src/a.txt"))
}

func TestRun_InvalidRules(t *testing.T) {
	fs := memFS(t, "/docs")
	testutil.CreateMemFile(t, fs, "/src/a.txt", 1)

	tests := []struct {
		name  string
		rules []types.Rule
	}{
		{"empty_pattern", []types.Rule{rule("", "/docs")}},
		{"empty_destination", []types.Rule{rule(".txt", "")}},
		{"duplicate", []types.Rule{rule(".txt", "/docs"), rule(".TXT", "/other")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := types.NewSortRequest("/src", tt.rules, false)
			_, err := sorter.Run(req, sorter.Options{FileSystem: fs})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
			assert.True(t, testutil.MemFileExists(t, fs, "/src/a.txt"))
		})
	}
}

func TestRun_NoRules(t *testing.T) {
	fs := memFS(t)
	testutil.CreateMemFile(t, fs, "/src/a.txt", 1)

	result, err := sorter.Run(types.NewSortRequest("/src", nil, false), sorter.Options{FileSystem: fs})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats().Unmatched)
}
