package filesystem

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/arthur-debert/filesort/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renameFailFS refuses every rename with a fixed error
type renameFailFS struct {
	types.FS
	err error
}

func (r *renameFailFS) Rename(oldpath, newpath string) error {
	return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: r.err}
}

func TestMoveRename(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.MkdirAll("/src", 0755))
	require.NoError(t, fs.MkdirAll("/dst", 0755))
	require.NoError(t, fs.WriteFile("/src/a.txt", []byte("data"), 0644))

	require.NoError(t, Move(fs, "/src/a.txt", "/dst/a.txt"))

	_, err := fs.Stat("/src/a.txt")
	assert.True(t, os.IsNotExist(err))
	content, err := fs.ReadFile("/dst/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))
}

func TestMoveCrossDeviceFallsBackToCopy(t *testing.T) {
	if errCrossDevice == nil {
		t.Skip("platform has no cross-device rename error")
	}

	mem := NewMemory()
	require.NoError(t, mem.MkdirAll("/src", 0755))
	require.NoError(t, mem.MkdirAll("/dst", 0755))
	require.NoError(t, mem.WriteFile("/src/movie.mp4", []byte("frames"), 0640))
	mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, mem.Chtimes("/src/movie.mp4", mtime, mtime))

	fs := &renameFailFS{FS: mem, err: errCrossDevice}
	require.NoError(t, Move(fs, "/src/movie.mp4", "/dst/movie.mp4"))

	_, err := mem.Stat("/src/movie.mp4")
	assert.True(t, os.IsNotExist(err), "source should be removed after copy")

	content, err := mem.ReadFile("/dst/movie.mp4")
	require.NoError(t, err)
	assert.Equal(t, "frames", string(content))

	info, err := mem.Stat("/dst/movie.mp4")
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime))
}

func TestMoveOtherErrorsAreReturned(t *testing.T) {
	mem := NewMemory()
	require.NoError(t, mem.MkdirAll("/src", 0755))
	require.NoError(t, mem.WriteFile("/src/a.txt", []byte("data"), 0644))

	denied := errors.New("permission denied")
	fs := &renameFailFS{FS: mem, err: denied}

	err := Move(fs, "/src/a.txt", "/dst/a.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, denied)

	_, statErr := mem.Stat("/src/a.txt")
	assert.NoError(t, statErr, "source must stay in place")
}

func TestCopyFileOverwritesExisting(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.MkdirAll("/d", 0755))
	require.NoError(t, fs.WriteFile("/d/src", []byte("new"), 0644))
	require.NoError(t, fs.WriteFile("/d/dst", []byte("older content"), 0644))

	require.NoError(t, CopyFile(fs, "/d/src", "/d/dst"))

	content, err := fs.ReadFile("/d/dst")
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}
