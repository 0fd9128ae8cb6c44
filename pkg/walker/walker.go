// Package walker enumerates the files a sorting run will consider.
//
// The full list is taken before any file is moved so that moves into
// destinations nested under the source cannot feed back into the run.
package walker

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/logging"
	"github.com/arthur-debert/filesort/pkg/types"
	"github.com/rs/zerolog"
)

// Walker lists candidate files from a source directory
type Walker struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a walker over fsys
func New(fsys types.FS) *Walker {
	return &Walker{
		fs:     fsys,
		logger: logging.GetLogger("walker"),
	}
}

// Snapshot is New(fsys).Snapshot(source, recursive)
func Snapshot(fsys types.FS, source string, recursive bool) ([]types.FileTask, error) {
	return New(fsys).Snapshot(source, recursive)
}

// ValidateSource fails with a DIRECTORY error unless source exists and
// is a directory. A symlink to a directory is accepted.
func ValidateSource(fsys types.FS, source string) error {
	if source == "" {
		return errors.New(errors.ErrDirectory, "no source directory given")
	}

	info, err := fsys.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrDirectory, "source directory %s does not exist", source).
				WithDetail("path", source)
		}
		return errors.Wrapf(err, errors.ErrDirectory, "cannot access source directory %s", source).
			WithDetail("path", source)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrDirectory, "source %s is not a directory", source).
			WithDetail("path", source)
	}
	return nil
}

// Snapshot returns every regular file directly in source, or in source
// and all nested directories when recursive is set, sorted by path.
// Symlinks are followed to decide whether they point at a regular file;
// symlinked directories are never descended and dangling links are
// skipped.
func (w *Walker) Snapshot(source string, recursive bool) ([]types.FileTask, error) {
	if err := ValidateSource(w.fs, source); err != nil {
		return nil, err
	}

	w.logger.Debug().
		Str("source", source).
		Bool("recursive", recursive).
		Msg("Snapshotting source")

	var tasks []types.FileTask
	if err := w.collect(source, recursive, &tasks); err != nil {
		return nil, err
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].Path < tasks[j].Path
	})

	w.logger.Debug().
		Str("source", source).
		Int("fileCount", len(tasks)).
		Msg("Snapshot complete")

	return tasks, nil
}

func (w *Walker) collect(dir string, recursive bool, tasks *[]types.FileTask) error {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to list directory %s", dir).
			WithDetail("path", dir)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		switch {
		case entry.IsDir():
			if recursive {
				if err := w.collect(path, recursive, tasks); err != nil {
					return err
				}
			}

		case entry.Type()&fs.ModeSymlink != 0:
			info, err := w.fs.Stat(path)
			if err != nil {
				w.logger.Warn().Err(err).Str("path", path).Msg("Skipping dangling symlink")
				continue
			}
			if !info.Mode().IsRegular() {
				w.logger.Trace().Str("path", path).Msg("Skipping symlink to non-regular file")
				continue
			}
			*tasks = append(*tasks, types.NewFileTask(path, info.Size()))

		case entry.Type().IsRegular():
			info, err := entry.Info()
			if err != nil {
				return errors.Wrapf(err, errors.ErrIO, "failed to stat %s", path).
					WithDetail("path", path)
			}
			*tasks = append(*tasks, types.NewFileTask(path, info.Size()))

		default:
			w.logger.Trace().Str("path", path).Msg("Skipping special file")
		}
	}

	return nil
}
