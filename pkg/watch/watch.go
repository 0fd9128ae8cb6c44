// Package watch re-runs a sort whenever files show up in the source
// directory. Sorts run one at a time from a single event loop; bursts of
// events are collapsed by a debounce timer.
package watch

import (
	"context"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/logging"
	"github.com/arthur-debert/filesort/pkg/types"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is used when Options.Debounce is not positive
const DefaultDebounce = 2 * time.Second

// SortFunc performs one sort run
type SortFunc func() (*types.SortResult, error)

// Options configure a watch loop
type Options struct {
	Source    string
	Recursive bool
	Debounce  time.Duration
	Sort      SortFunc
	// OnResult, when set, receives every run's result
	OnResult func(*types.SortResult, error)
}

type watcher struct {
	opts    Options
	fsw     *fsnotify.Watcher
	logger  zerolog.Logger
	watched map[string]bool
}

// Run sorts once, then again after every quiet period following new or
// changed files, until ctx is cancelled. It returns nil on cancellation
// and an error when a run fails in a way a later run cannot fix (the
// source disappeared, the rules are invalid).
func Run(ctx context.Context, opts Options) error {
	if opts.Sort == nil {
		return errors.New(errors.ErrInvalidInput, "watch needs a sort function")
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrIO, "failed to create file watcher")
	}
	defer func() { _ = fsw.Close() }()

	w := &watcher{
		opts:    opts,
		fsw:     fsw,
		logger:  logging.GetLogger("watch"),
		watched: make(map[string]bool),
	}

	if err := w.sortOnce(); err != nil {
		return err
	}
	root := opts.Source
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	if err := w.addTree(root); err != nil {
		return err
	}

	w.logger.Info().
		Str("source", opts.Source).
		Bool("recursive", opts.Recursive).
		Dur("debounce", opts.Debounce).
		Msg("Watching for new files")

	return w.loop(ctx)
}

func (w *watcher) loop(ctx context.Context) error {
	timer := time.NewTimer(w.opts.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("Watch stopped")
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Trace().Str("path", event.Name).Str("op", event.Op.String()).Msg("File event")
			timer.Reset(w.opts.Debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("File watcher error")

		case <-timer.C:
			if err := w.sortOnce(); err != nil {
				return err
			}
		}
	}
}

// relevant filters events down to new or rewritten entries; a new
// directory is added to the watch list when recursing
func (w *watcher) relevant(event fsnotify.Event) bool {
	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		// the kernel drops the watch with the directory
		delete(w.watched, event.Name)
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}
	if w.opts.Recursive && event.Has(fsnotify.Create) {
		if err := w.addTree(event.Name); err != nil {
			w.logger.Warn().Err(err).Str("path", event.Name).Msg("Cannot watch new directory")
		}
	}
	return true
}

func (w *watcher) sortOnce() error {
	result, err := w.opts.Sort()
	if w.opts.OnResult != nil {
		w.opts.OnResult(result, err)
	}
	if err == nil {
		return nil
	}
	if fatal(err) {
		return err
	}
	w.logger.Warn().Err(err).Msg("Sort run failed, waiting for changes")
	return nil
}

// fatal reports errors that will repeat on every run
func fatal(err error) bool {
	return errors.IsErrorCode(err, errors.ErrDirectory) ||
		errors.IsErrorCode(err, errors.ErrRuleParse) ||
		errors.IsErrorCode(err, errors.ErrInvalidInput)
}

// addTree watches root and, when recursing, every real directory below
// it. Symlinked directories are not followed. Paths that are not
// directories are ignored.
func (w *watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				// vanished or a file; nothing to watch
				return nil
			}
			w.logger.Debug().Err(err).Str("path", path).Msg("Skipping unreadable path")
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if !w.watched[path] {
			if err := w.fsw.Add(path); err != nil {
				return errors.Wrapf(err, errors.ErrIO, "failed to watch %s", path).
					WithDetail("path", path)
			}
			w.watched[path] = true
			w.logger.Debug().Str("path", path).Msg("Watching directory")
		}
		if !w.opts.Recursive {
			return filepath.SkipDir
		}
		return nil
	})
}
