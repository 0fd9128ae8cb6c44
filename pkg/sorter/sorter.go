package sorter

import (
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/filesystem"
	"github.com/arthur-debert/filesort/pkg/logging"
	"github.com/arthur-debert/filesort/pkg/rules"
	"github.com/arthur-debert/filesort/pkg/runlock"
	"github.com/arthur-debert/filesort/pkg/types"
	"github.com/arthur-debert/filesort/pkg/walker"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options tune how a run treats the filesystem
type Options struct {
	// FileSystem defaults to the host filesystem
	FileSystem types.FS
	OnConflict types.ConflictPolicy
	KeepGoing  bool
	// LockDir enables the per-source run lock when set
	LockDir string
}

type runner struct {
	fs      types.FS
	opts    Options
	ruleset *rules.Ruleset
	logger  zerolog.Logger
}

// Run sorts the files of req.Source according to req.Rules.
//
// The returned result is never nil. When err is non-nil the result holds
// the outcomes recorded before the run stopped; files already moved stay
// where they are.
func Run(req types.SortRequest, opts Options) (*types.SortResult, error) {
	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	result := &types.SortResult{
		RunID:     uuid.NewString(),
		Source:    req.Source,
		Recursive: req.Recursive,
		StartedAt: time.Now(),
	}
	defer func() { result.FinishedAt = time.Now() }()

	logger := logging.GetLogger("sorter").With().
		Str("run_id", result.RunID).
		Logger()
	done := logging.LogOperationStart(logger, "sort")
	defer done()

	if req.Source != "" {
		abs, err := filepath.Abs(req.Source)
		if err != nil {
			return result, errors.Wrapf(err, errors.ErrDirectory, "cannot resolve source directory %s", req.Source)
		}
		result.Source = abs
	}

	if err := walker.ValidateSource(fsys, result.Source); err != nil {
		return result, err
	}

	ruleset, err := rules.Compile(req.Rules)
	if err != nil {
		return result, err
	}

	if opts.LockDir != "" {
		lock, err := runlock.Acquire(opts.LockDir, result.Source)
		if err != nil {
			return result, err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn().Err(err).Msg("Failed to release run lock")
			}
		}()
	}

	logger.Info().
		Str("source", result.Source).
		Bool("recursive", req.Recursive).
		Int("rules", ruleset.Len()).
		Str("onConflict", opts.OnConflict.String()).
		Bool("keepGoing", opts.KeepGoing).
		Msg("Starting sort")

	tasks, err := walker.New(fsys).Snapshot(result.Source, req.Recursive)
	if err != nil {
		return result, err
	}

	r := &runner{
		fs:      fsys,
		opts:    opts,
		ruleset: ruleset,
		logger:  logger,
	}

	for _, task := range tasks {
		outcome := r.process(task)
		result.Outcomes = append(result.Outcomes, outcome)

		if outcome.Status != types.StatusFailed {
			continue
		}
		if !opts.KeepGoing {
			logger.Error().Err(outcome.Err).Str("file", task.Path).Msg("Sort aborted")
			return result, outcome.Err
		}
		logger.Warn().Err(outcome.Err).Str("file", task.Path).Msg("File not moved, continuing")
	}

	stats := result.Stats()
	logger.Info().
		Int("total", stats.Total).
		Int("moved", stats.Moved).
		Int("unmatched", stats.Unmatched).
		Int("skipped", stats.Skipped).
		Int("failed", stats.Failed).
		Msg("Sort complete")

	return result, nil
}

// process decides and performs the action for one file
func (r *runner) process(task types.FileTask) types.FileOutcome {
	decision := r.ruleset.Classify(task)
	outcome := types.FileOutcome{
		File:      task,
		Status:    types.StatusUnmatched,
		RuleIndex: decision.Index,
		Rule:      decision.Rule,
	}

	if !decision.Matched {
		r.logger.Debug().Str("file", task.Path).Msg("No rule matched")
		return outcome
	}

	destDir := decision.Destination
	if abs, err := filepath.Abs(destDir); err == nil {
		destDir = abs
	}
	target := filepath.Join(destDir, task.Name)
	outcome.Target = target

	if inPlace(r.fs, task.Path, target) {
		outcome.Status = types.StatusSkipped
		r.logger.Debug().Str("file", task.Path).Msg("Already in place")
		return outcome
	}

	if err := checkDestination(r.fs, destDir); err != nil {
		return failed(outcome, err)
	}

	resolved, err := resolveConflict(r.fs, target, r.opts.OnConflict)
	if err != nil {
		return failed(outcome, err)
	}
	outcome.Target = resolved.path
	outcome.Renamed = resolved.renamed
	outcome.Overwrote = resolved.overwrite

	if err := filesystem.Move(r.fs, task.Path, resolved.path); err != nil {
		return failed(outcome, errors.Wrapf(err, errors.ErrIO, "failed to move %s to %s", task.Path, resolved.path).
			WithDetail("source", task.Path).
			WithDetail("target", resolved.path))
	}

	outcome.Status = types.StatusMoved
	r.logger.Info().
		Str("file", task.Path).
		Str("target", resolved.path).
		Str("rule", decision.Rule.Label()).
		Bool("renamed", resolved.renamed).
		Bool("overwrote", resolved.overwrite).
		Msg("Moved file")

	return outcome
}

func failed(outcome types.FileOutcome, err error) types.FileOutcome {
	outcome.Status = types.StatusFailed
	outcome.Err = err
	return outcome
}

// inPlace reports whether target names the file already at path, either
// literally or through a symlinked directory
func inPlace(fsys types.FS, path, target string) bool {
	if filepath.Clean(path) == target {
		return true
	}
	src, err := fsys.Lstat(path)
	if err != nil {
		return false
	}
	dst, err := fsys.Lstat(target)
	if err != nil {
		return false
	}
	return os.SameFile(src, dst)
}

// checkDestination requires dir to be an existing directory
func checkDestination(fsys types.FS, dir string) error {
	info, err := fsys.Stat(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "destination directory %s does not exist", dir).
			WithDetail("destination", dir)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrIO, "destination %s is not a directory", dir).
			WithDetail("destination", dir)
	}
	return nil
}
