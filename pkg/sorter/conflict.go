package sorter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/types"
)

// maxRenameAttempts bounds the search for a free "name (N).ext"
const maxRenameAttempts = 10000

type resolution struct {
	path      string
	renamed   bool
	overwrite bool
}

// resolveConflict picks the path a file is moved to when target may
// already be taken
func resolveConflict(fsys types.FS, target string, policy types.ConflictPolicy) (resolution, error) {
	existing, err := fsys.Lstat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return resolution{path: target}, nil
		}
		return resolution{}, errors.Wrapf(err, errors.ErrIO, "cannot inspect %s", target).
			WithDetail("target", target)
	}

	switch policy {
	case types.ConflictOverwrite:
		if existing.IsDir() {
			return resolution{}, errors.Newf(errors.ErrIO, "cannot overwrite directory %s", target).
				WithDetail("target", target)
		}
		return resolution{path: target, overwrite: true}, nil

	case types.ConflictRename:
		path, err := freeName(fsys, target)
		if err != nil {
			return resolution{}, err
		}
		return resolution{path: path, renamed: true}, nil

	default:
		return resolution{}, errors.Newf(errors.ErrDestinationExists, "destination file %s already exists", target).
			WithDetail("target", target)
	}
}

// freeName returns the first "stem (N)ext" next to target that does not
// exist yet, counting N from 1
func freeName(fsys types.FS, target string) (string, error) {
	dir := filepath.Dir(target)
	base := filepath.Base(target)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		// dotfiles like ".bashrc" keep the whole name as stem
		stem, ext = base, ""
	}

	for n := 1; n <= maxRenameAttempts; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		_, err := fsys.Lstat(candidate)
		if os.IsNotExist(err) {
			return candidate, nil
		}
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrIO, "cannot inspect %s", candidate).
				WithDetail("target", candidate)
		}
	}

	return "", errors.Newf(errors.ErrDestinationExists, "no free name for %s after %d attempts", target, maxRenameAttempts).
		WithDetail("target", target)
}
