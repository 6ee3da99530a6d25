package app

import (
	"path/filepath"

	"camroll/internal/domain"
	appErrors "camroll/internal/errors"
)

// Namer picks destination paths inside per-year directories. Existence is
// checked against the live destination tree on every call; nothing is cached,
// and nothing guards against other writers between the check and the copy.
type Namer struct {
	FS FileSystem
	// DryRun skips creating missing year directories.
	DryRun bool
}

// Resolve returns a path under root/<year> that does not exist yet. Collisions
// are resolved by appending 1, 2, ... to the timestamp until a free name is found.
func (n *Namer) Resolve(root string, dt domain.DateTime, ext string) (string, error) {
	yearDir := filepath.Join(root, dt.YearDir())

	exists, err := n.FS.Exists(yearDir)
	if err != nil {
		return "", appErrors.Wrap(appErrors.CopyFailure, "stat", yearDir, err)
	}
	if !exists && !n.DryRun {
		if err := n.FS.MkdirAll(yearDir, 0o755); err != nil {
			return "", appErrors.Wrap(appErrors.CopyFailure, "mkdir", yearDir, err)
		}
	}

	for counter := 0; ; counter++ {
		candidate := filepath.Join(yearDir, dt.FileName(counter, ext))
		taken, err := n.FS.Exists(candidate)
		if err != nil {
			return "", appErrors.Wrap(appErrors.CopyFailure, "stat", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}
}
