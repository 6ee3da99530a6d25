package app

import (
	"context"
	"errors"
	"io/fs"

	"camroll/internal/domain"
	appErrors "camroll/internal/errors"
	"camroll/internal/logging"
)

// MappingFunc receives each resolved source -> destination pair in dry-run mode.
type MappingFunc func(task domain.FileTask)

// Outcome is the result of processing one source entry. Err is set when the
// entry was skipped.
type Outcome struct {
	Task domain.FileTask
	Err  error
}

type Summary struct {
	Files       int
	Copied      int
	Planned     int
	Skipped     int
	FromExif    int
	FromModTime int
}

func (s *Summary) Record(o Outcome, dryRun bool) {
	s.Files++
	if o.Err != nil {
		s.Skipped++
		return
	}
	switch o.Task.TimeSource {
	case domain.SourceExif:
		s.FromExif++
	case domain.SourceModTime:
		s.FromModTime++
	}
	if dryRun {
		s.Planned++
	} else {
		s.Copied++
	}
}

// Driver walks the source tree and runs extract, resolve and copy for one
// regular file at a time.
type Driver struct {
	FS        FileSystem
	Extractor *Extractor
	Namer     *Namer
	Logger    logging.Logger
	DryRun    bool
	OnMapping MappingFunc
}

// Run processes every regular file under sourceDir. Per-file failures are
// logged and counted; only a walk error is returned, as a TraversalFailure.
func (d *Driver) Run(ctx context.Context, sourceDir, targetDir string) (Summary, error) {
	if d.FS == nil || d.Extractor == nil || d.Namer == nil {
		return Summary{}, errors.New("driver requires FS, Extractor and Namer")
	}

	stop := d.Logger.Measure("Copy run")
	defer stop()

	var summary Summary
	err := d.FS.WalkDir(sourceDir, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !entry.Type().IsRegular() {
			if !entry.IsDir() {
				d.Logger.Verbosef("Skipping non-regular file %s", path)
			}
			return nil
		}
		outcome := d.Process(ctx, path, targetDir)
		if outcome.Err != nil && errors.Is(outcome.Err, context.Canceled) {
			return outcome.Err
		}
		summary.Record(outcome, d.DryRun)
		return nil
	})
	if err != nil {
		return summary, appErrors.Wrap(appErrors.TraversalFailure, "walk", sourceDir, err)
	}

	d.Logger.Verbosef("Processed %d files (%d from EXIF, %d from mtime, %d skipped)",
		summary.Files, summary.FromExif, summary.FromModTime, summary.Skipped)
	return summary, nil
}

// Scan lists the regular files under sourceDir without processing them.
func (d *Driver) Scan(ctx context.Context, sourceDir string) ([]string, error) {
	var paths []string
	err := d.FS.WalkDir(sourceDir, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, appErrors.Wrap(appErrors.TraversalFailure, "walk", sourceDir, err)
	}
	return paths, nil
}

// Process handles a single source file end to end. A failure at any step is
// logged and returned in the Outcome; it never stops the run.
func (d *Driver) Process(ctx context.Context, path, targetDir string) Outcome {
	task := domain.NewFileTask(path)

	file, err := d.FS.Open(path)
	if err != nil {
		return d.skip(task, appErrors.Wrap(appErrors.FilesystemUnreadable, "open", path, err))
	}
	err = d.Extractor.Extract(ctx, &task, file)
	file.Close()
	if err != nil {
		return d.skip(task, err)
	}

	dest, err := d.Namer.Resolve(targetDir, task.DateTime, task.Ext)
	if err != nil {
		return d.skip(task, err)
	}
	task.Destination = dest

	if d.DryRun {
		if d.OnMapping != nil {
			d.OnMapping(task)
		}
		return Outcome{Task: task}
	}

	if err := d.FS.CopyFile(path, dest); err != nil {
		return d.skip(task, appErrors.Wrap(appErrors.CopyFailure, "copy", path, err))
	}
	d.Logger.Verbosef("Copied %s -> %s (%s)", path, dest, task.TimeSource)
	return Outcome{Task: task}
}

func (d *Driver) skip(task domain.FileTask, err error) Outcome {
	if !errors.Is(err, context.Canceled) {
		d.Logger.Errorf("%s", appErrors.UserMessage(err))
	}
	return Outcome{Task: task, Err: err}
}
