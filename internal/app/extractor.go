package app

import (
	"context"
	"errors"
	"io/fs"

	"camroll/internal/domain"
	appErrors "camroll/internal/errors"
	"camroll/internal/logging"
)

// Extractor resolves the capture time of a source file: EXIF DateTimeOriginal
// when the extension is supported and the tag parses, the file's modification
// time otherwise.
type Extractor struct {
	Exif   ExifReader
	Logger logging.Logger
}

// Extract fills task.DateTime and task.TimeSource. EXIF problems are logged and
// fall back to mtime; only a failing Stat on the open file is returned, as a
// FilesystemUnreadable error.
func (e *Extractor) Extract(ctx context.Context, task *domain.FileTask, file fs.File) error {
	if e.Exif != nil && e.Exif.Supports(task.Ext) {
		dt, err := e.exifDateTime(ctx, task.SourcePath)
		if err == nil {
			task.DateTime = dt
			task.TimeSource = domain.SourceExif
			return nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		e.Logger.Warnf("%s: couldn't get EXIF DateTime: %v", task.SourcePath, err)
	}

	info, err := file.Stat()
	if err != nil {
		return appErrors.Wrap(appErrors.FilesystemUnreadable, "stat", task.SourcePath, err)
	}
	dt, err := domain.FromTime(info.ModTime())
	if err != nil {
		return appErrors.Wrap(appErrors.FilesystemUnreadable, "mtime", task.SourcePath, err)
	}
	task.DateTime = dt
	task.TimeSource = domain.SourceModTime
	return nil
}

func (e *Extractor) exifDateTime(ctx context.Context, path string) (domain.DateTime, error) {
	raw, err := e.Exif.DateTimeOriginal(ctx, path)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return domain.DateTime{}, err
		}
		return domain.DateTime{}, appErrors.Wrap(appErrors.MetadataUnavailable, "exif", path, err)
	}
	dt, err := domain.ParseExifDateTime(raw)
	if err != nil {
		return domain.DateTime{}, appErrors.Wrap(appErrors.MetadataMalformed, "parse", path, err)
	}
	return dt, nil
}
