package exiftool

import (
	"context"

	goexiftool "github.com/barasher/go-exiftool"
	"github.com/pkg/errors"

	"camroll/internal/domain"
)

var ErrNoDateTimeOriginal = errors.New("no DateTimeOriginal tag reported by exiftool")

// Reader asks a long-running exiftool process for DateTimeOriginal. It reaches
// containers goexif cannot decode, such as PNG, HEIC and camera RAW.
type Reader struct {
	et *goexiftool.Exiftool
}

func New() (*Reader, error) {
	et, err := goexiftool.NewExiftool()
	if err != nil {
		return nil, errors.Wrap(err, "starting exiftool")
	}
	return &Reader{et: et}, nil
}

func (r *Reader) Close() error {
	return r.et.Close()
}

func (r *Reader) Supports(ext string) bool {
	return domain.IsExiftoolExtension(ext)
}

func (r *Reader) DateTimeOriginal(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	infos := r.et.ExtractMetadata(path)
	if len(infos) == 0 {
		return nil, errors.Errorf("exiftool returned no metadata for %s", path)
	}
	if infos[0].Err != nil {
		return nil, errors.Wrap(infos[0].Err, "failed to read metadata")
	}

	value, err := infos[0].GetString("DateTimeOriginal")
	if err != nil {
		if errors.Is(err, goexiftool.ErrKeyNotFound) {
			return nil, ErrNoDateTimeOriginal
		}
		return nil, errors.Wrap(err, "DateTimeOriginal")
	}
	return []byte(value), nil
}
