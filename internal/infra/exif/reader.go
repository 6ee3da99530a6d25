package exif

import (
	"context"
	"os"

	"github.com/pkg/errors"
	goexif "github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"camroll/internal/domain"
)

var (
	ErrNoDateTimeOriginal = errors.New("no DateTimeOriginal EXIF tag found")
	ErrNotASCII           = errors.New("DateTimeOriginal EXIF tag is not ASCII")
)

// Reader decodes EXIF from JPEG and TIFF containers.
type Reader struct{}

func (Reader) Supports(ext string) bool {
	return domain.IsExifExtension(ext)
}

// DateTimeOriginal returns the raw text of the DateTimeOriginal tag, cut at the
// first NUL.
func (Reader) DateTimeOriginal(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	x, err := goexif.Decode(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read exif")
	}

	tag, err := x.Get(goexif.DateTimeOriginal)
	if err != nil {
		return nil, ErrNoDateTimeOriginal
	}
	if tag.Type != tiff.DTAscii {
		return nil, errors.Wrapf(ErrNotASCII, "type %d", tag.Type)
	}
	str, err := tag.StringVal()
	if err != nil {
		return nil, errors.Wrap(ErrNotASCII, err.Error())
	}
	if str == "" {
		return nil, errors.Wrap(ErrNotASCII, "empty value")
	}
	return []byte(str), nil
}
