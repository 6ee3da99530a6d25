package domain

import (
	"path/filepath"
	"strings"
)

// TimeSource records where a FileTask's DateTime came from.
type TimeSource int

const (
	SourceUnknown TimeSource = iota
	SourceExif
	SourceModTime
)

func (s TimeSource) String() string {
	switch s {
	case SourceExif:
		return "exif"
	case SourceModTime:
		return "mtime"
	default:
		return "unknown"
	}
}

// FileTask lives for the processing of a single source entry.
type FileTask struct {
	SourcePath  string
	Ext         string
	DateTime    DateTime
	TimeSource  TimeSource
	Destination string
}

func NewFileTask(sourcePath string) FileTask {
	return FileTask{
		SourcePath: sourcePath,
		Ext:        Extension(filepath.Base(sourcePath)),
	}
}

// Extension returns the text after the last dot, without the dot and with its
// case preserved. Dot-files without a further dot have no extension.
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}

func IsExifExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case "jpg", "jpeg", "tif", "tiff":
		return true
	default:
		return false
	}
}

// IsExiftoolExtension covers the containers exiftool reads beyond JPEG and TIFF.
func IsExiftoolExtension(ext string) bool {
	if IsExifExtension(ext) {
		return true
	}
	switch strings.ToLower(ext) {
	case "png", "heic", "heif", "webp", "dng", "cr2", "nef", "arw":
		return true
	default:
		return false
	}
}
