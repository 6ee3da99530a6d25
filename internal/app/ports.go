package app

import (
	"context"
	"io/fs"
)

type FileSystem interface {
	WalkDir(root string, fn fs.WalkDirFunc) error
	Open(path string) (fs.File, error)
	Exists(path string) (bool, error)
	MkdirAll(path string, perm fs.FileMode) error
	CopyFile(src, dst string) error
}

// ExifReader returns the raw text of a file's DateTimeOriginal tag.
type ExifReader interface {
	Supports(ext string) bool
	DateTimeOriginal(ctx context.Context, path string) ([]byte, error)
}
