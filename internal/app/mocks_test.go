package app

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type mockEntry struct {
	modTime time.Time
	isDir   bool
	mode    fs.FileMode
}

type mockFS struct {
	entries  map[string]mockEntry
	openErr  map[string]error
	statErr  map[string]error
	copyErr  map[string]error
	mkdirErr error
	walkErr  error
	copies   map[string]string
	mkdirs   []string
}

func newMockFS() *mockFS {
	return &mockFS{
		entries: map[string]mockEntry{},
		openErr: map[string]error{},
		statErr: map[string]error{},
		copyErr: map[string]error{},
		copies:  map[string]string{},
	}
}

func (m *mockFS) addFile(path string, modTime time.Time) {
	m.entries[path] = mockEntry{modTime: modTime}
}

func (m *mockFS) addDir(path string) {
	m.entries[path] = mockEntry{isDir: true, mode: fs.ModeDir}
}

func (m *mockFS) WalkDir(root string, fn fs.WalkDirFunc) error {
	if m.walkErr != nil {
		return fn(root, nil, m.walkErr)
	}
	var paths []string
	for path := range m.entries {
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	for _, path := range paths {
		entry := m.entries[path]
		if err := fn(path, mockDirEntry{name: filepath.Base(path), isDir: entry.isDir, mode: entry.mode}, nil); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockFS) Open(path string) (fs.File, error) {
	if err := m.openErr[path]; err != nil {
		return nil, err
	}
	entry, ok := m.entries[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return &mockFile{info: mockFileInfo{name: filepath.Base(path), modTime: entry.modTime}, statErr: m.statErr[path]}, nil
}

func (m *mockFS) Exists(path string) (bool, error) {
	_, ok := m.entries[path]
	return ok, nil
}

func (m *mockFS) MkdirAll(path string, perm fs.FileMode) error {
	if m.mkdirErr != nil {
		return m.mkdirErr
	}
	m.mkdirs = append(m.mkdirs, path)
	m.addDir(path)
	return nil
}

func (m *mockFS) CopyFile(src, dst string) error {
	if err := m.copyErr[src]; err != nil {
		return err
	}
	if _, ok := m.entries[filepath.Dir(dst)]; !ok {
		return fs.ErrNotExist
	}
	m.copies[src] = dst
	m.addFile(dst, m.entries[src].modTime)
	return nil
}

type mockFile struct {
	info    mockFileInfo
	statErr error
}

func (f *mockFile) Stat() (fs.FileInfo, error) {
	if f.statErr != nil {
		return nil, f.statErr
	}
	return f.info, nil
}
func (f *mockFile) Read([]byte) (int, error) { return 0, errors.New("not readable") }
func (f *mockFile) Close() error             { return nil }

type mockExif struct {
	values map[string]string
	errs   map[string]error
	calls  []string
}

func (m *mockExif) Supports(ext string) bool {
	switch strings.ToLower(ext) {
	case "jpg", "jpeg", "tif", "tiff":
		return true
	}
	return false
}

func (m *mockExif) DateTimeOriginal(ctx context.Context, path string) ([]byte, error) {
	m.calls = append(m.calls, path)
	if err := m.errs[path]; err != nil {
		return nil, err
	}
	if v, ok := m.values[path]; ok {
		return []byte(v), nil
	}
	return nil, errors.New("no DateTimeOriginal EXIF tag found")
}

type mockDirEntry struct {
	name  string
	isDir bool
	mode  fs.FileMode
}

func (m mockDirEntry) Name() string               { return m.name }
func (m mockDirEntry) IsDir() bool                { return m.isDir }
func (m mockDirEntry) Type() fs.FileMode          { return m.mode.Type() }
func (m mockDirEntry) Info() (fs.FileInfo, error) { return nil, nil }

type mockFileInfo struct {
	name    string
	modTime time.Time
}

func (m mockFileInfo) Name() string       { return m.name }
func (m mockFileInfo) Size() int64        { return 0 }
func (m mockFileInfo) Mode() fs.FileMode  { return 0 }
func (m mockFileInfo) ModTime() time.Time { return m.modTime }
func (m mockFileInfo) IsDir() bool        { return false }
func (m mockFileInfo) Sys() interface{}   { return nil }
