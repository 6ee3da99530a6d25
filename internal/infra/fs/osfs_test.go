package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.jpg")
	dst := filepath.Join(dir, "b.jpg")
	if err := os.WriteFile(src, []byte("pixels"), 0o640); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := (OSFS{}).CopyFile(src, dst); err != nil {
		t.Fatalf("copy: %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "pixels" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestCopyFileMissingDestinationDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.jpg")
	if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := (OSFS{}).CopyFile(src, filepath.Join(dir, "missing", "b.jpg")); err == nil {
		t.Fatalf("expected error for missing destination directory")
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	osfs := OSFS{}
	exists, err := osfs.Exists(filepath.Join(dir, "nope"))
	if err != nil || exists {
		t.Fatalf("expected missing file, got %v %v", exists, err)
	}
	exists, err = osfs.Exists(dir)
	if err != nil || !exists {
		t.Fatalf("expected existing dir, got %v %v", exists, err)
	}
}

func TestWalkDirVisitsNestedFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "x", "y"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"a.jpg", filepath.Join("x", "b.png"), filepath.Join("x", "y", "c")} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	var files []string
	err := (OSFS{}).WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			rel, _ := filepath.Rel(dir, path)
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	sort.Strings(files)
	if len(files) != 3 || files[0] != "a.jpg" {
		t.Fatalf("unexpected files: %v", files)
	}
}
