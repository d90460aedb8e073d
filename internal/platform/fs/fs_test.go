package fs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRealCopyFile(t *testing.T) {
	t.Run("copies bytes and replaces existing destination", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "src")
		dst := filepath.Join(dir, "dst")
		payload := bytes.Repeat([]byte{0x00, 0xff, 0x10}, 64*1024)

		if err := os.WriteFile(src, payload, 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		if err := os.WriteFile(dst, []byte("old"), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		fsys := NewFileSystem()
		if err := fsys.CopyFile(src, dst); err != nil {
			t.Fatalf("CopyFile() error = %v", err)
		}

		got, err := os.ReadFile(dst)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if !bytes.Equal(got, payload) {
			t.Fatalf("CopyFile() wrote %d bytes, want %d", len(got), len(payload))
		}
	})

	t.Run("missing source leaves no temp files", func(t *testing.T) {
		dir := t.TempDir()

		fsys := NewFileSystem()
		if err := fsys.CopyFile(filepath.Join(dir, "nope"), filepath.Join(dir, "dst")); !os.IsNotExist(err) {
			t.Fatalf("CopyFile() error = %v, want not-exist", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir() error = %v", err)
		}
		if len(entries) != 0 {
			t.Fatalf("expected empty dir, found %d entries", len(entries))
		}
	})

	t.Run("missing destination directory fails", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "src")
		if err := os.WriteFile(src, []byte("data"), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		fsys := NewFileSystem()
		if err := fsys.CopyFile(src, filepath.Join(dir, "missing", "dst")); err == nil {
			t.Fatal("CopyFile() expected error for missing destination directory")
		}
	})
}

func TestRealWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xatsw.conf")

	fsys := NewFileSystem()
	if err := fsys.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "{}" {
		t.Fatalf("ReadFile() = %q, want %q", got, "{}")
	}
	if !fsys.Exists(path) || fsys.IsDir(path) {
		t.Fatal("expected regular file after WriteFile()")
	}
}

func TestMockReadDir(t *testing.T) {
	mock := NewMockFileSystem()
	mock.Dirs["/storage"] = true
	mock.Dirs["/storage/nested"] = true
	mock.Files["/storage/a"] = []byte("a")
	mock.Files["/storage/nested/b"] = []byte("b")

	entries, err := mock.ReadDir("/storage")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	got := map[string]bool{}
	for _, e := range entries {
		got[e.Name()] = e.IsDir()
	}
	if len(got) != 2 || got["a"] || !got["nested"] {
		t.Fatalf("ReadDir() = %v, want file a and dir nested", got)
	}
}
