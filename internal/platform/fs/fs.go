package fs

import (
	"io"
	"os"
	"path/filepath"
)

// FileSystem provides an abstraction over file system operations.
// This allows for easy mocking in tests.
type FileSystem interface {
	// File operations
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	Stat(path string) (os.FileInfo, error)
	Remove(path string) error

	// Directory operations
	MkdirAll(path string, perm os.FileMode) error
	ReadDir(path string) ([]os.DirEntry, error)

	// Path operations
	Exists(path string) bool
	IsDir(path string) bool

	// CopyFile streams src into dst, replacing dst only once the copy is complete.
	CopyFile(src, dst string) error

	// Path utilities
	Abs(path string) (string, error)
	Join(elem ...string) string
	Dir(path string) string
	Base(path string) string

	// Home directory
	UserHomeDir() (string, error)
}

// RealFileSystem implements FileSystem using the real file system.
type RealFileSystem struct{}

// Compile-time interface checks.
var (
	_ FileSystem = (*RealFileSystem)(nil)
	_ FileSystem = (*MockFileSystem)(nil)
)

// NewFileSystem returns a new RealFileSystem.
func NewFileSystem() *RealFileSystem {
	return &RealFileSystem{}
}

func (r *RealFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data through a temp file in the same directory and renames it into place.
func (r *RealFileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	return writeAtomic(path, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

func (r *RealFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (r *RealFileSystem) Remove(path string) error {
	return os.Remove(path)
}

func (r *RealFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (r *RealFileSystem) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

func (r *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (r *RealFileSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func (r *RealFileSystem) CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = sourceFile.Close() }()

	info, err := sourceFile.Stat()
	if err != nil {
		return err
	}

	return writeAtomic(dst, info.Mode().Perm(), func(w io.Writer) error {
		_, err := io.Copy(w, sourceFile)
		return err
	})
}

func (r *RealFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

func (r *RealFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

func (r *RealFileSystem) Dir(path string) string {
	return filepath.Dir(path)
}

func (r *RealFileSystem) Base(path string) string {
	return filepath.Base(path)
}

func (r *RealFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// writeAtomic runs write against a temp file next to path, then renames it over path.
// The temp file is removed on any failure so path is either untouched or complete.
func writeAtomic(path string, perm os.FileMode, write func(w io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	done := false
	defer func() {
		if !done {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := write(tmp); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		done = true
		return err
	}

	done = true
	return nil
}
