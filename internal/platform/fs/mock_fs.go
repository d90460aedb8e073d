package fs

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MockFileSystem implements FileSystem for testing purposes.
type MockFileSystem struct {
	Files   map[string][]byte
	Dirs    map[string]bool
	HomeDir string
	Cwd     string
	// ReadOnly marks directories whose entries cannot be created or replaced.
	ReadOnly map[string]bool
}

// NewMockFileSystem returns a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:    make(map[string][]byte),
		Dirs:     make(map[string]bool),
		HomeDir:  "/home/test",
		Cwd:      "/work",
		ReadOnly: make(map[string]bool),
	}
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	path = m.normalizePath(path)
	if data, ok := m.Files[path]; ok {
		return data, nil
	}
	return nil, os.ErrNotExist
}

func (m *MockFileSystem) WriteFile(path string, data []byte, _ os.FileMode) error {
	path = m.normalizePath(path)
	if err := m.checkWritable(path); err != nil {
		return err
	}
	m.Files[path] = append([]byte(nil), data...)
	return nil
}

func (m *MockFileSystem) Stat(path string) (os.FileInfo, error) {
	path = m.normalizePath(path)

	if data, ok := m.Files[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), size: int64(len(data))}, nil
	}
	if m.Dirs[path] {
		return &mockFileInfo{name: filepath.Base(path), isDir: true}, nil
	}
	return nil, os.ErrNotExist
}

func (m *MockFileSystem) Remove(path string) error {
	path = m.normalizePath(path)
	if _, ok := m.Files[path]; !ok && !m.Dirs[path] {
		return os.ErrNotExist
	}
	delete(m.Files, path)
	delete(m.Dirs, path)
	return nil
}

func (m *MockFileSystem) MkdirAll(path string, _ os.FileMode) error {
	path = m.normalizePath(path)
	m.Dirs[path] = true

	// Also create parent directories
	parts := strings.Split(path, "/")
	for i := 1; i < len(parts); i++ {
		parent := strings.Join(parts[:i+1], "/")
		if parent != "" {
			m.Dirs[parent] = true
		}
	}
	return nil
}

func (m *MockFileSystem) ReadDir(path string) ([]os.DirEntry, error) {
	path = m.normalizePath(path)

	if !m.Dirs[path] {
		return nil, os.ErrNotExist
	}

	var entries []os.DirEntry
	seen := make(map[string]bool)

	prefix := path + "/"

	for p := range m.Files {
		if rel, ok := strings.CutPrefix(p, prefix); ok && !strings.Contains(rel, "/") && !seen[rel] {
			entries = append(entries, &mockDirEntry{name: rel})
			seen[rel] = true
		}
	}

	for p := range m.Dirs {
		if rel, ok := strings.CutPrefix(p, prefix); ok && rel != "" {
			name := strings.Split(rel, "/")[0]
			if !seen[name] {
				entries = append(entries, &mockDirEntry{name: name, isDir: true})
				seen[name] = true
			}
		}
	}

	return entries, nil
}

func (m *MockFileSystem) Exists(path string) bool {
	path = m.normalizePath(path)
	if _, ok := m.Files[path]; ok {
		return true
	}
	return m.Dirs[path]
}

func (m *MockFileSystem) IsDir(path string) bool {
	return m.Dirs[m.normalizePath(path)]
}

func (m *MockFileSystem) CopyFile(src, dst string) error {
	src = m.normalizePath(src)
	dst = m.normalizePath(dst)

	data, ok := m.Files[src]
	if !ok {
		return os.ErrNotExist
	}
	if err := m.checkWritable(dst); err != nil {
		return err
	}
	m.Files[dst] = append([]byte(nil), data...)
	return nil
}

func (m *MockFileSystem) Abs(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		return m.normalizePath(path), nil
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Join(m.Cwd, path), nil
}

func (m *MockFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

func (m *MockFileSystem) Dir(path string) string {
	return filepath.Dir(path)
}

func (m *MockFileSystem) Base(path string) string {
	return filepath.Base(path)
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	return m.HomeDir, nil
}

// checkWritable mirrors what the real file system reports when the parent is missing or locked.
func (m *MockFileSystem) checkWritable(path string) error {
	dir := filepath.Dir(path)
	if !m.Dirs[dir] {
		return os.ErrNotExist
	}
	if m.ReadOnly[dir] {
		return os.ErrPermission
	}
	return nil
}

func (m *MockFileSystem) normalizePath(path string) string {
	// Replace ~ with home directory
	if strings.HasPrefix(path, "~") {
		path = m.HomeDir + path[1:]
	}
	return filepath.Clean(path)
}

// mockFileInfo implements os.FileInfo for testing
type mockFileInfo struct {
	name  string
	size  int64
	isDir bool
}

func (m *mockFileInfo) Name() string { return m.name }
func (m *mockFileInfo) Size() int64  { return m.size }
func (m *mockFileInfo) Mode() os.FileMode {
	if m.isDir {
		return os.ModeDir | 0o755
	}
	return 0o644
}
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() any           { return nil }

// mockDirEntry implements os.DirEntry for testing
type mockDirEntry struct {
	name  string
	isDir bool
}

func (m *mockDirEntry) Name() string { return m.name }
func (m *mockDirEntry) IsDir() bool  { return m.isDir }
func (m *mockDirEntry) Type() os.FileMode {
	if m.isDir {
		return os.ModeDir
	}
	return 0
}
func (m *mockDirEntry) Info() (os.FileInfo, error) {
	return &mockFileInfo{name: m.name, isDir: m.isDir}, nil
}
