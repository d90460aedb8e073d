package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wwwyo/xatsw/internal/platform/fs"
)

func TestStoreLoad(t *testing.T) {
	t.Run("load legacy json config", func(t *testing.T) {
		mock := fs.NewMockFileSystem()
		mock.Dirs["/work"] = true
		mock.Files["/work/xatsw.conf"] = []byte(`{"storage":"/data/profiles","current_target":"dev","targets":{"dev":"/mnt/dev"}}`)

		cfg, err := NewStore(mock).Load("/work/xatsw.conf")
		require.NoError(t, err)

		assert.Equal(t, "/data/profiles", cfg.Storage)
		assert.Equal(t, "dev", cfg.CurrentTarget)
		assert.Equal(t, map[string]string{"dev": "/mnt/dev"}, cfg.Targets)
	})

	t.Run("load yaml config", func(t *testing.T) {
		mock := fs.NewMockFileSystem()
		mock.Dirs["/work"] = true
		mock.Files["/work/xatsw.yaml"] = []byte(`storage: /data/profiles
current_target: dev
targets:
  dev: /mnt/dev
  qa: /mnt/qa
`)

		cfg, err := NewStore(mock).Load("/work/xatsw.yaml")
		require.NoError(t, err)

		assert.Equal(t, "dev", cfg.CurrentTarget)
		assert.Len(t, cfg.Targets, 2)
	})

	t.Run("load toml config", func(t *testing.T) {
		mock := fs.NewMockFileSystem()
		mock.Dirs["/work"] = true
		mock.Files["/work/xatsw.toml"] = []byte(`storage = "/data/profiles"

[targets]
dev = "/mnt/dev"
`)

		cfg, err := NewStore(mock).Load("/work/xatsw.toml")
		require.NoError(t, err)

		assert.Equal(t, "/data/profiles", cfg.Storage)
		assert.Empty(t, cfg.CurrentTarget)
		assert.Equal(t, "/mnt/dev", cfg.Targets["dev"])
	})

	t.Run("missing file degrades to empty config", func(t *testing.T) {
		mock := fs.NewMockFileSystem()

		cfg, err := NewStore(mock).Load("/work/xatsw.conf")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
		require.NotNil(t, cfg)
		assert.NotNil(t, cfg.Targets)
		assert.Empty(t, cfg.Targets)
	})

	t.Run("malformed file degrades to empty config", func(t *testing.T) {
		mock := fs.NewMockFileSystem()
		mock.Dirs["/work"] = true
		mock.Files["/work/xatsw.conf"] = []byte(`{"targets": [`)

		cfg, err := NewStore(mock).Load("/work/xatsw.conf")
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrNotFound))
		require.NotNil(t, cfg)
		assert.Empty(t, cfg.Storage)
		assert.Empty(t, cfg.Targets)
	})

	t.Run("null targets become an empty map", func(t *testing.T) {
		mock := fs.NewMockFileSystem()
		mock.Dirs["/work"] = true
		mock.Files["/work/xatsw.conf"] = []byte(`{"storage":"/data"}`)

		cfg, err := NewStore(mock).Load("/work/xatsw.conf")
		require.NoError(t, err)
		assert.NotNil(t, cfg.Targets)
	})
}

func TestStoreSaveRoundTrip(t *testing.T) {
	for _, path := range []string{"/work/xatsw.conf", "/work/xatsw.yaml", "/work/xatsw.toml"} {
		t.Run(string(FormatFor(path)), func(t *testing.T) {
			mock := fs.NewMockFileSystem()
			store := NewStore(mock)

			want := &Config{
				Storage:       "/data/profiles",
				CurrentTarget: "dev",
				Targets:       map[string]string{"dev": "/mnt/dev", "qa": "/mnt/qa"},
			}
			require.NoError(t, store.Save(want, path))

			got, err := store.Load(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestStoreSaveUsesCurrentTargetKey(t *testing.T) {
	mock := fs.NewMockFileSystem()
	store := NewStore(mock)

	require.NoError(t, store.Save(&Config{CurrentTarget: "dev", Targets: map[string]string{}}, "/work/xatsw.conf"))

	data, err := mock.ReadFile("/work/xatsw.conf")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"current_target": "dev"`)
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"xatsw.conf":      FormatJSON,
		"xatsw.json":      FormatJSON,
		"config.YAML":     FormatYAML,
		"config.yml":      FormatYAML,
		"/etc/xatsw.toml": FormatTOML,
		"no-extension":    FormatJSON,
	}
	for path, want := range tests {
		if got := FormatFor(path); got != want {
			t.Errorf("FormatFor(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	cfg := &Config{Storage: "/s", CurrentTarget: "a", Targets: map[string]string{"a": "/a"}}
	clone := cfg.Clone()
	clone.Targets["b"] = "/b"
	clone.Storage = "/other"

	if _, ok := cfg.Targets["b"]; ok {
		t.Fatal("Clone() shares the targets map with the original")
	}
	if cfg.Storage != "/s" {
		t.Fatalf("Clone() mutated original storage: %q", cfg.Storage)
	}
}

func TestAbsPath(t *testing.T) {
	mock := fs.NewMockFileSystem()
	mock.HomeDir = "/home/user"
	mock.Cwd = "/work"

	tests := []struct {
		in   string
		want string
	}{
		{in: "~/profiles", want: "/home/user/profiles"},
		{in: "relative/dir", want: "/work/relative/dir"},
		{in: "/abs/dir/", want: "/abs/dir"},
	}
	for _, tt := range tests {
		got, err := AbsPath(mock, tt.in)
		if err != nil {
			t.Fatalf("AbsPath(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("AbsPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
