package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/wwwyo/xatsw/internal/platform/fs"
)

// ErrNotFound is returned by Load when the config file does not exist yet.
var ErrNotFound = errors.New("config file not found")

// Store manages config file persistence.
type Store struct {
	fs fs.FileSystem
}

// NewStore creates a new Store.
func NewStore(fsys fs.FileSystem) *Store {
	return &Store{fs: fsys}
}

// FormatFor picks the encoding from the file extension.
func FormatFor(path string) Format {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lower, ".toml"):
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Load loads the configuration from a file.
// It always returns a usable config: on any failure the config is empty and the
// error describes what went wrong so the caller can report it.
func (s *Store) Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFileName
	}
	path, err := ExpandPath(s.fs, path)
	if err != nil {
		return Empty(), err
	}

	if !s.fs.Exists(path) {
		return Empty(), fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return Empty(), fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := unmarshal(FormatFor(path), data, &cfg); err != nil {
		return Empty(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Targets == nil {
		cfg.Targets = make(map[string]string)
	}

	return &cfg, nil
}

// Save saves the configuration to a specific path.
func (s *Store) Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultFileName
	}
	path, err := ExpandPath(s.fs, path)
	if err != nil {
		return err
	}

	data, err := marshal(FormatFor(path), cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := s.fs.Dir(path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.fs.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func unmarshal(format Format, data []byte, cfg *Config) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, cfg)
	case FormatTOML:
		return toml.Unmarshal(data, cfg)
	default:
		return json.Unmarshal(data, cfg)
	}
}

func marshal(format Format, cfg *Config) ([]byte, error) {
	if cfg == nil {
		cfg = Empty()
	}
	switch format {
	case FormatYAML:
		return yaml.Marshal(cfg)
	case FormatTOML:
		return toml.Marshal(cfg)
	default:
		return json.MarshalIndent(cfg, "", "  ")
	}
}
