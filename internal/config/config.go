package config

import (
	"maps"

	"github.com/wwwyo/xatsw/internal/platform/fs"
)

const (
	// DefaultFileName is the config file read from and written to the working directory.
	DefaultFileName = "xatsw.conf"
)

// Format is the on-disk encoding of the config file.
type Format string

const (
	// FormatJSON is the default format, also used for unknown extensions.
	FormatJSON Format = "json"
	// FormatYAML is selected by .yaml and .yml files.
	FormatYAML Format = "yaml"
	// FormatTOML is selected by .toml files.
	FormatTOML Format = "toml"
)

// Config is the persisted state: default storage, default target and the known targets.
type Config struct {
	Storage       string            `json:"storage,omitempty" yaml:"storage,omitempty" toml:"storage,omitempty"`
	CurrentTarget string            `json:"current_target,omitempty" yaml:"current_target,omitempty" toml:"current_target,omitempty"`
	Targets       map[string]string `json:"targets" yaml:"targets" toml:"targets"`
}

// Empty returns a config with no storage, no current target and no targets.
func Empty() *Config {
	return &Config{Targets: make(map[string]string)}
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	if c == nil {
		return Empty()
	}
	out := &Config{
		Storage:       c.Storage,
		CurrentTarget: c.CurrentTarget,
		Targets:       make(map[string]string, len(c.Targets)),
	}
	maps.Copy(out.Targets, c.Targets)
	return out
}

// TargetPath returns the directory registered under name.
func (c *Config) TargetPath(name string) (string, bool) {
	if c == nil || name == "" {
		return "", false
	}
	path, ok := c.Targets[name]
	return path, ok
}

// ExpandPath expands ~ in a path to the home directory.
func ExpandPath(fsys fs.FileSystem, path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] == '~' {
		home, err := fsys.UserHomeDir()
		if err != nil {
			return "", err
		}
		return home + path[1:], nil
	}

	return path, nil
}

// AbsPath expands ~ and returns the absolute form of path.
func AbsPath(fsys fs.FileSystem, path string) (string, error) {
	expanded, err := ExpandPath(fsys, path)
	if err != nil {
		return "", err
	}
	return fsys.Abs(expanded)
}
