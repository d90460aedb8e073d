// Package target manages the named target directories stored in the config.
//
// Every function takes the current config and returns a new one; the input is
// never modified, so a failed operation leaves the caller's config untouched.
package target

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/wwwyo/xatsw/internal/config"
	"github.com/wwwyo/xatsw/internal/platform/fs"
	"github.com/wwwyo/xatsw/internal/prompt"
)

var (
	// ErrNoTargetSpecified means neither an explicit target nor a default target is available.
	ErrNoTargetSpecified = errors.New("target is not specified. Use -t, --target or execute set-target to specify default target")
	// ErrUnknownTarget means the name is not in the target list.
	ErrUnknownTarget = errors.New("unknown target")
	// ErrPathNotFound means the given path does not exist.
	ErrPathNotFound = errors.New("path doesn't exist")
	// ErrNotADirectory means the given path exists but is not a directory.
	ErrNotADirectory = errors.New("path is not a directory")
	// ErrInvalidName means the target name is empty.
	ErrInvalidName = errors.New("target name must not be empty")
)

// Entry is one registered target.
type Entry struct {
	Name string
	Path string
}

// Resolve returns the directory of the named target, or of the current target when name is empty.
func Resolve(cfg *config.Config, name string) (string, error) {
	if name != "" {
		path, ok := cfg.TargetPath(name)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownTarget, name)
		}
		return path, nil
	}

	path, ok := cfg.TargetPath(cfg.CurrentTarget)
	if !ok {
		return "", ErrNoTargetSpecified
	}
	return path, nil
}

// Add registers dir under name. An existing name is only replaced after the
// user confirms through p.
func Add(fsys fs.FileSystem, p prompt.Prompter, cfg *config.Config, name, dir string) (*config.Config, error) {
	if name == "" {
		return nil, ErrInvalidName
	}

	abs, err := ValidateDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	if existing, ok := cfg.TargetPath(name); ok {
		confirmed, err := p.AskConfirm(fmt.Sprintf("Target with name %s already exists (%s). Rewrite?", name, existing))
		if err != nil {
			return nil, fmt.Errorf("failed to confirm target overwrite: %w", err)
		}
		if !confirmed {
			return nil, prompt.ErrDeclined
		}
	}

	next := cfg.Clone()
	next.Targets[name] = abs
	return next, nil
}

// Remove unregisters name. Removing an unknown name is a no-op.
func Remove(cfg *config.Config, name string) *config.Config {
	next := cfg.Clone()
	delete(next.Targets, name)
	if next.CurrentTarget == name {
		next.CurrentTarget = ""
	}
	return next
}

// SetCurrent makes name the default target.
func SetCurrent(cfg *config.Config, name string) (*config.Config, error) {
	if _, ok := cfg.TargetPath(name); !ok {
		return nil, fmt.Errorf("%w: target with name %s doesn't exist", ErrUnknownTarget, name)
	}

	next := cfg.Clone()
	next.CurrentTarget = name
	return next, nil
}

// SetStorage makes dir the default storage directory.
func SetStorage(fsys fs.FileSystem, cfg *config.Config, dir string) (*config.Config, error) {
	abs, err := ValidateDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	next := cfg.Clone()
	next.Storage = abs
	return next, nil
}

// List returns the registered targets sorted by name.
func List(cfg *config.Config) []Entry {
	if cfg == nil {
		return nil
	}
	entries := make([]Entry, 0, len(cfg.Targets))
	for name, path := range cfg.Targets {
		entries = append(entries, Entry{Name: name, Path: path})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return entries
}

// ValidateDir returns the absolute form of dir after checking it is an existing directory.
func ValidateDir(fsys fs.FileSystem, dir string) (string, error) {
	abs, err := config.AbsPath(fsys, dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", dir, err)
	}

	info, err := fsys.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrPathNotFound, abs)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotADirectory, abs)
	}
	return abs, nil
}
