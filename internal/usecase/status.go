package usecase

import (
	"fmt"
	"slices"

	"github.com/wwwyo/xatsw/internal/config"
	"github.com/wwwyo/xatsw/internal/platform/fs"
	"github.com/wwwyo/xatsw/internal/target"
)

// StatusResult describes the configured defaults and what is on disk for them.
type StatusResult struct {
	Storage       string
	CurrentTarget string
	TargetPath    string
	// HasProfile is true when the current target holds a profile file.
	HasProfile bool
	Profiles   []string
	Targets    int
	Error      error
}

// StatusService reports the state of storage and the current target.
type StatusService struct {
	fs fs.FileSystem
}

// NewStatusService creates a new status service.
func NewStatusService(fsys fs.FileSystem) *StatusService {
	return &StatusService{fs: fsys}
}

// GetStatus never fails as a whole; problems with storage are reported in Error.
func (s *StatusService) GetStatus(cfg *config.Config) *StatusResult {
	result := &StatusResult{
		Storage:       cfg.Storage,
		CurrentTarget: cfg.CurrentTarget,
		Targets:       len(cfg.Targets),
	}

	if path, err := target.Resolve(cfg, ""); err == nil {
		result.TargetPath = path
		result.HasProfile = s.fs.Exists(s.fs.Join(path, ProfileFileName))
	}

	if cfg.Storage != "" {
		profiles, err := ListProfiles(s.fs, cfg.Storage)
		if err != nil {
			result.Error = err
		}
		result.Profiles = profiles
	}

	return result
}

// ListProfiles returns the profile files in dir sorted by name.
func ListProfiles(fsys fs.FileSystem, dir string) ([]string, error) {
	if dir == "" {
		return nil, ErrNoStorageSpecified
	}
	if !fsys.IsDir(dir) {
		return nil, fmt.Errorf("%w: %s", target.ErrPathNotFound, dir)
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read storage directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	slices.Sort(names)
	return names, nil
}
