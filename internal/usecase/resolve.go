package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wwwyo/xatsw/internal/config"
	"github.com/wwwyo/xatsw/internal/ctxlog"
	"github.com/wwwyo/xatsw/internal/platform/fs"
	"github.com/wwwyo/xatsw/internal/prompt"
	"github.com/wwwyo/xatsw/internal/target"
)

// ProfileFileName is the file inside every target directory that holds its profile.
const ProfileFileName = "chat.sol"

// ProfileRequest is what the user asked for. Empty fields are unset.
type ProfileRequest struct {
	// Name is the profile file name inside storage.
	Name string
	// Storage overrides the configured storage directory.
	Storage string
	// Target is a registered target name or a directory path.
	Target string
}

// ResolvedTransfer holds the two concrete files of one copy.
type ResolvedTransfer struct {
	InStorage string
	InTarget  string
}

// ResolveService turns a ProfileRequest into a ResolvedTransfer, asking only for what is missing.
type ResolveService struct {
	fs       fs.FileSystem
	prompter prompt.Prompter
}

// NewResolveService creates a new resolve service.
func NewResolveService(fsys fs.FileSystem, p prompt.Prompter) *ResolveService {
	return &ResolveService{fs: fsys, prompter: p}
}

// Resolve fills in target, storage and profile name. A missing target is fatal
// and never prompted for; a missing name is asked for and must be a new file.
func (s *ResolveService) Resolve(ctx context.Context, cfg *config.Config, req ProfileRequest) (*ResolvedTransfer, error) {
	logger := ctxlog.FromContext(ctx)

	targetDir, err := s.targetDir(cfg, req.Target)
	if err != nil {
		return nil, err
	}

	storageDir, err := s.storageDir(cfg, req.Storage)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved directories", "storage", storageDir, "target", targetDir)

	name := req.Name
	if name == "" {
		name, err = s.prompter.AskText("Set the name of the loading profile", prompt.TextConstraints{
			NotEmpty:       true,
			FileName:       true,
			MustNotExistIn: storageDir,
			FS:             s.fs,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get profile name: %w", err)
		}
	} else if !prompt.IsFileName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProfileName, name)
	}

	resolved := &ResolvedTransfer{
		InStorage: s.fs.Join(storageDir, name),
		InTarget:  s.fs.Join(targetDir, ProfileFileName),
	}
	logger.Debug("resolved transfer", "in_storage", resolved.InStorage, "in_target", resolved.InTarget)

	return resolved, nil
}

func (s *ResolveService) storageDir(cfg *config.Config, override string) (string, error) {
	dir := override
	if dir == "" {
		dir = cfg.Storage
	}
	if dir == "" {
		return "", ErrNoStorageSpecified
	}

	abs, err := config.AbsPath(s.fs, dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve storage %s: %w", dir, err)
	}
	return abs, nil
}

// targetDir accepts a registered name first; anything that looks like a path is used as a directory.
func (s *ResolveService) targetDir(cfg *config.Config, value string) (string, error) {
	if value == "" {
		return target.Resolve(cfg, "")
	}

	if path, ok := cfg.TargetPath(value); ok {
		return path, nil
	}

	if looksLikePath(value) || s.fs.IsDir(value) {
		abs, err := config.AbsPath(s.fs, value)
		if err != nil {
			return "", fmt.Errorf("failed to resolve target %s: %w", value, err)
		}
		return abs, nil
	}

	return "", fmt.Errorf("%w: %s", target.ErrUnknownTarget, value)
}

func looksLikePath(value string) bool {
	return strings.HasPrefix(value, "~") ||
		strings.HasPrefix(value, ".") ||
		strings.ContainsRune(value, '/') ||
		strings.ContainsRune(value, filepath.Separator)
}
