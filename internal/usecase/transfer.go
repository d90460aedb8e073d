package usecase

import (
	"context"
	"fmt"

	"github.com/wwwyo/xatsw/internal/ctxlog"
	"github.com/wwwyo/xatsw/internal/platform/fs"
	"github.com/wwwyo/xatsw/internal/prompt"
)

// TransferOptions contains options for copying a profile.
type TransferOptions struct {
	// Force skips the overwrite confirmation.
	Force bool
}

// TransferService copies profiles between a target and storage.
type TransferService struct {
	fs       fs.FileSystem
	prompter prompt.Prompter
}

// NewTransferService creates a new transfer service.
func NewTransferService(fsys fs.FileSystem, p prompt.Prompter) *TransferService {
	return &TransferService{fs: fsys, prompter: p}
}

// Load copies the target's profile into storage. An existing storage file is
// only replaced after confirmation.
func (s *TransferService) Load(ctx context.Context, r *ResolvedTransfer, opts TransferOptions) error {
	if err := s.check(r.InTarget, r.InStorage); err != nil {
		return err
	}

	if s.fs.Exists(r.InStorage) && !opts.Force {
		confirmed, err := s.prompter.AskConfirm(fmt.Sprintf("File %s already exists. Rewrite?", r.InStorage))
		if err != nil {
			return fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		if !confirmed {
			return prompt.ErrDeclined
		}
	}

	return s.copy(ctx, r.InTarget, r.InStorage)
}

// Extract copies a stored profile into the target, replacing whatever is there.
func (s *TransferService) Extract(ctx context.Context, r *ResolvedTransfer) error {
	if err := s.check(r.InStorage, r.InTarget); err != nil {
		return err
	}
	return s.copy(ctx, r.InStorage, r.InTarget)
}

// check runs before anything is written so a failed transfer has no side effects.
func (s *TransferService) check(src, dst string) error {
	info, err := s.fs.Stat(src)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, src)
	}

	dir := s.fs.Dir(dst)
	if !s.fs.IsDir(dir) {
		return fmt.Errorf("%w: directory %s doesn't exist", ErrDestinationUnavailable, dir)
	}
	if s.fs.IsDir(dst) {
		return fmt.Errorf("%w: %s is a directory", ErrDestinationUnavailable, dst)
	}
	return nil
}

func (s *TransferService) copy(ctx context.Context, src, dst string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("copying profile", "from", src, "to", dst)

	if err := s.fs.CopyFile(src, dst); err != nil {
		return fmt.Errorf("%w: failed to copy %s to %s: %w", ErrDestinationUnavailable, src, dst, err)
	}

	logger.Info("profile copied", "from", src, "to", dst)
	return nil
}
