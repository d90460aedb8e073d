// Package prompt asks the user for missing values and confirmations.
package prompt

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wwwyo/xatsw/internal/platform/fs"
)

var (
	// ErrAborted is returned when the user cancels a prompt or refuses to continue.
	ErrAborted = errors.New("aborted")
	// ErrDeclined is returned when the user answers "no" to a confirmation.
	ErrDeclined = fmt.Errorf("%w: declined by user", ErrAborted)
	// ErrNoAnswer is returned when no acceptable answer could be obtained.
	ErrNoAnswer = fmt.Errorf("%w: no acceptable answer", ErrAborted)

	// ErrEmpty rejects blank answers.
	ErrEmpty = errors.New("value must not be empty")
	// ErrInvalidFileName rejects answers that are not a single file name.
	ErrInvalidFileName = errors.New("please enter a valid file name")
	// ErrAlreadyExists rejects answers naming an existing file.
	ErrAlreadyExists = errors.New("file shouldn't exist")
)

// Prompter is a blocking request/response dialog with the user.
type Prompter interface {
	// AskText asks for a free-text value satisfying the constraints.
	AskText(message string, c TextConstraints) (string, error)
	// AskConfirm asks a yes/no question. Answering "no" is not an error.
	AskConfirm(message string) (bool, error)
}

// TextConstraints describes what a free-text answer must satisfy.
type TextConstraints struct {
	NotEmpty bool
	// FileName requires a single path element: no separators, not "." or "..".
	FileName bool
	// MustNotExistIn rejects values naming an existing entry of this directory.
	MustNotExistIn string
	FS             fs.FileSystem
}

// Validate returns nil when value satisfies every constraint.
func (c TextConstraints) Validate(value string) error {
	if c.NotEmpty && strings.TrimSpace(value) == "" {
		return ErrEmpty
	}
	if c.FileName && !IsFileName(value) {
		return ErrInvalidFileName
	}
	if c.MustNotExistIn != "" && c.FS != nil && c.FS.Exists(c.FS.Join(c.MustNotExistIn, value)) {
		return ErrAlreadyExists
	}
	return nil
}

// IsFileName reports whether name is usable as a single file name without surrounding spaces.
func IsFileName(name string) bool {
	if name == "" || name == "." || name == ".." || name != strings.TrimSpace(name) {
		return false
	}
	return !strings.ContainsRune(name, '/') && !strings.ContainsRune(name, filepath.Separator)
}

// Yes confirms everything and delegates text prompts to the wrapped Prompter.
type Yes struct {
	Prompter
}

// AskConfirm always answers yes.
func (Yes) AskConfirm(string) (bool, error) {
	return true, nil
}
