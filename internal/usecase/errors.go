package usecase

import "errors"

var (
	// ErrNoStorageSpecified means neither -s nor a default storage is available.
	ErrNoStorageSpecified = errors.New("storage is not specified. Use -s, --storage or execute set-storage to specify default storage")
	// ErrInvalidProfileName means the profile name is not a single file name.
	ErrInvalidProfileName = errors.New("invalid profile name")
	// ErrSourceNotFound means the file to copy from does not exist.
	ErrSourceNotFound = errors.New("source file not found")
	// ErrDestinationUnavailable means the destination cannot be written.
	ErrDestinationUnavailable = errors.New("destination unavailable")
)
