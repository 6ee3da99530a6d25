package errors

import (
	stderrors "errors"
	"fmt"
)

type Kind string

const (
	InvalidConfig        Kind = "invalid_config"
	MetadataUnavailable  Kind = "metadata_unavailable"
	MetadataMalformed    Kind = "metadata_malformed"
	FilesystemUnreadable Kind = "filesystem_unreadable"
	CopyFailure          Kind = "copy_failure"
	TraversalFailure     Kind = "traversal_failure"
	Internal             Kind = "internal"
)

type AppError struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *AppError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Wrap(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Kind: kind,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// KindOf returns the kind of the outermost AppError in err's chain, or Internal.
func KindOf(err error) Kind {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	return Internal
}

// Fatal reports whether err should end the whole run.
func Fatal(err error) bool {
	switch KindOf(err) {
	case InvalidConfig, TraversalFailure, Internal:
		return true
	default:
		return false
	}
}

func UserMessage(err error) string {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return err.Error()
	}
	switch appErr.Kind {
	case InvalidConfig:
		return fmt.Sprintf("Invalid configuration: %v", appErr.Err)
	case TraversalFailure:
		return fmt.Sprintf("Cannot walk source tree %s: %v", appErr.Path, appErr.Err)
	case MetadataUnavailable, MetadataMalformed:
		return fmt.Sprintf("EXIF read failed: %s: %v", appErr.Path, appErr.Err)
	case FilesystemUnreadable:
		return fmt.Sprintf("Cannot read %s: %v", appErr.Path, appErr.Err)
	case CopyFailure:
		return fmt.Sprintf("I/O error: %s: %v", appErr.Path, appErr.Err)
	default:
		return fmt.Sprintf("Unexpected error: %v", appErr.Err)
	}
}
