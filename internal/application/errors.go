package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound     = errors.New("not found")
	ErrImportFormat = errors.New("unsupported import format")
	ErrIO           = errors.New("i/o failure")
	ErrDuplicateID  = errors.New("duplicate question ID")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ImportFormatError is returned for files the importer refuses to read
type ImportFormatError struct {
	File   string
	Reason string
}

func (e *ImportFormatError) Error() string {
	return fmt.Sprintf("cannot import %s: %s", e.File, e.Reason)
}

func (e *ImportFormatError) Is(target error) bool {
	return target == ErrImportFormat
}

// IOError wraps a failed read or write of a user file
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
