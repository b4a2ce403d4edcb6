// Package errors provides standardized error types for the CedarBible codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrAssetMissing indicates the embedded corpus asset was not found
	ErrAssetMissing = errors.New("corpus asset missing")
	// ErrDecodeFailed indicates the corpus asset could not be decoded
	ErrDecodeFailed = errors.New("decode failed")
	// ErrCacheRead indicates the persisted cache could not be read
	ErrCacheRead = errors.New("cache read failed")
	// ErrCacheWrite indicates the persisted cache could not be written
	ErrCacheWrite = errors.New("cache write failed")
	// ErrNotFound indicates a lookup found no matching resource
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
)

// DecodeError represents a corpus decode failure with context.
// A DecodeError is fatal for the load attempt that produced it; a later
// explicit retry may re-attempt the load.
type DecodeError struct {
	Source  string // What was being decoded (e.g., "asset", "cache snapshot")
	Message string // Human-readable error detail
	Err     error  // Underlying error, if any
}

func (e *DecodeError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("failed to decode %s: %s", e.Source, e.Message)
	}
	return fmt.Sprintf("decode failed: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrDecodeFailed
}

// CacheError represents a cache read or write failure.
// Cache errors are never fatal: callers degrade to "no cache" behavior.
type CacheError struct {
	Operation string // "read" or "write"
	Path      string // Cache location involved, if applicable
	Err       error  // Underlying error
}

func (e *CacheError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("cache %s failed at %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("cache %s failed: %v", e.Operation, e.Err)
}

func (e *CacheError) Unwrap() error {
	if e.Operation == "write" {
		return ErrCacheWrite
	}
	return ErrCacheRead
}

// NotFoundError represents a lookup miss with context.
type NotFoundError struct {
	Resource string // Type of resource (e.g., "verse", "book")
	ID       string // Identifier of the resource
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Helper functions for creating common errors

// NewNotFound creates a NotFoundError
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// NewDecode creates a DecodeError
func NewDecode(source, message string, err error) *DecodeError {
	return &DecodeError{
		Source:  source,
		Message: message,
		Err:     err,
	}
}

// NewCache creates a CacheError
func NewCache(operation, path string, err error) *CacheError {
	return &CacheError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}
