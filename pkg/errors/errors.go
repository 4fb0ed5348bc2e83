package errors

import (
	"fmt"
)

// ParseError represents a config or preset file parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration or preset validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StorageError represents a failure reading or writing a persistence slot.
type StorageError struct {
	Slot string
	Op   string
	Err  error
}

// NewStorageError constructs a StorageError for the given slot and operation.
func NewStorageError(slot, op string, err error) error {
	return &StorageError{Slot: slot, Op: op, Err: err}
}

func (e *StorageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Slot != "" {
		return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Slot, e.Err)
	}
	return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the root error.
func (e *StorageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RegistryError indicates issues resolving a preset from the registry.
type RegistryError struct {
	PresetID string
	Message  string
	Err      error
}

// NewRegistryError constructs a RegistryError for the given preset id.
func NewRegistryError(presetID string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &RegistryError{PresetID: presetID, Message: message, Err: err}
}

func (e *RegistryError) Error() string {
	if e == nil {
		return ""
	}
	if e.PresetID != "" {
		return fmt.Sprintf("registry error [%s]: %s", e.PresetID, e.Message)
	}
	return fmt.Sprintf("registry error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *RegistryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
