package commons

import (
	"errors"
	"fmt"
)

// EntryNotFoundError contains cache entry not found error information
type EntryNotFoundError struct {
	Key string
}

// NewEntryNotFoundError creates an error for cache entry not found error
func NewEntryNotFoundError(key string) error {
	return &EntryNotFoundError{
		Key: key,
	}
}

// Error returns error message
func (err *EntryNotFoundError) Error() string {
	return fmt.Sprintf("cache entry '%s' not found error", err.Key)
}

// Is tests type of error
func (err *EntryNotFoundError) Is(other error) bool {
	_, ok := other.(*EntryNotFoundError)
	return ok
}

// ToString stringifies the object
func (err *EntryNotFoundError) ToString() string {
	return "<EntryNotFoundError>"
}

// IsEntryNotFoundError evaluates if the given error is cache entry not found error
func IsEntryNotFoundError(err error) bool {
	return errors.Is(err, &EntryNotFoundError{})
}

// EntryCorruptError contains corrupt cache entry error information
type EntryCorruptError struct {
	Key string
}

// NewEntryCorruptError creates an error for corrupt cache entry error
func NewEntryCorruptError(key string) error {
	return &EntryCorruptError{
		Key: key,
	}
}

// Error returns error message
func (err *EntryCorruptError) Error() string {
	return fmt.Sprintf("cache entry '%s' is corrupt", err.Key)
}

// Is tests type of error
func (err *EntryCorruptError) Is(other error) bool {
	_, ok := other.(*EntryCorruptError)
	return ok
}

// ToString stringifies the object
func (err *EntryCorruptError) ToString() string {
	return "<EntryCorruptError>"
}

// IsEntryCorruptError evaluates if the given error is corrupt cache entry error
func IsEntryCorruptError(err error) bool {
	return errors.Is(err, &EntryCorruptError{})
}
