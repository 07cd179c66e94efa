package database

import (
	"errors"
	"fmt"
)

// ErrNotConnected is returned when the pool is used before Connect or after Disconnect.
var ErrNotConnected = errors.New("database is not connected")

// ConfigurationError reports a connection URL that cannot be used.
type ConfigurationError struct {
	URL string
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid database url %q: %v", e.URL, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// SchemaError reports a failed DDL statement.
type SchemaError struct {
	Statement string
	Err       error
}

func (e *SchemaError) Error() string {
	if e.Statement == "" {
		return fmt.Sprintf("schema setup failed: %v", e.Err)
	}
	return fmt.Sprintf("schema setup failed at %q: %v", e.Statement, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// StorageError wraps any failure of a repository round trip.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
