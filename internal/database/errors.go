package database

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Error kinds. Callers classify failures with errors.Is / errors.As.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrInvalidReference = errors.New("invalid reference")

	ErrChecklistNotFound = fmt.Errorf("checklist %w", ErrNotFound)

	ErrNotInitialized = errors.New("database not initialized (run 'birdr init' first)")
)

// UnrecognizedSpeciesError is returned when an operation names a species that
// is not in the catalog.
type UnrecognizedSpeciesError struct {
	Name string
}

func (e *UnrecognizedSpeciesError) Error() string {
	return fmt.Sprintf("unrecognized species: %q", e.Name)
}

func (e *UnrecognizedSpeciesError) Unwrap() error {
	return ErrInvalidReference
}

// checklistNotFound keeps the name around for messages while still matching
// ErrChecklistNotFound.
func checklistNotFound(name string) error {
	return fmt.Errorf("%w: %q", ErrChecklistNotFound, name)
}

// translateUnique maps a unique constraint violation to ErrAlreadyExists and
// leaves every other error untouched.
func translateUnique(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%s: %w: %w", what, ErrAlreadyExists, err)
	}
	return err
}
