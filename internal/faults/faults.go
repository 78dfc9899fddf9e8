// Package faults defines the error taxonomy shared across clipcut.
//
// Every failure in the derivation core and the run pipeline is tagged with one
// of the sentinel markers below so callers can classify it with errors.Is
// without parsing message text. Wrap is the single construction point; it
// builds a message that carries the entity and field context an operator needs
// to act on the error verbatim.
package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation marks malformed documents, invalid CLI arguments,
	// unknown keys, and invariant violations. Always raised before any
	// file I/O happens for the offending entity.
	ErrValidation = errors.New("validation error")

	// ErrMissingFile marks an expected source recording that is absent.
	ErrMissingFile = errors.New("missing file")

	// ErrExecution marks failures of the external tool or of the run
	// environment (lock contention, unwritable output directory).
	ErrExecution = errors.New("execution failure")
)

// Wrap builds an error tagged with the provided marker while prefixing the
// entity/field context. A nil marker defaults to ErrExecution.
func Wrap(marker error, entity, field, message string, err error) error {
	detail := buildDetail(entity, field, message)
	if marker == nil {
		marker = ErrExecution
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(entity, field, message string) string {
	parts := make([]string, 0, 3)
	if entity = strings.TrimSpace(entity); entity != "" {
		parts = append(parts, entity)
	}
	if field = strings.TrimSpace(field); field != "" {
		parts = append(parts, field)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "failure"
	}
	return strings.Join(parts, ": ")
}
