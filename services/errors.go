package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound covers both genuinely missing records and drafts hidden
	// from non-admin callers; the two must be indistinguishable.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateSlug means another post already owns the slug derived from
	// the submitted title.
	ErrDuplicateSlug = errors.New("duplicate slug")

	// ErrValidation means a required field is missing or empty.
	ErrValidation = errors.New("missing required fields")

	// ErrInvalidStatus means a status outside draft/published was submitted.
	ErrInvalidStatus = errors.New("invalid status")
)

// isDuplicateKeyError recognizes unique-index violations from both MySQL and
// the sqlite driver used in tests. The index is the real uniqueness guard;
// racing inserts surface here rather than in the pre-check.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
