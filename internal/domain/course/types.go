package course

import (
	"strings"

	"enrollment-waitlist/internal/pkg/errs"
)

var (
	ErrInvalidName       = errs.Mark(errs.New("course name must be between 1 and 100 characters"), errs.ErrDomainValidation)
	ErrInvalidCapacity   = errs.Mark(errs.New("course capacity must be between 0 and 2147483647"), errs.ErrDomainValidation)
	ErrInvalidDeleteMode = errs.Mark(errs.New("delete mode must be soft or hard"), errs.ErrDomainValidation)
)

// DeleteMode selects between the two deletion semantics a course supports.
type DeleteMode string

const (
	// DeleteSoft flags the course deleted, cascades REMOVED and writes a tombstone.
	DeleteSoft DeleteMode = "soft"
	// DeleteHard physically removes the course and its records.
	DeleteHard DeleteMode = "hard"
)

func ParseDeleteMode(s string) (DeleteMode, error) {
	switch m := DeleteMode(strings.ToLower(strings.TrimSpace(s))); m {
	case DeleteSoft, DeleteHard:
		return m, nil
	default:
		return "", errs.Wrapf(ErrInvalidDeleteMode, "mode %q", s)
	}
}

func (m DeleteMode) String() string {
	return string(m)
}
