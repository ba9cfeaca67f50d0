package commands

import (
	"enrollment-waitlist/internal/infra"
	"enrollment-waitlist/internal/pkg/errs"
)

// markStorageErr classifies a failed write or leader clock read at the entry
// leader. Errors already carrying a sentinel are returned unchanged.
func markStorageErr(err error) error {
	switch {
	case errs.Is(err, errs.ErrLeaderUnreachable), errs.Is(err, errs.ErrPersistenceFailure):
		return err
	case infra.IsKind(err, infra.KindUnreachable):
		return errs.Mark(err, errs.ErrLeaderUnreachable)
	default:
		return errs.Mark(err, errs.ErrPersistenceFailure)
	}
}
