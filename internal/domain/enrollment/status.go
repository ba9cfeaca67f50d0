package enrollment

import "enrollment-waitlist/internal/pkg/errs"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
	StatusRemoved  Status = "REMOVED"
)

var ErrInvalidStatus = errs.Mark(errs.New("invalid enrollment status"), errs.ErrDomainValidation)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", errs.Wrapf(ErrInvalidStatus, "status %q", s)
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusRemoved:
		return true
	default:
		return false
	}
}

// IsActive reports whether the record still occupies a place in the queue.
func (s Status) IsActive() bool {
	return s != StatusRemoved
}

// precedence breaks ties between conflicting copies modified at the same instant.
func (s Status) precedence() int {
	switch s {
	case StatusPending:
		return 0
	case StatusRejected:
		return 1
	case StatusAccepted:
		return 2
	case StatusRemoved:
		return 3
	default:
		return -1
	}
}
