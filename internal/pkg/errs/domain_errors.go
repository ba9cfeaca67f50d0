package errs

// Sentinels shared by the coordinators and the HTTP layer.
// Callers match them with errors.Is; infra failures are Mark-ed with one of these.
var (
	// Lookup errors
	ErrCourseNotFound = New("course not found")
	ErrRecordNotFound = New("enrollment record not found")

	// Invariant violations
	ErrDuplicateRegistration = New("student already holds a registration for this course")
	ErrCourseExists          = New("course already exists")

	// Topology and storage errors
	ErrLeaderUnreachable  = New("leader unreachable")
	ErrUnknownLeader      = New("unknown leader")
	ErrPersistenceFailure = New("persistence failure")

	// Validation errors
	ErrDomainValidation = New("domain validation error")
)
