package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// validation / lookup errors
const (
	ErrInvalidInput = Error("invalid input")
	ErrNotFound     = Error("not found")
)

// auth errors
const (
	ErrUsernameTaken = Error("username already exists")
	ErrEmailTaken    = Error("email already exists")
	// ErrInvalidCredentials covers both "unknown user" and "wrong
	// password" so callers cannot tell which check failed.
	ErrInvalidCredentials = Error("invalid credentials")
)

// persistence errors
const (
	ErrPersistence = Error("persistence failure")
	ErrInternal    = Error("internal error")
)
