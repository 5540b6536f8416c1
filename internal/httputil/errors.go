package httputil

// Error is a problem with the request as the client sent it.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrInvalidBody      = &Error{"the body of your request contains invalid or un-parseable data. Please check and try again"}
	ErrRequestBodyEmpty = &Error{"the request body must not be empty"}
	ErrInvalidQuery     = &Error{"the query string contains invalid values"}
	ErrInvalidID        = &Error{"the specified resource ID is not a valid positive integer"}
	ErrInvalidMonth     = &Error{"invalid month (must be 0-11)"}
)
