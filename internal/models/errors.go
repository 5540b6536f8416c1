package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrGeneral           = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound  = errors.New("there is no")
	ErrUsernameInUse     = errors.New("this username is already in use")
	ErrUsernameEmpty     = errors.New("the username must not be empty")
	ErrCascadeIncomplete = errors.New("not all dependent resources could be deleted")
)

// NotFound returns ErrResourceNotFound wrapped with the name of the resource.
func NotFound(e Entity) error {
	return fmt.Errorf("%w %s matching your query", ErrResourceNotFound, strings.ToLower(e.Self()))
}
