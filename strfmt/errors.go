package strfmt

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingArgument matches any *MissingArgumentError.
	ErrMissingArgument = errors.New("missing argument")

	// ErrTooFewArguments is returned when a directive refers past the last argument.
	ErrTooFewArguments = errors.New("too few arguments")

	// ErrBadDirective is returned for malformed or unknown conversion directives.
	ErrBadDirective = errors.New("bad directive")
)

// MissingArgumentError reports a named placeholder without a value.
// It is only returned when failing on missing arguments was requested.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("sprintfn: missing argument %q", e.Name)
}

func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}
