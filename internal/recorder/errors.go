package recorder

import "fmt"

// Process exit codes
const (
	ExitOK    = 0
	ExitError = 1
)

// InputError reports an image path that could not be turned into a bitmap
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("cannot load image %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// OutputError reports a failure writing the coordinate document
type OutputError struct {
	Err error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("cannot write coordinates: %v", e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by Run to a process exit status. Both
// InputError and OutputError are fatal.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return ExitError
}
