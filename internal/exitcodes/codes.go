package exitcodes

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes returned by sn-releases
const (
	// Success indicates successful command completion
	Success = 0

	// GeneralError indicates a general/unknown error
	GeneralError = 1

	// InvalidArgs indicates invalid command-line arguments or flags
	// (e.g., unknown artifact, URL that is not an archive)
	InvalidArgs = 2

	// PreconditionFailed indicates the environment cannot be served
	// (e.g., unsupported platform, unreadable config file)
	PreconditionFailed = 3

	// NetworkError indicates a transport failure or an unexpected API status
	NetworkError = 4

	// IOError indicates a local filesystem failure while writing or extracting
	IOError = 5

	// ValidationError indicates malformed upstream data
	// (e.g., unparseable tag, response missing tag_name)
	ValidationError = 6

	// NotFound indicates no matching release or no published binary
	NotFound = 7
)

// Exit terminates the program with the given code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError prints error message to stderr and exits with the given code
func ExitWithError(code int, msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}

// CodeForError returns the exit code carried by the outermost ErrorWithCode
// in err's chain, or GeneralError when there is none.
func CodeForError(err error) int {
	if err == nil {
		return Success
	}

	var ec *ErrorWithCode
	if errors.As(err, &ec) {
		return ec.Code
	}
	return GeneralError
}
