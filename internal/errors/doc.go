// Package errors provides error handling conventions for the localize-it CLI.
//
// This package defines sentinel errors for the failure classes of a scaffold
// run, an ExitError type for CLI exit code handling, and exit code constants
// following standard Unix conventions. Construction and wrapping helpers are
// re-exported from github.com/cockroachdb/errors so callers need a single
// import.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [errors.Is]:
//
//	if errors.Is(err, errors.ErrResolveInput) {
//	    // the selected path could not be stat'ed
//	}
//
// # Exit Codes
//
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion:
//
//	err := errors.NewUserError(errors.ErrInvalidConfig, "Run: localize-it config list")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
