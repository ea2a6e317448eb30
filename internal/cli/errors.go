package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/licensit/licensit/internal/licenses"
)

// Process exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError attaches an exit code to an error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// failure marks err as a runtime failure (exit 1).
func failure(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: ExitFailure, Err: err}
}

// usageError reports invalid command-line input (exit 2).
func usageError(format string, args ...any) error {
	return &ExitError{Code: ExitUsage, Err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by Execute to a process exit code.
// Errors that never reached a command body come from argument parsing and
// are treated as usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, licenses.ErrLicenseNotFound) {
		return ExitUsage
	}
	if errors.Is(err, licenses.ErrCatalogInvalid) {
		return ExitFailure
	}
	return ExitUsage
}

// printError writes err to w in the form shown to users.
func printError(w io.Writer, err error, st styles) {
	var notFound *licenses.NotFoundError
	if errors.As(err, &notFound) {
		ids := make([]string, 0, len(notFound.Valid))
		for _, id := range notFound.Valid {
			ids = append(ids, st.ID.Render(id))
		}
		fmt.Fprintf(w, "%s invalid value '%s' for '<LICENSE>'. Possible values: %s\n\nFor more information, try '--help'.\n",
			st.Error.Render("error:"), notFound.ID, strings.Join(ids, ", "))
		return
	}

	fmt.Fprintf(w, "%s %v\n", st.Error.Render("error:"), err)
	if ExitCode(err) == ExitUsage {
		fmt.Fprintln(w, "\nFor more information, try '--help'.")
	}
}
