package orchestrator

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

type customError struct {
	error
}

type DumpError customError
type CompressionError customError
type CleanupError customError

func NewDumpError(err error) DumpError {
	return DumpError{errors.Wrap(err, "database dump failed")}
}

func NewCompressionError(err error) CompressionError {
	return CompressionError{errors.Wrap(err, "compression failed")}
}

func NewCleanupError(err error) CleanupError {
	return CleanupError{errors.Wrap(err, "removing the local dump failed")}
}

type UploadError struct {
	error
	Destination Destination
}

func NewUploadError(destination Destination, err error) UploadError {
	return UploadError{
		error:       errors.Wrapf(err, "upload to %s failed", destination),
		Destination: destination,
	}
}

func (e UploadError) Unwrap() error {
	return e.error
}

// FolderNotFoundError is returned before any transfer is attempted when the
// target folder is missing on a secondary disk.
type FolderNotFoundError struct {
	Disk   string
	Folder string
}

func (e FolderNotFoundError) Error() string {
	return fmt.Sprintf("folder %s does not exist on disk %s", e.Folder, e.Disk)
}

func NewError(errs ...error) Error {
	if len(errs) == 0 {
		return nil
	}
	return Error(errs)
}

type Error []error

func (err Error) Error() string {
	return err.PrettyError(false)
}

func (err Error) PrettyError(includeStacktrace bool) string {
	if err.IsNil() {
		return ""
	}
	var buffer = bytes.NewBufferString("")

	fmt.Fprintf(buffer, "%d error%s occurred:\n", len(err), err.getPostFix())
	for index, err := range err {
		fmt.Fprintf(buffer, "error %d:\n", index+1)
		if includeStacktrace {
			fmt.Fprintf(buffer, "%+v\n", withStack(err))
		} else {
			fmt.Fprintf(buffer, "%+v\n", err.Error())
		}
	}
	return buffer.String()
}

// withStack returns the wrapped pkg/errors value, which carries the stack
// frames that the named error types do not format.
func withStack(err error) error {
	switch e := err.(type) {
	case DumpError:
		return e.error
	case CompressionError:
		return e.error
	case CleanupError:
		return e.error
	case UploadError:
		return e.error
	}
	return err
}

func (err Error) getPostFix() string {
	errorPostfix := ""
	if len(err) > 1 {
		errorPostfix = "s"
	}
	return errorPostfix
}

func (err Error) ContainsUploadOrCleanup() bool {
	for _, e := range err {
		switch e.(type) {
		case UploadError, CleanupError:
			return true
		default:
			continue
		}
	}

	return false
}

// IsFatal reports whether any error aborted the run. Upload and cleanup
// errors never do.
func (err Error) IsFatal() bool {
	for _, e := range err {
		switch e.(type) {
		case UploadError, CleanupError:
			continue
		default:
			return true
		}
	}
	return false
}

func (err Error) IsNil() bool {
	return len(err) == 0
}

func BuildExitCode(errs Error) int {
	exitCode := 0

	for _, err := range errs {
		switch err.(type) {
		case DumpError:
			exitCode = exitCode | 1
		case CompressionError:
			exitCode = exitCode | 1<<1
		case UploadError:
			exitCode = exitCode | 1<<2
		case CleanupError:
			exitCode = exitCode | 1<<3
		default:
			exitCode = exitCode | 1
		}
	}

	return exitCode
}

// ProcessError returns the exit code, the message for the terminal and,
// for fatal runs, the message including stack traces.
func ProcessError(errs Error) (int, string, string) {
	if errs.IsNil() {
		return 0, "", ""
	}

	stackTrace := ""
	if errs.IsFatal() {
		stackTrace = errs.PrettyError(true)
	}

	return BuildExitCode(errs), errs.Error(), stackTrace
}
