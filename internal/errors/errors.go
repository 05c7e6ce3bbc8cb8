package errors

import "fmt"

// Error kinds for the application
var (
	ErrPathEscape         = fmt.Errorf("PATH_ESCAPE")
	ErrDuplicateOperation = fmt.Errorf("DUPLICATE_OPERATION")
	ErrFileNotFound       = fmt.Errorf("FILE_NOT_FOUND")
	ErrPermissionDenied   = fmt.Errorf("PERMISSION_DENIED")
	ErrIOFailure          = fmt.Errorf("IO_FAILURE")
	ErrUnknownTool        = fmt.Errorf("UNKNOWN_TOOL")
	ErrBadChunkConfig     = fmt.Errorf("BAD_CHUNK_CONFIG")
)

// OperationError wraps a failed workspace operation
type OperationError struct {
	Op   string
	Path string
	Err  error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Op, e.Path, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// SecurityError wraps path-resolution violations
type SecurityError struct {
	Path string
	Err  error
}

func (e *SecurityError) Error() string {
	return fmt.Sprintf("security violation for path %s: %v", e.Path, e.Err)
}

func (e *SecurityError) Unwrap() error {
	return e.Err
}

// Flatten renders an error in the "Error: <detail>" text form the tool
// surface exposes to the orchestration layer. Callers that need to branch
// on error kind must do so before flattening.
func Flatten(err error) string {
	if err == nil {
		return ""
	}
	return "Error: " + err.Error()
}
