package tools

import "fmt"

// Kind classifies a failed tool call for programmatic handling by callers.
type Kind string

// Error kinds reported to MCP clients.
const (
	KindInvalidArgument  Kind = "INVALID_ARGUMENT"
	KindNotFound         Kind = "NOT_FOUND"
	KindProcessingFailed Kind = "PROCESSING_FAILED"
)

// Error is a classified tool failure. The MCP SDK reports handler errors as
// tool-error results, so the Kind prefix in the message is the contract
// callers match on.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func invalidArgumentf(format string, args ...any) error {
	return &Error{Kind: KindInvalidArgument, Err: fmt.Errorf(format, args...)}
}

func notFoundf(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Err: fmt.Errorf(format, args...)}
}

func processingFailedf(format string, args ...any) error {
	return &Error{Kind: KindProcessingFailed, Err: fmt.Errorf(format, args...)}
}
