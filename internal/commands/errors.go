package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to wrapped command errors so callers of the batch
// tooling can branch on failure kind without matching message strings.
const (
	CodeInvalidMessage = "TALLERTHAN_COMMAND_INVALID"
	CodeCanceled       = "TALLERTHAN_COMMAND_CANCELED"
	CodeTimedOut       = "TALLERTHAN_COMMAND_TIMEOUT"
	CodeFailed         = "TALLERTHAN_COMMAND_FAILED"
)

// wrapValidationError tags message-validation failures. Errors that are
// already wrapped pass through untouched so inner handlers keep the code
// they chose.
func wrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command message rejected").
		WithTextCode(CodeInvalidMessage)
}

// wrapContextError separates cancellation from deadline expiry. The image
// refresh job's politeness delays make timeouts a real operational case,
// not a programming error.
func wrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	code, msg := CodeCanceled, "command canceled"
	if errors.Is(err, context.DeadlineExceeded) {
		code, msg = CodeTimedOut, "command deadline exceeded"
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, msg).WithTextCode(code)
}

func wrapExecuteError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command failed").
		WithTextCode(CodeFailed)
}
