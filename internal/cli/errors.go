package cli

import (
	stderrors "errors"

	"github.com/matzehuels/boxicon/pkg/errors"
)

// ErrorMessage formats err for the terminal as "message: cause [CODE]".
// Errors without a code are printed as they are.
func ErrorMessage(err error) string {
	msg := errors.UserMessage(err)
	var e *errors.Error
	if stderrors.As(err, &e) && e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if code := errors.GetCode(err); code != "" {
		msg += " [" + string(code) + "]"
	}
	return msg
}
