/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package diag

import (
	"errors"
	"io"
)

// Error carries a styled report and the exit code the process should
// terminate with. Subcommand actions return it through the normal
// error path; the entry point renders and exits.
type Error struct {
	Report *Report
	Code   int
}

func (e *Error) Error() string {
	return "command failed"
}

// NewDataError builds an Error for malformed user input: a bold red
// "error: " prefix followed by the plain message, exiting with
// ExitDataErr.
func NewDataError(message string) *Error {
	r := New()
	r.Push(SeverityError, "error: ")
	r.Push(SeverityNone, message)
	return &Error{Report: r, Code: ExitDataErr}
}

// Fail renders err to w and returns the exit code the process should
// use. A *diag.Error renders its own report; any other error gets the
// standard red "error: " prefix and the data-error code.
func Fail(w io.Writer, err error) int {
	var derr *Error
	if errors.As(err, &derr) {
		_ = derr.Report.Render(w)
		return derr.Code
	}

	r := New()
	r.Push(SeverityError, "error: ")
	r.Push(SeverityNone, err.Error())
	_ = r.Render(w)
	return ExitDataErr
}
