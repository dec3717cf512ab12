/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package diag renders severity-styled diagnostics and maps command
// outcomes to process exit codes. Rendering is side-effect free apart
// from writing to the supplied writer; only the program entry point
// may exit the process.
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Process exit codes. ExitDataErr follows the sysexits EX_DATAERR
// convention for malformed user-supplied input.
const (
	ExitOK      = 0
	ExitDataErr = 65
)

// Severity selects the style a span is rendered with.
type Severity int

const (
	SeverityNone Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

var (
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
)

type span struct {
	severity Severity
	message  string
}

// Report accumulates styled message spans in order.
type Report struct {
	spans []span
}

// New returns an empty report.
func New() *Report {
	return &Report{}
}

// Push appends a span. Empty messages are dropped.
func (r *Report) Push(severity Severity, message string) {
	if message == "" {
		return
	}
	r.spans = append(r.spans, span{severity: severity, message: message})
}

// Pushf appends a formatted span.
func (r *Report) Pushf(severity Severity, format string, args ...any) {
	r.Push(severity, fmt.Sprintf(format, args...))
}

// Render writes the accumulated spans to w with their severity colors,
// followed by a trailing newline. Color output degrades to plain text
// on non-terminal writers.
func (r *Report) Render(w io.Writer) error {
	for _, s := range r.spans {
		var err error
		switch s.severity {
		case SeveritySuccess:
			_, err = successColor.Fprint(w, s.message)
		case SeverityWarning:
			_, err = warningColor.Fprint(w, s.message)
		case SeverityError:
			_, err = errorColor.Fprint(w, s.message)
		default:
			_, err = fmt.Fprint(w, s.message)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
