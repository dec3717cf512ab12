/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package diag

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestReport_RenderOrder(t *testing.T) {
	withoutColor(t)

	r := New()
	r.Push(SeverityError, "error: ")
	r.Push(SeverityNone, "the following arguments are required:\n")
	r.Pushf(SeveritySuccess, "\t%s\n", "--api-key")
	r.Push(SeveritySuccess, "\t--base-url")
	r.Push(SeverityWarning, "")

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf))

	assert.Equal(t, "error: the following arguments are required:\n\t--api-key\n\t--base-url\n", buf.String())
}

func TestReport_EmptySpansDropped(t *testing.T) {
	withoutColor(t)

	r := New()
	r.Push(SeverityError, "")
	r.Pushf(SeverityNone, "%s", "")

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf))
	assert.Equal(t, "\n", buf.String())
}

func TestNewDataError(t *testing.T) {
	withoutColor(t)

	derr := NewDataError("invalid PRN")
	assert.Equal(t, ExitDataErr, derr.Code)

	var buf bytes.Buffer
	require.NoError(t, derr.Report.Render(&buf))
	assert.Equal(t, "error: invalid PRN\n", buf.String())
}

func TestFail(t *testing.T) {
	withoutColor(t)

	t.Run("diag error renders its report", func(t *testing.T) {
		var buf bytes.Buffer
		code := Fail(&buf, NewDataError("bad value"))
		assert.Equal(t, ExitDataErr, code)
		assert.Equal(t, "error: bad value\n", buf.String())
	})

	t.Run("wrapped diag error", func(t *testing.T) {
		var buf bytes.Buffer
		wrapped := errors.Join(NewDataError("bad value"))
		code := Fail(&buf, wrapped)
		assert.Equal(t, ExitDataErr, code)
		assert.Equal(t, "error: bad value\n", buf.String())
	})

	t.Run("plain error gets prefix", func(t *testing.T) {
		var buf bytes.Buffer
		code := Fail(&buf, errors.New("boom"))
		assert.Equal(t, ExitDataErr, code)
		assert.Equal(t, "error: boom\n", buf.String())
	})
}
