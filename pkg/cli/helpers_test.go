/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/peridio/morel/pkg/api"
	"github.com/peridio/morel/pkg/diag"
	"github.com/peridio/morel/pkg/prnlib"
)

const (
	testOrgUUID    = "5f7e8a33-8b7e-4d0e-9a3e-36a2b1a9d1c4"
	testDeviceUUID = "0a9f0b1c-2d3e-4f50-8162-738495a6b7c8"
)

func TestRequirePrn(t *testing.T) {
	devicePrn := "prn:1:" + testOrgUUID + ":device:" + testDeviceUUID

	tests := []struct {
		name      string
		args      []string
		kind      prn.ResourceKind
		want      string
		wantError bool
		errMsg    string
	}{
		{
			name: "valid device prn",
			args: []string{"cmd", "--prn", devicePrn},
			kind: prn.KindDevice,
			want: devicePrn,
		},
		{
			name:      "missing flag",
			args:      []string{"cmd"},
			kind:      prn.KindDevice,
			wantError: true,
			errMsg:    "missing required argument '--prn'",
		},
		{
			name:      "wrong kind",
			args:      []string{"cmd", "--prn", devicePrn},
			kind:      prn.KindCohort,
			wantError: true,
			errMsg:    "invalid value",
		},
		{
			name:      "malformed prn",
			args:      []string{"cmd", "--prn", "not-a-prn"},
			kind:      prn.KindDevice,
			wantError: true,
			errMsg:    "invalid value 'not-a-prn' for '--prn'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			var capturedErr error

			testCmd := &cli.Command{
				Name: "test",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "prn"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					got, capturedErr = requirePrn(cmd, "prn", tt.kind)
					return nil
				},
			}
			if err := testCmd.Run(context.Background(), tt.args); err != nil {
				t.Fatalf("unexpected run error: %v", err)
			}

			if tt.wantError {
				if capturedErr == nil {
					t.Fatal("expected error but got nil")
				}
				if tt.errMsg != "" && !strings.Contains(capturedErr.Error(), tt.errMsg) {
					t.Errorf("error = %v, want error containing %q", capturedErr, tt.errMsg)
				}
				var dataErr *diag.Error
				if !errors.As(capturedErr, &dataErr) {
					t.Errorf("error should be a *diag.Error, got %T", capturedErr)
				} else if dataErr.Code != diag.ExitDataErr {
					t.Errorf("Code = %d, want %d", dataErr.Code, diag.ExitDataErr)
				}
				return
			}

			if capturedErr != nil {
				t.Fatalf("unexpected error: %v", capturedErr)
			}
			if got != tt.want {
				t.Errorf("prn = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOptionalPrn(t *testing.T) {
	cohortPrn := "prn:1:" + testOrgUUID + ":cohort:" + testDeviceUUID

	tests := []struct {
		name      string
		args      []string
		want      string
		wantError bool
	}{
		{
			name: "absent flag is not an error",
			args: []string{"cmd"},
			want: "",
		},
		{
			name: "valid prn",
			args: []string{"cmd", "--cohort-prn", cohortPrn},
			want: cohortPrn,
		},
		{
			name:      "invalid prn still rejected",
			args:      []string{"cmd", "--cohort-prn", "prn:1:nope"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			var capturedErr error

			testCmd := &cli.Command{
				Name: "test",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "cohort-prn"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					got, capturedErr = optionalPrn(cmd, "cohort-prn", prn.KindCohort)
					return nil
				},
			}
			if err := testCmd.Run(context.Background(), tt.args); err != nil {
				t.Fatalf("unexpected run error: %v", err)
			}

			if tt.wantError {
				if capturedErr == nil {
					t.Fatal("expected error but got nil")
				}
				return
			}
			if capturedErr != nil {
				t.Fatalf("unexpected error: %v", capturedErr)
			}
			if got != tt.want {
				t.Errorf("prn = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListOptions(t *testing.T) {
	var got api.ListOptions

	testCmd := &cli.Command{
		Name:  "test",
		Flags: listFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			got = listOptions(cmd)
			return nil
		},
	}
	args := []string{"cmd", "--limit", "25", "--order", "desc", "--search", "name:demo", "--page", "cursor123"}
	if err := testCmd.Run(context.Background(), args); err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}

	if got.Limit != 25 {
		t.Errorf("Limit = %d, want 25", got.Limit)
	}
	if got.Order != "desc" {
		t.Errorf("Order = %q, want desc", got.Order)
	}
	if got.Search != "name:demo" {
		t.Errorf("Search = %q, want name:demo", got.Search)
	}
	if got.Page != "cursor123" {
		t.Errorf("Page = %q, want cursor123", got.Page)
	}
}

func TestStringPtrAndBoolPtr(t *testing.T) {
	var name *string
	var archived *bool

	testCmd := &cli.Command{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name"},
			&cli.BoolFlag{Name: "archived"},
			&cli.StringFlag{Name: "unused"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name = stringPtr(cmd, "name")
			archived = boolPtr(cmd, "archived")
			if p := stringPtr(cmd, "unused"); p != nil {
				t.Errorf("unset flag should produce nil, got %q", *p)
			}
			return nil
		},
	}
	if err := testCmd.Run(context.Background(), []string{"cmd", "--name", "renamed", "--archived"}); err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}

	if name == nil || *name != "renamed" {
		t.Errorf("name = %v, want renamed", name)
	}
	if archived == nil || !*archived {
		t.Errorf("archived = %v, want true", archived)
	}
}

func TestMaybeJSON(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantNil   bool
		wantError bool
	}{
		{name: "empty is nil", raw: "", wantNil: true},
		{name: "object", raw: `{"region":"eu","slot":2}`},
		{name: "not an object", raw: `[1,2,3]`, wantError: true},
		{name: "garbage", raw: `{`, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := maybeJSON(tt.raw)
			if tt.wantError {
				if err == nil {
					t.Fatal("expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil && m != nil {
				t.Errorf("expected nil map, got %v", m)
			}
			if !tt.wantNil && m == nil {
				t.Error("expected non-nil map")
			}
		})
	}
}

func TestOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	testCmd := &cli.Command{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Value: "json"},
			&cli.StringFlag{Name: "output"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return output(cmd, map[string]string{"status": "ok"})
		},
	}
	if err := testCmd.Run(context.Background(), []string{"cmd", "--output", path}); err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if !strings.Contains(string(data), `"status": "ok"`) {
		t.Errorf("output = %q, want JSON containing status", data)
	}
}

func TestOutput_UnknownFormat(t *testing.T) {
	testCmd := &cli.Command{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format"},
			&cli.StringFlag{Name: "output"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return output(cmd, "x")
		},
	}
	err := testCmd.Run(context.Background(), []string{"cmd", "--format", "xml"})
	if err == nil {
		t.Fatal("expected error but got nil")
	}
	if !strings.Contains(err.Error(), "unknown output format") {
		t.Errorf("error = %v, want unknown output format", err)
	}
}
