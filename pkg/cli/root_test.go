/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"testing"

	"github.com/urfave/cli/v3"
)

func TestRootCmd_CommandStructure(t *testing.T) {
	cmd := rootCmd()

	if cmd.Name != "morel" {
		t.Errorf("Name = %v, want morel", cmd.Name)
	}
	if cmd.Usage == "" {
		t.Error("Usage should not be empty")
	}
	if cmd.Version == "" {
		t.Error("Version should not be empty")
	}

	globalFlags := []string{"api-key", "base-url", "organization-prn", "profile", "config-dir", "format", "output", "verbose"}
	for _, flagName := range globalFlags {
		found := false
		for _, flag := range cmd.Flags {
			if hasName(flag, flagName) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("global flag %q not found", flagName)
		}
	}

	resources := []string{
		"artifacts", "artifact-versions", "binaries", "binary-parts",
		"binary-signatures", "ca-certificates", "cohorts", "deployments",
		"device-certificates", "devices", "firmwares", "organizations",
		"products", "signing-keys", "users",
	}
	for _, name := range resources {
		if findCommand(cmd.Commands, name) == nil {
			t.Errorf("resource command %q not found", name)
		}
	}
}

func TestResourceCmd_Subcommands(t *testing.T) {
	tests := []struct {
		resource    string
		subcommands []string
	}{
		{"artifacts", []string{"list", "get", "create", "update", "delete"}},
		{"artifact-versions", []string{"list", "get", "create", "update", "delete"}},
		{"binaries", []string{"list", "get", "create", "update"}},
		{"binary-parts", []string{"list", "create"}},
		{"binary-signatures", []string{"create", "delete"}},
		{"ca-certificates", []string{"list", "get", "create", "update", "delete", "create-verification-code"}},
		{"cohorts", []string{"list", "get", "create", "update", "delete"}},
		{"deployments", []string{"list", "get", "create", "update", "delete"}},
		{"device-certificates", []string{"list", "get", "create", "delete"}},
		{"devices", []string{"list", "get", "create", "update", "delete"}},
		{"firmwares", []string{"list", "get", "create", "delete"}},
		{"organizations", []string{"users"}},
		{"products", []string{"list", "get", "create", "update", "delete"}},
		{"signing-keys", []string{"list", "get", "create", "delete"}},
		{"users", []string{"me"}},
	}

	root := rootCmd()
	for _, tt := range tests {
		t.Run(tt.resource, func(t *testing.T) {
			group := findCommand(root.Commands, tt.resource)
			if group == nil {
				t.Fatalf("resource command %q not found", tt.resource)
			}
			for _, name := range tt.subcommands {
				sub := findCommand(group.Commands, name)
				if sub == nil {
					t.Errorf("subcommand %q not found", name)
					continue
				}
				if sub.Usage == "" {
					t.Errorf("subcommand %q has empty Usage", name)
				}
			}
		})
	}
}

func TestOrganizationUsersCmd_Subcommands(t *testing.T) {
	group := organizationUsersCmd()

	for _, name := range []string{"list", "get", "add", "update", "remove"} {
		if findCommand(group.Commands, name) == nil {
			t.Errorf("subcommand %q not found", name)
		}
	}
}

func TestClosestCommand(t *testing.T) {
	commands := []*cli.Command{
		{Name: "devices"},
		{Name: "deployments"},
		{Name: "products"},
		{Name: "debug", Hidden: true},
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "near miss", input: "device", want: "devices"},
		{name: "transposition", input: "porducts", want: "products"},
		{name: "exact", input: "deployments", want: "deployments"},
		{name: "too far", input: "zzzzzzzzzzzz", want: ""},
		{name: "hidden commands skipped", input: "debgu", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := closestCommand(tt.input, commands); got != tt.want {
				t.Errorf("closestCommand(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func findCommand(commands []*cli.Command, name string) *cli.Command {
	for _, c := range commands {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func hasName(flag cli.Flag, name string) bool {
	if flag == nil {
		return false
	}
	for _, n := range flag.Names() {
		if n == name {
			return true
		}
	}
	return false
}
