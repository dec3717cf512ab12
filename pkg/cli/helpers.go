/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/peridio/morel/pkg/api"
	"github.com/peridio/morel/pkg/config"
	"github.com/peridio/morel/pkg/diag"
	"github.com/peridio/morel/pkg/prnlib"
	"github.com/peridio/morel/pkg/serializer"
)

// requirePrn reads the named flag and validates it as a PRN of the
// expected kind. Failures surface as a styled data error naming the
// flag, the offending value, and the cause.
func requirePrn(cmd *cli.Command, name string, kind prn.ResourceKind) (string, error) {
	value := cmd.String(name)
	if value == "" {
		return "", diag.NewDataError(fmt.Sprintf("missing required argument '--%s'", name))
	}
	return validatePrn(name, value, kind)
}

// optionalPrn is requirePrn for flags that may be absent.
func optionalPrn(cmd *cli.Command, name string, kind prn.ResourceKind) (string, error) {
	value := cmd.String(name)
	if value == "" {
		return "", nil
	}
	return validatePrn(name, value, kind)
}

func validatePrn(name, value string, kind prn.ResourceKind) (string, error) {
	validated, err := prn.Validate(kind, value)
	if err != nil {
		return "", diag.NewDataError(fmt.Sprintf("invalid value '%s' for '--%s': %s", value, name, err))
	}
	return validated, nil
}

// resolveConfig merges config files, environment, and global flags.
func resolveConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config-dir"), cmd.String("profile"))
	if err != nil {
		return nil, err
	}
	if v := cmd.String("base-url"); v != "" {
		cfg.BaseURL = v
	}
	if v := cmd.String("api-key"); v != "" {
		cfg.APIKey = v
	}
	if v := cmd.String("organization-prn"); v != "" {
		cfg.OrganizationPrn = v
	}
	return cfg, nil
}

// apiClient builds the API client for a subcommand, first checking
// the globally required settings. Missing globals are reported
// together in one styled block.
func apiClient(cmd *cli.Command) (*api.Client, *config.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	var missing []string
	if cfg.APIKey == "" {
		missing = append(missing, "--api-key")
	}
	if cfg.OrganizationPrn == "" {
		missing = append(missing, "--organization-prn")
	}
	if len(missing) > 0 {
		r := diag.New()
		r.Push(diag.SeverityError, "error: ")
		r.Push(diag.SeverityNone, "the following arguments are required at the global level:\n")
		for _, name := range missing {
			r.Pushf(diag.SeveritySuccess, "\t%s\n", name)
		}
		return nil, nil, &diag.Error{Report: r, Code: diag.ExitDataErr}
	}

	if _, err := validatePrn("organization-prn", cfg.OrganizationPrn, prn.KindOrganization); err != nil {
		return nil, nil, err
	}

	client := api.NewClient(
		api.WithBaseURL(cfg.BaseURL),
		api.WithAPIKey(cfg.APIKey),
	)
	return client, cfg, nil
}

// listFlags are the pagination flags shared by every list command.
func listFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "limit",
			Usage: "Maximum number of resources to return per page",
		},
		&cli.StringFlag{
			Name:  "order",
			Usage: "Sort order by insertion time: asc or desc",
		},
		&cli.StringFlag{
			Name:  "search",
			Usage: "Search expression to filter resources",
		},
		&cli.StringFlag{
			Name:  "page",
			Usage: "Cursor returned as next_page by a previous list call",
		},
	}
}

func listOptions(cmd *cli.Command) api.ListOptions {
	return api.ListOptions{
		Limit:  int(cmd.Int("limit")),
		Order:  cmd.String("order"),
		Search: cmd.String("search"),
		Page:   cmd.String("page"),
	}
}

// output serializes v to stdout or the global --output path in the
// global --format encoding.
func output(cmd *cli.Command, v any) error {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return fmt.Errorf("unknown output format: %q, valid formats are: json, yaml", format)
	}
	w, err := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	if err != nil {
		return err
	}
	return w.Serialize(v)
}

// stringPtr returns nil for unset optional update flags so PATCH
// bodies omit fields the user did not pass.
func stringPtr(cmd *cli.Command, name string) *string {
	if !cmd.IsSet(name) {
		return nil
	}
	v := cmd.String(name)
	return &v
}

func boolPtr(cmd *cli.Command, name string) *bool {
	if !cmd.IsSet(name) {
		return nil
	}
	v := cmd.Bool(name)
	return &v
}
