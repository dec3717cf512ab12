/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/peridio/morel/pkg/api"
	"github.com/peridio/morel/pkg/diag"
	"github.com/peridio/morel/pkg/prnlib"
)

func signingKeysCmd() *cli.Command {
	return &cli.Command{
		Name:  "signing-keys",
		Usage: "Manage signing keys",
		Commands: []*cli.Command{
			signingKeysListCmd(),
			signingKeysGetCmd(),
			signingKeysCreateCmd(),
			signingKeysDeleteCmd(),
		},
	}
}

func signingKeysListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List signing keys",
		Flags: listFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			page, err := client.SigningKeys.List(ctx, listOptions(cmd))
			if err != nil {
				return err
			}
			return output(cmd, page)
		},
	}
}

func signingKeysGetCmd() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Get a signing key",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the signing key", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			keyPrn, err := requirePrn(cmd, "prn", prn.KindSigningKey)
			if err != nil {
				return err
			}
			key, err := client.SigningKeys.Get(ctx, keyPrn)
			if err != nil {
				return err
			}
			return output(cmd, key)
		},
	}
}

func signingKeysCreateCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Register a signing key",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "Name of the signing key", Required: true},
			&cli.StringFlag{Name: "algorithm", Value: "ED25519", Usage: "Signature algorithm"},
			&cli.StringFlag{Name: "value", Usage: "Raw base64-encoded public key"},
			&cli.StringFlag{Name: "path", Usage: "Path to a file containing the public key"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			value := cmd.String("value")
			switch {
			case value != "" && cmd.IsSet("path"):
				return diag.NewDataError("--value and --path are mutually exclusive")
			case value == "" && !cmd.IsSet("path"):
				return diag.NewDataError("one of --value or --path is required")
			case value == "":
				data, err := os.ReadFile(cmd.String("path"))
				if err != nil {
					return diag.NewDataError(err.Error())
				}
				value = strings.TrimSpace(string(data))
			}
			key, err := client.SigningKeys.Create(ctx, api.CreateSigningKeyRequest{
				Name:      cmd.String("name"),
				Algorithm: cmd.String("algorithm"),
				Value:     value,
			})
			if err != nil {
				return err
			}
			return output(cmd, key)
		},
	}
}

func signingKeysDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete a signing key",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the signing key", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			keyPrn, err := requirePrn(cmd, "prn", prn.KindSigningKey)
			if err != nil {
				return err
			}
			return client.SigningKeys.Delete(ctx, keyPrn)
		},
	}
}
