/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/peridio/morel/pkg/api"
	"github.com/peridio/morel/pkg/prnlib"
)

func binaryPartsCmd() *cli.Command {
	return &cli.Command{
		Name:  "binary-parts",
		Usage: "Manage binary parts",
		Commands: []*cli.Command{
			binaryPartsListCmd(),
			binaryPartsCreateCmd(),
		},
	}
}

func binaryPartsListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the parts of a binary",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "binary-prn", Usage: "PRN of the binary", Required: true},
		}, listFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			binaryPrn, err := requirePrn(cmd, "binary-prn", prn.KindBinary)
			if err != nil {
				return err
			}
			page, err := client.BinaryParts.List(ctx, binaryPrn, listOptions(cmd))
			if err != nil {
				return err
			}
			return output(cmd, page)
		},
	}
}

func binaryPartsCreateCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a binary part and obtain its presigned upload URL",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "binary-prn", Usage: "PRN of the binary", Required: true},
			&cli.IntFlag{Name: "index", Usage: "1-based part index", Required: true},
			&cli.StringFlag{Name: "hash", Usage: "Hex-encoded sha256 of the part", Required: true},
			&cli.IntFlag{Name: "size", Usage: "Size of the part in bytes", Required: true},
			&cli.IntFlag{Name: "expected-binary-size", Usage: "Total size of the binary in bytes", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			binaryPrn, err := requirePrn(cmd, "binary-prn", prn.KindBinary)
			if err != nil {
				return err
			}
			part, err := client.BinaryParts.Create(ctx, binaryPrn, api.CreateBinaryPartRequest{
				Index:              int(cmd.Int("index")),
				Hash:               cmd.String("hash"),
				Size:               int64(cmd.Int("size")),
				ExpectedBinarySize: int64(cmd.Int("expected-binary-size")),
			})
			if err != nil {
				return err
			}
			return output(cmd, part)
		},
	}
}
