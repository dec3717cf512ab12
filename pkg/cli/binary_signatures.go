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

func binarySignaturesCmd() *cli.Command {
	return &cli.Command{
		Name:  "binary-signatures",
		Usage: "Manage binary signatures",
		Commands: []*cli.Command{
			binarySignaturesCreateCmd(),
			binarySignaturesDeleteCmd(),
		},
	}
}

func binarySignaturesCreateCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Attach a signature to a binary",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "binary-prn", Usage: "PRN of the binary", Required: true},
			&cli.StringFlag{Name: "signing-key-prn", Usage: "PRN of the signing key", Required: true},
			&cli.StringFlag{Name: "signature", Usage: "Hex-encoded signature of the binary hash", Required: true},
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
			signingKeyPrn, err := requirePrn(cmd, "signing-key-prn", prn.KindSigningKey)
			if err != nil {
				return err
			}
			sig, err := client.BinarySignatures.Create(ctx, api.CreateBinarySignatureRequest{
				BinaryPrn:     binaryPrn,
				SigningKeyPrn: signingKeyPrn,
				Signature:     cmd.String("signature"),
			})
			if err != nil {
				return err
			}
			return output(cmd, sig)
		},
	}
}

func binarySignaturesDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete a binary signature",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the binary signature", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			sigPrn, err := requirePrn(cmd, "prn", prn.KindBinarySignature)
			if err != nil {
				return err
			}
			return client.BinarySignatures.Delete(ctx, sigPrn)
		},
	}
}
