/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/peridio/morel/pkg/api"
	"github.com/peridio/morel/pkg/prnlib"
)

func binariesCmd() *cli.Command {
	return &cli.Command{
		Name:  "binaries",
		Usage: "Manage binaries",
		Commands: []*cli.Command{
			binariesListCmd(),
			binariesGetCmd(),
			binariesCreateCmd(),
			binariesUpdateCmd(),
		},
	}
}

func binariesListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List binaries",
		Flags: listFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			page, err := client.Binaries.List(ctx, listOptions(cmd))
			if err != nil {
				return err
			}
			return output(cmd, page)
		},
	}
}

func binariesGetCmd() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Get a binary",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the binary", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			binaryPrn, err := requirePrn(cmd, "prn", prn.KindBinary)
			if err != nil {
				return err
			}
			binary, err := client.Binaries.Get(ctx, binaryPrn)
			if err != nil {
				return err
			}
			return output(cmd, binary)
		},
	}
}

func binariesCreateCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a binary and optionally upload its content",
		Description: `Creates a binary for an artifact version and target. When
--content-path is supplied the file is hashed, uploaded in parts, and
the binary is advanced to the hashable state. Supply --signing-key-prn
and --signature to attach a signature once content is uploaded.`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "artifact-version-prn", Usage: "PRN of the artifact version", Required: true},
			&cli.StringFlag{Name: "target", Usage: "Target triplet the binary is built for", Required: true},
			&cli.StringFlag{Name: "description", Usage: "Description of the binary"},
			&cli.StringFlag{Name: "content-path", Usage: "Path to the binary content to upload"},
			&cli.StringFlag{Name: "signing-key-prn", Usage: "PRN of the signing key for --signature"},
			&cli.StringFlag{Name: "signature", Usage: "Hex-encoded signature of the content hash"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			versionPrn, err := requirePrn(cmd, "artifact-version-prn", prn.KindArtifactVersion)
			if err != nil {
				return err
			}
			signingKeyPrn, err := optionalPrn(cmd, "signing-key-prn", prn.KindSigningKey)
			if err != nil {
				return err
			}

			contentPath := cmd.String("content-path")
			signature := cmd.String("signature")
			if signature != "" && signingKeyPrn == "" {
				return fmt.Errorf("--signature requires --signing-key-prn")
			}
			if signature != "" && contentPath == "" {
				return fmt.Errorf("--signature requires --content-path")
			}

			req := api.CreateBinaryRequest{
				ArtifactVersionPrn: versionPrn,
				Target:             cmd.String("target"),
				Description:        cmd.String("description"),
			}
			if contentPath != "" {
				hash, size, err := api.FileHash(contentPath)
				if err != nil {
					return err
				}
				req.Hash = hash
				req.Size = size
			}

			binary, err := client.Binaries.Create(ctx, req)
			if err != nil {
				return err
			}
			slog.Debug("binary created", "prn", binary.Prn, "state", binary.State)

			if contentPath != "" {
				binary, err = client.Binaries.UploadBinaryContent(ctx, binary.Prn, contentPath)
				if err != nil {
					return err
				}
			}
			if signature != "" {
				_, err = client.BinarySignatures.Create(ctx, api.CreateBinarySignatureRequest{
					BinaryPrn:     binary.Prn,
					SigningKeyPrn: signingKeyPrn,
					Signature:     signature,
				})
				if err != nil {
					return err
				}
			}

			return output(cmd, binary)
		},
	}
}

func binariesUpdateCmd() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Update a binary",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the binary", Required: true},
			&cli.StringFlag{Name: "state", Usage: "New lifecycle state, e.g. hashable"},
			&cli.StringFlag{Name: "description", Usage: "New description"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			binaryPrn, err := requirePrn(cmd, "prn", prn.KindBinary)
			if err != nil {
				return err
			}
			binary, err := client.Binaries.Update(ctx, binaryPrn, api.UpdateBinaryRequest{
				State:       api.BinaryState(cmd.String("state")),
				Description: stringPtr(cmd, "description"),
			})
			if err != nil {
				return err
			}
			return output(cmd, binary)
		},
	}
}
