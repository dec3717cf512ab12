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

func artifactVersionsCmd() *cli.Command {
	return &cli.Command{
		Name:  "artifact-versions",
		Usage: "Manage artifact versions",
		Commands: []*cli.Command{
			artifactVersionsListCmd(),
			artifactVersionsGetCmd(),
			artifactVersionsCreateCmd(),
			artifactVersionsDeleteCmd(),
		},
	}
}

func artifactVersionsListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List artifact versions",
		Flags: listFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			page, err := client.ArtifactVersions.List(ctx, listOptions(cmd))
			if err != nil {
				return err
			}
			return output(cmd, page)
		},
	}
}

func artifactVersionsGetCmd() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Get an artifact version",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the artifact version", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			versionPrn, err := requirePrn(cmd, "prn", prn.KindArtifactVersion)
			if err != nil {
				return err
			}
			v, err := client.ArtifactVersions.Get(ctx, versionPrn)
			if err != nil {
				return err
			}
			return output(cmd, v)
		},
	}
}

func artifactVersionsCreateCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create an artifact version",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "artifact-prn", Usage: "PRN of the parent artifact", Required: true},
			&cli.StringFlag{Name: "version", Usage: "Version string, e.g. 1.2.3", Required: true},
			&cli.StringFlag{Name: "description", Usage: "Description of the version"},
			&cli.StringFlag{Name: "custom-metadata", Usage: "JSON object of custom metadata"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			artifactPrn, err := requirePrn(cmd, "artifact-prn", prn.KindArtifact)
			if err != nil {
				return err
			}
			metadata, err := maybeJSON(cmd.String("custom-metadata"))
			if err != nil {
				return err
			}
			v, err := client.ArtifactVersions.Create(ctx, api.CreateArtifactVersionRequest{
				ArtifactPrn:    artifactPrn,
				Version:        cmd.String("version"),
				Description:    cmd.String("description"),
				CustomMetadata: metadata,
			})
			if err != nil {
				return err
			}
			return output(cmd, v)
		},
	}
}

func artifactVersionsDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete an artifact version",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the artifact version", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			versionPrn, err := requirePrn(cmd, "prn", prn.KindArtifactVersion)
			if err != nil {
				return err
			}
			return client.ArtifactVersions.Delete(ctx, versionPrn)
		},
	}
}
