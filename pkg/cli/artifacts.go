/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/peridio/morel/pkg/api"
	"github.com/peridio/morel/pkg/prnlib"
)

func artifactsCmd() *cli.Command {
	return &cli.Command{
		Name:  "artifacts",
		Usage: "Manage artifacts",
		Commands: []*cli.Command{
			artifactsListCmd(),
			artifactsGetCmd(),
			artifactsCreateCmd(),
			artifactsUpdateCmd(),
			artifactsDeleteCmd(),
		},
	}
}

func artifactsListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List artifacts",
		Flags: listFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			page, err := client.Artifacts.List(ctx, listOptions(cmd))
			if err != nil {
				return err
			}
			return output(cmd, page)
		},
	}
}

func artifactsGetCmd() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Get an artifact",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the artifact", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			artifactPrn, err := requirePrn(cmd, "prn", prn.KindArtifact)
			if err != nil {
				return err
			}
			artifact, err := client.Artifacts.Get(ctx, artifactPrn)
			if err != nil {
				return err
			}
			return output(cmd, artifact)
		},
	}
}

func artifactsCreateCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create an artifact",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "Name of the artifact", Required: true},
			&cli.StringFlag{Name: "description", Usage: "Description of the artifact"},
			&cli.StringFlag{Name: "custom-metadata", Usage: "JSON object of custom metadata"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			metadata, err := maybeJSON(cmd.String("custom-metadata"))
			if err != nil {
				return err
			}
			artifact, err := client.Artifacts.Create(ctx, api.CreateArtifactRequest{
				Name:           cmd.String("name"),
				Description:    cmd.String("description"),
				CustomMetadata: metadata,
			})
			if err != nil {
				return err
			}
			return output(cmd, artifact)
		},
	}
}

func artifactsUpdateCmd() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Update an artifact",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the artifact", Required: true},
			&cli.StringFlag{Name: "name", Usage: "New name"},
			&cli.StringFlag{Name: "description", Usage: "New description"},
			&cli.StringFlag{Name: "custom-metadata", Usage: "JSON object of custom metadata"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			artifactPrn, err := requirePrn(cmd, "prn", prn.KindArtifact)
			if err != nil {
				return err
			}
			metadata, err := maybeJSON(cmd.String("custom-metadata"))
			if err != nil {
				return err
			}
			artifact, err := client.Artifacts.Update(ctx, artifactPrn, api.UpdateArtifactRequest{
				Name:           stringPtr(cmd, "name"),
				Description:    stringPtr(cmd, "description"),
				CustomMetadata: metadata,
			})
			if err != nil {
				return err
			}
			return output(cmd, artifact)
		},
	}
}

func artifactsDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete an artifact",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the artifact", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			artifactPrn, err := requirePrn(cmd, "prn", prn.KindArtifact)
			if err != nil {
				return err
			}
			return client.Artifacts.Delete(ctx, artifactPrn)
		},
	}
}

// maybeJSON parses an optional JSON-object flag value.
func maybeJSON(raw string) (map[string]any, error) {
	if raw == "" {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("invalid custom metadata, expected a JSON object: %w", err)
	}
	return m, nil
}
