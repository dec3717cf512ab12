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

func cohortsCmd() *cli.Command {
	return &cli.Command{
		Name:  "cohorts",
		Usage: "Manage cohorts",
		Commands: []*cli.Command{
			cohortsListCmd(),
			cohortsGetCmd(),
			cohortsCreateCmd(),
			cohortsUpdateCmd(),
			cohortsDeleteCmd(),
		},
	}
}

func cohortsListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List cohorts",
		Flags: listFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			page, err := client.Cohorts.List(ctx, listOptions(cmd))
			if err != nil {
				return err
			}
			return output(cmd, page)
		},
	}
}

func cohortsGetCmd() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Get a cohort",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the cohort", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			cohortPrn, err := requirePrn(cmd, "prn", prn.KindCohort)
			if err != nil {
				return err
			}
			cohort, err := client.Cohorts.Get(ctx, cohortPrn)
			if err != nil {
				return err
			}
			return output(cmd, cohort)
		},
	}
}

func cohortsCreateCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a cohort",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "Name of the cohort", Required: true},
			&cli.StringFlag{Name: "product-prn", Usage: "PRN of the owning product", Required: true},
			&cli.StringFlag{Name: "description", Usage: "Description of the cohort"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			productPrn, err := requirePrn(cmd, "product-prn", prn.KindProduct)
			if err != nil {
				return err
			}
			cohort, err := client.Cohorts.Create(ctx, api.CreateCohortRequest{
				Name:        cmd.String("name"),
				Description: cmd.String("description"),
				ProductPrn:  productPrn,
			})
			if err != nil {
				return err
			}
			return output(cmd, cohort)
		},
	}
}

func cohortsUpdateCmd() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Update a cohort",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the cohort", Required: true},
			&cli.StringFlag{Name: "name", Usage: "New name"},
			&cli.StringFlag{Name: "description", Usage: "New description"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			cohortPrn, err := requirePrn(cmd, "prn", prn.KindCohort)
			if err != nil {
				return err
			}
			cohort, err := client.Cohorts.Update(ctx, cohortPrn, api.UpdateCohortRequest{
				Name:        stringPtr(cmd, "name"),
				Description: stringPtr(cmd, "description"),
			})
			if err != nil {
				return err
			}
			return output(cmd, cohort)
		},
	}
}

func cohortsDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete a cohort",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the cohort", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			cohortPrn, err := requirePrn(cmd, "prn", prn.KindCohort)
			if err != nil {
				return err
			}
			return client.Cohorts.Delete(ctx, cohortPrn)
		},
	}
}
