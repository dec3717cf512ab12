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

func deploymentsCmd() *cli.Command {
	return &cli.Command{
		Name:  "deployments",
		Usage: "Manage deployments",
		Commands: []*cli.Command{
			deploymentsListCmd(),
			deploymentsGetCmd(),
			deploymentsCreateCmd(),
			deploymentsUpdateCmd(),
			deploymentsDeleteCmd(),
		},
	}
}

func deploymentsListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List deployments",
		Flags: listFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			page, err := client.Deployments.List(ctx, listOptions(cmd))
			if err != nil {
				return err
			}
			return output(cmd, page)
		},
	}
}

func deploymentsGetCmd() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Get a deployment",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the deployment", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			deploymentPrn, err := requirePrn(cmd, "prn", prn.KindDeployment)
			if err != nil {
				return err
			}
			deployment, err := client.Deployments.Get(ctx, deploymentPrn)
			if err != nil {
				return err
			}
			return output(cmd, deployment)
		},
	}
}

func deploymentsCreateCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a deployment",
		Description: `Creates a deployment of a firmware to the devices of a product.
Deployments start inactive unless --is-active is passed; conditions
restrict the rollout to devices matching all given tags and the
version requirement.`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "Name of the deployment", Required: true},
			&cli.StringFlag{Name: "firmware-prn", Usage: "PRN of the firmware to roll out", Required: true},
			&cli.StringFlag{Name: "product-prn", Usage: "PRN of the product", Required: true},
			&cli.BoolFlag{Name: "is-active", Usage: "Activate the deployment immediately"},
			&cli.StringSliceFlag{Name: "tag", Usage: "Device tag condition (repeatable)"},
			&cli.StringFlag{Name: "version", Usage: "Version requirement condition, e.g. < 1.2.0"},
			&cli.BoolFlag{Name: "delta-updatable", Usage: "Serve delta updates when possible"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			firmwarePrn, err := requirePrn(cmd, "firmware-prn", prn.KindFirmware)
			if err != nil {
				return err
			}
			productPrn, err := requirePrn(cmd, "product-prn", prn.KindProduct)
			if err != nil {
				return err
			}
			deployment, err := client.Deployments.Create(ctx, api.CreateDeploymentRequest{
				Name:        cmd.String("name"),
				FirmwarePrn: firmwarePrn,
				ProductPrn:  productPrn,
				IsActive:    cmd.Bool("is-active"),
				Conditions: api.DeploymentConditions{
					Tags:    cmd.StringSlice("tag"),
					Version: cmd.String("version"),
				},
				Delta: cmd.Bool("delta-updatable"),
			})
			if err != nil {
				return err
			}
			return output(cmd, deployment)
		},
	}
}

func deploymentsUpdateCmd() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Update a deployment",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the deployment", Required: true},
			&cli.StringFlag{Name: "name", Usage: "New name"},
			&cli.StringFlag{Name: "firmware-prn", Usage: "PRN of a new firmware"},
			&cli.BoolFlag{Name: "is-active", Usage: "Activate or deactivate the deployment"},
			&cli.StringSliceFlag{Name: "tag", Usage: "Replace tag conditions (repeatable)"},
			&cli.StringFlag{Name: "version", Usage: "Replace the version requirement condition"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			deploymentPrn, err := requirePrn(cmd, "prn", prn.KindDeployment)
			if err != nil {
				return err
			}
			var firmwarePrn *string
			if cmd.IsSet("firmware-prn") {
				validated, err := requirePrn(cmd, "firmware-prn", prn.KindFirmware)
				if err != nil {
					return err
				}
				firmwarePrn = &validated
			}
			var conditions *api.DeploymentConditions
			if cmd.IsSet("tag") || cmd.IsSet("version") {
				conditions = &api.DeploymentConditions{
					Tags:    cmd.StringSlice("tag"),
					Version: cmd.String("version"),
				}
			}
			deployment, err := client.Deployments.Update(ctx, deploymentPrn, api.UpdateDeploymentRequest{
				Name:        stringPtr(cmd, "name"),
				FirmwarePrn: firmwarePrn,
				IsActive:    boolPtr(cmd, "is-active"),
				Conditions:  conditions,
			})
			if err != nil {
				return err
			}
			return output(cmd, deployment)
		},
	}
}

func deploymentsDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete a deployment",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the deployment", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			deploymentPrn, err := requirePrn(cmd, "prn", prn.KindDeployment)
			if err != nil {
				return err
			}
			return client.Deployments.Delete(ctx, deploymentPrn)
		},
	}
}
