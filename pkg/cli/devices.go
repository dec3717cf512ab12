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

func devicesCmd() *cli.Command {
	return &cli.Command{
		Name:  "devices",
		Usage: "Manage devices",
		Commands: []*cli.Command{
			devicesListCmd(),
			devicesGetCmd(),
			devicesCreateCmd(),
			devicesUpdateCmd(),
			devicesDeleteCmd(),
		},
	}
}

func devicesListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List devices",
		Flags: listFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			page, err := client.Devices.List(ctx, listOptions(cmd))
			if err != nil {
				return err
			}
			return output(cmd, page)
		},
	}
}

func devicesGetCmd() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Get a device",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the device", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			devicePrn, err := requirePrn(cmd, "prn", prn.KindDevice)
			if err != nil {
				return err
			}
			device, err := client.Devices.Get(ctx, devicePrn)
			if err != nil {
				return err
			}
			return output(cmd, device)
		},
	}
}

func devicesCreateCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a device",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "identifier", Usage: "Unique identifier of the device", Required: true},
			&cli.StringFlag{Name: "product-prn", Usage: "PRN of the product", Required: true},
			&cli.StringFlag{Name: "cohort-prn", Usage: "PRN of the cohort to place the device in"},
			&cli.StringFlag{Name: "description", Usage: "Description of the device"},
			&cli.StringSliceFlag{Name: "tag", Usage: "Device tag (repeatable)"},
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
			cohortPrn, err := optionalPrn(cmd, "cohort-prn", prn.KindCohort)
			if err != nil {
				return err
			}
			device, err := client.Devices.Create(ctx, api.CreateDeviceRequest{
				Identifier:  cmd.String("identifier"),
				ProductPrn:  productPrn,
				CohortPrn:   cohortPrn,
				Description: cmd.String("description"),
				Tags:        cmd.StringSlice("tag"),
			})
			if err != nil {
				return err
			}
			return output(cmd, device)
		},
	}
}

func devicesUpdateCmd() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Update a device",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the device", Required: true},
			&cli.StringFlag{Name: "cohort-prn", Usage: "PRN of the cohort to move the device to"},
			&cli.StringFlag{Name: "description", Usage: "New description"},
			&cli.StringSliceFlag{Name: "tag", Usage: "Replace device tags (repeatable)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			devicePrn, err := requirePrn(cmd, "prn", prn.KindDevice)
			if err != nil {
				return err
			}
			var cohortPrn *string
			if cmd.IsSet("cohort-prn") {
				validated, err := requirePrn(cmd, "cohort-prn", prn.KindCohort)
				if err != nil {
					return err
				}
				cohortPrn = &validated
			}
			device, err := client.Devices.Update(ctx, devicePrn, api.UpdateDeviceRequest{
				CohortPrn:   cohortPrn,
				Description: stringPtr(cmd, "description"),
				Tags:        cmd.StringSlice("tag"),
			})
			if err != nil {
				return err
			}
			return output(cmd, device)
		},
	}
}

func devicesDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete a device",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the device", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			devicePrn, err := requirePrn(cmd, "prn", prn.KindDevice)
			if err != nil {
				return err
			}
			return client.Devices.Delete(ctx, devicePrn)
		},
	}
}
