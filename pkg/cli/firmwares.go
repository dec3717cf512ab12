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

func firmwaresCmd() *cli.Command {
	return &cli.Command{
		Name:  "firmwares",
		Usage: "Manage firmwares",
		Commands: []*cli.Command{
			firmwaresListCmd(),
			firmwaresGetCmd(),
			firmwaresCreateCmd(),
			firmwaresDeleteCmd(),
		},
	}
}

func firmwaresListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List firmwares",
		Flags: listFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			page, err := client.Firmwares.List(ctx, listOptions(cmd))
			if err != nil {
				return err
			}
			return output(cmd, page)
		},
	}
}

func firmwaresGetCmd() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Get a firmware",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the firmware", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			firmwarePrn, err := requirePrn(cmd, "prn", prn.KindFirmware)
			if err != nil {
				return err
			}
			firmware, err := client.Firmwares.Get(ctx, firmwarePrn)
			if err != nil {
				return err
			}
			return output(cmd, firmware)
		},
	}
}

func firmwaresCreateCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Upload a signed firmware image",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "product-prn", Usage: "PRN of the product", Required: true},
			&cli.StringFlag{Name: "firmware-path", Usage: "Path to the signed firmware image", Required: true},
			&cli.IntFlag{Name: "ttl", Usage: "Time to live in seconds"},
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
			image, err := readBase64File(cmd.String("firmware-path"))
			if err != nil {
				return err
			}
			firmware, err := client.Firmwares.Create(ctx, api.CreateFirmwareRequest{
				ProductPrn: productPrn,
				Firmware:   image,
				TTL:        int(cmd.Int("ttl")),
			})
			if err != nil {
				return err
			}
			return output(cmd, firmware)
		},
	}
}

func firmwaresDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete a firmware",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the firmware", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			firmwarePrn, err := requirePrn(cmd, "prn", prn.KindFirmware)
			if err != nil {
				return err
			}
			return client.Firmwares.Delete(ctx, firmwarePrn)
		},
	}
}
