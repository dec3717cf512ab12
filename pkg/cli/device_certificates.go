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

func deviceCertificatesCmd() *cli.Command {
	return &cli.Command{
		Name:  "device-certificates",
		Usage: "Manage device certificates",
		Commands: []*cli.Command{
			deviceCertificatesListCmd(),
			deviceCertificatesGetCmd(),
			deviceCertificatesCreateCmd(),
			deviceCertificatesDeleteCmd(),
		},
	}
}

func deviceCertificatesListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the certificates of a device",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "device-prn", Usage: "PRN of the device", Required: true},
		}, listFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			devicePrn, err := requirePrn(cmd, "device-prn", prn.KindDevice)
			if err != nil {
				return err
			}
			page, err := client.DeviceCertificates.List(ctx, devicePrn, listOptions(cmd))
			if err != nil {
				return err
			}
			return output(cmd, page)
		},
	}
}

func deviceCertificatesGetCmd() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Get a device certificate",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the device certificate", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			certPrn, err := requirePrn(cmd, "prn", prn.KindDeviceCertificate)
			if err != nil {
				return err
			}
			cert, err := client.DeviceCertificates.Get(ctx, certPrn)
			if err != nil {
				return err
			}
			return output(cmd, cert)
		},
	}
}

func deviceCertificatesCreateCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Attach a client certificate to a device",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "device-prn", Usage: "PRN of the device", Required: true},
			&cli.StringFlag{Name: "certificate-path", Usage: "Path to the client certificate PEM", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			devicePrn, err := requirePrn(cmd, "device-prn", prn.KindDevice)
			if err != nil {
				return err
			}
			cert, err := readBase64File(cmd.String("certificate-path"))
			if err != nil {
				return err
			}
			created, err := client.DeviceCertificates.Create(ctx, devicePrn, api.CreateDeviceCertificateRequest{
				Certificate: cert,
			})
			if err != nil {
				return err
			}
			return output(cmd, created)
		},
	}
}

func deviceCertificatesDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete a device certificate",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the device certificate", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			certPrn, err := requirePrn(cmd, "prn", prn.KindDeviceCertificate)
			if err != nil {
				return err
			}
			return client.DeviceCertificates.Delete(ctx, certPrn)
		},
	}
}
