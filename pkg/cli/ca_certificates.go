/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/peridio/morel/pkg/api"
	"github.com/peridio/morel/pkg/prnlib"
)

func caCertificatesCmd() *cli.Command {
	return &cli.Command{
		Name:  "ca-certificates",
		Usage: "Manage CA certificates for just-in-time provisioning",
		Commands: []*cli.Command{
			caCertificatesListCmd(),
			caCertificatesGetCmd(),
			caCertificatesCreateCmd(),
			caCertificatesUpdateCmd(),
			caCertificatesDeleteCmd(),
			caCertificatesCreateVerificationCodeCmd(),
		},
	}
}

func caCertificatesListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List CA certificates",
		Flags: listFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			page, err := client.CaCertificates.List(ctx, listOptions(cmd))
			if err != nil {
				return err
			}
			return output(cmd, page)
		},
	}
}

func caCertificatesGetCmd() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Get a CA certificate",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the CA certificate", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			certPrn, err := requirePrn(cmd, "prn", prn.KindCaCertificate)
			if err != nil {
				return err
			}
			cert, err := client.CaCertificates.Get(ctx, certPrn)
			if err != nil {
				return err
			}
			return output(cmd, cert)
		},
	}
}

func caCertificatesCreateCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Register a CA certificate",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "certificate-path", Usage: "Path to the CA certificate PEM", Required: true},
			&cli.StringFlag{Name: "verification-certificate-path", Usage: "Path to the verification certificate PEM", Required: true},
			&cli.StringFlag{Name: "description", Usage: "Description of the CA certificate"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			cert, err := readBase64File(cmd.String("certificate-path"))
			if err != nil {
				return err
			}
			verification, err := readBase64File(cmd.String("verification-certificate-path"))
			if err != nil {
				return err
			}
			created, err := client.CaCertificates.Create(ctx, api.CreateCaCertificateRequest{
				Certificate:             cert,
				VerificationCertificate: verification,
				Description:             cmd.String("description"),
			})
			if err != nil {
				return err
			}
			return output(cmd, created)
		},
	}
}

func caCertificatesUpdateCmd() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Update a CA certificate",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the CA certificate", Required: true},
			&cli.StringFlag{Name: "description", Usage: "New description"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			certPrn, err := requirePrn(cmd, "prn", prn.KindCaCertificate)
			if err != nil {
				return err
			}
			cert, err := client.CaCertificates.Update(ctx, certPrn, api.UpdateCaCertificateRequest{
				Description: stringPtr(cmd, "description"),
			})
			if err != nil {
				return err
			}
			return output(cmd, cert)
		},
	}
}

func caCertificatesDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete a CA certificate",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the CA certificate", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			certPrn, err := requirePrn(cmd, "prn", prn.KindCaCertificate)
			if err != nil {
				return err
			}
			return client.CaCertificates.Delete(ctx, certPrn)
		},
	}
}

func caCertificatesCreateVerificationCodeCmd() *cli.Command {
	return &cli.Command{
		Name:  "create-verification-code",
		Usage: "Create a verification code for registering a CA certificate",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			code, err := client.CaCertificates.CreateVerificationCode(ctx)
			if err != nil {
				return err
			}
			return output(cmd, map[string]string{"verification_code": code})
		},
	}
}

// readBase64File reads a PEM file and base64-encodes it for the API.
func readBase64File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
