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

func productsCmd() *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "Manage products",
		Commands: []*cli.Command{
			productsListCmd(),
			productsGetCmd(),
			productsCreateCmd(),
			productsUpdateCmd(),
			productsDeleteCmd(),
		},
	}
}

func productsListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List products",
		Flags: listFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			page, err := client.Products.List(ctx, listOptions(cmd))
			if err != nil {
				return err
			}
			return output(cmd, page)
		},
	}
}

func productsGetCmd() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Get a product",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the product", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			productPrn, err := requirePrn(cmd, "prn", prn.KindProduct)
			if err != nil {
				return err
			}
			product, err := client.Products.Get(ctx, productPrn)
			if err != nil {
				return err
			}
			return output(cmd, product)
		},
	}
}

func productsCreateCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a product",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "Name of the product", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			product, err := client.Products.Create(ctx, api.CreateProductRequest{
				Name: cmd.String("name"),
			})
			if err != nil {
				return err
			}
			return output(cmd, product)
		},
	}
}

func productsUpdateCmd() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Update a product",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the product", Required: true},
			&cli.StringFlag{Name: "name", Usage: "New name"},
			&cli.BoolFlag{Name: "archived", Usage: "Archive or unarchive the product"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			productPrn, err := requirePrn(cmd, "prn", prn.KindProduct)
			if err != nil {
				return err
			}
			product, err := client.Products.Update(ctx, productPrn, api.UpdateProductRequest{
				Name:     stringPtr(cmd, "name"),
				Archived: boolPtr(cmd, "archived"),
			})
			if err != nil {
				return err
			}
			return output(cmd, product)
		},
	}
}

func productsDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete a product",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prn", Usage: "PRN of the product", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			productPrn, err := requirePrn(cmd, "prn", prn.KindProduct)
			if err != nil {
				return err
			}
			return client.Products.Delete(ctx, productPrn)
		},
	}
}
