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

func organizationsCmd() *cli.Command {
	return &cli.Command{
		Name:  "organizations",
		Usage: "Manage the organization",
		Commands: []*cli.Command{
			organizationUsersCmd(),
		},
	}
}

func organizationUsersCmd() *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "Manage organization memberships",
		Commands: []*cli.Command{
			organizationUsersListCmd(),
			organizationUsersGetCmd(),
			organizationUsersAddCmd(),
			organizationUsersUpdateCmd(),
			organizationUsersRemoveCmd(),
		},
	}
}

func organizationUsersListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List organization users",
		Flags: listFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			page, err := client.OrganizationUsers.List(ctx, listOptions(cmd))
			if err != nil {
				return err
			}
			return output(cmd, page)
		},
	}
}

func organizationUsersGetCmd() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Get an organization user",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user-prn", Usage: "PRN of the user", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			userPrn, err := requirePrn(cmd, "user-prn", prn.KindUser)
			if err != nil {
				return err
			}
			user, err := client.OrganizationUsers.Get(ctx, userPrn)
			if err != nil {
				return err
			}
			return output(cmd, user)
		},
	}
}

func organizationUsersAddCmd() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Add a user to the organization",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Usage: "Username of the user to add", Required: true},
			&cli.StringFlag{Name: "role", Usage: "Role to grant", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			user, err := client.OrganizationUsers.Add(ctx, api.AddOrganizationUserRequest{
				Username: cmd.String("username"),
				Role:     cmd.String("role"),
			})
			if err != nil {
				return err
			}
			return output(cmd, user)
		},
	}
}

func organizationUsersUpdateCmd() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Change an organization user's role",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user-prn", Usage: "PRN of the user", Required: true},
			&cli.StringFlag{Name: "role", Usage: "Role to grant", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			userPrn, err := requirePrn(cmd, "user-prn", prn.KindUser)
			if err != nil {
				return err
			}
			user, err := client.OrganizationUsers.Update(ctx, userPrn, api.UpdateOrganizationUserRequest{
				Role: cmd.String("role"),
			})
			if err != nil {
				return err
			}
			return output(cmd, user)
		},
	}
}

func organizationUsersRemoveCmd() *cli.Command {
	return &cli.Command{
		Name:  "remove",
		Usage: "Remove a user from the organization",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user-prn", Usage: "PRN of the user", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			userPrn, err := requirePrn(cmd, "user-prn", prn.KindUser)
			if err != nil {
				return err
			}
			return client.OrganizationUsers.Remove(ctx, userPrn)
		},
	}
}
