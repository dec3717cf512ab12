/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

func usersCmd() *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "Inspect the authenticated user",
		Commands: []*cli.Command{
			usersMeCmd(),
		},
	}
}

func usersMeCmd() *cli.Command {
	return &cli.Command{
		Name:  "me",
		Usage: "Show the account the current API key belongs to",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, _, err := apiClient(cmd)
			if err != nil {
				return err
			}
			user, err := client.Users.Me(ctx)
			if err != nil {
				return err
			}
			return output(cmd, user)
		},
	}
}
