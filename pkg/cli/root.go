/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/agnivade/levenshtein"
	"github.com/urfave/cli/v3"

	"github.com/peridio/morel/pkg/diag"
	"github.com/peridio/morel/pkg/version"
)

// Execute runs the CLI and returns the process exit code. It is the
// only place failures are rendered; nothing below it exits the
// process.
func Execute(ctx context.Context, args []string) int {
	if err := rootCmd().Run(ctx, args); err != nil {
		return diag.Fail(os.Stderr, err)
	}
	return diag.ExitOK
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    "morel",
		Usage:   "Peridio fleet-management CLI",
		Version: version.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "API key used to authenticate requests",
				Sources: cli.EnvVars("PERIDIO_API_KEY"),
			},
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "API endpoint to target",
				Sources: cli.EnvVars("PERIDIO_BASE_URL"),
			},
			&cli.StringFlag{
				Name:    "organization-prn",
				Usage:   "PRN of the organization to operate on",
				Sources: cli.EnvVars("PERIDIO_ORGANIZATION_PRN"),
			},
			&cli.StringFlag{
				Name:  "profile",
				Usage: "Named profile from the config file",
			},
			&cli.StringFlag{
				Name:    "config-dir",
				Usage:   "Directory containing config.yaml and credentials.yaml",
				Sources: cli.EnvVars("PERIDIO_CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:  "format",
				Value: "json",
				Usage: "Output format: json or yaml",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output file path (default: stdout)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := slog.LevelWarn
			if cmd.Bool("verbose") {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return ctx, nil
		},
		Commands: []*cli.Command{
			artifactsCmd(),
			artifactVersionsCmd(),
			binariesCmd(),
			binaryPartsCmd(),
			binarySignaturesCmd(),
			caCertificatesCmd(),
			cohortsCmd(),
			deploymentsCmd(),
			deviceCertificatesCmd(),
			devicesCmd(),
			firmwaresCmd(),
			organizationsCmd(),
			productsCmd(),
			signingKeysCmd(),
			usersCmd(),
		},
		CommandNotFound: func(ctx context.Context, cmd *cli.Command, name string) {
			r := diag.New()
			r.Push(diag.SeverityError, "error: ")
			r.Pushf(diag.SeverityNone, "unknown command %q", name)
			if suggestion := closestCommand(name, cmd.Commands); suggestion != "" {
				r.Pushf(diag.SeverityWarning, "\n\tdid you mean %q?", suggestion)
			}
			_ = r.Render(os.Stderr)
		},
	}
}

// closestCommand returns the visible command whose name is within
// small edit distance of input, or "" when nothing is close.
func closestCommand(input string, commands []*cli.Command) string {
	const maxDistance = 3

	best := ""
	bestDistance := maxDistance + 1
	for _, c := range commands {
		if c.Hidden {
			continue
		}
		if d := levenshtein.ComputeDistance(input, c.Name); d < bestDistance {
			best = c.Name
			bestDistance = d
		}
	}
	if bestDistance > maxDistance {
		return ""
	}
	return best
}
