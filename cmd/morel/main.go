/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"os"

	"github.com/peridio/morel/pkg/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args))
}
