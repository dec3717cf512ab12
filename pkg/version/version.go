/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package version exposes the CLI build version.
package version

import "runtime/debug"

// Version is overridden at release time via
// -ldflags "-X github.com/peridio/morel/pkg/version.Version=vX.Y.Z".
var Version = "dev"

// String returns the release version, falling back to module build
// info for source builds.
func String() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}
