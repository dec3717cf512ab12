/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the morel command-line interface.
//
// # Overview
//
// morel manages a Peridio fleet: artifacts and their versions, binaries
// and their multipart uploads, signing keys and signatures, products,
// cohorts, devices and their certificates, firmwares, and deployments.
// Every command talks to the Peridio REST API through pkg/api.
//
// # Commands
//
// One command group per resource, with list/get/create/update/delete
// subcommands as the resource supports them:
//
//	morel artifacts list --limit 10
//	morel artifacts create --name demo
//	morel binaries create --artifact-version-prn PRN --target arm64 --content-path ./app.fw
//	morel deployments create --name canary --firmware-prn PRN --product-prn PRN --tag canary
//	morel devices update --prn PRN --cohort-prn PRN
//	morel users me
//
// # Global Flags
//
//	--api-key           API key used to authenticate requests
//	--base-url          API endpoint to target
//	--organization-prn  PRN of the organization to operate on
//	--profile           Named profile from the config file
//	--config-dir        Directory containing config.yaml and credentials.yaml
//	--format            Output format: json or yaml (default: json)
//	--output            Output file path (default: stdout)
//	--verbose, -v       Enable debug logging
//
// --api-key and --organization-prn are required for every API-backed
// command. They can be supplied as flags, via the PERIDIO_API_KEY and
// PERIDIO_ORGANIZATION_PRN environment variables, or through a named
// profile.
//
// # PRN Arguments
//
// Flags that accept a PRN are validated locally before any request is
// made, including that the PRN names a resource of the kind the flag
// expects. Validation failures are rendered as styled diagnostics and
// the process exits with code 65.
//
// # Exit Codes
//
//	0   Success
//	1   General error (API failure, I/O failure)
//	65  Invalid input data (malformed PRN, missing required globals)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to
// specialized packages:
//   - pkg/prn - PRN parsing and kind validation
//   - pkg/api - REST API client
//   - pkg/config - profiles, credentials, environment resolution
//   - pkg/serializer - output formatting
//   - pkg/diag - styled diagnostics and exit codes
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/peridio/morel/pkg/version.Version=1.0.0'"
package cli
