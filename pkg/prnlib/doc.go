/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package prn validates Peridio Resource Names, the typed identifiers
// used throughout the fleet-management API.
//
// A PRN is a colon-delimited string of one of three shapes:
//
//	prn:1:<org-uuid>                            organization
//	prn:1:<type-tag>:<resource-uuid>            global resources (user, user_token)
//	prn:1:<org-uuid>:<type-tag>:<resource-uuid> organization-scoped resources
//
// Validation is non-normalizing: an accepted candidate is returned
// byte-for-byte unchanged so callers can forward it to the API as-is.
// The package performs no I/O.
package prn
