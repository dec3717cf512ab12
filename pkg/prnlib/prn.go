/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prn

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// prefix is the literal first segment of every PRN.
	prefix = "prn"

	// formatVersion is the only supported PRN format version.
	formatVersion = "1"
)

// Validate checks candidate against the PRN grammar for the expected
// kind and returns the candidate unchanged on success. Validation is
// fail-fast: the first violated rule is returned as a *ParseError and
// no further segments are inspected.
func Validate(expected ResourceKind, candidate string) (string, error) {
	segments := strings.Split(candidate, ":")

	if len(segments) < 3 || len(segments) > 5 {
		return "", &ParseError{Cause: CauseArity}
	}
	if segments[0] != prefix {
		return "", &ParseError{Cause: CauseFormat}
	}
	if segments[1] != formatVersion {
		return "", &ParseError{Cause: CauseVersion}
	}

	var err error
	switch len(segments) {
	case 3:
		err = validateOrganization(expected, segments[2])
	case 4:
		err = validateGlobal(expected, segments[2], segments[3])
	case 5:
		err = validateScoped(expected, segments[2], segments[3], segments[4])
	}
	if err != nil {
		return "", err
	}

	return candidate, nil
}

// validateOrganization handles the 3-segment form prn:1:<org-uuid>,
// which names an organization and nothing else.
func validateOrganization(expected ResourceKind, orgID string) error {
	if expected != KindOrganization {
		return &ParseError{Cause: CauseUnsupportedArity, Expected: expected}
	}
	if !validUUID(orgID) {
		return &ParseError{Cause: CauseInvalidUUID, Role: RoleOrganizationID}
	}
	return nil
}

// validateGlobal handles the 4-segment form prn:1:<tag>:<uuid>, valid
// only for the global kinds user and user_token. The arity check runs
// before any content check so a 4-segment PRN supplied where an
// organization-scoped resource was expected is rejected outright.
func validateGlobal(expected ResourceKind, tag, resourceID string) error {
	if expected != KindUser && expected != KindUserToken {
		return &ParseError{Cause: CauseUnsupportedArity, Expected: expected}
	}

	found, ok := KindFromTag(tag)
	if !ok {
		return &ParseError{Cause: CauseUnknownTag}
	}
	if found != expected {
		return &ParseError{Cause: CauseTypeMismatch, Expected: expected, Found: found}
	}
	if !validUUID(resourceID) {
		return &ParseError{Cause: CauseInvalidUUID, Role: RoleResourceID}
	}
	return nil
}

// validateScoped handles the 5-segment form
// prn:1:<org-uuid>:<tag>:<uuid> used by every organization-scoped
// resource kind.
func validateScoped(expected ResourceKind, orgID, tag, resourceID string) error {
	switch expected {
	case KindOrganization, KindUser, KindUserToken:
		return &ParseError{Cause: CauseUnsupportedArity, Expected: expected}
	}

	if !validUUID(orgID) {
		return &ParseError{Cause: CauseInvalidUUID, Role: RoleOrganizationID}
	}
	found, ok := KindFromTag(tag)
	if !ok {
		return &ParseError{Cause: CauseUnknownTag}
	}
	if found != expected {
		return &ParseError{Cause: CauseTypeMismatch, Expected: expected, Found: found}
	}
	if !validUUID(resourceID) {
		return &ParseError{Cause: CauseInvalidUUID, Role: RoleResourceID}
	}
	return nil
}

// validUUID reports whether s is a canonically formatted UUID: 32 hex
// digits with hyphens in the canonical positions. Version and variant
// bits are not checked.
func validUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
