/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prn

import "fmt"

// Cause classifies why a candidate PRN was rejected.
type Cause string

const (
	// CauseArity means the segment count is outside {3, 4, 5}.
	CauseArity Cause = "arity"

	// CauseFormat means the first segment is not the literal "prn".
	CauseFormat Cause = "format"

	// CauseVersion means the second segment is not the supported
	// format version literal "1".
	CauseVersion Cause = "version"

	// CauseInvalidUUID means a UUID-bearing segment fails UUID syntax.
	CauseInvalidUUID Cause = "invalid_uuid"

	// CauseUnknownTag means the type-tag segment does not resolve to
	// any registered kind.
	CauseUnknownTag Cause = "unknown_type_tag"

	// CauseTypeMismatch means the type tag resolves to a kind other
	// than the one expected.
	CauseTypeMismatch Cause = "type_mismatch"

	// CauseUnsupportedArity means the segment count is valid in
	// general but disallowed for the expected kind, e.g. a 4-segment
	// PRN where an organization-scoped resource was expected.
	CauseUnsupportedArity Cause = "unsupported_arity"
)

// SegmentRole names which UUID-bearing segment failed validation.
type SegmentRole string

const (
	RoleOrganizationID SegmentRole = "organization"
	RoleResourceID     SegmentRole = "resource"
)

// ParseError is the classified failure returned by Validate. Exactly
// one Cause is set; the remaining fields are populated per cause.
type ParseError struct {
	Cause Cause

	// Role identifies the failing segment for CauseInvalidUUID.
	Role SegmentRole

	// Expected and Found carry the kinds for CauseTypeMismatch.
	// Expected is also set for CauseUnsupportedArity.
	Expected ResourceKind
	Found    ResourceKind
}

func (e *ParseError) Error() string {
	switch e.Cause {
	case CauseArity:
		return "invalid PRN"
	case CauseFormat:
		return "invalid PRN, expected 'prn' literal"
	case CauseVersion:
		return "invalid PRN, unsupported format version"
	case CauseInvalidUUID:
		return fmt.Sprintf("invalid PRN UUID, expected valid %s UUID in PRN", e.Role)
	case CauseUnknownTag:
		return "invalid PRN type"
	case CauseTypeMismatch:
		if e.Expected == KindUser || e.Expected == KindUserToken {
			return "invalid PRN type, expected 'user' or 'user_token' PRN"
		}
		return fmt.Sprintf("invalid PRN type, expected '%s' PRN, got '%s'", e.Expected, e.Found)
	case CauseUnsupportedArity:
		return fmt.Sprintf("invalid PRN form for '%s'", e.Expected)
	default:
		return "invalid PRN"
	}
}
