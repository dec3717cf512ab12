/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	orgUUID = "6b6945cf-51a1-42fa-81cb-e4ee4cb83f4e"
	resUUID = "9d8f2a63-04a7-4b8e-bf1e-0d1e3f9ab0c2"
)

func TestValidate_Accepts(t *testing.T) {
	tests := []struct {
		name      string
		expected  ResourceKind
		candidate string
	}{
		{"organization", KindOrganization, "prn:1:" + orgUUID},
		{"user", KindUser, "prn:1:user:" + resUUID},
		{"user token", KindUserToken, "prn:1:user_token:" + resUUID},
		{"device", KindDevice, "prn:1:" + orgUUID + ":device:" + resUUID},
		{"firmware", KindFirmware, "prn:1:" + orgUUID + ":firmware:" + resUUID},
		{"signing key", KindSigningKey, "prn:1:" + orgUUID + ":signing_key:" + resUUID},
		{"uuid version bits not checked", KindDevice, "prn:1:" + orgUUID + ":device:ffffffff-ffff-ffff-ffff-ffffffffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.expected, tt.candidate)
			require.NoError(t, err)
			assert.Equal(t, tt.candidate, got, "accepted PRN is returned unchanged")
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name      string
		expected  ResourceKind
		candidate string
		cause     Cause
	}{
		{"too few segments", KindDevice, "prn:1", CauseArity},
		{"too many segments", KindDevice, "prn:1:a:b:c:d", CauseArity},
		{"empty string", KindDevice, "", CauseArity},
		{"missing prn literal", KindDevice, "arn:1:" + orgUUID + ":device:" + resUUID, CauseFormat},
		{"wrong version", KindDevice, "prn:2:" + orgUUID + ":device:" + resUUID, CauseVersion},
		{"org form for non-org kind", KindDevice, "prn:1:" + orgUUID, CauseUnsupportedArity},
		{"org kind forbids scoped form", KindOrganization, "prn:1:" + orgUUID + ":organization:" + resUUID, CauseUnsupportedArity},
		{"org id not a uuid", KindOrganization, "prn:1:not-a-uuid", CauseInvalidUUID},
		{"global form for scoped kind", KindDevice, "prn:1:device:" + resUUID, CauseUnsupportedArity},
		{"global form rejected before content checks", KindDevice, "prn:1:???:???", CauseUnsupportedArity},
		{"unknown tag in global form", KindUser, "prn:1:users:" + resUUID, CauseUnknownTag},
		{"user token where user expected", KindUser, "prn:1:user_token:" + resUUID, CauseTypeMismatch},
		{"user where user token expected", KindUserToken, "prn:1:user:" + resUUID, CauseTypeMismatch},
		{"third tag in global form", KindUser, "prn:1:device:" + resUUID, CauseTypeMismatch},
		{"user id not a uuid", KindUser, "prn:1:user:42", CauseInvalidUUID},
		{"scoped form for user kind", KindUser, "prn:1:" + orgUUID + ":user:" + resUUID, CauseUnsupportedArity},
		{"scoped org id not a uuid", KindDevice, "prn:1:oops:device:" + resUUID, CauseInvalidUUID},
		{"unknown tag in scoped form", KindDevice, "prn:1:" + orgUUID + ":gadget:" + resUUID, CauseUnknownTag},
		{"tag resolves to wrong kind", KindFirmware, "prn:1:" + orgUUID + ":cohort:" + resUUID, CauseTypeMismatch},
		{"tag case sensitive", KindDevice, "prn:1:" + orgUUID + ":Device:" + resUUID, CauseUnknownTag},
		{"resource id not a uuid", KindDevice, "prn:1:" + orgUUID + ":device:not-a-uuid", CauseInvalidUUID},
		{"resource id unhyphenated", KindDevice, "prn:1:" + orgUUID + ":device:6b6945cf51a142fa81cbe4ee4cb83f4e", CauseInvalidUUID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.expected, tt.candidate)
			require.Error(t, err)
			assert.Empty(t, got)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.cause, perr.Cause)
		})
	}
}

func TestValidate_ArityErrorForEveryKind(t *testing.T) {
	for _, k := range SupportedKinds() {
		for _, candidate := range []string{"prn:1", "prn:1:a:b:c:d"} {
			_, err := Validate(k, candidate)
			var perr *ParseError
			require.ErrorAs(t, err, &perr, "kind %s candidate %q", k, candidate)
			assert.Equal(t, CauseArity, perr.Cause)
		}
	}
}

func TestValidate_TypeMismatchDetails(t *testing.T) {
	_, err := Validate(KindFirmware, "prn:1:"+orgUUID+":cohort:"+resUUID)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindFirmware, perr.Expected)
	assert.Equal(t, KindCohort, perr.Found)
}

func TestValidate_InvalidUUIDRole(t *testing.T) {
	_, err := Validate(KindDevice, "prn:1:oops:device:"+resUUID)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, RoleOrganizationID, perr.Role)

	_, err = Validate(KindDevice, "prn:1:"+orgUUID+":device:oops")
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, RoleResourceID, perr.Role)
}

func TestValidate_Idempotent(t *testing.T) {
	candidate := "prn:1:" + orgUUID + ":device:" + resUUID

	first, err := Validate(KindDevice, candidate)
	require.NoError(t, err)
	second, err := Validate(KindDevice, candidate)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, candidate, first)
}
