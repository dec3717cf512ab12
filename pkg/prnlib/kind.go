/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prn

import "sort"

// ResourceKind identifies the category of API resource a PRN names.
// The value of a ResourceKind is its canonical lowercase snake_case
// type tag as it appears inside a PRN.
type ResourceKind string

const (
	KindAPIKey            ResourceKind = "api_key"
	KindArtifact          ResourceKind = "artifact"
	KindArtifactVersion   ResourceKind = "artifact_version"
	KindAuditLog          ResourceKind = "audit_log"
	KindBinary            ResourceKind = "binary"
	KindBinaryPart        ResourceKind = "binary_part"
	KindBinarySignature   ResourceKind = "binary_signature"
	KindBundle            ResourceKind = "bundle"
	KindBundleOverride    ResourceKind = "bundle_override"
	KindCaCertificate     ResourceKind = "ca_certificate"
	KindCohort            ResourceKind = "cohort"
	KindDeployment        ResourceKind = "deployment"
	KindDevice            ResourceKind = "device"
	KindDeviceCertificate ResourceKind = "device_certificate"
	KindEvent             ResourceKind = "event"
	KindFirmware          ResourceKind = "firmware"
	KindOrganization      ResourceKind = "organization"
	KindOrgUser           ResourceKind = "org_user"
	KindProduct           ResourceKind = "product"
	KindRelease           ResourceKind = "release"
	KindReleaseClaim      ResourceKind = "release_claim"
	KindSigningKey        ResourceKind = "signing_key"
	KindTunnel            ResourceKind = "tunnel"
	KindUser              ResourceKind = "user"
	KindUserToken         ResourceKind = "user_token"
	KindWebConsoleShell   ResourceKind = "web_console_shell"
	KindWebhook           ResourceKind = "webhook"
)

// kinds is the closed registry of resource kinds. It is populated once
// at init and never mutated, so it is safe to share without locking.
var kinds = map[ResourceKind]struct{}{
	KindAPIKey:            {},
	KindArtifact:          {},
	KindArtifactVersion:   {},
	KindAuditLog:          {},
	KindBinary:            {},
	KindBinaryPart:        {},
	KindBinarySignature:   {},
	KindBundle:            {},
	KindBundleOverride:    {},
	KindCaCertificate:     {},
	KindCohort:            {},
	KindDeployment:        {},
	KindDevice:            {},
	KindDeviceCertificate: {},
	KindEvent:             {},
	KindFirmware:          {},
	KindOrganization:      {},
	KindOrgUser:           {},
	KindProduct:           {},
	KindRelease:           {},
	KindReleaseClaim:      {},
	KindSigningKey:        {},
	KindTunnel:            {},
	KindUser:              {},
	KindUserToken:         {},
	KindWebConsoleShell:   {},
	KindWebhook:           {},
}

// Tag returns the canonical snake_case type tag for the kind.
func (k ResourceKind) Tag() string {
	return string(k)
}

// IsValid reports whether the kind is part of the registry.
func (k ResourceKind) IsValid() bool {
	_, ok := kinds[k]
	return ok
}

// KindFromTag resolves a type tag to its ResourceKind. Matching is
// case-sensitive and exact; there is no fuzzy lookup.
func KindFromTag(tag string) (ResourceKind, bool) {
	k := ResourceKind(tag)
	_, ok := kinds[k]
	if !ok {
		return "", false
	}
	return k, true
}

// SupportedKinds returns every registered kind sorted by tag, for use
// in diagnostics and usage text.
func SupportedKinds() []ResourceKind {
	out := make([]ResourceKind, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
