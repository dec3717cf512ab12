/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindTagRoundTrip(t *testing.T) {
	for _, k := range SupportedKinds() {
		got, ok := KindFromTag(k.Tag())
		require.True(t, ok, "tag %q should resolve", k.Tag())
		assert.Equal(t, k, got)
	}
}

func TestKindFromTag_Unknown(t *testing.T) {
	for _, tag := range []string{"", "prn", "Device", "DEVICE", "devices", " device", "device "} {
		_, ok := KindFromTag(tag)
		assert.False(t, ok, "tag %q should not resolve", tag)
	}
}

func TestSupportedKinds_SortedAndCanonical(t *testing.T) {
	ks := SupportedKinds()
	require.NotEmpty(t, ks)

	for i := 1; i < len(ks); i++ {
		assert.Less(t, string(ks[i-1]), string(ks[i]))
	}
	for _, k := range ks {
		assert.True(t, k.IsValid())
		assert.Equal(t, strings.ToLower(k.Tag()), k.Tag(), "tags are lowercase snake_case")
		assert.NotContains(t, k.Tag(), ":")
	}
}

func TestIsValid_ZeroValue(t *testing.T) {
	assert.False(t, ResourceKind("").IsValid())
}
