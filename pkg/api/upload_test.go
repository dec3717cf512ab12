/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.bin")
	content := []byte("firmware image contents")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	sum := sha256.Sum256(content)

	hash, size, err := FileHash(path)
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(sum[:]), hash)
	assert.Equal(t, int64(len(content)), size)
}

func TestFileHash_Missing(t *testing.T) {
	_, _, err := FileHash(filepath.Join(t.TempDir(), "nope.bin"))
	assert.Error(t, err)
}

func TestUploadBinaryContent(t *testing.T) {
	content := []byte("small binary that fits in one part")
	path := filepath.Join(t.TempDir(), "content.bin")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	var (
		mu       sync.Mutex
		uploaded []byte
		states   []BinaryState
	)

	mux := http.NewServeMux()
	var srv *httptest.Server

	mux.HandleFunc("POST /binaries/{prn}/binary_parts", func(w http.ResponseWriter, r *http.Request) {
		var req CreateBinaryPartRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 1, req.Index)
		assert.Equal(t, int64(len(content)), req.ExpectedBinarySize)

		_ = json.NewEncoder(w).Encode(map[string]BinaryPart{"binary_part": {
			Index:              req.Index,
			Hash:               req.Hash,
			Size:               req.Size,
			PresignedUploadURL: srv.URL + "/presigned/1",
		}})
	})
	mux.HandleFunc("PUT /presigned/{index}", func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		mu.Lock()
		uploaded = append(uploaded, data...)
		mu.Unlock()
	})
	mux.HandleFunc("PATCH /binaries/{prn}", func(w http.ResponseWriter, r *http.Request) {
		var req UpdateBinaryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		mu.Lock()
		states = append(states, req.State)
		mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]Binary{"binary": {State: req.State}})
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewClient(WithBaseURL(srv.URL), WithAPIKey("k"), WithRateLimit(0, 0))

	bin, err := client.Binaries.UploadBinaryContent(context.Background(), "prn:1:x", path)
	require.NoError(t, err)

	assert.Equal(t, content, uploaded)
	assert.Equal(t, []BinaryState{BinaryStateHashable}, states)
	assert.Equal(t, BinaryStateHashable, bin.State)
}
