/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(
		WithBaseURL(srv.URL),
		WithAPIKey("test-key"),
		WithRateLimit(0, 0),
	)
}

func TestClient_RequestHeaders(t *testing.T) {
	var gotAuth, gotAccept, gotUA string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		_ = json.NewEncoder(w).Encode(map[string]any{"user": map[string]any{"username": "jane"}})
	})

	_, err := client.Users.Me(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Token test-key", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, defaultUserAgent, gotUA)
}

func TestClient_ListPagination(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/devices", r.URL.Path)
		if r.URL.Query().Get("page") == "" {
			assert.Equal(t, "50", r.URL.Query().Get("limit"))
			_ = json.NewEncoder(w).Encode(DevicePage{
				Devices:  []Device{{Identifier: "dev-1"}},
				NextPage: "cursor-2",
			})
			return
		}
		assert.Equal(t, "cursor-2", r.URL.Query().Get("page"))
		_ = json.NewEncoder(w).Encode(DevicePage{
			Devices: []Device{{Identifier: "dev-2"}},
		})
	})

	ctx := context.Background()

	page, err := client.Devices.List(ctx, ListOptions{Limit: 50})
	require.NoError(t, err)
	require.Len(t, page.Devices, 1)
	assert.Equal(t, "dev-1", page.Devices[0].Identifier)
	require.NotEmpty(t, page.NextPage)

	page, err = client.Devices.List(ctx, ListOptions{Page: page.NextPage})
	require.NoError(t, err)
	require.Len(t, page.Devices, 1)
	assert.Equal(t, "dev-2", page.Devices[0].Identifier)
	assert.Empty(t, page.NextPage)
}

func TestClient_PathEscapesPrn(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_ = json.NewEncoder(w).Encode(map[string]any{"device": map[string]any{}})
	})

	prn := "prn:1:6b6945cf-51a1-42fa-81cb-e4ee4cb83f4e:device:9d8f2a63-04a7-4b8e-bf1e-0d1e3f9ab0c2"
	_, err := client.Devices.Get(context.Background(), prn)
	require.NoError(t, err)
	assert.Equal(t, "/devices/"+prn, gotPath, "colons are legal in path segments and stay unescaped")
}

func TestClient_DecodesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":"invalid_parameters","message":"validation failed","errors":{"name":["can't be blank"]}}`))
	})

	_, err := client.Products.Create(context.Background(), CreateProductRequest{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "invalid_parameters", apiErr.Code)
	assert.Equal(t, "validation failed", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "can't be blank")
}

func TestClient_DecodesWrappedAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"data":{"code":"not_found","message":"no such device"}}`))
	})

	_, err := client.Devices.Get(context.Background(), "prn:1:x")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "not_found", apiErr.Code)
	assert.Equal(t, "no such device", apiErr.Message)
}

func TestClient_NoContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.Cohorts.Delete(context.Background(), "prn:1:x")
	assert.NoError(t, err)
}
