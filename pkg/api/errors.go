/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError is a non-2xx response decoded from the API's error body.
type APIError struct {
	StatusCode int `json:"-"`

	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "api error (status %d)", e.StatusCode)
	if e.Code != "" {
		fmt.Fprintf(&b, " %s", e.Code)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	for field, msgs := range e.Errors {
		fmt.Fprintf(&b, "; %s: %s", field, strings.Join(msgs, ", "))
	}
	return b.String()
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}

	var body struct {
		Code    string              `json:"code"`
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
		Data    *APIError           `json:"data"`
	}
	if jsonErr := json.Unmarshal(data, &body); jsonErr == nil {
		if body.Data != nil {
			apiErr.Code = body.Data.Code
			apiErr.Message = body.Data.Message
			apiErr.Errors = body.Data.Errors
		} else {
			apiErr.Code = body.Code
			apiErr.Message = body.Message
			apiErr.Errors = body.Errors
		}
	}
	return apiErr
}
