/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"context"
	"net/http"
	"net/url"
)

// BinaryPart is one chunk of a binary's multipart content upload. The
// API hands back a presigned URL the chunk bytes are PUT to directly.
type BinaryPart struct {
	Prn                string `json:"prn"`
	BinaryPrn          string `json:"binary_prn"`
	Index              int    `json:"index"`
	Hash               string `json:"hash"`
	Size               int64  `json:"size"`
	PresignedUploadURL string `json:"presigned_upload_url,omitempty"`
}

// BinaryPartsService manages binary parts.
type BinaryPartsService service

type CreateBinaryPartRequest struct {
	Index              int    `json:"index"`
	Hash               string `json:"hash"`
	Size               int64  `json:"size"`
	ExpectedBinarySize int64  `json:"expected_binary_size"`
}

type BinaryPartPage struct {
	BinaryParts []BinaryPart `json:"binary_parts"`
	NextPage    string       `json:"next_page,omitempty"`
}

func (s *BinaryPartsService) Create(ctx context.Context, binaryPrn string, req CreateBinaryPartRequest) (*BinaryPart, error) {
	var out struct {
		BinaryPart BinaryPart `json:"binary_part"`
	}
	path := "/binaries/" + url.PathEscape(binaryPrn) + "/binary_parts"
	if err := s.client.do(ctx, http.MethodPost, path, nil, req, &out); err != nil {
		return nil, err
	}
	return &out.BinaryPart, nil
}

func (s *BinaryPartsService) List(ctx context.Context, binaryPrn string, opts ListOptions) (*BinaryPartPage, error) {
	var out BinaryPartPage
	path := "/binaries/" + url.PathEscape(binaryPrn) + "/binary_parts"
	if err := s.client.do(ctx, http.MethodGet, path, opts.Values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
