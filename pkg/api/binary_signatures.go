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

// BinarySignature attests a binary's hash with a registered signing
// key.
type BinarySignature struct {
	Prn           string `json:"prn"`
	BinaryPrn     string `json:"binary_prn"`
	SigningKeyPrn string `json:"signing_key_prn"`
	Signature     string `json:"signature"`
}

// BinarySignaturesService manages binary signatures.
type BinarySignaturesService service

type CreateBinarySignatureRequest struct {
	BinaryPrn     string `json:"binary_prn"`
	SigningKeyPrn string `json:"signing_key_prn"`
	Signature     string `json:"signature"`
}

func (s *BinarySignaturesService) Create(ctx context.Context, req CreateBinarySignatureRequest) (*BinarySignature, error) {
	var out struct {
		BinarySignature BinarySignature `json:"binary_signature"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/binary_signatures", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.BinarySignature, nil
}

func (s *BinarySignaturesService) Delete(ctx context.Context, prn string) error {
	return s.client.do(ctx, http.MethodDelete, "/binary_signatures/"+url.PathEscape(prn), nil, nil, nil)
}
