/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// SigningKey is a registered public key binaries are verified
// against.
type SigningKey struct {
	Prn        string    `json:"prn"`
	Name       string    `json:"name"`
	Algorithm  string    `json:"algorithm"`
	Value      string    `json:"value"`
	InsertedAt time.Time `json:"inserted_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SigningKeysService manages signing keys.
type SigningKeysService service

type CreateSigningKeyRequest struct {
	Name string `json:"name"`

	// Algorithm is the signature algorithm, currently always ED25519.
	Algorithm string `json:"algorithm"`

	// Value is the raw base64-encoded public key.
	Value string `json:"value"`
}

type SigningKeyPage struct {
	SigningKeys []SigningKey `json:"signing_keys"`
	NextPage    string       `json:"next_page,omitempty"`
}

func (s *SigningKeysService) Create(ctx context.Context, req CreateSigningKeyRequest) (*SigningKey, error) {
	var out struct {
		SigningKey SigningKey `json:"signing_key"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/signing_keys", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.SigningKey, nil
}

func (s *SigningKeysService) Get(ctx context.Context, prn string) (*SigningKey, error) {
	var out struct {
		SigningKey SigningKey `json:"signing_key"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/signing_keys/"+url.PathEscape(prn), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.SigningKey, nil
}

func (s *SigningKeysService) List(ctx context.Context, opts ListOptions) (*SigningKeyPage, error) {
	var out SigningKeyPage
	if err := s.client.do(ctx, http.MethodGet, "/signing_keys", opts.Values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SigningKeysService) Delete(ctx context.Context, prn string) error {
	return s.client.do(ctx, http.MethodDelete, "/signing_keys/"+url.PathEscape(prn), nil, nil, nil)
}
