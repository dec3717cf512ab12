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

// BinaryState is the lifecycle state of a binary's content.
type BinaryState string

const (
	BinaryStateUploading BinaryState = "uploading"
	BinaryStateHashable  BinaryState = "hashable"
	BinaryStateHashing   BinaryState = "hashing"
	BinaryStateSignable  BinaryState = "signable"
	BinaryStateSigned    BinaryState = "signed"
	BinaryStateDestroyed BinaryState = "destroyed"
)

// Binary is target-specific content for an artifact version.
type Binary struct {
	Prn                string         `json:"prn"`
	ArtifactVersionPrn string         `json:"artifact_version_prn"`
	Target             string         `json:"target"`
	Hash               string         `json:"hash,omitempty"`
	Size               int64          `json:"size,omitempty"`
	State              BinaryState    `json:"state"`
	Description        string         `json:"description,omitempty"`
	CustomMetadata     map[string]any `json:"custom_metadata,omitempty"`
	InsertedAt         time.Time      `json:"inserted_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// BinariesService manages binaries.
type BinariesService service

type CreateBinaryRequest struct {
	ArtifactVersionPrn string         `json:"artifact_version_prn"`
	Target             string         `json:"target"`
	Hash               string         `json:"hash"`
	Size               int64          `json:"size"`
	Description        string         `json:"description,omitempty"`
	CustomMetadata     map[string]any `json:"custom_metadata,omitempty"`
}

type UpdateBinaryRequest struct {
	State          BinaryState    `json:"state,omitempty"`
	Description    *string        `json:"description,omitempty"`
	CustomMetadata map[string]any `json:"custom_metadata,omitempty"`
}

type BinaryPage struct {
	Binaries []Binary `json:"binaries"`
	NextPage string   `json:"next_page,omitempty"`
}

func (s *BinariesService) Create(ctx context.Context, req CreateBinaryRequest) (*Binary, error) {
	var out struct {
		Binary Binary `json:"binary"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/binaries", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Binary, nil
}

func (s *BinariesService) Get(ctx context.Context, prn string) (*Binary, error) {
	var out struct {
		Binary Binary `json:"binary"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/binaries/"+url.PathEscape(prn), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Binary, nil
}

func (s *BinariesService) List(ctx context.Context, opts ListOptions) (*BinaryPage, error) {
	var out BinaryPage
	if err := s.client.do(ctx, http.MethodGet, "/binaries", opts.Values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *BinariesService) Update(ctx context.Context, prn string, req UpdateBinaryRequest) (*Binary, error) {
	var out struct {
		Binary Binary `json:"binary"`
	}
	if err := s.client.do(ctx, http.MethodPatch, "/binaries/"+url.PathEscape(prn), nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Binary, nil
}
