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

// Artifact groups the versioned release content of one logical
// deliverable, e.g. a firmware image or an ML model.
type Artifact struct {
	Prn             string         `json:"prn"`
	Name            string         `json:"name"`
	Description     string         `json:"description,omitempty"`
	CustomMetadata  map[string]any `json:"custom_metadata,omitempty"`
	OrganizationPrn string         `json:"organization_prn"`
	InsertedAt      time.Time      `json:"inserted_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// ArtifactsService manages artifacts.
type ArtifactsService service

type CreateArtifactRequest struct {
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	CustomMetadata map[string]any `json:"custom_metadata,omitempty"`
}

type UpdateArtifactRequest struct {
	Name           *string        `json:"name,omitempty"`
	Description    *string        `json:"description,omitempty"`
	CustomMetadata map[string]any `json:"custom_metadata,omitempty"`
}

// ArtifactPage is one page of artifacts plus the cursor to the next.
type ArtifactPage struct {
	Artifacts []Artifact `json:"artifacts"`
	NextPage  string     `json:"next_page,omitempty"`
}

func (s *ArtifactsService) Create(ctx context.Context, req CreateArtifactRequest) (*Artifact, error) {
	var out struct {
		Artifact Artifact `json:"artifact"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/artifacts", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Artifact, nil
}

func (s *ArtifactsService) Get(ctx context.Context, prn string) (*Artifact, error) {
	var out struct {
		Artifact Artifact `json:"artifact"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/artifacts/"+url.PathEscape(prn), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Artifact, nil
}

func (s *ArtifactsService) List(ctx context.Context, opts ListOptions) (*ArtifactPage, error) {
	var out ArtifactPage
	if err := s.client.do(ctx, http.MethodGet, "/artifacts", opts.Values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ArtifactsService) Update(ctx context.Context, prn string, req UpdateArtifactRequest) (*Artifact, error) {
	var out struct {
		Artifact Artifact `json:"artifact"`
	}
	if err := s.client.do(ctx, http.MethodPatch, "/artifacts/"+url.PathEscape(prn), nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Artifact, nil
}

func (s *ArtifactsService) Delete(ctx context.Context, prn string) error {
	return s.client.do(ctx, http.MethodDelete, "/artifacts/"+url.PathEscape(prn), nil, nil, nil)
}
