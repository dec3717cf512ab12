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

// ArtifactVersion is one released version of an artifact.
type ArtifactVersion struct {
	Prn            string         `json:"prn"`
	ArtifactPrn    string         `json:"artifact_prn"`
	Version        string         `json:"version"`
	Description    string         `json:"description,omitempty"`
	CustomMetadata map[string]any `json:"custom_metadata,omitempty"`
	InsertedAt     time.Time      `json:"inserted_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// ArtifactVersionsService manages artifact versions.
type ArtifactVersionsService service

type CreateArtifactVersionRequest struct {
	ArtifactPrn    string         `json:"artifact_prn"`
	Version        string         `json:"version"`
	Description    string         `json:"description,omitempty"`
	CustomMetadata map[string]any `json:"custom_metadata,omitempty"`
}

type ArtifactVersionPage struct {
	ArtifactVersions []ArtifactVersion `json:"artifact_versions"`
	NextPage         string            `json:"next_page,omitempty"`
}

func (s *ArtifactVersionsService) Create(ctx context.Context, req CreateArtifactVersionRequest) (*ArtifactVersion, error) {
	var out struct {
		ArtifactVersion ArtifactVersion `json:"artifact_version"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/artifact_versions", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.ArtifactVersion, nil
}

func (s *ArtifactVersionsService) Get(ctx context.Context, prn string) (*ArtifactVersion, error) {
	var out struct {
		ArtifactVersion ArtifactVersion `json:"artifact_version"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/artifact_versions/"+url.PathEscape(prn), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.ArtifactVersion, nil
}

func (s *ArtifactVersionsService) List(ctx context.Context, opts ListOptions) (*ArtifactVersionPage, error) {
	var out ArtifactVersionPage
	if err := s.client.do(ctx, http.MethodGet, "/artifact_versions", opts.Values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ArtifactVersionsService) Delete(ctx context.Context, prn string) error {
	return s.client.do(ctx, http.MethodDelete, "/artifact_versions/"+url.PathEscape(prn), nil, nil, nil)
}
