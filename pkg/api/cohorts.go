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

// Cohort is a named group of devices that release together.
type Cohort struct {
	Prn         string    `json:"prn"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ProductPrn  string    `json:"product_prn"`
	InsertedAt  time.Time `json:"inserted_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CohortsService manages cohorts.
type CohortsService service

type CreateCohortRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ProductPrn  string `json:"product_prn"`
}

type UpdateCohortRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CohortPage struct {
	Cohorts  []Cohort `json:"cohorts"`
	NextPage string   `json:"next_page,omitempty"`
}

func (s *CohortsService) Create(ctx context.Context, req CreateCohortRequest) (*Cohort, error) {
	var out struct {
		Cohort Cohort `json:"cohort"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/cohorts", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Cohort, nil
}

func (s *CohortsService) Get(ctx context.Context, prn string) (*Cohort, error) {
	var out struct {
		Cohort Cohort `json:"cohort"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/cohorts/"+url.PathEscape(prn), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Cohort, nil
}

func (s *CohortsService) List(ctx context.Context, opts ListOptions) (*CohortPage, error) {
	var out CohortPage
	if err := s.client.do(ctx, http.MethodGet, "/cohorts", opts.Values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CohortsService) Update(ctx context.Context, prn string, req UpdateCohortRequest) (*Cohort, error) {
	var out struct {
		Cohort Cohort `json:"cohort"`
	}
	if err := s.client.do(ctx, http.MethodPatch, "/cohorts/"+url.PathEscape(prn), nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Cohort, nil
}

func (s *CohortsService) Delete(ctx context.Context, prn string) error {
	return s.client.do(ctx, http.MethodDelete, "/cohorts/"+url.PathEscape(prn), nil, nil, nil)
}
