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

// DeploymentConditions scope which devices a deployment targets.
type DeploymentConditions struct {
	Tags    []string `json:"tags,omitempty"`
	Version string   `json:"version,omitempty"`
}

// Deployment rolls a firmware out to the devices of a product that
// match its conditions.
type Deployment struct {
	Prn         string               `json:"prn"`
	Name        string               `json:"name"`
	FirmwarePrn string               `json:"firmware_prn"`
	ProductPrn  string               `json:"product_prn"`
	IsActive    bool                 `json:"is_active"`
	Conditions  DeploymentConditions `json:"conditions"`
	Delta       bool                 `json:"delta_updatable,omitempty"`
	InsertedAt  time.Time            `json:"inserted_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// DeploymentsService manages deployments.
type DeploymentsService service

type CreateDeploymentRequest struct {
	Name        string               `json:"name"`
	FirmwarePrn string               `json:"firmware_prn"`
	ProductPrn  string               `json:"product_prn"`
	IsActive    bool                 `json:"is_active"`
	Conditions  DeploymentConditions `json:"conditions"`
	Delta       bool                 `json:"delta_updatable,omitempty"`
}

type UpdateDeploymentRequest struct {
	Name        *string               `json:"name,omitempty"`
	FirmwarePrn *string               `json:"firmware_prn,omitempty"`
	IsActive    *bool                 `json:"is_active,omitempty"`
	Conditions  *DeploymentConditions `json:"conditions,omitempty"`
	Delta       *bool                 `json:"delta_updatable,omitempty"`
}

type DeploymentPage struct {
	Deployments []Deployment `json:"deployments"`
	NextPage    string       `json:"next_page,omitempty"`
}

func (s *DeploymentsService) Create(ctx context.Context, req CreateDeploymentRequest) (*Deployment, error) {
	var out struct {
		Deployment Deployment `json:"deployment"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/deployments", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Deployment, nil
}

func (s *DeploymentsService) Get(ctx context.Context, prn string) (*Deployment, error) {
	var out struct {
		Deployment Deployment `json:"deployment"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/deployments/"+url.PathEscape(prn), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Deployment, nil
}

func (s *DeploymentsService) List(ctx context.Context, opts ListOptions) (*DeploymentPage, error) {
	var out DeploymentPage
	if err := s.client.do(ctx, http.MethodGet, "/deployments", opts.Values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *DeploymentsService) Update(ctx context.Context, prn string, req UpdateDeploymentRequest) (*Deployment, error) {
	var out struct {
		Deployment Deployment `json:"deployment"`
	}
	if err := s.client.do(ctx, http.MethodPatch, "/deployments/"+url.PathEscape(prn), nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Deployment, nil
}

func (s *DeploymentsService) Delete(ctx context.Context, prn string) error {
	return s.client.do(ctx, http.MethodDelete, "/deployments/"+url.PathEscape(prn), nil, nil, nil)
}
