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

// Product is the top-level grouping for devices and firmware.
type Product struct {
	Prn             string    `json:"prn"`
	Name            string    `json:"name"`
	OrganizationPrn string    `json:"organization_prn"`
	Archived        bool      `json:"archived"`
	InsertedAt      time.Time `json:"inserted_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProductsService manages products.
type ProductsService service

type CreateProductRequest struct {
	Name string `json:"name"`
}

type UpdateProductRequest struct {
	Name     *string `json:"name,omitempty"`
	Archived *bool   `json:"archived,omitempty"`
}

type ProductPage struct {
	Products []Product `json:"products"`
	NextPage string    `json:"next_page,omitempty"`
}

func (s *ProductsService) Create(ctx context.Context, req CreateProductRequest) (*Product, error) {
	var out struct {
		Product Product `json:"product"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/products", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

func (s *ProductsService) Get(ctx context.Context, prn string) (*Product, error) {
	var out struct {
		Product Product `json:"product"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/products/"+url.PathEscape(prn), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

func (s *ProductsService) List(ctx context.Context, opts ListOptions) (*ProductPage, error) {
	var out ProductPage
	if err := s.client.do(ctx, http.MethodGet, "/products", opts.Values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ProductsService) Update(ctx context.Context, prn string, req UpdateProductRequest) (*Product, error) {
	var out struct {
		Product Product `json:"product"`
	}
	if err := s.client.do(ctx, http.MethodPatch, "/products/"+url.PathEscape(prn), nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

func (s *ProductsService) Delete(ctx context.Context, prn string) error {
	return s.client.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(prn), nil, nil, nil)
}
