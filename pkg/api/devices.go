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

// Device is one enrolled unit of hardware.
type Device struct {
	Prn               string    `json:"prn"`
	Identifier        string    `json:"identifier"`
	ProductPrn        string    `json:"product_prn"`
	CohortPrn         string    `json:"cohort_prn,omitempty"`
	Description       string    `json:"description,omitempty"`
	Tags              []string  `json:"tags,omitempty"`
	Healthy           *bool     `json:"healthy,omitempty"`
	FirmwareVersion   string    `json:"version,omitempty"`
	LastCommunication time.Time `json:"last_communication,omitempty"`
	InsertedAt        time.Time `json:"inserted_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DevicesService manages devices.
type DevicesService service

type CreateDeviceRequest struct {
	Identifier  string   `json:"identifier"`
	ProductPrn  string   `json:"product_prn"`
	CohortPrn   string   `json:"cohort_prn,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type UpdateDeviceRequest struct {
	CohortPrn   *string  `json:"cohort_prn,omitempty"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type DevicePage struct {
	Devices  []Device `json:"devices"`
	NextPage string   `json:"next_page,omitempty"`
}

func (s *DevicesService) Create(ctx context.Context, req CreateDeviceRequest) (*Device, error) {
	var out struct {
		Device Device `json:"device"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/devices", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Device, nil
}

func (s *DevicesService) Get(ctx context.Context, prn string) (*Device, error) {
	var out struct {
		Device Device `json:"device"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/devices/"+url.PathEscape(prn), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Device, nil
}

func (s *DevicesService) List(ctx context.Context, opts ListOptions) (*DevicePage, error) {
	var out DevicePage
	if err := s.client.do(ctx, http.MethodGet, "/devices", opts.Values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *DevicesService) Update(ctx context.Context, prn string, req UpdateDeviceRequest) (*Device, error) {
	var out struct {
		Device Device `json:"device"`
	}
	if err := s.client.do(ctx, http.MethodPatch, "/devices/"+url.PathEscape(prn), nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Device, nil
}

func (s *DevicesService) Delete(ctx context.Context, prn string) error {
	return s.client.do(ctx, http.MethodDelete, "/devices/"+url.PathEscape(prn), nil, nil, nil)
}
